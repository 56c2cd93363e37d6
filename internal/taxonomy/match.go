package taxonomy

import "strings"

// FamilyPrefix returns the first two dot-segments of a tag
// ("math.subtraction.regroup" -> "math.subtraction"). Tags with fewer than
// two segments return empty, which never family-matches anything.
func FamilyPrefix(tag string) string {
	parts := strings.SplitN(tag, ".", 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[0] + "." + parts[1]
}

// TagsMatch reports whether two skill tags name the same skill area:
// exactly equal, or either tag's two-segment family prefix is a dot-path
// prefix of the other.
func TagsMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	return prefixMatches(FamilyPrefix(a), b) || prefixMatches(FamilyPrefix(b), a)
}

func prefixMatches(prefix, tag string) bool {
	if prefix == "" {
		return false
	}
	return tag == prefix || strings.HasPrefix(tag, prefix+".")
}
