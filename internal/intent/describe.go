package intent

import (
	"fmt"
	"strings"

	"github.com/avandermeer/hearthplan/internal/domain"
)

// Describe renders a fixed human-readable confirmation line for an
// adjustment. Unknown variants (including nil) describe as empty.
func Describe(adj domain.Adjustment) string {
	switch a := adj.(type) {
	case domain.LightenDay:
		return fmt.Sprintf("Make %s a lighter day.", a.Day)
	case domain.MoveSubject:
		return fmt.Sprintf("Move %s to %s.", SubjectLabel(a.Subject), joinDays(a.ToDays))
	case domain.ReduceSubject:
		return fmt.Sprintf("Reduce %s to about %.0f%% of planned time.", SubjectLabel(a.Subject), a.Factor*100)
	case domain.CapSubjectTime:
		return fmt.Sprintf("Cap %s at %d minutes per day.", SubjectLabel(a.Subject), a.MaxMinutesPerDay)
	default:
		return ""
	}
}

// SubjectLabel is the display spelling for a subject bucket.
func SubjectLabel(s domain.SubjectBucket) string {
	switch s {
	case domain.SubjectMath:
		return "math"
	case domain.SubjectLanguageArts:
		return "language arts"
	case domain.SubjectReading:
		return "reading"
	case domain.SubjectScience:
		return "science"
	case domain.SubjectSocialStudies:
		return "social studies"
	default:
		return string(s)
	}
}

func joinDays(days []domain.Weekday) string {
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}
