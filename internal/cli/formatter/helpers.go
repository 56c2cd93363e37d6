package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/avandermeer/hearthplan/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	tomorrow := now.AddDate(0, 0, 1)
	y3, m3, d3 := tomorrow.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Tomorrow"
	}
	return t.Format("Jan 2, 2006")
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// SubjectBadge returns a capitalized, purple-styled subject label.
func SubjectBadge(s domain.SubjectBucket) string {
	label := strings.ReplaceAll(string(s), "_", " ")
	if label == "" {
		return StyleDim.Render("--")
	}
	label = strings.ToUpper(label[:1]) + label[1:]
	return StylePurple.Render(label)
}

// DayTypeBadge returns a colored day-type marker for day headings.
func DayTypeBadge(dt domain.DayType) string {
	switch dt {
	case domain.DayLight:
		return StyleYellow.Render("○ light")
	case domain.DayAppointment:
		return StyleBlue.Render("◆ appointment")
	default:
		return ""
	}
}

// ActionPill returns a colored keep/modify/skip indicator.
func ActionPill(action domain.ItemAction) string {
	switch action {
	case domain.ActionSkip:
		return StyleRed.Render("⊘ Skip")
	case domain.ActionModify:
		return StyleYellow.Render("± Modify")
	default:
		return StyleGreen.Render("● Keep")
	}
}

// ResultPill returns a colored pass/partial/miss indicator.
func ResultPill(result domain.SessionResult) string {
	switch result {
	case domain.ResultPass:
		return StyleGreen.Render("✔ pass")
	case domain.ResultPartial:
		return StyleYellow.Render("~ partial")
	case domain.ResultMiss:
		return StyleRed.Render("✘ miss")
	default:
		return StyleDim.Render(string(result))
	}
}
