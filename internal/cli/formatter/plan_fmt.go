package formatter

import (
	"fmt"
	"strings"

	"github.com/avandermeer/hearthplan/internal/domain"
)

// RenderWeeklyPlan renders the full five-day plan: one section per day,
// the skip/modify suggestions, and the minimum-win line.
func RenderWeeklyPlan(plan *domain.WeeklyPlan, dayTypes map[domain.Weekday]domain.DayType) string {
	var b strings.Builder

	for _, day := range plan.Days {
		heading := string(day.Day)
		if badge := DayTypeBadge(dayTypes[day.Day]); badge != "" {
			heading += "  " + badge
		}
		b.WriteString(Header(heading))
		b.WriteString("\n")

		if len(day.Items) == 0 {
			b.WriteString(Dim("  (nothing planned)") + "\n\n")
			continue
		}
		for _, item := range day.Items {
			b.WriteString(renderItem(item))
		}

		accepted := day.AcceptedMinutes()
		load := fmt.Sprintf("  %s of %s planned",
			FormatMinutes(accepted), FormatMinutes(day.TimeBudgetMinutes))
		if accepted > day.TimeBudgetMinutes {
			b.WriteString(StyleYellow.Render(load+" (over budget)") + "\n\n")
		} else {
			b.WriteString(Dim(load) + "\n\n")
		}
	}

	if len(plan.SkipSuggestions) > 0 {
		b.WriteString(Header("Suggestions"))
		b.WriteString("\n")
		for _, s := range plan.SkipSuggestions {
			b.WriteString(fmt.Sprintf("  %s  %s\n", ActionPill(s.Action), s.Reason))
			if s.Replacement != "" {
				b.WriteString(Dim("      instead: "+s.Replacement) + "\n")
			}
			if s.Evidence != "" {
				b.WriteString(Dim("      evidence: "+s.Evidence) + "\n")
			}
		}
		b.WriteString("\n")
	}

	if plan.MinimumWinText != "" {
		b.WriteString(StyleGreen.Render(plan.MinimumWinText) + "\n")
	}
	return b.String()
}

func renderItem(item domain.PlanItem) string {
	marker := StyleGreen.Render("●")
	title := StyleFg.Render(item.Title)
	if !item.Accepted {
		marker = StyleDim.Render("○")
		title = Dim(item.Title + " (parked)")
	}
	line := fmt.Sprintf("  %s %s  %s", marker, title, Dim(FormatMinutes(item.EstimatedMinutes)))
	if item.IsAppBlock {
		line += "  " + StyleBlue.Render("app")
	}
	return line + "\n"
}

// RenderAdjustments lists the week's accumulated adjustments in order.
func RenderAdjustments(descriptions []string) string {
	if len(descriptions) == 0 {
		return Dim("No adjustments this week.") + "\n"
	}
	var b strings.Builder
	for i, d := range descriptions {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%d.", i+1)), d))
	}
	return b.String()
}
