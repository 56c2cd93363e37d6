package formatter

import (
	"fmt"
	"strings"

	"github.com/avandermeer/hearthplan/internal/domain"
)

// RenderPaceGauge renders one workbook's pace picture.
func RenderPaceGauge(w *domain.WorkbookConfig, r domain.PaceGaugeResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(w.Name), PaceIndicator(r.Status)))
	b.WriteString(fmt.Sprintf("  %d of %d %s done, %d to go\n",
		w.CurrentUnit, w.TotalUnits, w.UnitLabel, r.UnitsRemaining))
	b.WriteString(fmt.Sprintf("  target %s (%.1f weeks left)\n",
		w.TargetFinishDate.Format("Jan 2, 2006"), r.WeeksRemaining))
	b.WriteString(fmt.Sprintf("  need %.1f/week, planning %.1f/week\n",
		r.RequiredPerWeek, r.PlannedPerWeek))
	if r.ProjectedFinish != nil {
		line := fmt.Sprintf("  projected finish %s", r.ProjectedFinish.Format("Jan 2, 2006"))
		if r.BufferDays > 0 {
			line += fmt.Sprintf(" (%d days of buffer)", r.BufferDays)
		}
		b.WriteString(Dim(line) + "\n")
	}
	b.WriteString("  " + PaceColor(r.Status).Render(r.Suggestion) + "\n")
	return b.String()
}

// PaceLine pairs a workbook with its gauge result for table rendering.
type PaceLine struct {
	Workbook *domain.WorkbookConfig
	Result   domain.PaceGaugeResult
}

// RenderPaceTable renders a compact table across several workbooks.
func RenderPaceTable(gauges []PaceLine) string {
	headers := []string{"WORKBOOK", "LEFT", "NEED/WK", "PLAN/WK", "STATUS"}
	rows := make([][]string, 0, len(gauges))
	for _, g := range gauges {
		rows = append(rows, []string{
			StyleFg.Render(g.Workbook.Name),
			fmt.Sprintf("%d %s", g.Result.UnitsRemaining, g.Workbook.UnitLabel),
			fmt.Sprintf("%.1f", g.Result.RequiredPerWeek),
			fmt.Sprintf("%.1f", g.Result.PlannedPerWeek),
			PaceIndicator(g.Result.Status),
		})
	}
	return RenderTable(headers, rows)
}
