package formatter

import (
	"fmt"
	"strings"

	"github.com/avandermeer/hearthplan/internal/domain"
)

// RenderLadderCard renders a ladder definition with the child's current
// rung marked. Pass nil progress for a card nobody has started.
func RenderLadderCard(def *domain.LadderCardDefinition, progress *domain.LadderProgress) string {
	var b strings.Builder
	b.WriteString(Header(def.Title))
	b.WriteString("\n")

	currentIdx := -1
	if progress != nil {
		currentIdx = def.RungIndex(progress.CurrentRungID)
	}

	for i, rung := range def.Rungs {
		marker := StyleDim.Render("○")
		name := Dim(rung.Name)
		switch {
		case i < currentIdx:
			marker = StyleGreen.Render("✔")
			name = StyleFg.Render(rung.Name)
		case i == currentIdx:
			marker = StyleHeader.Render("▶")
			name = Bold(rung.Name)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", marker, name))
		b.WriteString(Dim("      evidence: "+rung.EvidenceText) + "\n")
		if rung.SupportsText != "" {
			b.WriteString(Dim("      supports: "+rung.SupportsText) + "\n")
		}
	}

	if progress != nil && currentIdx >= 0 {
		b.WriteString(fmt.Sprintf("\n  streak %s toward the next rung\n",
			StyleGreen.Render(fmt.Sprintf("%d/3", progress.StreakCount))))
	}
	return b.String()
}

// RenderSessionHistory renders the recent session log for a ladder.
func RenderSessionHistory(entries []domain.SessionEntry, limit int) string {
	if len(entries) == 0 {
		return Dim("No sessions logged yet.") + "\n"
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	headers := []string{"DATE", "RUNG", "SUPPORT", "RESULT", "NOTE"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			StyleFg.Render(e.DateKey),
			Dim(e.RungID),
			Dim(string(e.Support)),
			ResultPill(e.Result),
			Dim(e.Note),
		})
	}
	return RenderTable(headers, rows)
}
