package cli

import (
	"github.com/spf13/cobra"

	"github.com/avandermeer/hearthplan/internal/service"
)

// App holds references to all services used by CLI commands.
type App struct {
	Family      *service.FamilyService
	Assignments *service.AssignmentService
	Plans       *service.PlanService
	Adjust      *service.AdjustService
	Ladders     *service.LadderService
	Pace        *service.PaceService

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "hearthplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "hearthplan",
		Short: "Weekly learning plans and mastery tracking for the kitchen table",
	}

	root.AddCommand(
		newChildCmd(app),
		newSnapshotCmd(app),
		newAssignmentCmd(app),
		newPlanCmd(app),
		newLadderCmd(app),
		newPaceCmd(app),
	)

	return root
}
