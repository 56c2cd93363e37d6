package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avandermeer/hearthplan/internal/cli/formatter"
	"github.com/avandermeer/hearthplan/internal/domain"
)

func newPaceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pace",
		Short: "Workbook pace gauges: are we on track for the finish date?",
	}

	cmd.AddCommand(
		newPaceAddCmd(app),
		newPaceShowCmd(app),
		newPaceListCmd(app),
		newPaceProgressCmd(app),
		newPaceRemoveCmd(app),
	)

	return cmd
}

func newPaceAddCmd(app *App) *cobra.Command {
	var childID, name, unitLabel, target string
	var total, current, schoolDays int
	var planned float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Track a workbook toward a finish date",
		RunE: func(cmd *cobra.Command, args []string) error {
			targetDate, err := time.Parse("2006-01-02", target)
			if err != nil {
				return fmt.Errorf("invalid target date %q (want YYYY-MM-DD)", target)
			}

			w := &domain.WorkbookConfig{
				ChildID:           childID,
				Name:              name,
				UnitLabel:         unitLabel,
				TotalUnits:        total,
				CurrentUnit:       current,
				TargetFinishDate:  targetDate,
				SchoolDaysPerWeek: schoolDays,
			}
			if cmd.Flags().Changed("planned") {
				w.PlannedPerWeek = &planned
			}
			if err := app.Pace.AddWorkbook(context.Background(), w); err != nil {
				return err
			}
			fmt.Printf("Tracking %s (%s)\n", w.Name, w.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&childID, "child", "", "Child ID")
	cmd.Flags().StringVar(&name, "name", "", "Workbook name")
	cmd.Flags().StringVar(&unitLabel, "unit", "pages", "Unit label (pages, lessons, ...)")
	cmd.Flags().IntVar(&total, "total", 0, "Total units in the workbook")
	cmd.Flags().IntVar(&current, "current", 0, "Units already done")
	cmd.Flags().StringVar(&target, "target", "", "Target finish date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&schoolDays, "school-days", 5, "School days per week")
	cmd.Flags().Float64Var(&planned, "planned", 0, "Planned units per week (omit to assume the required rate)")
	_ = cmd.MarkFlagRequired("child")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newPaceShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show the pace gauge for one workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gauge, err := app.Pace.Gauge(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderBox("Pace", formatter.RenderPaceGauge(gauge.Workbook, gauge.Result)))
			return nil
		},
	}
}

func newPaceListCmd(app *App) *cobra.Command {
	var childID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show pace across all of a child's workbooks",
		RunE: func(cmd *cobra.Command, args []string) error {
			gauges, err := app.Pace.GaugeAll(context.Background(), childID)
			if err != nil {
				return err
			}
			if len(gauges) == 0 {
				fmt.Println("No workbooks tracked. Add one with: hearthplan pace add")
				return nil
			}

			lines := make([]formatter.PaceLine, 0, len(gauges))
			for _, g := range gauges {
				lines = append(lines, formatter.PaceLine{Workbook: g.Workbook, Result: g.Result})
			}
			fmt.Print(formatter.RenderBox("Workbooks", formatter.RenderPaceTable(lines)))
			return nil
		},
	}

	cmd.Flags().StringVar(&childID, "child", "", "Child ID")
	_ = cmd.MarkFlagRequired("child")

	return cmd
}

func newPaceProgressCmd(app *App) *cobra.Command {
	var current int

	cmd := &cobra.Command{
		Use:   "progress ID",
		Short: "Record how far into the workbook the child is",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := app.Pace.RecordProgress(ctx, args[0], current); err != nil {
				return err
			}
			gauge, err := app.Pace.Gauge(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderPaceGauge(gauge.Workbook, gauge.Result))
			return nil
		},
	}

	cmd.Flags().IntVar(&current, "current", 0, "Units done so far")
	_ = cmd.MarkFlagRequired("current")

	return cmd
}

func newPaceRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Stop tracking a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Pace.RemoveWorkbook(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed workbook %s\n", args[0])
			return nil
		},
	}
}
