package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/avandermeer/hearthplan/internal/cli/formatter"
	"github.com/avandermeer/hearthplan/internal/domain"
	"github.com/avandermeer/hearthplan/internal/intent"
	"github.com/avandermeer/hearthplan/internal/service"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and reshape weekly plans",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanShowCmd(app),
		newPlanAdjustCmd(app),
		newPlanDayTypeCmd(app),
		newPlanResetCmd(app),
	)

	return cmd
}

// currentWeekKey returns the ISO week key (e.g. 2026-W10) for today.
func currentWeekKey() string {
	year, week := time.Now().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func weekFlagValue(week string) string {
	if week == "" {
		return currentWeekKey()
	}
	return week
}

// canonicalWeekday maps case-insensitive day input onto the domain spelling.
func canonicalWeekday(raw string) domain.Weekday {
	lower := strings.ToLower(raw)
	for _, day := range domain.Weekdays {
		if strings.ToLower(string(day)) == lower {
			return day
		}
	}
	return domain.Weekday(raw)
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var childID, week string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the week's plan from the current snapshot and queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			weekKey := weekFlagValue(week)
			plan, err := app.Plans.Generate(context.Background(), childID, weekKey)
			if err != nil {
				return err
			}
			fmt.Printf("Generated plan for %s\n\n", weekKey)
			fmt.Print(formatter.RenderWeeklyPlan(plan, nil))
			return nil
		},
	}

	cmd.Flags().StringVar(&childID, "child", "", "Child ID")
	cmd.Flags().StringVar(&week, "week", "", "Week key (defaults to the current ISO week)")
	_ = cmd.MarkFlagRequired("child")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	var childID, week string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored plan for a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.Get(context.Background(), childID, weekFlagValue(week))
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderWeeklyPlan(plan, nil))
			return nil
		},
	}

	cmd.Flags().StringVar(&childID, "child", "", "Child ID")
	cmd.Flags().StringVar(&week, "week", "", "Week key (defaults to the current ISO week)")
	_ = cmd.MarkFlagRequired("child")

	return cmd
}

func newPlanAdjustCmd(app *App) *cobra.Command {
	var childID, week string

	cmd := &cobra.Command{
		Use:   "adjust TEXT...",
		Short: "Reshape the week with a plain-language request",
		Long: `Reshape the week with a plain-language request, for example:

  hearthplan plan adjust --child ID "move math to Tue/Thu"
  hearthplan plan adjust --child ID "make Wednesday lighter"
  hearthplan plan adjust --child ID "cap math at 20 minutes"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			adj, plan, err := app.Adjust.Apply(context.Background(), childID, weekFlagValue(week), text)
			if errors.Is(err, service.ErrUnparseable) {
				fmt.Println("Sorry, I couldn't work out what to change. Try phrases like:")
				fmt.Println("  \"move math to Tue/Thu\"  \"make Wednesday lighter\"")
				fmt.Println("  \"reduce handwriting\"    \"cap math at 20 minutes\"")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Println(formatter.Bold(intent.Describe(adj)))
			fmt.Println()
			fmt.Print(formatter.RenderWeeklyPlan(plan, nil))
			return nil
		},
	}

	cmd.Flags().StringVar(&childID, "child", "", "Child ID")
	cmd.Flags().StringVar(&week, "week", "", "Week key (defaults to the current ISO week)")
	_ = cmd.MarkFlagRequired("child")

	return cmd
}

func newPlanDayTypeCmd(app *App) *cobra.Command {
	var childID, week string

	cmd := &cobra.Command{
		Use:   "daytype DAY TYPE",
		Short: "Flag a weekday as normal, light, or appointment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := domain.DayTypeConfig{
				Day:     canonicalWeekday(args[0]),
				DayType: domain.DayType(strings.ToLower(args[1])),
			}

			plan, err := app.Plans.SetDayType(context.Background(), childID, weekFlagValue(week), cfg)
			if err != nil {
				return err
			}
			fmt.Printf("%s is now a %s day\n\n", cfg.Day, cfg.DayType)
			fmt.Print(formatter.RenderWeeklyPlan(plan, map[domain.Weekday]domain.DayType{cfg.Day: cfg.DayType}))
			return nil
		},
	}

	cmd.Flags().StringVar(&childID, "child", "", "Child ID")
	cmd.Flags().StringVar(&week, "week", "", "Week key (defaults to the current ISO week)")
	_ = cmd.MarkFlagRequired("child")

	return cmd
}

func newPlanResetCmd(app *App) *cobra.Command {
	var childID, week string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop the week's adjustments and regenerate",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Adjust.Reset(context.Background(), childID, weekFlagValue(week))
			if err != nil {
				return err
			}
			fmt.Println("Adjustments cleared.")
			fmt.Print(formatter.RenderWeeklyPlan(plan, nil))
			return nil
		},
	}

	cmd.Flags().StringVar(&childID, "child", "", "Child ID")
	cmd.Flags().StringVar(&week, "week", "", "Week key (defaults to the current ISO week)")
	_ = cmd.MarkFlagRequired("child")

	return cmd
}
