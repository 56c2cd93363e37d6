package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/avandermeer/hearthplan/internal/cli/formatter"
	"github.com/avandermeer/hearthplan/internal/domain"
	"github.com/avandermeer/hearthplan/internal/ladder"
	"github.com/avandermeer/hearthplan/internal/repository"
	"github.com/avandermeer/hearthplan/internal/taxonomy"
)

func newLadderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ladder",
		Short: "Mastery ladders: log sessions, watch rungs advance",
	}

	cmd.AddCommand(
		newLadderLogCmd(app),
		newLadderShowCmd(app),
		newLadderListCmd(),
	)

	return cmd
}

func newLadderLogCmd(app *App) *cobra.Command {
	var childID, ladderKey, date, support, result, note string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a practice session",
		RunE: func(cmd *cobra.Command, args []string) error {
			// No --result means interactive: walk the session through a form.
			if result == "" {
				if !app.interactive() {
					return fmt.Errorf("--result is required outside a terminal")
				}
				if err := runSessionForm(&ladderKey, &support, &result, &note); err != nil {
					return err
				}
			}

			input := ladder.SessionInput{
				DateKey: date,
				Support: domain.SupportLevel(support),
				Result:  domain.SessionResult(result),
				Note:    note,
			}
			res, err := app.Ladders.LogSession(context.Background(), childID, ladderKey, input)
			if err != nil {
				return err
			}

			if res.Promoted {
				def, defErr := app.Ladders.Definition(ladderKey)
				if defErr == nil {
					idx := def.RungIndex(res.NewRungID)
					fmt.Println(formatter.StyleGreen.Render(
						fmt.Sprintf("★ Promoted to %q!", def.Rungs[idx].Name)))
				}
			} else {
				fmt.Printf("Logged. Streak: %d/3\n", res.Progress.StreakCount)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&childID, "child", "", "Child ID")
	cmd.Flags().StringVar(&ladderKey, "ladder", "", "Ladder key, e.g. handwriting.letters")
	cmd.Flags().StringVar(&date, "date", "", "Session date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&support, "support", "none", "Support level used")
	cmd.Flags().StringVar(&result, "result", "", "pass, partial, or miss (omit for the interactive form)")
	cmd.Flags().StringVar(&note, "note", "", "Session note")
	_ = cmd.MarkFlagRequired("child")

	return cmd
}

func runSessionForm(ladderKey, support, result, note *string) error {
	fields := []huh.Field{}

	if *ladderKey == "" {
		keys := ladderKeys()
		options := make([]huh.Option[string], 0, len(keys))
		for _, key := range keys {
			options = append(options, huh.NewOption(taxonomy.DefaultLadders[key].Title, key))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Which ladder?").
			Options(options...).
			Value(ladderKey))
	}

	fields = append(fields,
		huh.NewSelect[string]().
			Title("How much support?").
			Options(
				huh.NewOption("None", string(domain.SupportNone)),
				huh.NewOption("Environment (setup, materials)", string(domain.SupportEnvironment)),
				huh.NewOption("Prompts (verbal cues)", string(domain.SupportPrompts)),
				huh.NewOption("Tools (charts, manipulatives)", string(domain.SupportTools)),
				huh.NewOption("Hand over hand", string(domain.SupportHandOverHand)),
			).
			Value(support),
		huh.NewSelect[string]().
			Title("How did it go?").
			Options(
				huh.NewOption("Pass", string(domain.ResultPass)),
				huh.NewOption("Partial", string(domain.ResultPartial)),
				huh.NewOption("Miss", string(domain.ResultMiss)),
			).
			Value(result),
		huh.NewInput().
			Title("Note (optional)").
			Placeholder("kept the pencil grip the whole time").
			Value(note),
	)

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(hearthplanHuhTheme()).
		WithShowHelp(false).
		Run()
}

func newLadderShowCmd(app *App) *cobra.Command {
	var childID, ladderKey string
	var history int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a ladder card with the child's current rung",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			def, err := app.Ladders.Definition(ladderKey)
			if err != nil {
				return err
			}

			progress, err := app.Ladders.Progress(ctx, childID, ladderKey)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return err
			}

			fmt.Print(formatter.RenderBox("", formatter.RenderLadderCard(def, progress)))
			if progress != nil && len(progress.History) > 0 {
				fmt.Println()
				fmt.Print(formatter.RenderSessionHistory(progress.History, history))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&childID, "child", "", "Child ID")
	cmd.Flags().StringVar(&ladderKey, "ladder", "", "Ladder key")
	cmd.Flags().IntVar(&history, "history", 10, "Recent sessions to show")
	_ = cmd.MarkFlagRequired("child")
	_ = cmd.MarkFlagRequired("ladder")

	return cmd
}

func newLadderListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in ladder cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"KEY", "TITLE", "RUNGS"}
			var rows [][]string
			for _, key := range ladderKeys() {
				def := taxonomy.DefaultLadders[key]
				rows = append(rows, []string{
					formatter.Dim(def.Key),
					formatter.Bold(def.Title),
					fmt.Sprintf("%d", len(def.Rungs)),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func ladderKeys() []string {
	keys := make([]string, 0, len(taxonomy.DefaultLadders))
	for key := range taxonomy.DefaultLadders {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
