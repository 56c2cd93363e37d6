package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avandermeer/hearthplan/internal/cli/formatter"
	"github.com/avandermeer/hearthplan/internal/domain"
)

func newAssignmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assignment",
		Short: "Manage the queue of workbook assignments",
	}

	cmd.AddCommand(
		newAssignmentAddCmd(app),
		newAssignmentListCmd(app),
		newAssignmentRemoveCmd(app),
		newAssignmentReviewCmd(app),
	)

	return cmd
}

func newAssignmentAddCmd(app *App) *cobra.Command {
	var childID, subject, workbook, lesson string
	var minutes int
	var cues []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Queue a workbook assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := &domain.AssignmentCandidate{
				Subject:          domain.SubjectBucket(subject),
				WorkbookName:     workbook,
				LessonName:       lesson,
				EstimatedMinutes: minutes,
				DifficultyCues:   cues,
			}
			if err := app.Assignments.Add(context.Background(), childID, a); err != nil {
				return err
			}
			fmt.Printf("Queued %s (%s, %dm)\n", lesson, workbook, minutes)
			return nil
		},
	}

	cmd.Flags().StringVar(&childID, "child", "", "Child ID")
	cmd.Flags().StringVar(&subject, "subject", "other", "Subject bucket")
	cmd.Flags().StringVar(&workbook, "workbook", "", "Workbook name")
	cmd.Flags().StringVar(&lesson, "lesson", "", "Lesson name")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Estimated minutes")
	cmd.Flags().StringSliceVar(&cues, "cue", nil, "Difficulty cue (repeatable)")
	_ = cmd.MarkFlagRequired("child")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

func newAssignmentListCmd(app *App) *cobra.Command {
	var childID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List queued assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, err := app.Assignments.List(context.Background(), childID)
			if err != nil {
				return err
			}
			if len(assignments) == 0 {
				fmt.Println("No assignments queued.")
				return nil
			}

			headers := []string{"ID", "SUBJECT", "WORKBOOK", "LESSON", "EST", "CUES"}
			rows := make([][]string, 0, len(assignments))
			for _, a := range assignments {
				rows = append(rows, []string{
					formatter.TruncID(a.ID),
					formatter.SubjectBadge(a.Subject),
					a.WorkbookName,
					formatter.Bold(a.LessonName),
					formatter.FormatMinutes(a.EstimatedMinutes),
					formatter.Dim(strings.Join(a.DifficultyCues, ", ")),
				})
			}
			fmt.Print(formatter.RenderBox("Assignments", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&childID, "child", "", "Child ID")
	_ = cmd.MarkFlagRequired("child")

	return cmd
}

func newAssignmentRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a queued assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Assignments.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed assignment %s\n", args[0])
			return nil
		},
	}
}

func newAssignmentReviewCmd(app *App) *cobra.Command {
	var childID string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Preview what the advisor would skip or shrink",
		RunE: func(cmd *cobra.Command, args []string) error {
			advice, err := app.Assignments.Review(context.Background(), childID)
			if err != nil {
				return err
			}
			if len(advice) == 0 {
				fmt.Println("No assignments queued.")
				return nil
			}

			var b strings.Builder
			for _, item := range advice {
				a := item.Assignment
				b.WriteString(fmt.Sprintf("%s  %s: %s (%s)\n",
					formatter.ActionPill(a.Action),
					a.WorkbookName, formatter.Bold(a.LessonName),
					formatter.FormatMinutes(a.EstimatedMinutes)))
				if item.Suggestion != nil {
					b.WriteString(formatter.Dim("    why: "+item.Suggestion.Reason) + "\n")
					if item.Suggestion.Replacement != "" {
						b.WriteString(formatter.Dim("    instead: "+item.Suggestion.Replacement) + "\n")
					}
				}
			}
			fmt.Print(formatter.RenderBox("Review", b.String()))
			return nil
		},
	}

	cmd.Flags().StringVar(&childID, "child", "", "Child ID")
	_ = cmd.MarkFlagRequired("child")

	return cmd
}
