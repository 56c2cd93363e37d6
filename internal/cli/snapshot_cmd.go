package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avandermeer/hearthplan/internal/cli/formatter"
	"github.com/avandermeer/hearthplan/internal/domain"
	"github.com/avandermeer/hearthplan/internal/taxonomy"
)

func newSnapshotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage skill snapshots",
	}

	cmd.AddCommand(
		newSnapshotSkillCmd(app),
		newSnapshotStopRuleCmd(app),
		newSnapshotShowCmd(app),
		newSnapshotTagsCmd(),
	)

	return cmd
}

func newSnapshotSkillCmd(app *App) *cobra.Command {
	var childID, tag, label, level, gate string

	cmd := &cobra.Command{
		Use:   "skill",
		Short: "Add or update a priority skill",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			skillLevel := domain.SkillLevel(level)
			switch skillLevel {
			case domain.LevelEmerging, domain.LevelDeveloping, domain.LevelSupported,
				domain.LevelPractice, domain.LevelSecure:
			default:
				return fmt.Errorf("unknown level %q (emerging, developing, supported, practice, secure)", level)
			}

			if label == "" {
				if def := taxonomy.Lookup(tag); def != nil {
					label = def.Label
				} else {
					label = tag
				}
			}

			snapshot := loadOrEmptySnapshot(ctx, app, childID)
			skill := domain.PrioritySkill{
				Tag:         tag,
				Label:       label,
				Level:       skillLevel,
				MasteryGate: domain.MasteryGate(gate),
			}
			replaced := false
			for i, existing := range snapshot.PrioritySkills {
				if existing.Tag == tag {
					snapshot.PrioritySkills[i] = skill
					replaced = true
					break
				}
			}
			if !replaced {
				snapshot.PrioritySkills = append(snapshot.PrioritySkills, skill)
			}

			if err := app.Family.SaveSnapshot(ctx, snapshot); err != nil {
				return err
			}
			fmt.Printf("Snapshot updated: %s is %s\n", label, level)
			return nil
		},
	}

	cmd.Flags().StringVar(&childID, "child", "", "Child ID")
	cmd.Flags().StringVar(&tag, "tag", "", "Skill tag, e.g. math.subtraction.regroup")
	cmd.Flags().StringVar(&label, "label", "", "Display label (defaults from the catalog)")
	cmd.Flags().StringVar(&level, "level", "", "Skill level")
	cmd.Flags().StringVar(&gate, "gate", "", "Explicit mastery gate override")
	_ = cmd.MarkFlagRequired("child")
	_ = cmd.MarkFlagRequired("tag")
	_ = cmd.MarkFlagRequired("level")

	return cmd
}

func newSnapshotStopRuleCmd(app *App) *cobra.Command {
	var childID, label, trigger, action string

	cmd := &cobra.Command{
		Use:   "stop-rule",
		Short: "Add a stop rule (trigger phrase plus what to do instead)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			snapshot := loadOrEmptySnapshot(ctx, app, childID)
			snapshot.StopRules = append(snapshot.StopRules, domain.StopRule{
				Label:   label,
				Trigger: trigger,
				Action:  action,
			})

			if err := app.Family.SaveSnapshot(ctx, snapshot); err != nil {
				return err
			}
			fmt.Printf("Stop rule added: on %q, %s\n", trigger, action)
			return nil
		},
	}

	cmd.Flags().StringVar(&childID, "child", "", "Child ID")
	cmd.Flags().StringVar(&label, "label", "", "Short rule name")
	cmd.Flags().StringVar(&trigger, "trigger", "", "Phrase matched against difficulty cues")
	cmd.Flags().StringVar(&action, "action", "", "What to switch to instead")
	_ = cmd.MarkFlagRequired("child")
	_ = cmd.MarkFlagRequired("trigger")
	_ = cmd.MarkFlagRequired("action")

	return cmd
}

func newSnapshotShowCmd(app *App) *cobra.Command {
	var childID string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a child's skill snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := app.Family.GetSnapshot(context.Background(), childID)
			if err != nil {
				return err
			}

			var b strings.Builder
			b.WriteString(formatter.Header("Priority skills"))
			b.WriteString("\n")
			if len(snapshot.PrioritySkills) == 0 {
				b.WriteString(formatter.Dim("  none yet") + "\n")
			}
			for _, s := range snapshot.PrioritySkills {
				b.WriteString(fmt.Sprintf("  %s  %s %s\n",
					formatter.Bold(s.Label),
					formatter.Dim(string(s.Level)),
					formatter.Dim("("+string(s.EffectiveGate())+")")))
			}
			if len(snapshot.StopRules) > 0 {
				b.WriteString("\n" + formatter.Header("Stop rules") + "\n")
				for _, r := range snapshot.StopRules {
					b.WriteString(fmt.Sprintf("  on %q: %s\n", r.Trigger, r.Action))
				}
			}
			fmt.Print(formatter.RenderBox("Snapshot", b.String()))
			return nil
		},
	}

	cmd.Flags().StringVar(&childID, "child", "", "Child ID")
	_ = cmd.MarkFlagRequired("child")

	return cmd
}

func newSnapshotTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the built-in skill tag catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"TAG", "LABEL", "EVIDENCE"}
			rows := make([][]string, 0, len(taxonomy.DefaultCatalog))
			for _, def := range taxonomy.DefaultCatalog {
				rows = append(rows, []string{
					formatter.Dim(def.Tag),
					formatter.Bold(def.Label),
					def.EvidenceDescription,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

// loadOrEmptySnapshot returns the stored snapshot or a fresh one, so the
// first skill/stop-rule command works without an explicit init step.
func loadOrEmptySnapshot(ctx context.Context, app *App, childID string) *domain.SkillSnapshot {
	snapshot, err := app.Family.GetSnapshot(ctx, childID)
	if err != nil {
		return &domain.SkillSnapshot{ChildID: childID}
	}
	return snapshot
}
