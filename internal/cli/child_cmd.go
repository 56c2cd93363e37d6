package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avandermeer/hearthplan/internal/cli/formatter"
)

func newChildCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "child",
		Short: "Manage children",
	}

	cmd.AddCommand(
		newChildAddCmd(app),
		newChildListCmd(app),
	)

	return cmd
}

func newChildAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Register a child",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Family.AddChild(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (%s)\n", c.Name, c.ID)
			return nil
		},
	}
}

func newChildListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List children",
		RunE: func(cmd *cobra.Command, args []string) error {
			children, err := app.Family.ListChildren(context.Background())
			if err != nil {
				return err
			}
			if len(children) == 0 {
				fmt.Println("No children yet. Add one with: hearthplan child add NAME")
				return nil
			}

			headers := []string{"ID", "NAME", "SINCE"}
			rows := make([][]string, 0, len(children))
			for _, c := range children {
				rows = append(rows, []string{
					formatter.TruncID(c.ID),
					formatter.Bold(c.Name),
					formatter.Dim(formatter.HumanDate(c.CreatedAt)),
				})
			}
			fmt.Print(formatter.RenderBox("Children", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}
