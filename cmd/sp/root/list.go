package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnushkaSingh7722/study-planner/internal/engine"
	"github.com/AnushkaSingh7722/study-planner/internal/ui"
)

func newListCmd() *cobra.Command {
	var showCompleted bool
	var sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending (or completed) tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planner, cleanup, err := openPlanner(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			heading := "Pending Tasks"
			if showCompleted {
				heading = "Completed Tasks"
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBook, heading))

			entries := planner.List(showCompleted, engine.ParseSortBy(sortBy))
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No tasks to show."))
				return nil
			}
			for _, e := range entries {
				printEntry(cmd, e, e.Task.CompletedAt != nil)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showCompleted, "done", false, "Show completed tasks instead of pending ones")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "priority", "Sort order (priority|due|id)")

	return cmd
}

func printEntry(cmd *cobra.Command, e engine.Entry, completed bool) {
	due := ui.Muted.Render("no due")
	if e.Task.DueDate != nil {
		due = "due " + e.Task.DueDate.Format(dateLayout)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s %s %s — %s — %s\n",
		e.ID, e.Task.Title, ui.Muted.Render("("+e.Task.Category+")"),
		ui.PriorityText(e.Task.Priority), due, ui.StatusText(completed))
	if e.Task.Notes != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", ui.Muted.Render("Notes: "+e.Task.Notes))
	}
}
