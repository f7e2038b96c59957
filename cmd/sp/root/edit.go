package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnushkaSingh7722/study-planner/internal/engine"
	"github.com/AnushkaSingh7722/study-planner/internal/ui"
)

func newEditCmd() *cobra.Command {
	var title string
	var category string
	var due string
	var priority int
	var notes string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's fields",
		Long:  "Edit a task. Only the flags you pass are changed; everything else is left as-is.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := parseID(args[0]); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID(args[0])

			var in engine.EditInput
			changed := false
			if cmd.Flags().Changed("title") {
				in.Title = &title
				changed = true
			}
			if cmd.Flags().Changed("category") {
				in.Category = &category
				changed = true
			}
			if cmd.Flags().Changed("due") {
				d, err := parseDueDate(due)
				if err != nil {
					return err
				}
				in.DueDate = d
				changed = true
			}
			if cmd.Flags().Changed("priority") {
				if err := checkPriority(priority); err != nil {
					return err
				}
				in.Priority = &priority
				changed = true
			}
			if cmd.Flags().Changed("notes") {
				in.Notes = &notes
				changed = true
			}
			if !changed {
				return errors.New("nothing to change: pass at least one of --title, --category, --due, --priority, --notes")
			}

			ctx := context.Background()
			planner, cleanup, err := openPlanner(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := planner.Edit(id, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Task %d updated\n", ui.Good.Render(ui.IconPencil+" Edited"), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	cmd.Flags().StringVarP(&due, "due", "d", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&priority, "priority", "p", 0, "New priority (1-5)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "New notes")

	return cmd
}
