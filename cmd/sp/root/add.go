package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AnushkaSingh7722/study-planner/internal/engine"
	"github.com/AnushkaSingh7722/study-planner/internal/ui"
)

func newAddCmd() *cobra.Command {
	var category string
	var due string
	var priority int
	var notes string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := parseDueDate(due)
			if err != nil {
				return err
			}
			if err := checkPriority(priority); err != nil {
				return err
			}

			ctx := context.Background()
			planner, cleanup, err := openPlanner(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := planner.Add(engine.AddInput{
				Title:    strings.TrimSpace(args[0]),
				Category: category,
				DueDate:  dueDate,
				Priority: priority,
				Notes:    notes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Task added with ID %d\n", ui.Good.Render(ui.IconPlus+" Added"), id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category (e.g. Study, Revision, Project)")
	cmd.Flags().StringVarP(&due, "due", "d", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&priority, "priority", "p", 3, "Priority (1=high .. 5=low)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Free-form notes")

	return cmd
}
