package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AnushkaSingh7722/study-planner/internal/ui"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search tasks by title, notes or category",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("keyword is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planner, cleanup, err := openPlanner(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			results := planner.Search(strings.TrimSpace(args[0]))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSearch, "Search Results"))
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No matching tasks."))
				return nil
			}
			for _, e := range results {
				printEntry(cmd, e, planner.IsCompleted(e.ID))
			}
			return nil
		},
	}

	return cmd
}
