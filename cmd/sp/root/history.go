package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnushkaSingh7722/study-planner/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent completions from the audit log",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			repo, cleanup, err := openHistory(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			completions, err := repo.ListRecent(ctx, limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBolt, "Completion History"))
			if len(completions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No completions recorded yet."))
				return nil
			}
			for _, c := range completions {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  #%d %s %s %s\n",
					ui.Muted.Render(c.CompletedAt.Format("2006-01-02 15:04")),
					c.TaskID, c.Title,
					ui.Gold.Render(fmt.Sprintf("+%d XP", c.XPAwarded)),
					ui.Muted.Render(fmt.Sprintf("(level %d)", c.LevelAfter)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "How many completions to show")

	return cmd
}
