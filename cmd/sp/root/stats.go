package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnushkaSingh7722/study-planner/internal/engine"
	"github.com/AnushkaSingh7722/study-planner/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show level, XP and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planner, cleanup, err := openPlanner(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s := planner.Stats()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Your Stats"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", s.Level))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("%d / %d", s.XP, s.Level*engine.XPPerLevel)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Pending", s.Pending))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Completed", s.Completed))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total", s.Total))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconTrophy+" Achievements"))
			if len(s.Achievements) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No achievements yet. Complete tasks to unlock!"))
			} else {
				for _, a := range s.Achievements {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", a)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			progress := engine.XPIntoLevel(s.XP)
			bar := ui.ProgressBar(progress, engine.XPPerLevel, 30)
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("Progress to next level"))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d/%d XP\n", bar, progress, engine.XPPerLevel)
			return nil
		},
	}

	return cmd
}
