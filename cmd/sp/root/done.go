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

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
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
			ctx := context.Background()
			planner, cleanup, err := openPlanner(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := parseID(args[0])
			task, _ := planner.Get(id)

			res, err := planner.Complete(ctx, id)
			if err != nil {
				return err
			}

			name := fmt.Sprintf("#%d", res.TaskID)
			if task != nil {
				name = fmt.Sprintf("#%d %s", res.TaskID, task.Title)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Completed"), name,
				ui.Gold.Render(fmt.Sprintf("+%d XP", res.XPGained)))

			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s Level %d → %d\n",
					ui.IconSparkle, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}

			xp := res.XPBefore + res.XPGained
			bar := ui.ProgressBar(engine.XPIntoLevel(xp), engine.XPPerLevel, 30)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d/%d XP\n",
				ui.Key.Render("Progress:"), bar, engine.XPIntoLevel(xp), engine.XPPerLevel)

			if len(res.Unlocked) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
					ui.Gold.Render(ui.IconTrophy+" Unlocked:"), strings.Join(res.Unlocked, ", "))
			}
			return nil
		},
	}

	return cmd
}
