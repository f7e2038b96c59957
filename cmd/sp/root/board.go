package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/AnushkaSingh7722/study-planner/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive task board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planner, cleanup, err := openPlanner(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, planner, cmd.OutOrStdout())
		},
	}

	return cmd
}
