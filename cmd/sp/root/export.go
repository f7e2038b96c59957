package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnushkaSingh7722/study-planner/internal/engine"
	"github.com/AnushkaSingh7722/study-planner/internal/ui"
)

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planner, cleanup, err := openPlanner(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := planner.Export(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", ui.Good.Render(ui.IconExport+" Exported"), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", engine.DefaultExportFile, "Output file")

	return cmd
}
