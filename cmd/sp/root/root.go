package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnushkaSingh7722/study-planner/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "sp",
	Short:         "Study Planner — level up as you study",
	Long:          "Study Planner is a personal task tracker that awards XP, levels and achievements for completed tasks.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newDoneCmd(),
		newEditCmd(),
		newRmCmd(),
		newSearchCmd(),
		newStatsCmd(),
		newHistoryCmd(),
		newExportCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
