package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okulov/nudge/internal/tui"
)

var dashCmd = &cobra.Command{
	Use:     "dash",
	Aliases: []string{"ui"},
	Short:   "Open the live dashboard",
	Long:    "Open a full-screen dashboard with the running clock and the goals scoreboard.",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		if err := tui.RunDashTUI(cfg.UserID, cfg.Deadline); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}
