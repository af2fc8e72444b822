package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okulov/nudge/internal/config"
	"github.com/okulov/nudge/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "nudge",
	Short: "A CLI time tracker with goal commitments",
	Long: `nudge is a command-line time tracker that keeps score against your own
commitments. Log work on projects, commit to hours per weekday on goals,
and nudge will tell you what is still due before the daily deadline.`,
}

// initApp loads configuration and opens the database, panicking on failure
func initApp() {
	c, err := config.Load()
	if err != nil {
		panic(err)
	}
	cfg = c
	if err := db.Initialize(cfg.DatabasePath); err != nil {
		panic(err)
	}
}

// withApp wraps a command function to load config and the database first
func withApp(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initApp()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nudge %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(newprojectCmd)
	rootCmd.AddCommand(newsubCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(newgoalCmd)
	rootCmd.AddCommand(settypeCmd)
	rootCmd.AddCommand(archivegoalCmd)
	rootCmd.AddCommand(hoursCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(versionCmd)
}
