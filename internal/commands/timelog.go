package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/okulov/nudge/internal/dates"
	"github.com/okulov/nudge/internal/db"
	"github.com/okulov/nudge/internal/models"
)

var startCmd = &cobra.Command{
	Use:   "start [project]",
	Short: "Start logging time on a project",
	Long: `Start logging time on a project, stopping the open record first.
With no project the most recently logged project is resumed.

Examples:
  nudge start backend -m "reviewing PRs"
  nudge start                # resume last project
  nudge start backend --restart`,
	Args: cobra.MaximumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		projectName := ""
		if len(args) == 1 {
			projectName = args[0]
		}
		comment, _ := cmd.Flags().GetString("comment")
		restart, _ := cmd.Flags().GetBool("restart")

		result, err := db.StartProject(cfg.UserID, projectName, comment, restart, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if result.Stopped != nil {
			printStopped(result.Stopped)
		}
		fmt.Printf("⏱️  Started project #%d %s\n", result.Project.ID, result.Project.Name)
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the open time record",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		record, err := db.StopLastRecord(cfg.UserID, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if record == nil {
			fmt.Println("No open record to stop")
			return
		}
		printStopped(record)
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what is being tracked right now",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		record, err := db.GetLastRecord(cfg.UserID, 1)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if record == nil || !record.Open() {
			fmt.Println("No open record")
			return
		}
		project, err := db.GetProjectByID(record.ProjectID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		now := time.Now()
		fmt.Printf("⏱️  Working on %s since %s, elapsed %s\n",
			project.Name,
			time.Unix(record.StartedAt, 0).Format("15:04:05"),
			dates.FormatSeconds(record.ElapsedSeconds(now.Unix())))
	}),
}

var commentCmd = &cobra.Command{
	Use:   "comment [record] <text>",
	Short: "Comment a time record (the last one by default)",
	Args:  cobra.RangeArgs(1, 2),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		identifier, text := "last", args[0]
		if len(args) == 2 {
			identifier, text = args[0], args[1]
		}
		record, err := db.CommentRecord(cfg.UserID, identifier, text)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Updated comment for record #%d started at %s\n",
			record.ID, time.Unix(record.StartedAt, 0).Format("2006-01-02 15:04:05"))
	}),
}

var deleteCmd = &cobra.Command{
	Use:     "delete <record>",
	Aliases: []string{"del"},
	Short:   "Delete a time record",
	Long:    "Delete a time record. Records are addressed by id, by 'last', 'penult', 'penpenult'…, or by a negative index from the end.",
	Args:    cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		record, err := db.DeleteRecord(cfg.UserID, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Deleted record #%d\n", record.ID)
	}),
}

var setCmd = &cobra.Command{
	Use:   "set (start|stop|project) [record] <value>",
	Short: "Rewrite a field of a time record",
	Long: `Rewrite the start time, stop time or project of a record (the last
one unless a record identifier is given). Times are 'HH:MM[:SS]' within
the past 24 hours, or 'YYYY.MM.DD HH:MM[:SS]'.`,
	Args: cobra.RangeArgs(2, 3),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		field := args[0]
		identifier, value := "last", args[1]
		if len(args) == 3 {
			identifier, value = args[1], args[2]
		}

		now := time.Now()
		var (
			record *models.TimeLog
			err    error
		)
		switch field {
		case "start", "started":
			record, err = db.SetRecordStartTime(cfg.UserID, identifier, value, now)
		case "stop", "stopped":
			record, err = db.SetRecordStopTime(cfg.UserID, identifier, value, now)
		case "project":
			record, err = db.SetRecordProject(cfg.UserID, identifier, value)
		default:
			fmt.Printf("Error: unknown field %q to set\n", field)
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if record.Duration != nil {
			fmt.Printf("Updated record #%d, duration %s\n", record.ID, dates.FormatSeconds(*record.Duration))
		} else {
			fmt.Printf("Updated record #%d\n", record.ID)
		}
	}),
}

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"tl", "timelog"},
	Short:   "Show the time log grouped by commitment day",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		page, _ := cmd.Flags().GetInt("page")
		size, _ := cmd.Flags().GetInt("size")

		records, err := db.GetTimeLogPage(cfg.UserID, page, size)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(records) == 0 {
			fmt.Println("No time records yet. Use 'nudge start <project>' to begin.")
			return
		}

		now := time.Now()
		var currentDay dates.Date
		for _, record := range records {
			day := dates.CommitmentDay(cfg.Deadline, time.Unix(record.StartedAt, 0))
			if day != currentDay {
				if !currentDay.IsZero() {
					fmt.Println()
				}
				fmt.Println(day)
				currentDay = day
			}

			stoppedAt := "....."
			if record.StoppedAt != nil {
				stoppedAt = time.Unix(*record.StoppedAt, 0).Format("15:04")
			}
			comment := "..."
			if record.Comment != nil {
				comment = *record.Comment
			}
			fmt.Printf("#%d %s-%s [%s] %s (%s)\n",
				record.ID,
				time.Unix(record.StartedAt, 0).Format("15:04"),
				stoppedAt,
				record.Project.Name,
				comment,
				dates.FormatSeconds(record.ElapsedSeconds(now.Unix())))
		}
	}),
}

func printStopped(record *models.TimeLog) {
	duration := int64(0)
	if record.Duration != nil {
		duration = *record.Duration
	}
	fmt.Printf("⏹️  Stopped record #%d started at %s, duration %s\n",
		record.ID,
		time.Unix(record.StartedAt, 0).Format("2006-01-02 15:04:05"),
		dates.FormatSeconds(duration))
}

func init() {
	startCmd.Flags().StringP("comment", "m", "", "Comment for the new record")
	startCmd.Flags().Bool("restart", false, "Restart even if the project is already running")
	logCmd.Flags().Int("page", 1, "Page of the log to show")
	logCmd.Flags().Int("size", 15, "Records per page")
}
