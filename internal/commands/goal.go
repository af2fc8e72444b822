package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/okulov/nudge/internal/dates"
	"github.com/okulov/nudge/internal/db"
	"github.com/okulov/nudge/internal/models"
)

var newgoalCmd = &cobra.Command{
	Use:     "newgoal <project> <name> [type]",
	Aliases: []string{"ng"},
	Short:   "Create a goal on a project",
	Long: `Create a goal on a project. A goal on a root project covers all of its
subprojects. Type is hours_light (default, only today's hours count) or
hours_mandatory (due hours pile up every day since creation).`,
	Args: cobra.RangeArgs(2, 3),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		goalType := models.GoalHoursLight
		if len(args) == 3 {
			var err error
			goalType, err = models.ParseGoalType(args[2])
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		}
		goal, err := db.CreateGoal(cfg.UserID, args[0], args[1], goalType)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Added goal %q #%d\n", goal.Name, goal.ID)
	}),
}

var settypeCmd = &cobra.Command{
	Use:   "settype <goal> <type>",
	Short: "Change a goal's accumulation type",
	Args:  cobra.ExactArgs(2),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		goalType, err := models.ParseGoalType(args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		goal, err := db.SetGoalType(cfg.UserID, args[0], goalType)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Goal %q is now %s\n", goal.Name, goal.Type)
	}),
}

var archivegoalCmd = &cobra.Command{
	Use:   "archivegoal <goal>",
	Short: "Archive a goal",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		goal, err := db.ArchiveGoal(cfg.UserID, args[0], time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗃️  Archived goal %q\n", goal.Name)
	}),
}

var hoursCmd = &cobra.Command{
	Use:     "hours <goal> <hours> [weekdays]",
	Aliases: []string{"hpd", "hoursperday"},
	Short:   "Commit to hours per day on a goal",
	Long: `Commit to work a number of hours per day on a goal, effective from the
current commitment day. Weekdays are a filter like "1-5" or "1,3,6-7"
(1 Monday .. 7 Sunday); the whole week when omitted. Earlier commitments
on the same weekdays are superseded.

Examples:
  nudge hours write 1.5 1-5
  nudge hours books 2`,
	Args: cobra.RangeArgs(2, 3),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		hours, err := decimal.NewFromString(args[1])
		if err != nil || hours.IsNegative() {
			fmt.Printf("Error: invalid hours %q\n", args[1])
			return
		}
		weekdayFilter := ""
		if len(args) == 3 {
			weekdayFilter = args[2]
		}

		effectiveFrom := dates.CommitmentDay(cfg.Deadline, time.Now())
		weekdays, err := db.SetHoursPerDay(cfg.UserID, args[0], hours, weekdayFilter, effectiveFrom)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Committed to work on %q for %s hours on days %v, from %s\n",
			args[0], hours, weekdays, effectiveFrom)
	}),
}

var goalsCmd = &cobra.Command{
	Use:     "goals",
	Aliases: []string{"gi", "goalsinfo"},
	Short:   "Report every goal with hours accumulated",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		statuses, err := db.GetGoalsInfo(cfg.UserID, time.Now(), cfg.Deadline)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(statuses) == 0 {
			fmt.Println("No goals with committed hours. Use 'nudge hours <goal> <hours>' to commit.")
			return
		}
		for i, status := range statuses {
			if i > 0 {
				fmt.Println()
			}
			printGoalStatus(&status)
		}
	}),
}

var goalCmd = &cobra.Command{
	Use:   "goal <name>",
	Short: "Report one goal in detail",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		status, err := db.GetGoalStatus(cfg.UserID, args[0], time.Now(), cfg.Deadline)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		printGoalStatus(status)
		fmt.Printf("(total due %s over the period %s to %s)\n",
			dates.FormatSeconds(status.TotalSecondsDue),
			status.GoalStartedAt.Format("2006-01-02 15:04:05"),
			status.PeriodEnd.Format("2006-01-02 15:04:05"))
	}),
}

func printGoalStatus(status *db.GoalStatus) {
	fmt.Printf("# %s\n", status.Goal.Name)
	if status.Status == db.StatusDue {
		fmt.Printf("DUE %s more before %s\n",
			dates.FormatSeconds(status.SecondsDelta),
			status.PeriodEnd.Format("2006-01-02 15:04:05"))
	} else {
		fmt.Printf("OVERWORKED by %s\n", dates.FormatSeconds(status.SecondsDelta))
	}
	fmt.Printf("(started %s, hours per day: %s, worked today %s, total %s)\n",
		status.GoalStartedAt.Format("2006-01-02"),
		status.LastHoursPerDay,
		dates.FormatSeconds(status.SecondsWorkedToday),
		dates.FormatSeconds(status.SecondsWorked))
}
