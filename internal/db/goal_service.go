package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/okulov/nudge/internal/dates"
	"github.com/okulov/nudge/internal/models"
)

// CreateGoal creates a goal on the named project. The project may be a
// root (the goal then covers all its subprojects) or a leaf.
func CreateGoal(userID uint, projectName, goalName string, goalType models.GoalType) (*models.Goal, error) {
	project, err := GetProjectByName(userID, projectName)
	if err != nil {
		return nil, err
	}
	goal := models.Goal{
		UserID:    userID,
		ProjectID: project.ID,
		Name:      goalName,
		Type:      goalType,
	}
	if err := DB.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetGoalByName retrieves the user's goal with the given name.
func GetGoalByName(userID uint, name string) (*models.Goal, error) {
	var goal models.Goal
	err := DB.Where("user_id = ? AND name = ?", userID, name).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("goal %q: %w", name, ErrNotFound)
		}
		return nil, err
	}
	return &goal, nil
}

// SetGoalType changes the accumulation mode of the named goal.
func SetGoalType(userID uint, name string, goalType models.GoalType) (*models.Goal, error) {
	goal, err := GetGoalByName(userID, name)
	if err != nil {
		return nil, err
	}
	goal.Type = goalType
	if err := DB.Model(goal).Update("type", goalType).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// ArchiveGoal takes the named goal out of the batch report.
func ArchiveGoal(userID uint, name string, now time.Time) (*models.Goal, error) {
	goal, err := GetGoalByName(userID, name)
	if err != nil {
		return nil, err
	}
	archivedAt := now.Unix()
	goal.ArchivedAt = &archivedAt
	if err := DB.Model(goal).Update("archived_at", archivedAt).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// SetHoursPerDay commits to hours per day on the named goal for each
// weekday in the filter, effective from the given commitment day. Any
// commitment previously active on that day for one of the weekdays is
// retired so active ranges never overlap: a commitment whose first real
// working day (its date_from aligned forward to its weekday) never arrived
// is deleted outright, anything else is closed the day before the new
// commitment starts. Retirement and inserts are one transaction.
func SetHoursPerDay(userID uint, goalName string, hours decimal.Decimal, weekdayFilter string, effectiveFrom dates.Date) ([]int, error) {
	weekdays, err := dates.ParseWeekdayFilter(weekdayFilter)
	if err != nil {
		return nil, err
	}

	goal, err := GetGoalByName(userID, goalName)
	if err != nil {
		return nil, err
	}

	err = DB.Transaction(func(tx *gorm.DB) error {
		var previous []models.Commitment
		err := tx.Where("goal_id = ? AND weekday IN ? AND date_from <= ? AND (date_to IS NULL OR date_to >= ?)",
			goal.ID, weekdays, effectiveFrom, effectiveFrom).
			Order("date_from DESC, id DESC").
			Find(&previous).Error
		if err != nil {
			return err
		}

		dayBefore := effectiveFrom.Add(-1)
		for i := range previous {
			prev := &previous[i]
			// date_from may not itself fall on the commitment's weekday;
			// the first day it actually applied is date_from aligned
			// forward to that weekday.
			shift := (prev.Weekday - prev.DateFrom.ISOWeekday() + 7) % 7
			actualFrom := prev.DateFrom.Add(shift)

			if !actualFrom.Before(effectiveFrom) {
				// Written but never operative: remove the row.
				if err := tx.Delete(prev).Error; err != nil {
					return err
				}
			} else {
				if err := tx.Model(prev).Update("date_to", dayBefore).Error; err != nil {
					return err
				}
			}
		}

		for _, weekday := range weekdays {
			commitment := models.Commitment{
				GoalID:   goal.ID,
				Weekday:  weekday,
				Hours:    hours,
				DateFrom: effectiveFrom,
			}
			if err := tx.Create(&commitment).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return weekdays, nil
}

// activeCommitments returns the commitments in force for the goal on the
// given commitment day, most recently started first. Ties on date_from go
// to the most recently inserted row.
func activeCommitments(tx *gorm.DB, goalID uint, day dates.Date) ([]models.Commitment, error) {
	var commitments []models.Commitment
	err := tx.Where("goal_id = ? AND weekday = ? AND date_from <= ? AND (date_to IS NULL OR date_to >= ?)",
		goalID, day.ISOWeekday(), day, day).
		Order("date_from DESC, id DESC").
		Find(&commitments).Error
	if err != nil {
		return nil, err
	}
	return commitments, nil
}

// Status reports whether a goal still has time due or has been overworked.
type Status string

const (
	StatusDue        Status = "due"
	StatusOverworked Status = "overworked"
)

// GoalStatus is the accounting result for one goal at one instant.
type GoalStatus struct {
	Goal               models.Goal
	Status             Status
	SecondsDelta       int64 // magnitude of what's left due, or of the overwork
	SecondsWorked      int64 // since the goal started
	SecondsWorkedToday int64 // within the current commitment day
	TotalSecondsDue    int64
	LastHoursPerDay    decimal.Decimal
	GoalStartedAt      time.Time
	PeriodStart        time.Time
	PeriodEnd          time.Time // current commitment day's deadline instant
}

// GetGoalStatus computes the due/overworked state of the named goal as of
// now. The whole read runs in one transaction so a concurrent ledger write
// cannot be observed half-applied.
func GetGoalStatus(userID uint, goalName string, now time.Time, deadline dates.TimeOfDay) (*GoalStatus, error) {
	goal, err := GetGoalByName(userID, goalName)
	if err != nil {
		return nil, err
	}
	var status *GoalStatus
	err = DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		status, txErr = goalStatus(tx, goal, now, deadline)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return status, nil
}

func goalStatus(tx *gorm.DB, goal *models.Goal, now time.Time, deadline dates.TimeOfDay) (*GoalStatus, error) {
	projectIDs, err := goalProjectIDs(tx, goal)
	if err != nil {
		return nil, err
	}

	periodEnd := dates.DayEnd(deadline, now)
	periodStart := periodEnd.AddDate(0, 0, -1)
	goalStartedAt := dates.GoalStart(deadline, time.Unix(goal.CreatedAt, 0))

	secondsWorked, secondsWorkedToday, err := workedSeconds(
		tx, projectIDs, goalStartedAt, periodEnd, true)
	if err != nil {
		return nil, err
	}

	// Walk commitment days up to today, taking the freshest active
	// commitment's hours for each. Mandatory goals accumulate from their
	// creation day; light goals only owe today.
	currentDay := dates.CommitmentDay(deadline, now)
	day := currentDay
	if goal.Type == models.GoalHoursMandatory {
		day = dates.CommitmentDay(deadline, time.Unix(goal.CreatedAt, 0))
	}

	totalHoursDue := decimal.Zero
	lastHoursPerDay := decimal.Zero
	for !day.After(currentDay) {
		commitments, err := activeCommitments(tx, goal.ID, day)
		if err != nil {
			return nil, err
		}
		hoursDue := decimal.Zero
		if len(commitments) > 0 {
			hoursDue = commitments[0].Hours
			totalHoursDue = totalHoursDue.Add(hoursDue)
		}
		lastHoursPerDay = hoursDue
		day = day.Add(1)
	}

	totalSecondsDue := totalHoursDue.Mul(decimal.NewFromInt(3600)).IntPart()

	comparedWork := secondsWorked
	if goal.Type == models.GoalHoursLight {
		comparedWork = secondsWorkedToday
	}

	status := GoalStatus{
		Goal:               *goal,
		SecondsWorked:      secondsWorked,
		SecondsWorkedToday: secondsWorkedToday,
		TotalSecondsDue:    totalSecondsDue,
		LastHoursPerDay:    lastHoursPerDay,
		GoalStartedAt:      goalStartedAt,
		PeriodStart:        periodStart,
		PeriodEnd:          periodEnd,
	}
	delta := totalSecondsDue - comparedWork
	if delta >= 0 {
		status.Status = StatusDue
		status.SecondsDelta = delta
	} else {
		status.Status = StatusOverworked
		status.SecondsDelta = -delta
	}
	return &status, nil
}

// GetGoalsInfo reports the status of every non-archived goal that has
// accumulated any requirement, skipping goals with nothing due yet.
func GetGoalsInfo(userID uint, now time.Time, deadline dates.TimeOfDay) ([]GoalStatus, error) {
	var goals []models.Goal
	err := DB.Where("user_id = ? AND archived_at IS NULL", userID).
		Order("id ASC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}

	var statuses []GoalStatus
	for i := range goals {
		var status *GoalStatus
		err := DB.Transaction(func(tx *gorm.DB) error {
			var err error
			status, err = goalStatus(tx, &goals[i], now, deadline)
			return err
		})
		if err != nil {
			return nil, err
		}
		if status.TotalSecondsDue > 0 {
			statuses = append(statuses, *status)
		}
	}
	return statuses, nil
}
