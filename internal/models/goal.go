package models

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/okulov/nudge/internal/dates"
)

// GoalType selects how a goal accumulates its due hours.
type GoalType string

const (
	// GoalHoursLight only ever requires the current commitment day's hours.
	GoalHoursLight GoalType = "hours_light"
	// GoalHoursMandatory accumulates due hours every day since creation.
	GoalHoursMandatory GoalType = "hours_mandatory"
)

// ParseGoalType validates a goal type name.
func ParseGoalType(s string) (GoalType, error) {
	switch GoalType(s) {
	case GoalHoursLight, GoalHoursMandatory:
		return GoalType(s), nil
	default:
		return "", fmt.Errorf("unknown goal type %q (want %s or %s)", s, GoalHoursLight, GoalHoursMandatory)
	}
}

// Goal is a named commitment to work some hours per day on a project.
// ProjectID may point at a root project, in which case the goal covers all
// of its subprojects.
type Goal struct {
	ID         uint     `gorm:"primarykey" json:"id"`
	UserID     uint     `gorm:"not null;uniqueIndex:idx_goals_user_name" json:"user_id"`
	ProjectID  uint     `gorm:"not null" json:"project_id"`
	Name       string   `gorm:"not null;uniqueIndex:idx_goals_user_name" json:"name"`
	Type       GoalType `gorm:"not null;default:hours_light" json:"type"`
	CreatedAt  int64    `gorm:"autoCreateTime;not null" json:"created_at"` // epoch seconds
	ArchivedAt *int64   `json:"archived_at"`
}

// Archived reports whether the goal has been taken out of the batch report.
func (g Goal) Archived() bool { return g.ArchivedAt != nil }

// Commitment is one row of the hours-per-day ledger: starting on DateFrom,
// on the given ISO weekday, Hours per day is due, until DateTo inclusive
// (or indefinitely while DateTo is nil). For a (goal, weekday) pair active
// date ranges never overlap; the write path retires superseded rows.
type Commitment struct {
	ID       uint            `gorm:"primarykey" json:"id"`
	GoalID   uint            `gorm:"not null;index" json:"goal_id"`
	Weekday  int             `gorm:"not null" json:"weekday"` // 1 Monday .. 7 Sunday
	Hours    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"hours"`
	DateFrom dates.Date      `gorm:"type:text;not null" json:"date_from"`
	DateTo   *dates.Date     `gorm:"type:text" json:"date_to"`
}
