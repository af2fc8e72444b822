package db

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/okulov/nudge/internal/dates"
	"github.com/okulov/nudge/internal/models"
)

// StartResult describes what a start operation did: which project started,
// the new open record, and the previously open record it stopped (if any).
type StartResult struct {
	Project *models.Project
	Started *models.TimeLog
	Stopped *models.TimeLog
}

// GetLastRecord returns the user's most recent time record, or the
// tailNumber-th from the end (1 = last). Returns nil without error when the
// log is empty or shorter than tailNumber.
func GetLastRecord(userID uint, tailNumber int) (*models.TimeLog, error) {
	var record models.TimeLog
	err := DB.Where("user_id = ?", userID).
		Order("started_at DESC, id DESC").
		Offset(tailNumber - 1).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

var penultRe = regexp.MustCompile(`^(pen)+ult$`)

// ResolveRecord maps a record identifier to a time record. Identifiers are
// "last", "penult", "penpenult" and so on, a negative number counting from
// the end, or a plain record id.
func ResolveRecord(userID uint, identifier string) (*models.TimeLog, error) {
	tailNumber := 0
	switch {
	case identifier == "last":
		tailNumber = 1
	case penultRe.MatchString(identifier):
		tailNumber = 1 + (len(identifier)-len("ult"))/len("pen") // each "pen" steps one further back
	default:
		if n, err := strconv.Atoi(identifier); err == nil && n < 0 {
			tailNumber = -n
		}
	}

	if tailNumber > 0 {
		record, err := GetLastRecord(userID, tailNumber)
		if err != nil {
			return nil, err
		}
		if record == nil {
			return nil, fmt.Errorf("time record %q: %w", identifier, ErrNotFound)
		}
		return record, nil
	}

	id, err := strconv.ParseUint(identifier, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid record identifier %q", identifier)
	}
	var record models.TimeLog
	err = DB.Where("id = ? AND user_id = ?", id, userID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("time record #%d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &record, nil
}

// StartProject starts a time record on the named project, stopping the
// currently open record first. With an empty name it resumes the most
// recently logged project. Starting the project that is already running is
// rejected unless restartAnyway is set.
func StartProject(userID uint, projectName, comment string, restartAnyway bool, now time.Time) (*StartResult, error) {
	last, err := GetLastRecord(userID, 1)
	if err != nil {
		return nil, err
	}

	var project *models.Project
	if projectName != "" {
		project, err = GetProjectByName(userID, projectName)
	} else {
		if last == nil {
			return nil, fmt.Errorf("no time records yet, name a project to start")
		}
		project, err = GetProjectByID(last.ProjectID)
	}
	if err != nil {
		return nil, err
	}

	if last != nil && last.Open() && last.ProjectID == project.ID && !restartAnyway {
		return nil, fmt.Errorf("project %q already started", project.Name)
	}

	result := StartResult{Project: project}
	err = DB.Transaction(func(tx *gorm.DB) error {
		if last != nil && last.Open() {
			if err := stopRecord(tx, last, now); err != nil {
				return err
			}
			result.Stopped = last
		}

		record := models.TimeLog{
			UserID:    userID,
			ProjectID: project.ID,
			StartedAt: now.Unix(),
		}
		if comment != "" {
			record.Comment = &comment
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		result.Started = &record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// StopLastRecord closes the user's open record. Returns nil without error
// when nothing is running.
func StopLastRecord(userID uint, now time.Time) (*models.TimeLog, error) {
	last, err := GetLastRecord(userID, 1)
	if err != nil {
		return nil, err
	}
	if last == nil || !last.Open() {
		return nil, nil
	}
	if err := stopRecord(DB, last, now); err != nil {
		return nil, err
	}
	return last, nil
}

func stopRecord(tx *gorm.DB, record *models.TimeLog, now time.Time) error {
	stoppedAt := now.Unix()
	duration := stoppedAt - record.StartedAt
	record.StoppedAt = &stoppedAt
	record.Duration = &duration
	return tx.Model(record).Updates(map[string]any{
		"stopped_at": stoppedAt,
		"duration":   duration,
	}).Error
}

// CommentRecord sets the comment on the identified record.
func CommentRecord(userID uint, identifier, comment string) (*models.TimeLog, error) {
	record, err := ResolveRecord(userID, identifier)
	if err != nil {
		return nil, err
	}
	record.Comment = &comment
	if err := DB.Model(record).Update("comment", comment).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteRecord removes the identified record.
func DeleteRecord(userID uint, identifier string) (*models.TimeLog, error) {
	record, err := ResolveRecord(userID, identifier)
	if err != nil {
		return nil, err
	}
	if err := DB.Delete(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// SetRecordStartTime moves the start of the identified record, recomputing
// the stored duration when the record is already stopped.
func SetRecordStartTime(userID uint, identifier, timeStr string, now time.Time) (*models.TimeLog, error) {
	record, err := ResolveRecord(userID, identifier)
	if err != nil {
		return nil, err
	}
	startedAt, err := dates.ParseTimeString(now, timeStr)
	if err != nil {
		return nil, err
	}

	record.StartedAt = startedAt.Unix()
	updates := map[string]any{"started_at": record.StartedAt, "duration": nil}
	record.Duration = nil
	if record.StoppedAt != nil {
		duration := *record.StoppedAt - record.StartedAt
		record.Duration = &duration
		updates["duration"] = duration
	}
	if err := DB.Model(record).Updates(updates).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// SetRecordStopTime moves (or sets) the stop of the identified record and
// recomputes the stored duration.
func SetRecordStopTime(userID uint, identifier, timeStr string, now time.Time) (*models.TimeLog, error) {
	record, err := ResolveRecord(userID, identifier)
	if err != nil {
		return nil, err
	}
	stoppedAt, err := dates.ParseTimeString(now, timeStr)
	if err != nil {
		return nil, err
	}

	stopped := stoppedAt.Unix()
	duration := stopped - record.StartedAt
	record.StoppedAt = &stopped
	record.Duration = &duration
	err = DB.Model(record).Updates(map[string]any{
		"stopped_at": stopped,
		"duration":   duration,
	}).Error
	if err != nil {
		return nil, err
	}
	return record, nil
}

// SetRecordProject reassigns the identified record to another project.
func SetRecordProject(userID uint, identifier, projectName string) (*models.TimeLog, error) {
	record, err := ResolveRecord(userID, identifier)
	if err != nil {
		return nil, err
	}
	project, err := GetProjectByName(userID, projectName)
	if err != nil {
		return nil, err
	}
	record.ProjectID = project.ID
	if err := DB.Model(record).Update("project_id", project.ID).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// GetTimeLogPage returns a page of the user's records, most recent first,
// with projects preloaded.
func GetTimeLogPage(userID uint, page, pageSize int) ([]models.TimeLog, error) {
	var records []models.TimeLog
	err := DB.Where("user_id = ?", userID).
		Preload("Project").
		Order("started_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// WorkedSeconds sums stored durations of records on the given projects with
// started_at in (from, to]. With alsoLastDay it additionally reports the
// subset started within the final 24 hours of the range. Open records have
// no stored duration yet and so contribute nothing; an empty project set or
// an empty range yields zero.
func WorkedSeconds(projectIDs []uint, from, to time.Time, alsoLastDay bool) (total, lastDay int64, err error) {
	return workedSeconds(DB, projectIDs, from, to, alsoLastDay)
}

func workedSeconds(tx *gorm.DB, projectIDs []uint, from, to time.Time, alsoLastDay bool) (int64, int64, error) {
	if len(projectIDs) == 0 {
		return 0, 0, nil
	}

	lastDayFrom := to.AddDate(0, 0, -1)
	var sums struct {
		Total   int64
		LastDay int64
	}
	err := tx.Model(&models.TimeLog{}).
		Select("COALESCE(SUM(duration), 0) AS total, COALESCE(SUM(CASE WHEN started_at > ? THEN duration ELSE 0 END), 0) AS last_day", lastDayFrom.Unix()).
		Where("project_id IN ? AND started_at > ? AND started_at <= ?", projectIDs, from.Unix(), to.Unix()).
		Scan(&sums).Error
	if err != nil {
		return 0, 0, err
	}
	if !alsoLastDay {
		return sums.Total, 0, nil
	}
	return sums.Total, sums.LastDay, nil
}
