package db

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/okulov/nudge/internal/models"
)

const testUser = uint(1)

// newTestDB points the package at a fresh in-memory database for one test.
func newTestDB(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	prev := DB
	DB = gdb
	if err := runMigrations(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
		DB = prev
	})
}

// ts parses "2006-01-02 15:04:05" in local time.
func ts(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return tm
}

func mustProject(t *testing.T, name string) *models.Project {
	t.Helper()
	p, err := CreateProject(testUser, name)
	if err != nil {
		t.Fatalf("create project %q: %v", name, err)
	}
	return p
}

func mustSubproject(t *testing.T, parentName, name string) *models.Project {
	t.Helper()
	p, err := CreateSubproject(testUser, parentName, name)
	if err != nil {
		t.Fatalf("create subproject %q: %v", name, err)
	}
	return p
}

// insertGoal creates a goal with an explicit creation instant.
func insertGoal(t *testing.T, projectID uint, name string, goalType models.GoalType, createdAt time.Time) *models.Goal {
	t.Helper()
	goal := models.Goal{
		UserID:    testUser,
		ProjectID: projectID,
		Name:      name,
		Type:      goalType,
		CreatedAt: createdAt.Unix(),
	}
	if err := DB.Create(&goal).Error; err != nil {
		t.Fatalf("insert goal %q: %v", name, err)
	}
	return &goal
}

// insertClosedRecord logs a stopped work interval.
func insertClosedRecord(t *testing.T, projectID uint, startedAt time.Time, durationSecs int64) *models.TimeLog {
	t.Helper()
	stoppedAt := startedAt.Unix() + durationSecs
	record := models.TimeLog{
		UserID:    testUser,
		ProjectID: projectID,
		StartedAt: startedAt.Unix(),
		StoppedAt: &stoppedAt,
		Duration:  &durationSecs,
	}
	if err := DB.Create(&record).Error; err != nil {
		t.Fatalf("insert record: %v", err)
	}
	return &record
}

// insertOpenRecord logs a still-running work interval.
func insertOpenRecord(t *testing.T, projectID uint, startedAt time.Time) *models.TimeLog {
	t.Helper()
	record := models.TimeLog{
		UserID:    testUser,
		ProjectID: projectID,
		StartedAt: startedAt.Unix(),
	}
	if err := DB.Create(&record).Error; err != nil {
		t.Fatalf("insert open record: %v", err)
	}
	return &record
}
