package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/okulov/nudge/internal/dates"
)

// DefaultDeadline is the commitment day boundary used when NUDGE_DEADLINE
// is unset: commitment days run from 06:00:01 to 06:00:00 the next morning.
const DefaultDeadline = "06:00:00"

// Config holds the process-wide settings. Everything is read from the
// environment so the tool works without a config file.
type Config struct {
	DatabasePath string
	Deadline     dates.TimeOfDay
	UserID       uint
}

// Load reads NUDGE_DB, NUDGE_DEADLINE and NUDGE_USER_ID, applying defaults
// for anything unset.
func Load() (*Config, error) {
	dbPath := os.Getenv("NUDGE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".nudge", "nudge.db")
	}

	deadlineStr := os.Getenv("NUDGE_DEADLINE")
	if deadlineStr == "" {
		deadlineStr = DefaultDeadline
	}
	deadline, err := dates.ParseTimeOfDay(deadlineStr)
	if err != nil {
		return nil, fmt.Errorf("NUDGE_DEADLINE: %w", err)
	}

	userID := uint(1)
	if s := os.Getenv("NUDGE_USER_ID"); s != "" {
		id, err := strconv.ParseUint(s, 10, 32)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("NUDGE_USER_ID: invalid user id %q", s)
		}
		userID = uint(id)
	}

	return &Config{
		DatabasePath: dbPath,
		Deadline:     deadline,
		UserID:       userID,
	}, nil
}
