package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okulov/nudge/internal/dates"
	"github.com/okulov/nudge/internal/db"
)

// RunDashTUI runs the dashboard TUI
func RunDashTUI(userID uint, deadline dates.TimeOfDay) error {
	model := NewDashModel(userID, deadline)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Handle exit messages after the TUI closes
	dashModel := finalModel.(DashModel)
	if dashModel.stopping {
		record, err := db.StopLastRecord(dashModel.userID, time.Now())
		if err != nil {
			return fmt.Errorf("failed to stop record: %w", err)
		}
		if record != nil {
			duration := int64(0)
			if record.Duration != nil {
				duration = *record.Duration
			}
			fmt.Printf("⏹️  Stopped record #%d, duration %s\n",
				record.ID, dates.FormatSeconds(duration))
		}
	} else if dashModel.exiting && dashModel.record != nil {
		fmt.Printf("💡 Still tracking %s. Use 'nudge stop' to stop.\n", dashModel.project.Name)
	}

	return nil
}
