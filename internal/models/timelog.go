package models

// TimeLog is one logged work interval. StoppedAt and Duration stay nil
// while the record is open; Duration is denormalized to
// StoppedAt - StartedAt when the record is stopped. At most one record per
// user is open at any time, enforced by the start/stop path.
type TimeLog struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	UserID    uint    `gorm:"not null;index" json:"user_id"`
	ProjectID uint    `gorm:"not null;index" json:"project_id"`
	StartedAt int64   `gorm:"not null;index" json:"started_at"` // epoch seconds
	StoppedAt *int64  `json:"stopped_at"`
	Duration  *int64  `json:"duration"` // seconds
	Comment   *string `json:"comment"`

	Project Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"project"`
}

// Open reports whether the record is still running.
func (t TimeLog) Open() bool { return t.StoppedAt == nil }

// ElapsedSeconds returns the stored duration for a stopped record, or the
// elapsed-so-far count for an open one. Display only: historical sums use
// the stored duration column and count open records as zero.
func (t TimeLog) ElapsedSeconds(now int64) int64 {
	if t.Duration != nil {
		return *t.Duration
	}
	if t.Open() {
		return now - t.StartedAt
	}
	return 0
}
