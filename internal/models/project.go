package models

// Project is a node in a two-level project tree: root projects and their
// direct subprojects. ParentID is nil for roots. Names are unique per user.
type Project struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	ParentID  *uint  `gorm:"index" json:"parent_id"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_projects_user_name" json:"user_id"`
	Name      string `gorm:"not null;uniqueIndex:idx_projects_user_name" json:"name"`
	CreatedAt int64  `gorm:"autoCreateTime;not null" json:"created_at"`
}
