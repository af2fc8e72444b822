package models

// User owns projects, time log records and goals. The CLI runs as a single
// configured user; the schema keeps the owner column on every entity.
type User struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}
