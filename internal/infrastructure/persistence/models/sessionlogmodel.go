package models

import (
	"time"
)

// SessionLogModel is one append-only audit row per login. Username and
// display name are denormalized snapshots so the trail stays accurate after
// account renames or deletions.
type SessionLogModel struct {
	ID              uint       `gorm:"primarykey"`
	AccountID       uint       `gorm:"not null;index"`
	Username        string     `gorm:"not null;size:30"`
	DisplayName     string     `gorm:"size:100"`
	LoginAt         time.Time  `gorm:"not null;index"`
	LogoutAt        *time.Time `gorm:"column:logout_at"`
	DurationMinutes *int       `gorm:"column:duration_minutes"`
	Origin          string     `gorm:"size:64"`
	Status          string     `gorm:"not null;size:16;default:ACTIVE"`
}

// TableName specifies the table name for GORM
func (SessionLogModel) TableName() string {
	return "session_log"
}
