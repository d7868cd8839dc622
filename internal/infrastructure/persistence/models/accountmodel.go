package models

import (
	"time"
)

// AccountModel is the database persistence model for accounts.
// This is the anti-corruption layer between domain and database.
type AccountModel struct {
	ID             uint       `gorm:"primarykey"`
	Username       string     `gorm:"uniqueIndex;not null;size:30"`
	PasswordDigest string     `gorm:"column:password_digest;not null;size:100"`
	Role           string     `gorm:"not null;size:20;index"`
	DisplayName    string     `gorm:"size:100"`
	Active         bool       `gorm:"not null;default:true"`
	CreatedBy      *string    `gorm:"size:30"`
	CreatedAt      time.Time  `gorm:"not null"`
	LastLoginAt    *time.Time `gorm:"column:last_login_at"`
}

// TableName specifies the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}
