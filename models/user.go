package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a portal member. Identity is a selectable label, not a
// verified principal; the optional password hash is stored as plain data and
// no login flow reads it back.
type User struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	Username     string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	Avatar       string    `gorm:"size:16" json:"avatar"`
	Bio          string    `gorm:"size:255" json:"bio"`
	Followers    int       `gorm:"default:0" json:"followers"`
	Following    int       `gorm:"default:0" json:"following"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	Posts        []Post    `json:"-"`
	Comments     []Comment `json:"-"`
}

// BeforeCreate assigns a generated id and the default avatar when the caller
// left them blank.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Avatar == "" {
		u.Avatar = "👤"
	}
	return nil
}
