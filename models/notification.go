package models

import "time"

// Notification targets one user with an opaque JSON payload. The only state
// transition is unread to read.
type Notification struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"size:64;index;not null" json:"user_id"`
	Payload   string    `gorm:"type:text" json:"payload"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
