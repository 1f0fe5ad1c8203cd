package models

import "time"

// Comment represents a reply on a post. Append-only; threads read oldest
// first, previews newest first.
type Comment struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	PostID    int64     `gorm:"index;not null" json:"post_id"`
	UserID    string    `gorm:"size:64;index;not null" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
}
