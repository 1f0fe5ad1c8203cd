package models

import "time"

// Post represents a community feed post. Comment counts and reaction tallies
// are derived at read time and never stored on the row. Media is an optional
// tagged payload: either inline bytes or a URL, with its MIME type.
type Post struct {
	ID        int64      `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"size:64;index;not null" json:"user_id"`
	Message   string     `gorm:"type:text" json:"message"`
	MediaType string     `gorm:"size:16" json:"media_type,omitempty"`
	MediaBlob []byte     `gorm:"type:blob" json:"-"`
	MediaURL  string     `gorm:"size:512" json:"media_url,omitempty"`
	MediaMime string     `gorm:"size:64" json:"media_mime,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	User      User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Comments  []Comment  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Reactions []Reaction `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
