package models

import "time"

// Complaint is one intake form submission. Status starts at "submitted" and
// is free-form afterwards; there is no workflow engine behind it.
type Complaint struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Category    string    `gorm:"size:64;default:'Other'" json:"category"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Contact     string    `gorm:"size:128" json:"contact,omitempty"`
	Location    string    `gorm:"size:255" json:"location,omitempty"`
	Status      string    `gorm:"size:32;default:'submitted'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
