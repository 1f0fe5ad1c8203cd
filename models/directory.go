package models

import "time"

// Directory records are flat rows with no relations to the rest of the
// schema. Providers and vendors come from resident submissions; government
// bodies are curated.

// ServiceProvider is a local tradesperson or service listing.
type ServiceProvider struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Category    string    `gorm:"size:64;index" json:"category"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	Contact     string    `gorm:"size:128" json:"contact"`
	Area        string    `gorm:"size:128" json:"area"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Vendor is a market or street vendor listing.
type Vendor struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"size:64;index" json:"type"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Contact   string    `gorm:"size:128" json:"contact"`
	Area      string    `gorm:"size:128" json:"area"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// GovernmentBody is a civic office entry with visiting details.
type GovernmentBody struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:128;not null" json:"name"`
	Department string    `gorm:"size:128;index" json:"department"`
	Contact    string    `gorm:"size:128" json:"contact"`
	Hours      string    `gorm:"size:128" json:"hours"`
	Location   string    `gorm:"size:255" json:"location"`
	Website    string    `gorm:"size:255" json:"website"`
	CreatedAt  time.Time `json:"created_at"`
}
