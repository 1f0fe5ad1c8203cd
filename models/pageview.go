package models

import "time"

// PageView aggregates portal traffic per day and path for the stats board.
type PageView struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"index:idx_pageviews_date_path,unique;type:date;not null" json:"date"`
	Path      string    `gorm:"index:idx_pageviews_date_path,unique;size:255;not null" json:"path"`
	Count     int64     `gorm:"not null;default:0" json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
