package models

import "time"

// RationRate is one price point on the ration board. Upserts insert fresh
// rows so history is preserved; queries order by updated_at and the newest
// row wins on display.
type RationRate struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	State     string    `gorm:"size:64;index" json:"state"`
	District  string    `gorm:"size:64;index" json:"district"`
	MonthYear string    `gorm:"size:16;index" json:"month_year"`
	Commodity string    `gorm:"size:64" json:"commodity"`
	Rate      float64   `json:"rate"`
	UpdatedAt time.Time `json:"updated_at"`
}
