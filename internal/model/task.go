package model

import "time"

// Task represents a single scheduled item in the planner.
type Task struct {
	ID              string `gorm:"primaryKey"`
	Title           string
	Description     string
	Date            string // 2006-01-02, local calendar date
	Time            string // 15:04
	EndTime         string // optional; strictly after Time when set
	ReminderMinutes int
	Recurring       Recurrence `gorm:"default:none"`
	Completed       bool       `gorm:"default:false"`
	Notified        bool       `gorm:"default:false"`
	OriginalDate    string     // date of the first occurrence in a recurring chain
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
