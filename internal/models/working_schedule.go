package models

import "time"

// WorkingSchedule is one weekday of a barber's availability.
// DayOfWeek follows time.Weekday: 0 = Sunday .. 6 = Saturday.
type WorkingSchedule struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:idx_barber_weekday" json:"barber_id"`

	DayOfWeek int `gorm:"uniqueIndex:idx_barber_weekday" json:"day_of_week"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	IsWorking bool   `json:"is_working"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
