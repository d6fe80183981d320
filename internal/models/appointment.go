package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Reference uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"reference"`

	UserID   uint `gorm:"index" json:"user_id"`
	BarberID uint `gorm:"index" json:"barber_id"`

	// Names and services are snapshotted at booking time so the record stays
	// readable even if the catalog or the people change later.
	CustomerName string   `gorm:"size:100" json:"customer_name"`
	BarberName   string   `gorm:"size:100" json:"barber_name"`
	ServiceIDs   []uint   `gorm:"serializer:json" json:"service_ids"`
	ServiceNames []string `gorm:"serializer:json" json:"service_names"`

	// Start instant, stored in the shop timezone.
	Time    time.Time `gorm:"column:start_time;index" json:"time"`
	EndTime time.Time `gorm:"column:end_time" json:"end_time"`

	TotalPrice       float64 `json:"total_price"`
	TotalDurationMin int     `json:"total_duration"`

	Status  string `gorm:"size:20;default:'pending'" json:"status"`
	Comment string `gorm:"size:255" json:"comment"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
