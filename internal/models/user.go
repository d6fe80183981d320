package models

import "time"

const (
	RoleCustomer = "customer"
	RoleBarber   = "barber"
	RoleOwner    = "owner"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'customer'" json:"role"`

	ProfilePicture string `gorm:"size:255" json:"profile_picture"`

	// Only barbers carry a schedule. Replaced wholesale, never patched per-day.
	WorkingSchedule []WorkingSchedule `gorm:"foreignKey:BarberID;constraint:OnDelete:CASCADE" json:"working_schedule,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
