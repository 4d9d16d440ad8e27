package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// AppointmentStatuses lists every status in display order.
var AppointmentStatuses = []string{
	string(AppointmentStatusScheduled),
	string(AppointmentStatusConfirmed),
	string(AppointmentStatusCompleted),
	string(AppointmentStatusCancelled),
	string(AppointmentStatusNoShow),
}

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusCompleted,
		AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// Appointment books a patient with a professional for one specialty session.
// Overlaps are not prevented.
type Appointment struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID           `gorm:"type:uuid;not null;index" json:"patient_id"`
	ProfessionalID  uuid.UUID           `gorm:"type:uuid;not null;index" json:"professional_id"`
	SpecialtyID     uuid.UUID           `gorm:"type:uuid;not null;index" json:"specialty_id"`
	RoomID          *uuid.UUID          `gorm:"type:uuid;index" json:"room_id,omitempty"`
	AppointmentDate time.Time           `gorm:"type:date;not null;index" json:"appointment_date"`
	StartTime       string              `gorm:"type:time;not null" json:"start_time"`
	EndTime         string              `gorm:"type:time;not null" json:"end_time"`
	Notes           *string             `gorm:"type:text" json:"notes,omitempty"`
	Price           decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"price"`
	Status          AppointmentStatus   `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	CreatedAt       time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time           `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient      *Patient   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Professional *Profile   `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
	Specialty    *Specialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
	Room         *Room      `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// OnDate reports whether the appointment falls on the calendar day of t.
func (a *Appointment) OnDate(t time.Time) bool {
	y1, m1, d1 := a.AppointmentDate.Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Duration returns EndTime - StartTime.
func (a *Appointment) Duration() (time.Duration, error) {
	start, err := ParseClock(a.StartTime)
	if err != nil {
		return 0, fmt.Errorf("start time: %w", err)
	}
	end, err := ParseClock(a.EndTime)
	if err != nil {
		return 0, fmt.Errorf("end time: %w", err)
	}
	return end.Sub(start), nil
}

func (a *Appointment) PatientName() string {
	if a.Patient == nil {
		return ""
	}
	return a.Patient.FullName
}

func (a *Appointment) ProfessionalName() string {
	if a.Professional == nil {
		return ""
	}
	return a.Professional.FullName
}

func (a *Appointment) SpecialtyName() string {
	if a.Specialty == nil {
		return ""
	}
	return a.Specialty.Name
}

// ParseClock parses a time of day in HH:MM or HH:MM:SS form.
func ParseClock(v string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", v); err == nil {
		return t, nil
	}
	return time.Parse("15:04", v)
}
