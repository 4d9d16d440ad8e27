package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Specialty is reference data for appointments: a service line with a
// default price and session length.
type Specialty struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string              `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description     *string             `gorm:"type:text" json:"description,omitempty"`
	DefaultPrice    decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"default_price"`
	SessionDuration *int                `gorm:"comment:minutes" json:"session_duration,omitempty"`
	IsActive        *bool               `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time           `gorm:"autoCreateTime" json:"created_at"`
}

func (Specialty) TableName() string {
	return "specialties"
}

// PriceDefault returns the default price when one is set and non-zero.
func (s *Specialty) PriceDefault() (decimal.Decimal, bool) {
	if !s.DefaultPrice.Valid || s.DefaultPrice.Decimal.IsZero() {
		return decimal.Zero, false
	}
	return s.DefaultPrice.Decimal, true
}
