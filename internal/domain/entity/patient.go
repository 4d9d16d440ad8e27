package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a person receiving care. Patients are deactivated, never deleted.
type Patient struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName         string     `gorm:"type:varchar(255);not null;index" json:"full_name"`
	BirthDate        time.Time  `gorm:"type:date;not null" json:"birth_date"`
	CPF              *string    `gorm:"column:cpf;type:varchar(14)" json:"cpf,omitempty"`
	RG               *string    `gorm:"column:rg;type:varchar(20)" json:"rg,omitempty"`
	Address          *string    `gorm:"type:text" json:"address,omitempty"`
	Phone            *string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	EmergencyContact *string    `gorm:"type:varchar(255)" json:"emergency_contact,omitempty"`
	EmergencyPhone   *string    `gorm:"type:varchar(20)" json:"emergency_phone,omitempty"`
	MedicalHistory   *string    `gorm:"type:text" json:"medical_history,omitempty"`
	Allergies        *string    `gorm:"type:text" json:"allergies,omitempty"`
	Medications      *string    `gorm:"type:text" json:"medications,omitempty"`
	ResponsibleID    *uuid.UUID `gorm:"type:uuid;index" json:"responsible_id,omitempty"`
	IsActive         *bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Responsible *Profile `gorm:"foreignKey:ResponsibleID" json:"responsible,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Active reports the active flag, treating an unset flag as active.
func (p *Patient) Active() bool {
	return p.IsActive == nil || *p.IsActive
}

// ResponsibleName returns the embedded responsible's name, or "".
func (p *Patient) ResponsibleName() string {
	if p.Responsible == nil {
		return ""
	}
	return p.Responsible.FullName
}
