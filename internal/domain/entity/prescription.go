package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Prescription is the artifact created when a request is approved.
// Exactly one exists per approved request; the insert happens in the same
// transaction as the request's status flip.
type Prescription struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID              *uuid.UUID      `gorm:"type:uuid;index" json:"patient_id,omitempty"`
	DoctorID               DoctorID        `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Status                 string          `gorm:"type:varchar(20);not null;index" json:"status"`
	PrescriptionPlan       string          `gorm:"type:text" json:"prescription_plan,omitempty"`
	PrescriptionDate       time.Time       `gorm:"not null" json:"prescription_date"`
	TotalAmount            decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`
	Notes                  string          `gorm:"type:text" json:"notes,omitempty"`
	HasAgreedAGB           bool            `gorm:"not null;default:false" json:"has_agreed_agb"`
	HasAgreedPrivacyPolicy bool            `gorm:"not null;default:false" json:"has_agreed_privacy_policy"`
	CreatedAt              time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt              time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// Prescription status values
const (
	PrescriptionStatusApproved = "approved"
)
