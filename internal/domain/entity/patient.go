package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents patient-side profile and medical intake data.
// Intake fields are written by the patient-facing app and read-only here.
type Patient struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID             uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	BirthDate          *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Salutation         string     `gorm:"type:varchar(20)" json:"salutation,omitempty"`
	Symptoms           string     `gorm:"type:text" json:"symptoms,omitempty"`
	TakesMedication    bool       `gorm:"not null;default:false" json:"takes_medication"`
	Medications        string     `gorm:"type:text" json:"medications,omitempty"`
	HasAllergies       bool       `gorm:"not null;default:false" json:"has_allergies"`
	Allergies          string     `gorm:"type:text" json:"allergies,omitempty"`
	HasChronicDiseases bool       `gorm:"not null;default:false" json:"has_chronic_diseases"`
	ChronicDiseases    string     `gorm:"type:text" json:"chronic_diseases,omitempty"`
	IsVerified         bool       `gorm:"not null;default:false" json:"is_verified"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
