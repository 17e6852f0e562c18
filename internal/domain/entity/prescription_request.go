package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestStatus represents the status of a prescription request
type RequestStatus string

const (
	RequestStatusNew           RequestStatus = "new"
	RequestStatusInfoRequested RequestStatus = "info_requested"
	RequestStatusApproved      RequestStatus = "approved"
	RequestStatusDenied        RequestStatus = "denied"
)

// OpenStatuses are the statuses a doctor can still decide on.
// info_requested is re-enterable: the patient-facing app moves a request
// back to new on resubmission.
var OpenStatuses = []RequestStatus{RequestStatusNew, RequestStatusInfoRequested}

// PrescriptionRequest is a patient's ask for a cannabis prescription.
// A row references its requester either through PatientID or, for legacy
// rows from the patient app, through a bare UserID. Read paths resolve both
// shapes through service.IdentityResolver.
type PrescriptionRequest struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ExternalID        string          `gorm:"type:varchar(20)" json:"external_id,omitempty"`
	PatientID         *uuid.UUID      `gorm:"type:uuid;index" json:"patient_id,omitempty"`
	UserID            *uuid.UUID      `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Status            RequestStatus   `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`
	MedicalCondition  string          `gorm:"type:text" json:"medical_condition,omitempty"`
	Preferences       string          `gorm:"type:text" json:"preferences,omitempty"`
	MedicationHistory string          `gorm:"type:text" json:"medication_history,omitempty"`
	AdditionalNotes   string          `gorm:"type:text" json:"additional_notes,omitempty"`
	DoctorNotes       string          `gorm:"type:text" json:"doctor_notes,omitempty"`
	DoctorID          *DoctorID       `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`
	CreatedAt         time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Products []RequestProduct `gorm:"foreignKey:RequestID" json:"products,omitempty"`
	Doctor   *Doctor          `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (PrescriptionRequest) TableName() string {
	return "prescription_requests"
}

// IsOpen reports whether a doctor can still decide on the request.
func (r *PrescriptionRequest) IsOpen() bool {
	return r.Status == RequestStatusNew || r.Status == RequestStatusInfoRequested
}

// IsTerminal reports whether the request reached a final status.
func (r *PrescriptionRequest) IsTerminal() bool {
	return r.Status == RequestStatusApproved || r.Status == RequestStatusDenied
}

// DisplayID returns the short external id, falling back to the first eight
// characters of the row id for rows created before external ids existed.
func (r *PrescriptionRequest) DisplayID() string {
	if r.ExternalID != "" {
		return r.ExternalID
	}
	id := r.ID.String()
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// RequestProduct associates a request with a product and a quantity in grams.
type RequestProduct struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"request_id"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	QuantityGrams decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity_grams"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (RequestProduct) TableName() string {
	return "request_products"
}
