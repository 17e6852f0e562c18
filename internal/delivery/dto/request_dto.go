package dto

import "github.com/shopspring/decimal"

// Request DTOs

// DecisionRequest carries the doctor's notes for an approve, deny or
// info-request decision.
type DecisionRequest struct {
	Notes string `json:"notes"`
}

// Response DTOs

type RequestProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// RequestResponse is the resolved view model for a prescription request:
// the raw row joined with its patient, user and (for decided requests)
// deciding doctor.
type RequestResponse struct {
	ID                string                   `json:"id"`
	ExternalID        string                   `json:"external_id"`
	PatientID         string                   `json:"patient_id"`
	UserID            string                   `json:"user_id"`
	PatientName       string                   `json:"patient_name"`
	Age               *int                     `json:"age"`
	RequestDate       string                   `json:"request_date"`
	Status            string                   `json:"status"`
	MedicalCondition  string                   `json:"medical_condition"`
	Preferences       string                   `json:"preferences"`
	MedicationHistory string                   `json:"medication_history"`
	AdditionalNotes   string                   `json:"additional_notes"`
	DoctorNotes       string                   `json:"doctor_notes"`
	TotalAmount       decimal.Decimal          `json:"total_amount"`
	ProfileImage      string                   `json:"profile_image"`
	Products          []RequestProductResponse `json:"products"`
	ApprovedBy        string                   `json:"approved_by,omitempty"`
	DeniedBy          string                   `json:"denied_by,omitempty"`
	DeniedDate        string                   `json:"denied_date,omitempty"`
}

type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
	Total    int               `json:"total"`
}

// ApprovalResponse returns the prescription created by an approval.
type ApprovalResponse struct {
	PrescriptionID string `json:"prescription_id"`
}
