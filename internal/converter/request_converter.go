package converter

import (
	"encoding/json"
	"net/url"
	"time"

	"doctor-portal-api/internal/delivery/dto"
	"doctor-portal-api/internal/domain/entity"
	"doctor-portal-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const genericProfileImage = "/user-icon.svg"

// profileImage returns a placeholder avatar keyed by the patient name, or a
// generic icon when the name could not be resolved.
func profileImage(name, fallback string) string {
	if name == "" || name == fallback {
		return genericProfileImage
	}
	return "/placeholder.svg?height=64&width=64&query=" + url.QueryEscape(name)
}

// RequestToResponse maps a prescription request and its resolved identity to
// the view model. now is the reference time for age computation; fallback is
// the display name used when no user resolves.
func RequestToResponse(request *entity.PrescriptionRequest, resolved service.ResolvedIdentity, now time.Time, fallback string) dto.RequestResponse {
	name := service.DisplayName(resolved.User.FirstName, resolved.User.LastName, fallback)

	var patientID string
	if request.PatientID != nil {
		patientID = request.PatientID.String()
	} else if resolved.Patient.ID != uuid.Nil {
		patientID = resolved.Patient.ID.String()
	}

	var userID string
	if request.UserID != nil {
		userID = request.UserID.String()
	} else if resolved.User.ID != uuid.Nil {
		userID = resolved.User.ID.String()
	}

	products := make([]dto.RequestProductResponse, 0, len(request.Products))
	for _, rp := range request.Products {
		products = append(products, dto.RequestProductResponse{
			ID:       rp.Product.ID.String(),
			Name:     rp.Product.Name,
			Quantity: rp.QuantityGrams,
			Unit:     "g",
		})
	}

	return dto.RequestResponse{
		ID:                request.ID.String(),
		ExternalID:        request.DisplayID(),
		PatientID:         patientID,
		UserID:            userID,
		PatientName:       name,
		Age:               service.Age(resolved.Patient.BirthDate, now),
		RequestDate:       request.CreatedAt.Format(time.RFC3339),
		Status:            string(request.Status),
		MedicalCondition:  request.MedicalCondition,
		Preferences:       request.Preferences,
		MedicationHistory: request.MedicationHistory,
		AdditionalNotes:   request.AdditionalNotes,
		DoctorNotes:       request.DoctorNotes,
		TotalAmount:       request.TotalAmount,
		ProfileImage:      profileImage(name, fallback),
		Products:          products,
	}
}

// prescriptionPlanItem is one entry of a prescription_plan JSON array.
type prescriptionPlanItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
}

// BuildPrescriptionPlan serializes the requested products into the
// prescription_plan JSON stored on an approved prescription.
func BuildPrescriptionPlan(products []entity.RequestProduct) (string, error) {
	items := make([]prescriptionPlanItem, 0, len(products))
	for _, rp := range products {
		items = append(items, prescriptionPlanItem{
			ID:       rp.Product.ID.String(),
			Name:     rp.Product.Name,
			Quantity: rp.QuantityGrams,
		})
	}

	encoded, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// ParsePrescriptionPlan decodes a prescription_plan value into product
// entries. The column historically holds either a JSON-encoded array or
// free text; anything that is not a JSON array yields an empty list and an
// error for the caller to log.
func ParsePrescriptionPlan(plan string) ([]dto.RequestProductResponse, error) {
	if plan == "" {
		return nil, nil
	}

	var items []prescriptionPlanItem
	if err := json.Unmarshal([]byte(plan), &items); err != nil {
		return nil, err
	}

	products := make([]dto.RequestProductResponse, 0, len(items))
	for _, item := range items {
		products = append(products, dto.RequestProductResponse{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     "g",
		})
	}
	return products, nil
}

// PrescriptionToResponse maps an approved prescription row to the same view
// model the request listings use.
func PrescriptionToResponse(prescription *entity.Prescription, resolved service.ResolvedIdentity, products []dto.RequestProductResponse, approvedBy string, now time.Time, fallback string) dto.RequestResponse {
	name := service.DisplayName(resolved.User.FirstName, resolved.User.LastName, fallback)

	var patientID string
	if prescription.PatientID != nil {
		patientID = prescription.PatientID.String()
	}

	var userID string
	if resolved.User.ID != uuid.Nil {
		userID = resolved.User.ID.String()
	}

	id := prescription.ID.String()
	externalID := id
	if len(externalID) > 8 {
		externalID = externalID[:8]
	}

	if products == nil {
		products = []dto.RequestProductResponse{}
	}

	return dto.RequestResponse{
		ID:           id,
		ExternalID:   externalID,
		PatientID:    patientID,
		UserID:       userID,
		PatientName:  name,
		Age:          service.Age(resolved.Patient.BirthDate, now),
		RequestDate:  prescription.CreatedAt.Format(time.RFC3339),
		Status:       prescription.Status,
		DoctorNotes:  prescription.Notes,
		TotalAmount:  prescription.TotalAmount,
		ProfileImage: profileImage(name, fallback),
		Products:     products,
		ApprovedBy:   approvedBy,
	}
}
