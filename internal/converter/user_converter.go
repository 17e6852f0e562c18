package converter

import (
	"time"

	"doctor-portal-api/internal/delivery/dto"
	"doctor-portal-api/internal/domain/entity"
	"doctor-portal-api/internal/service"
)

func UserToResponse(user *entity.User) *dto.UserResponse {
	var firstName, lastName string
	if user.FirstName != nil {
		firstName = *user.FirstName
	}
	if user.LastName != nil {
		lastName = *user.LastName
	}

	return &dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: user.PhoneNumber,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func DoctorToProfileResponse(doctor *entity.Doctor, user *entity.User) *dto.DoctorProfileResponse {
	resp := &dto.DoctorProfileResponse{
		ID:            doctor.ID.String(),
		Title:         doctor.Title,
		Specialty:     doctor.Specialty,
		LicenseNumber: doctor.LicenseNumber,
		PhoneNumber:   doctor.PhoneNumber,
		Address:       map[string]interface{}(doctor.Address),
		IsVerified:    doctor.IsVerified,
		IsApproved:    doctor.IsApproved,
	}
	if user != nil {
		resp.Email = user.Email
		if user.FirstName != nil {
			resp.FirstName = *user.FirstName
		}
		if user.LastName != nil {
			resp.LastName = *user.LastName
		}
	}
	return resp
}

// PatientToInfoResponse maps a patient profile plus its login user to the
// detail view. user may be an empty struct when the account was deleted.
func PatientToInfoResponse(patient *entity.Patient, user *entity.User, now time.Time, fallback string) *dto.PatientInfoResponse {
	var firstName, lastName string
	if user.FirstName != nil {
		firstName = *user.FirstName
	}
	if user.LastName != nil {
		lastName = *user.LastName
	}

	return &dto.PatientInfoResponse{
		ID:                 patient.ID.String(),
		UserID:             patient.UserID.String(),
		Name:               service.DisplayName(user.FirstName, user.LastName, fallback),
		FirstName:          firstName,
		LastName:           lastName,
		Email:              user.Email,
		Age:                service.Age(patient.BirthDate, now),
		Symptoms:           patient.Symptoms,
		TakesMedication:    patient.TakesMedication,
		Medications:        patient.Medications,
		HasAllergies:       patient.HasAllergies,
		Allergies:          patient.Allergies,
		HasChronicDiseases: patient.HasChronicDiseases,
		ChronicDiseases:    patient.ChronicDiseases,
	}
}
