package converter

import (
	"strings"
	"time"

	"doctor-portal-api/internal/delivery/dto"
	"doctor-portal-api/internal/domain/entity"
	"doctor-portal-api/internal/service"
)

// ApprovalToResponse maps a review queue entry for the admin listing. The
// doctor and its user arrive preloaded on the approval request.
func ApprovalToResponse(approval *entity.DoctorApprovalRequest, fallback string) dto.DoctorApprovalResponse {
	doctor := approval.Doctor
	name := service.DisplayName(doctor.User.FirstName, doctor.User.LastName, fallback)
	if doctor.Title != "" && name != fallback {
		name = strings.TrimSpace(doctor.Title + " " + name)
	}

	return dto.DoctorApprovalResponse{
		ID:            approval.ID,
		DoctorID:      doctor.ID.String(),
		DoctorName:    name,
		LicenseNumber: doctor.LicenseNumber,
		Specialty:     doctor.Specialty,
		Status:        approval.Status,
		CreatedAt:     approval.CreatedAt.Format(time.RFC3339),
	}
}

// AuditLogToResponse maps an audit trail entry for the admin listing.
func AuditLogToResponse(log *entity.AuditLog) dto.AuditLogResponse {
	resp := dto.AuditLogResponse{
		ID:        log.ID,
		Action:    log.Action,
		Metadata:  map[string]interface{}(log.Metadata),
		CreatedAt: log.CreatedAt.Format(time.RFC3339),
	}
	if log.UserID != nil {
		resp.UserID = log.UserID.String()
	}
	if log.User != nil {
		resp.UserEmail = log.User.Email
	}
	return resp
}
