package usecase

import (
	"context"

	"doctor-portal-api/internal/converter"
	"doctor-portal-api/internal/delivery/dto"
	"doctor-portal-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AdminUsecase interface {
	ListPendingDoctorApprovals(ctx context.Context) ([]dto.DoctorApprovalResponse, error)
	ListAuditLogs(ctx context.Context, page, limit int) ([]dto.AuditLogResponse, int64, error)
}

type adminUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	doctorApprovalRepo repository.DoctorApprovalRequestRepository
	auditLogRepo       repository.AuditLogRepository
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorApprovalRepo repository.DoctorApprovalRequestRepository,
	auditLogRepo repository.AuditLogRepository,
) AdminUsecase {
	return &adminUsecase{
		db:                 db,
		log:                log,
		doctorApprovalRepo: doctorApprovalRepo,
		auditLogRepo:       auditLogRepo,
	}
}

// ListPendingDoctorApprovals returns the manual review queue, oldest first.
func (u *adminUsecase) ListPendingDoctorApprovals(ctx context.Context) ([]dto.DoctorApprovalResponse, error) {
	approvals, err := u.doctorApprovalRepo.FindPending(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find pending doctor approvals: %+v", err)
		return nil, err
	}

	responses := make([]dto.DoctorApprovalResponse, 0, len(approvals))
	for i := range approvals {
		responses = append(responses, converter.ApprovalToResponse(&approvals[i], unknownName))
	}
	return responses, nil
}

// ListAuditLogs returns one page of the audit trail, newest first.
func (u *adminUsecase) ListAuditLogs(ctx context.Context, page, limit int) ([]dto.AuditLogResponse, int64, error) {
	offset := (page - 1) * limit

	logs, total, err := u.auditLogRepo.FindAll(u.db.WithContext(ctx), offset, limit)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, converter.AuditLogToResponse(&logs[i]))
	}
	return responses, total, nil
}
