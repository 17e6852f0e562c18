package service

import (
	"context"

	"doctor-portal-api/internal/domain/entity"
	"doctor-portal-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes audit trail entries for doctor-initiated mutations.
// Entries ride the caller's transaction; a failed audit write never fails
// the business operation.
type AuditService interface {
	LogDecision(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, requestID string, metadata map[string]interface{}) error
	LogAction(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata map[string]interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogDecision(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, requestID string, metadata map[string]interface{}) error {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	metadata["request_id"] = requestID
	return s.LogAction(ctx, tx, userID, action, metadata)
}

func (s *auditService) LogAction(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata map[string]interface{}) error {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: entity.JSON(metadata),
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
