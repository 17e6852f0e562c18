package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"doctor-portal-api/internal/converter"
	"doctor-portal-api/internal/delivery/dto"
	"doctor-portal-api/internal/domain/entity"
	"doctor-portal-api/internal/domain/repository"
	"doctor-portal-api/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound       = errors.New("prescription request not found")
	ErrRequestAlreadyDecided = errors.New("prescription request already decided")
	ErrDoctorProfileNotFound = errors.New("doctor profile not found")
	ErrNotesRequired         = errors.New("notes are required")
)

type RequestDecisionUsecase interface {
	Approve(ctx context.Context, userID, requestID uuid.UUID, req *dto.DecisionRequest) (*dto.ApprovalResponse, error)
	Deny(ctx context.Context, userID, requestID uuid.UUID, req *dto.DecisionRequest) error
	RequestInfo(ctx context.Context, userID, requestID uuid.UUID, req *dto.DecisionRequest) error
}

type requestDecisionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	doctorRepo       repository.DoctorRepository
	requestRepo      repository.PrescriptionRequestRepository
	prescriptionRepo repository.PrescriptionRepository
	auditService     service.AuditService
	redisClient      *redis.Client
}

func NewRequestDecisionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	requestRepo repository.PrescriptionRequestRepository,
	prescriptionRepo repository.PrescriptionRepository,
	auditService service.AuditService,
	redisClient *redis.Client,
) RequestDecisionUsecase {
	return &requestDecisionUsecase{
		db:               db,
		log:              log,
		doctorRepo:       doctorRepo,
		requestRepo:      requestRepo,
		prescriptionRepo: prescriptionRepo,
		auditService:     auditService,
		redisClient:      redisClient,
	}
}

// Approve flips the request to approved and creates the prescription in the
// same transaction. The status update only matches rows that are still open,
// so a request decided by another doctor in the meantime fails with
// ErrRequestAlreadyDecided and no prescription is written.
func (u *requestDecisionUsecase) Approve(ctx context.Context, userID, requestID uuid.UUID, req *dto.DecisionRequest) (*dto.ApprovalResponse, error) {
	doctor, err := u.resolveDoctor(ctx, userID)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.requestRepo.FindByID(tx, requestID)
	if err != nil {
		u.log.Warnf("Failed to find prescription request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	now := time.Now()
	rows, err := u.requestRepo.ApplyDecision(tx, requestID, repository.DecisionUpdate{
		Status:      entity.RequestStatusApproved,
		DoctorID:    doctor.ID,
		DoctorNotes: strings.TrimSpace(req.Notes),
		UpdatedAt:   now,
	})
	if err != nil {
		u.log.Warnf("Failed to update request status: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrRequestAlreadyDecided
	}

	plan, err := converter.BuildPrescriptionPlan(request.Products)
	if err != nil {
		u.log.Warnf("Failed to serialize prescription plan: %+v", err)
		return nil, err
	}

	// The patient consented to AGB and privacy policy when submitting the
	// request, the approved prescription records that consent.
	prescription := &entity.Prescription{
		PatientID:              request.PatientID,
		DoctorID:               doctor.ID,
		Status:                 entity.PrescriptionStatusApproved,
		PrescriptionPlan:       plan,
		PrescriptionDate:       now,
		TotalAmount:            request.TotalAmount,
		Notes:                  strings.TrimSpace(req.Notes),
		HasAgreedAGB:           true,
		HasAgreedPrivacyPolicy: true,
	}
	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	if err := u.auditService.LogDecision(ctx, tx, &userID, entity.AuditActionRequestApprove, requestID.String(), map[string]interface{}{
		"prescription_id": prescription.ID.String(),
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.invalidateStatsCache(ctx)

	return &dto.ApprovalResponse{PrescriptionID: prescription.ID.String()}, nil
}

// Deny closes the request with the doctor's reasoning. Notes are mandatory:
// a patient always learns why a request was turned down.
func (u *requestDecisionUsecase) Deny(ctx context.Context, userID, requestID uuid.UUID, req *dto.DecisionRequest) error {
	notes := strings.TrimSpace(req.Notes)
	if notes == "" {
		return ErrNotesRequired
	}

	if err := u.decide(ctx, userID, requestID, entity.RequestStatusDenied, notes, entity.AuditActionRequestDeny); err != nil {
		return err
	}

	u.invalidateStatsCache(ctx)
	return nil
}

// RequestInfo asks the patient for additional information. The request stays
// open and can still be approved or denied afterwards.
func (u *requestDecisionUsecase) RequestInfo(ctx context.Context, userID, requestID uuid.UUID, req *dto.DecisionRequest) error {
	notes := strings.TrimSpace(req.Notes)
	if notes == "" {
		return ErrNotesRequired
	}

	return u.decide(ctx, userID, requestID, entity.RequestStatusInfoRequested, notes, entity.AuditActionRequestInfo)
}

func (u *requestDecisionUsecase) decide(ctx context.Context, userID, requestID uuid.UUID, status entity.RequestStatus, notes, auditAction string) error {
	doctor, err := u.resolveDoctor(ctx, userID)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.requestRepo.FindByID(tx, requestID)
	if err != nil {
		u.log.Warnf("Failed to find prescription request: %+v", err)
		return err
	}
	if request == nil {
		return ErrRequestNotFound
	}

	rows, err := u.requestRepo.ApplyDecision(tx, requestID, repository.DecisionUpdate{
		Status:      status,
		DoctorID:    doctor.ID,
		DoctorNotes: notes,
		UpdatedAt:   time.Now(),
	})
	if err != nil {
		u.log.Warnf("Failed to update request status: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrRequestAlreadyDecided
	}

	if err := u.auditService.LogDecision(ctx, tx, &userID, auditAction, requestID.String(), map[string]interface{}{
		"status": string(status),
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// resolveDoctor maps the authenticated user to its doctor profile. Decisions
// are stamped with the doctor id, never the login user id.
func (u *requestDecisionUsecase) resolveDoctor(ctx context.Context, userID uuid.UUID) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorProfileNotFound
	}
	return doctor, nil
}

func (u *requestDecisionUsecase) invalidateStatsCache(ctx context.Context) {
	if err := u.redisClient.Del(ctx, dashboardStatsCacheKey).Err(); err != nil {
		u.log.Warnf("Failed to invalidate dashboard stats cache: %+v", err)
	}
}
