package usecase

import (
	"context"

	"doctor-portal-api/internal/converter"
	"doctor-portal-api/internal/delivery/dto"
	"doctor-portal-api/internal/domain/entity"
	"doctor-portal-api/internal/domain/repository"
	"doctor-portal-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DoctorProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.DoctorProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.DoctorProfileResponse, error)
}

type doctorProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewDoctorProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *doctorProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.DoctorProfileResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorProfileNotFound
	}

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}

	return converter.DoctorToProfileResponse(doctor, user), nil
}

// UpdateProfile applies partial updates to the mutable profile fields.
// License number and verification flags are not editable through this path.
func (u *doctorProfileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.DoctorProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorProfileNotFound
	}

	if req.Title != "" {
		doctor.Title = req.Title
	}
	if req.Specialty != "" {
		doctor.Specialty = req.Specialty
	}
	if req.PhoneNumber != "" {
		doctor.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		doctor.Address = entity.JSON{
			"street":      req.Address.Street,
			"city":        req.Address.City,
			"postal_code": req.Address.PostalCode,
			"country":     req.Address.Country,
		}
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, &userID, entity.AuditActionProfileUpdate, map[string]interface{}{
		"doctor_id": doctor.ID.String(),
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}

	return converter.DoctorToProfileResponse(doctor, user), nil
}
