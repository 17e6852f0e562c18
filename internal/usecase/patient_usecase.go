package usecase

import (
	"context"
	"errors"
	"time"

	"doctor-portal-api/internal/converter"
	"doctor-portal-api/internal/delivery/dto"
	"doctor-portal-api/internal/domain/entity"
	"doctor-portal-api/internal/domain/repository"
	"doctor-portal-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	GetPatientInfo(ctx context.Context, patientID uuid.UUID) (*dto.PatientInfoResponse, error)
	GetPatientNames(ctx context.Context, patientIDs []uuid.UUID) (map[string]string, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	userRepo    repository.UserRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		userRepo:    userRepo,
	}
}

// GetPatientInfo returns the intake detail shown in the patient dialog.
// A patient whose login user was deleted still renders, with empty contact
// fields and the placeholder name.
func (u *patientUsecase) GetPatientInfo(ctx context.Context, patientID uuid.UUID) (*dto.PatientInfoResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	user, err := u.userRepo.FindByID(db, patient.UserID)
	if err != nil {
		u.log.Warnf("Failed to find patient user: %+v", err)
		return nil, err
	}
	if user == nil {
		user = &entity.User{}
	}

	return converter.PatientToInfoResponse(patient, user, time.Now(), unknownName), nil
}

// GetPatientNames maps patient ids to display names in two batched queries.
// Unknown ids and patients without a login user map to the placeholder name.
func (u *patientUsecase) GetPatientNames(ctx context.Context, patientIDs []uuid.UUID) (map[string]string, error) {
	names := make(map[string]string, len(patientIDs))
	for _, id := range patientIDs {
		names[id.String()] = unknownName
	}
	if len(patientIDs) == 0 {
		return names, nil
	}

	db := u.db.WithContext(ctx)

	patients, err := u.patientRepo.FindByIDs(db, patientIDs)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	userIDs := make([]uuid.UUID, 0, len(patients))
	for _, patient := range patients {
		userIDs = append(userIDs, patient.UserID)
	}

	users, err := u.userRepo.FindByIDs(db, userIDs)
	if err != nil {
		u.log.Warnf("Failed to find patient users: %+v", err)
		return nil, err
	}
	usersByID := make(map[uuid.UUID]entity.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	for _, patient := range patients {
		if user, ok := usersByID[patient.UserID]; ok {
			names[patient.ID.String()] = service.DisplayName(user.FirstName, user.LastName, unknownName)
		}
	}

	return names, nil
}
