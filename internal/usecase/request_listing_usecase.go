package usecase

import (
	"context"
	"strings"
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

// unknownName is rendered when a request's patient or user row is missing.
const unknownName = "Unknown"

type RequestListingUsecase interface {
	ListPending(ctx context.Context) (*dto.RequestListResponse, error)
	ListApproved(ctx context.Context) (*dto.RequestListResponse, error)
	ListDenied(ctx context.Context) (*dto.RequestListResponse, error)
}

type requestListingUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	requestRepo      repository.PrescriptionRequestRepository
	prescriptionRepo repository.PrescriptionRepository
	patientRepo      repository.PatientRepository
	userRepo         repository.UserRepository
	doctorRepo       repository.DoctorRepository
}

func NewRequestListingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	requestRepo repository.PrescriptionRequestRepository,
	prescriptionRepo repository.PrescriptionRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
) RequestListingUsecase {
	return &requestListingUsecase{
		db:               db,
		log:              log,
		requestRepo:      requestRepo,
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
		userRepo:         userRepo,
		doctorRepo:       doctorRepo,
	}
}

// ListPending returns all requests a doctor can still decide on, newest
// first. Requests with unresolvable requesters are kept and rendered with
// placeholder identity, never dropped.
func (u *requestListingUsecase) ListPending(ctx context.Context) (*dto.RequestListResponse, error) {
	db := u.db.WithContext(ctx)

	requests, err := u.requestRepo.FindByStatuses(db, entity.OpenStatuses, "created_at")
	if err != nil {
		u.log.Warnf("Failed to list pending requests: %+v", err)
		return nil, err
	}

	patients, users, _, err := u.resolveRequestIdentities(db, requests)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]dto.RequestResponse, 0, len(requests))
	for i := range requests {
		request := &requests[i]
		resolved := service.ResolveIdentity(service.IdentityRef{
			PatientID: request.PatientID,
			UserID:    request.UserID,
		}, patients, users)
		responses = append(responses, converter.RequestToResponse(request, resolved, now, unknownName))
	}

	return &dto.RequestListResponse{Requests: responses, Total: len(responses)}, nil
}

// ListDenied returns denied requests most recently decided first, each with
// the name of the doctor who denied it.
func (u *requestListingUsecase) ListDenied(ctx context.Context) (*dto.RequestListResponse, error) {
	db := u.db.WithContext(ctx)

	requests, err := u.requestRepo.FindByStatuses(db, []entity.RequestStatus{entity.RequestStatusDenied}, "updated_at")
	if err != nil {
		u.log.Warnf("Failed to list denied requests: %+v", err)
		return nil, err
	}

	patients, users, doctorNames, err := u.resolveRequestIdentities(db, requests)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]dto.RequestResponse, 0, len(requests))
	for i := range requests {
		request := &requests[i]
		resolved := service.ResolveIdentity(service.IdentityRef{
			PatientID: request.PatientID,
			UserID:    request.UserID,
		}, patients, users)

		resp := converter.RequestToResponse(request, resolved, now, unknownName)
		if request.DoctorID != nil {
			resp.DeniedBy = doctorNames[*request.DoctorID]
		}
		resp.DeniedDate = request.UpdatedAt.Format(time.RFC3339)
		responses = append(responses, resp)
	}

	return &dto.RequestListResponse{Requests: responses, Total: len(responses)}, nil
}

// ListApproved reads from the prescriptions table, where every approval
// leaves exactly one row. A prescription whose plan fails to parse is still
// listed, with an empty product list.
func (u *requestListingUsecase) ListApproved(ctx context.Context) (*dto.RequestListResponse, error) {
	db := u.db.WithContext(ctx)

	prescriptions, err := u.prescriptionRepo.FindByStatus(db, entity.PrescriptionStatusApproved)
	if err != nil {
		u.log.Warnf("Failed to list approved prescriptions: %+v", err)
		return nil, err
	}

	patientIDs := make([]uuid.UUID, 0, len(prescriptions))
	doctorIDs := make([]entity.DoctorID, 0, len(prescriptions))
	for i := range prescriptions {
		if prescriptions[i].PatientID != nil {
			patientIDs = append(patientIDs, *prescriptions[i].PatientID)
		}
		if !prescriptions[i].DoctorID.IsZero() {
			doctorIDs = append(doctorIDs, prescriptions[i].DoctorID)
		}
	}

	patients, users, err := u.loadPatientsAndUsers(db, patientIDs, nil)
	if err != nil {
		return nil, err
	}

	doctorNames, err := u.loadDoctorNames(db, doctorIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]dto.RequestResponse, 0, len(prescriptions))
	for i := range prescriptions {
		prescription := &prescriptions[i]
		resolved := service.ResolveIdentity(service.IdentityRef{
			PatientID: prescription.PatientID,
		}, patients, users)

		products, err := converter.ParsePrescriptionPlan(prescription.PrescriptionPlan)
		if err != nil {
			u.log.Warnf("Failed to parse prescription plan for %s: %+v", prescription.ID, err)
			products = nil
		}

		approvedBy := doctorNames[prescription.DoctorID]
		responses = append(responses, converter.PrescriptionToResponse(prescription, resolved, products, approvedBy, now, unknownName))
	}

	return &dto.RequestListResponse{Requests: responses, Total: len(responses)}, nil
}

// resolveRequestIdentities batch loads the patients, users and deciding
// doctors referenced by a page of requests. One query per table regardless
// of page size.
func (u *requestListingUsecase) resolveRequestIdentities(db *gorm.DB, requests []entity.PrescriptionRequest) (map[uuid.UUID]entity.Patient, map[uuid.UUID]entity.User, map[entity.DoctorID]string, error) {
	patientIDs := make([]uuid.UUID, 0, len(requests))
	userIDs := make([]uuid.UUID, 0, len(requests))
	doctorIDs := make([]entity.DoctorID, 0, len(requests))
	for i := range requests {
		if requests[i].PatientID != nil {
			patientIDs = append(patientIDs, *requests[i].PatientID)
		}
		if requests[i].UserID != nil {
			userIDs = append(userIDs, *requests[i].UserID)
		}
		if requests[i].DoctorID != nil {
			doctorIDs = append(doctorIDs, *requests[i].DoctorID)
		}
	}

	patients, users, err := u.loadPatientsAndUsers(db, patientIDs, userIDs)
	if err != nil {
		return nil, nil, nil, err
	}

	doctorNames, err := u.loadDoctorNames(db, doctorIDs)
	if err != nil {
		return nil, nil, nil, err
	}

	return patients, users, doctorNames, nil
}

func (u *requestListingUsecase) loadPatientsAndUsers(db *gorm.DB, patientIDs, userIDs []uuid.UUID) (map[uuid.UUID]entity.Patient, map[uuid.UUID]entity.User, error) {
	patientRows, err := u.patientRepo.FindByIDs(db, patientIDs)
	if err != nil {
		u.log.Warnf("Failed to load patients: %+v", err)
		return nil, nil, err
	}

	patients := make(map[uuid.UUID]entity.Patient, len(patientRows))
	for _, patient := range patientRows {
		patients[patient.ID] = patient
		userIDs = append(userIDs, patient.UserID)
	}

	userRows, err := u.userRepo.FindByIDs(db, userIDs)
	if err != nil {
		u.log.Warnf("Failed to load users: %+v", err)
		return nil, nil, err
	}

	users := make(map[uuid.UUID]entity.User, len(userRows))
	for _, user := range userRows {
		users[user.ID] = user
	}

	return patients, users, nil
}

// loadDoctorNames resolves doctor ids to display names like "Dr. Jane Doe".
func (u *requestListingUsecase) loadDoctorNames(db *gorm.DB, doctorIDs []entity.DoctorID) (map[entity.DoctorID]string, error) {
	names := make(map[entity.DoctorID]string, len(doctorIDs))
	if len(doctorIDs) == 0 {
		return names, nil
	}

	doctors, err := u.doctorRepo.FindByIDs(db, doctorIDs)
	if err != nil {
		u.log.Warnf("Failed to load doctors: %+v", err)
		return nil, err
	}

	userIDs := make([]uuid.UUID, 0, len(doctors))
	for _, doctor := range doctors {
		userIDs = append(userIDs, doctor.UserID)
	}

	users, err := u.userRepo.FindByIDs(db, userIDs)
	if err != nil {
		u.log.Warnf("Failed to load doctor users: %+v", err)
		return nil, err
	}

	usersByID := make(map[uuid.UUID]entity.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	for _, doctor := range doctors {
		user := usersByID[doctor.UserID]
		name := service.DisplayName(user.FirstName, user.LastName, unknownName)
		if doctor.Title != "" && name != unknownName {
			name = strings.TrimSpace(doctor.Title + " " + name)
		}
		names[doctor.ID] = name
	}

	return names, nil
}
