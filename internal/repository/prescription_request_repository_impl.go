package repository

import (
	"errors"

	"doctor-portal-api/internal/domain/entity"
	domainRepo "doctor-portal-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type prescriptionRequestRepository struct{}

func NewPrescriptionRequestRepository() domainRepo.PrescriptionRequestRepository {
	return &prescriptionRequestRepository{}
}

func (r *prescriptionRequestRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.PrescriptionRequest, error) {
	var request entity.PrescriptionRequest
	err := db.Preload("Products.Product").Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *prescriptionRequestRepository) FindByStatuses(db *gorm.DB, statuses []entity.RequestStatus, orderBy string) ([]entity.PrescriptionRequest, error) {
	if orderBy == "" {
		orderBy = "created_at"
	}
	var requests []entity.PrescriptionRequest
	err := db.Preload("Products.Product").
		Where("status IN ?", statuses).
		Order(orderBy + " DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *prescriptionRequestRepository) CountByStatuses(db *gorm.DB, statuses []entity.RequestStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.PrescriptionRequest{}).
		Where("status IN ?", statuses).
		Count(&count).Error
	return count, err
}

// ApplyDecision flips a request's status atomically: the WHERE clause only
// matches rows still open, so two concurrent decisions cannot both succeed.
func (r *prescriptionRequestRepository) ApplyDecision(db *gorm.DB, id uuid.UUID, update domainRepo.DecisionUpdate) (int64, error) {
	result := db.Model(&entity.PrescriptionRequest{}).
		Where("id = ? AND status IN ?", id, entity.OpenStatuses).
		Updates(map[string]interface{}{
			"status":       update.Status,
			"doctor_id":    update.DoctorID,
			"doctor_notes": update.DoctorNotes,
			"updated_at":   update.UpdatedAt,
		})
	return result.RowsAffected, result.Error
}

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Create(prescription).Error
}

func (r *prescriptionRepository) FindByStatus(db *gorm.DB, status string) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Where("status = ?", status).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) CountByStatus(db *gorm.DB, status string) (int64, error) {
	var count int64
	err := db.Model(&entity.Prescription{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
