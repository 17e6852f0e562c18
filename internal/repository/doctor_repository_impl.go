package repository

import (
	"errors"

	"doctor-portal-api/internal/domain/entity"
	domainRepo "doctor-portal-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("User").Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByIDs(db *gorm.DB, ids []entity.DoctorID) ([]entity.Doctor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var doctors []entity.Doctor
	err := db.Preload("User").Where("id IN ?", ids).Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByLicenseNumber(db *gorm.DB, licenseNumber string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("license_number = ?", licenseNumber).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Save(doctor).Error
}

type doctorApprovalRequestRepository struct{}

func NewDoctorApprovalRequestRepository() domainRepo.DoctorApprovalRequestRepository {
	return &doctorApprovalRequestRepository{}
}

func (r *doctorApprovalRequestRepository) Create(db *gorm.DB, req *entity.DoctorApprovalRequest) error {
	return db.Create(req).Error
}

func (r *doctorApprovalRequestRepository) FindPending(db *gorm.DB) ([]entity.DoctorApprovalRequest, error) {
	var requests []entity.DoctorApprovalRequest
	err := db.Preload("Doctor.User").
		Where("status = ?", entity.DoctorApprovalPending).
		Order("created_at ASC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
