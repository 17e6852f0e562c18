package repository

import (
	"doctor-portal-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	FindByIDs(db *gorm.DB, ids []entity.DoctorID) ([]entity.Doctor, error)
	FindByLicenseNumber(db *gorm.DB, licenseNumber string) (*entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
}

type DoctorApprovalRequestRepository interface {
	Create(db *gorm.DB, req *entity.DoctorApprovalRequest) error
	FindPending(db *gorm.DB) ([]entity.DoctorApprovalRequest, error)
}
