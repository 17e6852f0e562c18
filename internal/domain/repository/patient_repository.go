package repository

import (
	"doctor-portal-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.Patient, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error)
}
