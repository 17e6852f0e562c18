package repository

import (
	"time"

	"doctor-portal-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DecisionUpdate carries the fields a doctor stamps onto a request when
// deciding on it.
type DecisionUpdate struct {
	Status      entity.RequestStatus
	DoctorID    entity.DoctorID
	DoctorNotes string
	UpdatedAt   time.Time
}

type PrescriptionRequestRepository interface {
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.PrescriptionRequest, error)
	// FindByStatuses returns requests in the given statuses with products
	// preloaded, ordered by the given column descending.
	FindByStatuses(db *gorm.DB, statuses []entity.RequestStatus, orderBy string) ([]entity.PrescriptionRequest, error)
	CountByStatuses(db *gorm.DB, statuses []entity.RequestStatus) (int64, error)
	// ApplyDecision updates a request only while it is still open
	// (status new or info_requested). Returns the number of affected rows:
	// 0 means the request was already decided by someone else.
	ApplyDecision(db *gorm.DB, id uuid.UUID, update DecisionUpdate) (int64, error)
}

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByStatus(db *gorm.DB, status string) ([]entity.Prescription, error)
	CountByStatus(db *gorm.DB, status string) (int64, error)
}
