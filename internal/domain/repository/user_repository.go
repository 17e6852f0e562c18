package repository

import (
	"doctor-portal-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
}

type UserRoleRepository interface {
	Create(db *gorm.DB, role *entity.UserRole) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.UserRole, error)
}
