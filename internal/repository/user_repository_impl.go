package repository

import (
	"errors"

	"doctor-portal-api/internal/domain/entity"
	domainRepo "doctor-portal-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []entity.User
	err := db.Where("id IN ?", ids).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(db *gorm.DB, user *entity.User) error {
	return db.Save(user).Error
}

type userRoleRepository struct{}

func NewUserRoleRepository() domainRepo.UserRoleRepository {
	return &userRoleRepository{}
}

func (r *userRoleRepository) Create(db *gorm.DB, role *entity.UserRole) error {
	return db.Create(role).Error
}

func (r *userRoleRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.UserRole, error) {
	var roles []entity.UserRole
	err := db.Where("user_id = ?", userID).Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}
