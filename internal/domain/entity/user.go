package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	FirstName   *string   `gorm:"type:varchar(255)" json:"first_name"`
	LastName    *string   `gorm:"type:varchar(255)" json:"last_name"`
	PhoneNumber string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	IsActive    *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Roles   []UserRole `gorm:"foreignKey:UserID" json:"roles,omitempty"`
	Doctor  *Doctor    `gorm:"foreignKey:UserID" json:"doctor,omitempty"`
	Patient *Patient   `gorm:"foreignKey:UserID" json:"patient,omitempty"`
}

func (User) TableName() string {
	return "users"
}
