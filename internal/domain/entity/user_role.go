package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole tags a user account with a role. A user may hold several roles,
// e.g. a doctor account that is also an admin.
type UserRole struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_roles_user_role" json:"user_id"`
	Role      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_user_roles_user_role" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

// Role name constants
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)
