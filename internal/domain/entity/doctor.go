package entity

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DoctorID is the doctor profile's own key, distinct from the login User.ID.
// Keeping it a separate type makes stamping a raw user id into a doctor_id
// column a compile error instead of a latent data bug.
type DoctorID uuid.UUID

func (id DoctorID) String() string {
	return uuid.UUID(id).String()
}

func (id DoctorID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

// Value implements driver.Valuer.
func (id DoctorID) Value() (driver.Value, error) {
	return uuid.UUID(id).String(), nil
}

// Scan implements sql.Scanner.
func (id *DoctorID) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		parsed, err := uuid.Parse(v)
		if err != nil {
			return err
		}
		*id = DoctorID(parsed)
		return nil
	case []byte:
		parsed, err := uuid.ParseBytes(v)
		if err != nil {
			return err
		}
		*id = DoctorID(parsed)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DoctorID", value)
	}
}

// Doctor represents a professional profile, one-to-one with User
type Doctor struct {
	ID            DoctorID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Title         string    `gorm:"type:varchar(50)" json:"title,omitempty"`
	Specialty     string    `gorm:"type:varchar(100);index" json:"specialty,omitempty"`
	LicenseNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	PhoneNumber   string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Address       JSON      `gorm:"type:jsonb" json:"address,omitempty"`
	IsVerified    bool      `gorm:"not null;default:false;index" json:"is_verified"`
	IsApproved    bool      `gorm:"not null;default:false" json:"is_approved"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DoctorApprovalRequestStatus values
const (
	DoctorApprovalPending  = "pending"
	DoctorApprovalApproved = "approved"
	DoctorApprovalRejected = "rejected"
)

// DoctorApprovalRequest queues a freshly registered doctor for manual review.
type DoctorApprovalRequest struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  DoctorID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorApprovalRequest) TableName() string {
	return "doctor_approval_requests"
}
