package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AddressRequest struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// RegisterDoctorRequest carries the doctor signup form.
type RegisterDoctorRequest struct {
	Email         string         `json:"email" validate:"required,email"`
	Password      string         `json:"password" validate:"required,min=8"`
	FirstName     string         `json:"first_name" validate:"required,min=2"`
	LastName      string         `json:"last_name" validate:"required,min=2"`
	Title         string         `json:"title" validate:"omitempty,max=50"`
	Specialty     string         `json:"specialty" validate:"omitempty,max=100"`
	LicenseNumber string         `json:"license_number" validate:"required"`
	PhoneNumber   string         `json:"phone_number" validate:"required,min=6,max=20"`
	Address       AddressRequest `json:"address" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *UserResponse `json:"user,omitempty"`
}

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
