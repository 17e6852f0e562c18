package dto

// Request DTOs

type UpdateProfileRequest struct {
	Title       string          `json:"title" validate:"omitempty,max=50"`
	Specialty   string          `json:"specialty" validate:"omitempty,max=100"`
	PhoneNumber string          `json:"phone_number" validate:"omitempty,min=6,max=20"`
	Address     *AddressRequest `json:"address" validate:"omitempty"`
}

// Response DTOs

type DoctorProfileResponse struct {
	ID            string                 `json:"id"`
	Email         string                 `json:"email"`
	FirstName     string                 `json:"first_name"`
	LastName      string                 `json:"last_name"`
	Title         string                 `json:"title,omitempty"`
	Specialty     string                 `json:"specialty,omitempty"`
	LicenseNumber string                 `json:"license_number"`
	PhoneNumber   string                 `json:"phone_number,omitempty"`
	Address       map[string]interface{} `json:"address,omitempty"`
	IsVerified    bool                   `json:"is_verified"`
	IsApproved    bool                   `json:"is_approved"`
}
