package dto

// DoctorApprovalResponse is one entry in the admin review queue.
type DoctorApprovalResponse struct {
	ID            int64  `json:"id"`
	DoctorID      string `json:"doctor_id"`
	DoctorName    string `json:"doctor_name"`
	LicenseNumber string `json:"license_number"`
	Specialty     string `json:"specialty,omitempty"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

// AuditLogResponse is one audit trail entry in the admin listing.
type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	UserID    string                 `json:"user_id,omitempty"`
	UserEmail string                 `json:"user_email,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt string                 `json:"created_at"`
}
