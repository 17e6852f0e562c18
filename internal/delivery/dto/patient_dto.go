package dto

// PatientNamesRequest asks for display names of a batch of patients.
type PatientNamesRequest struct {
	IDs []string `json:"ids"`
}

// PatientInfoResponse is the detail view shown in the patient dialog.
type PatientInfoResponse struct {
	ID                 string `json:"id"`
	UserID             string `json:"user_id"`
	Name               string `json:"name"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
	Age                *int   `json:"age"`
	Symptoms           string `json:"symptoms,omitempty"`
	TakesMedication    bool   `json:"takes_medication"`
	Medications        string `json:"medications,omitempty"`
	HasAllergies       bool   `json:"has_allergies"`
	Allergies          string `json:"allergies,omitempty"`
	HasChronicDiseases bool   `json:"has_chronic_diseases"`
	ChronicDiseases    string `json:"chronic_diseases,omitempty"`
}
