package handler

import (
	"encoding/json"
	"net/http"

	"doctor-portal-api/internal/delivery/dto"
	"doctor-portal-api/internal/usecase"
	"doctor-portal-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase) *PatientHandler {
	return &PatientHandler{patientUsecase: patientUsecase}
}

// GetPatientInfo returns the intake detail for the patient dialog
func (h *PatientHandler) GetPatientInfo(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	info, err := h.patientUsecase.GetPatientInfo(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient info")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", info)
}

// GetPatientNames resolves a batch of patient ids to display names
func (h *PatientHandler) GetPatientNames(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientNamesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	patientIDs := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
			return
		}
		patientIDs = append(patientIDs, id)
	}

	names, err := h.patientUsecase.GetPatientNames(r.Context(), patientIDs)
	if err != nil {
		response.InternalServerError(w, "Failed to get patient names")
		return
	}

	response.Success(w, http.StatusOK, "Patient names retrieved successfully", names)
}
