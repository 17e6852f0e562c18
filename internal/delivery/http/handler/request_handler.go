package handler

import (
	"encoding/json"
	"net/http"

	"doctor-portal-api/internal/delivery/dto"
	"doctor-portal-api/internal/delivery/http/middleware"
	"doctor-portal-api/internal/usecase"
	"doctor-portal-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type RequestHandler struct {
	listingUsecase  usecase.RequestListingUsecase
	decisionUsecase usecase.RequestDecisionUsecase
}

func NewRequestHandler(listingUsecase usecase.RequestListingUsecase, decisionUsecase usecase.RequestDecisionUsecase) *RequestHandler {
	return &RequestHandler{
		listingUsecase:  listingUsecase,
		decisionUsecase: decisionUsecase,
	}
}

// ListPending returns open requests, newest first
func (h *RequestHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	list, err := h.listingUsecase.ListPending(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list pending requests")
		return
	}

	response.Success(w, http.StatusOK, "Pending requests retrieved successfully", list)
}

// ListApproved returns issued prescriptions, newest first
func (h *RequestHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	list, err := h.listingUsecase.ListApproved(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list approved requests")
		return
	}

	response.Success(w, http.StatusOK, "Approved requests retrieved successfully", list)
}

// ListDenied returns denied requests, most recently decided first
func (h *RequestHandler) ListDenied(w http.ResponseWriter, r *http.Request) {
	list, err := h.listingUsecase.ListDenied(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list denied requests")
		return
	}

	response.Success(w, http.StatusOK, "Denied requests retrieved successfully", list)
}

// Approve approves a request and issues a prescription
func (h *RequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	userID, requestID, req, ok := h.decisionInput(w, r)
	if !ok {
		return
	}

	result, err := h.decisionUsecase.Approve(r.Context(), userID, requestID, req)
	if err != nil {
		h.writeDecisionError(w, err, "Failed to approve request")
		return
	}

	response.Success(w, http.StatusOK, "Request approved successfully", result)
}

// Deny denies a request; notes are mandatory
func (h *RequestHandler) Deny(w http.ResponseWriter, r *http.Request) {
	userID, requestID, req, ok := h.decisionInput(w, r)
	if !ok {
		return
	}

	if err := h.decisionUsecase.Deny(r.Context(), userID, requestID, req); err != nil {
		h.writeDecisionError(w, err, "Failed to deny request")
		return
	}

	response.Success(w, http.StatusOK, "Request denied successfully", nil)
}

// RequestInfo asks the patient for more information; the request stays open
func (h *RequestHandler) RequestInfo(w http.ResponseWriter, r *http.Request) {
	userID, requestID, req, ok := h.decisionInput(w, r)
	if !ok {
		return
	}

	if err := h.decisionUsecase.RequestInfo(r.Context(), userID, requestID, req); err != nil {
		h.writeDecisionError(w, err, "Failed to request additional information")
		return
	}

	response.Success(w, http.StatusOK, "Additional information requested successfully", nil)
}

// decisionInput reads the authenticated user, the request id path variable
// and the decision body. It writes the error response itself on failure.
func (h *RequestHandler) decisionInput(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, *dto.DecisionRequest, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return uuid.Nil, uuid.Nil, nil, false
	}

	requestID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return uuid.Nil, uuid.Nil, nil, false
	}

	var req dto.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return uuid.Nil, uuid.Nil, nil, false
	}

	return userID, requestID, &req, true
}

func (h *RequestHandler) writeDecisionError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrRequestNotFound:
		response.NotFound(w, "Prescription request not found")
	case usecase.ErrRequestAlreadyDecided:
		response.Conflict(w, "Request has already been decided")
	case usecase.ErrDoctorProfileNotFound:
		response.Forbidden(w, "No doctor profile for this account")
	case usecase.ErrPatientNotFound:
		response.NotFound(w, "Patient not found")
	case usecase.ErrNotesRequired:
		response.Error(w, http.StatusBadRequest, "Notes are required", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
