package handler

import (
	"net/http"
	"strconv"

	"doctor-portal-api/internal/usecase"
	"doctor-portal-api/pkg/response"
)

const (
	defaultAuditLogLimit = 20
	maxAuditLogLimit     = 100
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// ListDoctorApprovals returns the pending doctor review queue
func (h *AdminHandler) ListDoctorApprovals(w http.ResponseWriter, r *http.Request) {
	approvals, err := h.adminUsecase.ListPendingDoctorApprovals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctor approvals")
		return
	}

	response.Success(w, http.StatusOK, "Doctor approvals retrieved successfully", approvals)
}

// ListAuditLogs returns a page of the audit trail
func (h *AdminHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", defaultAuditLogLimit)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxAuditLogLimit {
		limit = defaultAuditLogLimit
	}

	logs, total, err := h.adminUsecase.ListAuditLogs(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", logs, &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
