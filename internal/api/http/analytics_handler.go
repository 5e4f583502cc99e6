package http

import (
	"net/http"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

type createAnalyticsRequest struct {
	Metrics     domain.AnalyticsMetrics `json:"metrics"`
	DocumentURL string                  `json:"document_url"`
}

func (h *AnalyticsHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req createAnalyticsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	record, err := h.analyticsSvc.Create(r.Context(), projectID, req.Metrics, req.DocumentURL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

type updateAnalyticsRequest struct {
	Metrics     domain.AnalyticsMetrics `json:"metrics"`
	DocumentURL *string                 `json:"document_url,omitempty"`
}

func (h *AnalyticsHandler) Update(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateAnalyticsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	record, err := h.analyticsSvc.Update(r.Context(), projectID, req.Metrics, req.DocumentURL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *AnalyticsHandler) Enable(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.analyticsSvc.Enable(r.Context(), projectID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w)
}

func (h *AnalyticsHandler) View(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	claims := ClaimsFromContext(r.Context())
	record, err := h.analyticsSvc.View(r.Context(), projectID, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}
