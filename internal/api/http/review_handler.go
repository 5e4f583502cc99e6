package http

import (
	"net/http"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/service"
)

type ReviewHandler struct {
	reviewSvc     service.ReviewService
	assignmentSvc service.AssignmentService
}

func NewReviewHandler(reviewSvc service.ReviewService, assignmentSvc service.AssignmentService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc, assignmentSvc: assignmentSvc}
}

func (h *ReviewHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.reviewSvc.Approve(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w)
}

type declineRequest struct {
	Feedback string `json:"feedback"`
}

func (h *ReviewHandler) Decline(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req declineRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Feedback == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "feedback is required"})
		return
	}

	claims := ClaimsFromContext(r.Context())
	if err := h.reviewSvc.Decline(r.Context(), id, claims.UserID, req.Feedback); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w)
}

func (h *ReviewHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	feedback, err := h.reviewSvc.GetFeedback(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, feedback)
}

func (h *ReviewHandler) Assign(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	analystID, ok := pathID(w, r, "analyst_id")
	if !ok {
		return
	}
	if err := h.assignmentSvc.Assign(r.Context(), projectID, analystID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w)
}

func (h *ReviewHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	analystID, ok := pathID(w, r, "analyst_id")
	if !ok {
		return
	}
	if err := h.assignmentSvc.Unassign(r.Context(), projectID, analystID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w)
}

func (h *ReviewHandler) ListAnalysts(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	analysts, err := h.assignmentSvc.ListAnalystsForProject(r.Context(), projectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"analysts": analysts})
}

func (h *ReviewHandler) ListAssigned(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	status := domain.ProjectStatus(r.URL.Query().Get("status"))
	projects, err := h.assignmentSvc.ListAssignedProjects(r.Context(), claims.UserID, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}
