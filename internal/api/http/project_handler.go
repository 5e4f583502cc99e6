package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/service"
)

type ProjectHandler struct {
	projectSvc service.ProjectService
	reviewSvc  service.ReviewService
}

func NewProjectHandler(projectSvc service.ProjectService, reviewSvc service.ReviewService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc, reviewSvc: reviewSvc}
}

type submitProjectRequest struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	Category           string `json:"category"`
	MonthlyIncomeCents int32  `json:"monthly_income_cents"`
	PhotoURL           string `json:"photo_url"`
	VideoURL           string `json:"video_url"`
	DocumentURL        string `json:"document_url"`
}

func (h *ProjectHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title is required"})
		return
	}

	claims := ClaimsFromContext(r.Context())
	project := &domain.Project{
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		MonthlyIncomeCents: req.MonthlyIncomeCents,
		PhotoURL:           req.PhotoURL,
		VideoURL:           req.VideoURL,
		DocumentURL:        req.DocumentURL,
	}
	project, err := h.reviewSvc.Submit(r.Context(), claims.UserID, project)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) Resubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var update domain.ProjectUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	claims := ClaimsFromContext(r.Context())
	if err := h.reviewSvc.Resubmit(r.Context(), claims.UserID, id, &update); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	project, err := h.projectSvc.View(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	projects, total, err := h.projectSvc.List(r.Context(), r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects, "total": total})
}

func (h *ProjectHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	projects, err := h.projectSvc.ListMine(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

func (h *ProjectHandler) Bookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.projectSvc.Bookmark(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w)
}

func (h *ProjectHandler) Unbookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.projectSvc.Unbookmark(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w)
}

func (h *ProjectHandler) Order(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	claims := ClaimsFromContext(r.Context())
	if err := h.projectSvc.Order(r.Context(), claims.UserID, id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid " + name})
		return 0, false
	}
	return int32(id), true
}

func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 {
		pageSize = int32(v)
	}
	return page, pageSize
}
