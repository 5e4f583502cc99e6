package http

import (
	"net/http"
	"strings"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/service"
)

type CommunityHandler struct {
	communitySvc service.CommunityService
	joinSvc      service.JoinService
}

func NewCommunityHandler(communitySvc service.CommunityService, joinSvc service.JoinService) *CommunityHandler {
	return &CommunityHandler{communitySvc: communitySvc, joinSvc: joinSvc}
}

type teamSlotRequest struct {
	Name       string `json:"name"`
	TotalSlots int32  `json:"total_slots"`
}

type createCommunityRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Teams       []teamSlotRequest `json:"teams"`
}

func (h *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommunityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title is required"})
		return
	}

	project := &domain.CommunityProject{
		Title:       req.Title,
		Description: req.Description,
	}
	for _, t := range req.Teams {
		project.Teams = append(project.Teams, domain.TeamSlot{
			Name:           t.Name,
			RemainingSlots: t.TotalSlots,
		})
	}

	claims := ClaimsFromContext(r.Context())
	if err := h.communitySvc.Create(r.Context(), claims.UserID, project); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

func (h *CommunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	project, err := h.communitySvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *CommunityHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	projects, total, err := h.communitySvc.List(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects, "total": total})
}

type joinRequestBody struct {
	TeamName    string `json:"team_name"`
	Description string `json:"description"`
}

func (h *CommunityHandler) RequestJoin(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req joinRequestBody
	if !decodeBody(w, r, &req) {
		return
	}
	if req.TeamName == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "team_name is required"})
		return
	}

	claims := ClaimsFromContext(r.Context())
	joinReq, err := h.joinSvc.RequestJoin(r.Context(), claims.UserID, projectID, req.TeamName, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, joinReq)
}

type decideRequest struct {
	Action string `json:"action"` // accept or reject
	Reason string `json:"reason"`
}

func (h *CommunityHandler) Decide(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathID(w, r, "request_id")
	if !ok {
		return
	}
	var req decideRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var action domain.JoinRequestStatus
	switch strings.ToLower(req.Action) {
	case "accept":
		action = domain.JoinRequestStatusAccepted
	case "reject":
		action = domain.JoinRequestStatusRejected
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "action must be accept or reject"})
		return
	}

	if err := h.joinSvc.Decide(r.Context(), requestID, action, req.Reason); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w)
}

func (h *CommunityHandler) ListJoinRequests(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	requests, err := h.joinSvc.ListForProject(r.Context(), projectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"requests": requests})
}

func (h *CommunityHandler) MyJoinRequests(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	requests, err := h.joinSvc.ListForUser(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"requests": requests})
}
