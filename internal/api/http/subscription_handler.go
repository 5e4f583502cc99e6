package http

import (
	"net/http"
	"time"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/service"
)

type SubscriptionHandler struct {
	subscriptionSvc service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionSvc service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionSvc: subscriptionSvc}
}

type subscribeRequest struct {
	Plan    string `json:"plan"`
	EndDate string `json:"end_date,omitempty"` // YYYY-MM-DD, empty for open-ended
}

func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	plan := domain.Plan(req.Plan)
	if !plan.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown plan"})
		return
	}

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "end_date must be YYYY-MM-DD"})
			return
		}
		endDate = &parsed
	}

	claims := ClaimsFromContext(r.Context())
	sub, err := h.subscriptionSvc.Subscribe(r.Context(), claims.UserID, plan, endDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (h *SubscriptionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	subs, err := h.subscriptionSvc.ListForUser(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"subscriptions": subs})
}

func (h *SubscriptionHandler) EffectivePlan(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	plan, err := h.subscriptionSvc.EffectivePlan(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"plan": string(plan)})
}
