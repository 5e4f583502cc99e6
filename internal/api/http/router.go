package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"launchpad-backend/internal/domain"
	"launchpad-backend/internal/security"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth         *AuthHandler
	Project      *ProjectHandler
	Review       *ReviewHandler
	Analytics    *AnalyticsHandler
	Community    *CommunityHandler
	Subscription *SubscriptionHandler
	File         *FileHandler
}

// NewRouter wires all API routes under /api/v1. Mutating review and
// analytics routes sit behind role guards; read routes only require a
// valid token.
func NewRouter(h Handlers, tokens security.TokenManager) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public.
	api.HandleFunc("/auth/register", h.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/files/upload/{token}", h.File.Upload).Methods(http.MethodPut)
	api.HandleFunc("/files/download", h.File.Download).Methods(http.MethodGet)

	// Any authenticated user.
	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	authed.HandleFunc("/files/upload-url", h.File.RequestUploadURL).Methods(http.MethodPost)

	authed.HandleFunc("/projects", h.Project.Submit).Methods(http.MethodPost)
	authed.HandleFunc("/projects", h.Project.List).Methods(http.MethodGet)
	authed.HandleFunc("/projects/mine", h.Project.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/projects/{id}", h.Project.Get).Methods(http.MethodGet)
	authed.HandleFunc("/projects/{id}", h.Project.Resubmit).Methods(http.MethodPut)
	authed.HandleFunc("/projects/{id}/bookmark", h.Project.Bookmark).Methods(http.MethodPost)
	authed.HandleFunc("/projects/{id}/bookmark", h.Project.Unbookmark).Methods(http.MethodDelete)
	authed.HandleFunc("/projects/{id}/order", h.Project.Order).Methods(http.MethodPost)
	authed.HandleFunc("/projects/{id}/feedback", h.Review.GetFeedback).Methods(http.MethodGet)
	authed.HandleFunc("/projects/{id}/analytics", h.Analytics.View).Methods(http.MethodGet)

	authed.HandleFunc("/community", h.Community.Create).Methods(http.MethodPost)
	authed.HandleFunc("/community", h.Community.List).Methods(http.MethodGet)
	authed.HandleFunc("/community/{id}", h.Community.Get).Methods(http.MethodGet)
	authed.HandleFunc("/community/{id}/join-requests", h.Community.RequestJoin).Methods(http.MethodPost)
	authed.HandleFunc("/community/{id}/join-requests", h.Community.ListJoinRequests).Methods(http.MethodGet)
	authed.HandleFunc("/join-requests/mine", h.Community.MyJoinRequests).Methods(http.MethodGet)
	authed.HandleFunc("/join-requests/{request_id}/decision", h.Community.Decide).Methods(http.MethodPost)

	authed.HandleFunc("/subscriptions", h.Subscription.Subscribe).Methods(http.MethodPost)
	authed.HandleFunc("/subscriptions", h.Subscription.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/subscriptions/effective-plan", h.Subscription.EffectivePlan).Methods(http.MethodGet)

	// Analysts and admins.
	review := api.NewRoute().Subrouter()
	review.Use(AuthMiddleware(tokens), RequireRole(domain.UserRoleAnalyst, domain.UserRoleAdmin))

	review.HandleFunc("/projects/{id}/decline", h.Review.Decline).Methods(http.MethodPost)
	review.HandleFunc("/projects/{id}/analysts", h.Review.ListAnalysts).Methods(http.MethodGet)
	review.HandleFunc("/assigned", h.Review.ListAssigned).Methods(http.MethodGet)
	review.HandleFunc("/projects/{id}/analytics", h.Analytics.Create).Methods(http.MethodPost)
	review.HandleFunc("/projects/{id}/analytics", h.Analytics.Update).Methods(http.MethodPut)
	review.HandleFunc("/projects/{id}/analytics/enable", h.Analytics.Enable).Methods(http.MethodPost)

	// Admin only.
	admin := api.NewRoute().Subrouter()
	admin.Use(AuthMiddleware(tokens), RequireRole(domain.UserRoleAdmin))

	admin.HandleFunc("/projects/{id}/approve", h.Review.Approve).Methods(http.MethodPost)
	admin.HandleFunc("/projects/{id}/analysts/{analyst_id}", h.Review.Assign).Methods(http.MethodPost)
	admin.HandleFunc("/projects/{id}/analysts/{analyst_id}", h.Review.Unassign).Methods(http.MethodDelete)

	return r
}
