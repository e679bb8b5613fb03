package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/middleware"
	"github.com/lahh29/finnexus/internal/models"
	"github.com/lahh29/finnexus/internal/response"
)

type SubscriptionService interface {
	ListSubscriptions(ctx context.Context, uid string) ([]dto.SubscriptionView, error)
	AddSubscription(ctx context.Context, uid string, req dto.CreateSubscriptionRequest) (*models.Subscription, error)
	UpdateSubscription(ctx context.Context, uid, subscriptionID string, req dto.UpdateSubscriptionRequest) (*models.Subscription, error)
	UpdateStatus(ctx context.Context, uid, subscriptionID, status string) (*models.Subscription, error)
	MarkPaid(ctx context.Context, uid, subscriptionID string) (*models.Subscription, error)
	DeleteSubscription(ctx context.Context, uid, subscriptionID string) error
}

type subscriptionHandlers struct {
	ResponseHandler response.ResponseHandler
	SubscriptionSvc SubscriptionService
}

func NewSubscriptionHandlers(deps *Deps) *subscriptionHandlers {
	return &subscriptionHandlers{
		ResponseHandler: deps.ResponseHandler,
		SubscriptionSvc: deps.SubscriptionSvc,
	}
}

func (h *subscriptionHandlers) SubscriptionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListSubscriptions)
	r.Post("/", h.AddSubscription)
	r.Put("/{subscriptionId}", h.UpdateSubscription)
	r.Put("/{subscriptionId}/status", h.UpdateStatus)
	r.Post("/{subscriptionId}/paid", h.MarkPaid)
	r.Delete("/{subscriptionId}", h.DeleteSubscription)
	return r
}

func (h *subscriptionHandlers) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	subscriptions, err := h.SubscriptionSvc.ListSubscriptions(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, subscriptions)
}

func (h *subscriptionHandlers) AddSubscription(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	subscription, err := h.SubscriptionSvc.AddSubscription(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, subscription)
}

func (h *subscriptionHandlers) UpdateSubscription(w http.ResponseWriter, r *http.Request) {
	subscriptionID := chi.URLParam(r, "subscriptionId")
	var req dto.UpdateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	subscription, err := h.SubscriptionSvc.UpdateSubscription(r.Context(), uid, subscriptionID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, subscription)
}

func (h *subscriptionHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	subscriptionID := chi.URLParam(r, "subscriptionId")
	var req dto.UpdateSubscriptionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	subscription, err := h.SubscriptionSvc.UpdateStatus(r.Context(), uid, subscriptionID, req.Status)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, subscription)
}

func (h *subscriptionHandlers) MarkPaid(w http.ResponseWriter, r *http.Request) {
	subscriptionID := chi.URLParam(r, "subscriptionId")
	uid := middleware.UID(r.Context())
	subscription, err := h.SubscriptionSvc.MarkPaid(r.Context(), uid, subscriptionID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, subscription)
}

func (h *subscriptionHandlers) DeleteSubscription(w http.ResponseWriter, r *http.Request) {
	subscriptionID := chi.URLParam(r, "subscriptionId")
	uid := middleware.UID(r.Context())
	if err := h.SubscriptionSvc.DeleteSubscription(r.Context(), uid, subscriptionID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
