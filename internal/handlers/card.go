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

type CardService interface {
	ListCards(ctx context.Context, uid string) ([]dto.CardView, error)
	AddCard(ctx context.Context, uid string, req dto.CreateCardRequest) (*models.CreditCard, error)
	UpdateDebt(ctx context.Context, uid, cardID string, req dto.UpdateCardDebtRequest) (*models.CreditCard, error)
	DeleteCard(ctx context.Context, uid, cardID string) error
}

type cardHandlers struct {
	ResponseHandler response.ResponseHandler
	CardSvc         CardService
}

func NewCardHandlers(deps *Deps) *cardHandlers {
	return &cardHandlers{
		ResponseHandler: deps.ResponseHandler,
		CardSvc:         deps.CardSvc,
	}
}

func (h *cardHandlers) CardRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListCards)
	r.Post("/", h.AddCard)
	r.Put("/{cardId}/debt", h.UpdateDebt)
	r.Delete("/{cardId}", h.DeleteCard)
	return r
}

func (h *cardHandlers) ListCards(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	cards, err := h.CardSvc.ListCards(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, cards)
}

func (h *cardHandlers) AddCard(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	card, err := h.CardSvc.AddCard(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, card)
}

func (h *cardHandlers) UpdateDebt(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardId")
	var req dto.UpdateCardDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	card, err := h.CardSvc.UpdateDebt(r.Context(), uid, cardID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, card)
}

func (h *cardHandlers) DeleteCard(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardId")
	uid := middleware.UID(r.Context())
	if err := h.CardSvc.DeleteCard(r.Context(), uid, cardID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
