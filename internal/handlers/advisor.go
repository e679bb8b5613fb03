package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/middleware"
	"github.com/lahh29/finnexus/internal/response"
)

type AdvisorService interface {
	Advise(ctx context.Context, uid string, req dto.AdvisorRequest) (*dto.AdvisorResponse, error)
}

type advisorHandlers struct {
	ResponseHandler response.ResponseHandler
	AdvisorSvc      AdvisorService
}

func NewAdvisorHandlers(deps *Deps) *advisorHandlers {
	return &advisorHandlers{
		ResponseHandler: deps.ResponseHandler,
		AdvisorSvc:      deps.AdvisorSvc,
	}
}

func (h *advisorHandlers) AdvisorRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Advise)
	return r
}

func (h *advisorHandlers) Advise(w http.ResponseWriter, r *http.Request) {
	var req dto.AdvisorRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.ResponseHandler.HandleError(w, r, err)
			return
		}
	}
	uid := middleware.UID(r.Context())
	advice, err := h.AdvisorSvc.Advise(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, advice)
}
