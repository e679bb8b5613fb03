package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lahh29/finnexus/internal/dto"
	"github.com/lahh29/finnexus/internal/middleware"
	"github.com/lahh29/finnexus/internal/response"
)

type ReportService interface {
	GetReport(ctx context.Context, uid string) (*dto.Report, error)
	GetHealth(ctx context.Context, uid string) (*dto.FinancialHealth, error)
}

type reportHandlers struct {
	ResponseHandler response.ResponseHandler
	ReportSvc       ReportService
}

func NewReportHandlers(deps *Deps) *reportHandlers {
	return &reportHandlers{
		ResponseHandler: deps.ResponseHandler,
		ReportSvc:       deps.ReportSvc,
	}
}

func (h *reportHandlers) ReportRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetReport)
	r.Get("/health", h.GetHealth)
	return r
}

func (h *reportHandlers) GetReport(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	report, err := h.ReportSvc.GetReport(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, report)
}

func (h *reportHandlers) GetHealth(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	health, err := h.ReportSvc.GetHealth(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, health)
}
