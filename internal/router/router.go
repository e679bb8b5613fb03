package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/lahh29/finnexus/internal/handlers"
	"github.com/lahh29/finnexus/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(lm.LoggerMiddleware)

	am := middleware.NewMiddleware(deps.Firebase)
	r.Use(am.FirebaseAuth)

	ush := handlers.NewUserHandlers(deps)
	txh := handlers.NewTransactionHandlers(deps)
	cdh := handlers.NewCardHandlers(deps)
	sbh := handlers.NewSubscriptionHandlers(deps)
	bdh := handlers.NewBudgetHandlers(deps)
	glh := handlers.NewGoalHandlers(deps)
	rph := handlers.NewReportHandlers(deps)
	adh := handlers.NewAdvisorHandlers(deps)
	lvh := handlers.NewLiveHandlers(deps)

	r.Mount("/users", ush.UserRoutes())
	r.Mount("/transactions", txh.TransactionRoutes())
	r.Mount("/cards", cdh.CardRoutes())
	r.Mount("/subscriptions", sbh.SubscriptionRoutes())
	r.Mount("/budgets", bdh.BudgetRoutes())
	r.Mount("/goals", glh.GoalRoutes())
	r.Mount("/reports", rph.ReportRoutes())
	r.Mount("/advisor", adh.AdvisorRoutes())
	r.Mount("/live", lvh.LiveRoutes())
	return r
}
