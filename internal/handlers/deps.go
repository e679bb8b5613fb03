package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/lahh29/finnexus/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client
	UserSvc         UserService
	TransactionSvc  TransactionService
	CardSvc         CardService
	SubscriptionSvc SubscriptionService
	BudgetSvc       BudgetService
	GoalSvc         GoalService
	ReportSvc       ReportService
	AdvisorSvc      AdvisorService
	LiveSvc         LiveService
}
