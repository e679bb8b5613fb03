package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/lahh29/finnexus/internal/bootstrap"
	"github.com/lahh29/finnexus/internal/config"
	"github.com/lahh29/finnexus/internal/handlers"
	"github.com/lahh29/finnexus/internal/response"
	"github.com/lahh29/finnexus/internal/router"
	"github.com/lahh29/finnexus/internal/services"
	"github.com/lahh29/finnexus/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	tstore := store.NewTransactionStore(bs.Firestore)
	cstore := store.NewCardStore(bs.Firestore)
	sstore := store.NewSubscriptionStore(bs.Firestore)
	bstore := store.NewBudgetStore(bs.Firestore)
	gstore := store.NewGoalStore(bs.Firestore)
	lstore := store.NewLiveStore(bs.Firestore)

	// services
	userv := services.NewUserService(ustore)
	tserv := services.NewTransactionService(tstore)
	cserv := services.NewCardService(cstore)
	sserv := services.NewSubscriptionService(sstore)
	bserv := services.NewBudgetService(bstore)
	gserv := services.NewGoalService(gstore)
	rserv := services.NewReportService(tstore, cstore, sstore)
	aserv := services.NewAdvisorService(bs.VertexAdapter, rserv)
	lserv := services.NewLiveService(lstore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.UserSvc = userv
	deps.TransactionSvc = tserv
	deps.CardSvc = cserv
	deps.SubscriptionSvc = sserv
	deps.BudgetSvc = bserv
	deps.GoalSvc = gserv
	deps.ReportSvc = rserv
	deps.AdvisorSvc = aserv
	deps.LiveSvc = lserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
