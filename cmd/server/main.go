package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/dairyledger/internal/config"
	"github.com/mamadbah2/dairyledger/internal/repository/jsonfile"
	"github.com/mamadbah2/dairyledger/internal/scheduler"
	"github.com/mamadbah2/dairyledger/internal/server/handlers"
	"github.com/mamadbah2/dairyledger/internal/server/router"
	"github.com/mamadbah2/dairyledger/internal/service/ledger"
	"github.com/mamadbah2/dairyledger/internal/service/views"
	"github.com/mamadbah2/dairyledger/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Debug))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	repo, err := jsonfile.NewFileRepository(cfg.Storage.DataDir, cfg.Backup.Dir, baseLogger.Named("repo.jsonfile"))
	if err != nil {
		baseLogger.Fatal("failed to init file repository", zap.Error(err))
	}

	store := ledger.NewStore(repo, baseLogger.Named("svc.ledger"))
	if err := store.Load(context.Background()); err != nil {
		baseLogger.Fatal("failed to load ledger data", zap.Error(err))
	}

	viewSvc := views.NewService(store, cfg.View.PageSize, baseLogger.Named("svc.views"))

	engine := router.New(router.Handlers{
		Dashboard:    handlers.NewDashboardHandler(viewSvc),
		Customers:    handlers.NewCustomerHandler(store, viewSvc, baseLogger.Named("handlers.customers")),
		Transactions: handlers.NewTransactionHandler(store, viewSvc, baseLogger.Named("handlers.transactions")),
		Payments:     handlers.NewPaymentHandler(store, viewSvc, baseLogger.Named("handlers.payments")),
		Reports:      handlers.NewReportHandler(store),
		Data:         handlers.NewDataHandler(store, baseLogger.Named("handlers.data")),
	}, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Backup, store, repo, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
