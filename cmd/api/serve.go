package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/meeting-scheduler/internal/audit"
	dbpkg "github.com/BruksfildServices01/meeting-scheduler/internal/db"
	"github.com/BruksfildServices01/meeting-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/meeting-scheduler/internal/metrics"
	"github.com/BruksfildServices01/meeting-scheduler/internal/routes"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(cfg, log)
	if err != nil {
		log.Error("database unavailable", zap.Error(err))
		return err
	}
	defer dbpkg.Close(db)

	gateway, err := newGateway(ctx, cfg)
	if err != nil {
		log.Error("calendar unavailable", zap.Error(err))
		return err
	}

	locker, closeLocker, err := newLocker(ctx, cfg, log)
	if err != nil {
		log.Error("redis unavailable", zap.Error(err))
		return err
	}
	defer closeLocker()

	auditLogs := audit.New(db)
	dispatcher := audit.NewDispatcher(auditLogs, log)
	defer dispatcher.Close()

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	if err := routes.RegisterRoutes(r, routes.Deps{
		Config:    cfg,
		Logger:    log,
		Metrics:   metrics.New(prometheus.DefaultRegisterer),
		Gatherer:  prometheus.DefaultGatherer,
		Store:     repository.NewAppointmentGormRepository(db),
		Gateway:   gateway,
		Locker:    locker,
		Audit:     dispatcher,
		AuditLogs: auditLogs,
		Ping:      sqlDB.PingContext,
	}); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server failed", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
