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
	"golang.org/x/sync/errgroup"

	"pathly/run-planner/internal/api"
	"pathly/run-planner/internal/config"
	"pathly/run-planner/internal/logger"
	"pathly/run-planner/internal/observability"
	"pathly/run-planner/internal/service"
	"pathly/run-planner/internal/storage"
)

// @title Pathly Run Planner API
// @version 1.0
// @description Onboarding and four-week run/walk training plans.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the owner token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		// The logger depends on config; fall back to a production logger.
		bootLog, _ := logger.New("production")
		bootLog.Fatal("could not load config", "error", err)
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("starting pathly server", "backend", cfg.Storage.Backend)

	if err = run(cfg, log); err != nil {
		log.Fatal("server stopped", "error", err)
	}
	log.Info("server exiting")
}

func run(cfg config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Tracing ---
	shutdownTracing, err := observability.InitTracing(ctx, log, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Warn("tracer shutdown failed", "error", err)
		}
	}()

	// --- Repositories ---
	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.close(); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}()

	// --- Media Storage ---
	var files storage.FileStorage
	if cfg.S3.BucketName != "" {
		if files, err = storage.NewS3Storage(ctx, cfg.S3, log); err != nil {
			return err
		}
	} else {
		log.Info("s3 bucket not configured, exercise media URLs disabled")
	}

	// --- Services ---
	rt := service.NewRuntime(log)
	profileService := service.NewProfileService(rt, repos.profiles, repos.plans)
	planService := service.NewPlanService(rt, repos.plans)
	services := api.Services{
		Profiles:   profileService,
		Plans:      planService,
		Onboarding: service.NewOnboardingService(profileService, planService),
		Tokens:     service.NewTokenService(rt, cfg.JWT.Secret, cfg.JWT.Expiration),
		Media:      service.NewMediaService(rt, files, cfg.S3.MediaPrefix, cfg.S3.URLExpiry),
	}

	// --- Router ---
	if cfg.Log.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default() // Includes Logger and Recovery middleware
	api.SetupRoutes(router, api.RouterConfig{
		ServiceName:    cfg.Tracing.ServiceName,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, log, services)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "address", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
