package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"resume-builder/config"
	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/adapter/session"
	"resume-builder/internal/form"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/preview"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()

	// the print archive is optional; without a database prints are not recorded
	jobsPool, err := infra.NewJobsPool(ctx, cfg.Database.URL)
	if err != nil {
		logger.Warn("print archive disabled", zap.Error(err))
	} else {
		defer jobsPool.Close()
		if err := migration.RunMigrations(ctx, jobsPool); err != nil {
			logger.Fatal("database migrations failed", zap.Error(err))
		}
	}
	printsRepo := repo.NewPrintsRepo(jobsPool)

	renderer, err := preview.NewRenderer(nil)
	if err != nil {
		logger.Fatal("failed to parse preview template", zap.Error(err))
	}
	pdf := infra.NewChromedpRenderer(cfg.Print.ChromePath, cfg.Print.Timeout)
	printer := preview.NewPrinter(renderer, pdf, printsRepo, cfg.Print.Attempts)

	validator := form.NewValidator(cfg.Form.RequireSocialLinks)
	store := session.NewStore(cfg.Session.TTL, func() *form.Session {
		return form.NewSession(form.Options{
			MaxPhotoBytes: cfg.Form.MaxPhotoBytes,
			Validator:     validator,
		})
	})

	h, err := httpadapter.NewHandler(store, renderer, printer, httpadapter.Config{
		CookieName:    cfg.Session.CookieName,
		CookieSecure:  !cfg.IsDevelopment(),
		MaxPhotoBytes: cfg.Form.MaxPhotoBytes,
	})
	if err != nil {
		logger.Fatal("failed to parse form template", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		BodyLimit:             cfg.Server.BodyLimitMiB * 1024 * 1024,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(httpadapter.Observability())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	h.Register(app)

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
