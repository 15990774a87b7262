package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"pet-care-reminders/internal/adapters/auth/jwt"
	"pet-care-reminders/internal/adapters/auth/odin"
	"pet-care-reminders/internal/adapters/capabilities/plansfeatures"
	"pet-care-reminders/internal/adapters/notifications/logonly"
	"pet-care-reminders/internal/adapters/notifications/push"
	pg "pet-care-reminders/internal/adapters/storage/postgres"
	"pet-care-reminders/internal/config"
	"pet-care-reminders/internal/platform/logger"
	"pet-care-reminders/internal/platform/metrics"
	"pet-care-reminders/internal/ports/auth"
	"pet-care-reminders/internal/ports/capabilities"
	"pet-care-reminders/internal/ports/notifications"
	"pet-care-reminders/internal/router"
)

// @title Pet Care Reminders API
// @version 1.0
// @description Registro de mascotas y recordatorios de cuidado (vacunas, desparasitación, higiene, castración).
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if strings.TrimSpace(cfg.DBDSN) != "" {
		var err error
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := pg.Migrate(ctx, db); err != nil {
			return err
		}
		log.Info("storage: postgres", nil)
	} else {
		log.Warn("storage: in-memory (DB_DSN vacío), los datos se pierden al reiniciar", nil)
	}

	verifier, err := buildVerifier(cfg.Auth, log)
	if err != nil {
		return err
	}
	caps, err := buildCapabilities(cfg.Plans, log)
	if err != nil {
		return err
	}
	notifier, err := buildNotifier(cfg.Push, log)
	if err != nil {
		return err
	}

	h := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Logger:       log,
		Metrics:      metrics.New(),
		Notifier:     notifier,
		Capabilities: caps,
		CORSOrigins:  cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", map[string]any{"timeout": cfg.ShutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// JWT local tiene prioridad sobre Odin. Sin ninguno => modo dev (X-Debug-User-ID).
func buildVerifier(cfg config.AuthConfig, log logger.Logger) (auth.AuthVerifier, error) {
	if strings.TrimSpace(cfg.JWTSecret) != "" {
		v, err := jwt.NewVerifier(jwt.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer})
		if err != nil {
			return nil, err
		}
		log.Info("auth: jwt", nil)
		return v, nil
	}

	if strings.TrimSpace(cfg.OdinBaseURL) != "" {
		c, err := odin.NewClient(odin.Config{BaseURL: cfg.OdinBaseURL, APIKey: cfg.OdinAPIKey})
		if err != nil {
			return nil, err
		}
		log.Info("auth: odin", map[string]any{"base_url": cfg.OdinBaseURL})
		return odin.NewVerifier(c), nil
	}

	log.Warn("auth: dev mode, X-Debug-User-ID habilitado", nil)
	return nil, nil
}

func buildCapabilities(cfg config.PlansConfig, log logger.Logger) (capabilities.CapabilitiesResolver, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" && !cfg.AllowAll {
		return nil, nil
	}

	c, err := plansfeatures.NewClient(plansfeatures.Config{BaseURL: cfg.BaseURL, APIKey: cfg.APIKey})
	if err != nil {
		return nil, err
	}
	log.Info("capabilities: plans-features", map[string]any{"allow_all": cfg.AllowAll})
	return plansfeatures.NewResolver(c, cfg.AllowAll), nil
}

func buildNotifier(cfg config.PushConfig, log logger.Logger) (notifications.Dispatcher, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		log.Info("notifications: log-only", nil)
		return logonly.New(log), nil
	}

	d, err := push.New(push.Config{BaseURL: cfg.BaseURL, APIKey: cfg.APIKey, Timeout: cfg.Timeout})
	if err != nil {
		return nil, err
	}
	log.Info("notifications: push", map[string]any{"base_url": cfg.BaseURL})
	return d, nil
}
