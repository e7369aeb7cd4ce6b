package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"eduhack/internal/adapters/httpapi"
	"eduhack/internal/application"
	"eduhack/internal/config"
	"eduhack/internal/infrastructure"
	"eduhack/internal/infrastructure/i18n"
	"eduhack/internal/logger"
	"eduhack/pkg/tz"
)

func main() {
	if err := run(); err != nil {
		slog.Error("❌ API detenida", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Setup(cfg.Env)
	if cfg.Timezone != "" {
		if err := tz.Set(cfg.Timezone); err != nil {
			return err
		}
	}
	if logger.IsProduction(cfg.Env) {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := infrastructure.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer repos.Close()

	handler := httpapi.NewHandler(
		application.NewHackathonService(repos.Hackathons, repos.Teams, repos.Challenges),
		application.NewParticipantService(repos.Participants),
		application.NewChallengeService(repos.Challenges, repos.Hackathons),
		application.NewTeamService(repos.Teams, repos.Hackathons, repos.Participants, repos.Challenges),
		i18n.NewTranslator(cfg.Locale),
	)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(handler, cfg.CORSOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("🚀 API escuchando", "addr", cfg.HTTPAddr, "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	slog.Info("🛑 Apagando API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
