package main

import (
	"context"
	"log/slog"
	"os"

	"eduhack/internal/adapters/discord"
	"eduhack/internal/application"
	"eduhack/internal/config"
	"eduhack/internal/infrastructure"
	"eduhack/internal/infrastructure/i18n"
	"eduhack/internal/logger"
	"eduhack/pkg/tz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("❌ Configuración inválida", "error", err)
		os.Exit(1)
	}
	if err := cfg.RequireDiscord(); err != nil {
		slog.Error("❌ Configuración inválida", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Env)
	if cfg.Timezone != "" {
		if err := tz.Set(cfg.Timezone); err != nil {
			slog.Error("❌ Zona horaria inválida", "error", err)
			os.Exit(1)
		}
	}

	repos, err := infrastructure.Open(context.Background(), cfg)
	if err != nil {
		slog.Error("❌ Error al inicializar el almacenamiento", "error", err)
		os.Exit(1)
	}
	defer repos.Close()

	handler := discord.NewHandler(
		application.NewHackathonService(repos.Hackathons, repos.Teams, repos.Challenges),
		application.NewTeamService(repos.Teams, repos.Hackathons, repos.Participants, repos.Challenges),
		i18n.NewTranslator(cfg.Locale),
	)
	bot, err := discord.NewBot(cfg.DiscordToken, cfg.DiscordGuildID, handler)
	if err != nil {
		slog.Error("❌ Error al crear el bot", "error", err)
		os.Exit(1)
	}
	if err := bot.Start(); err != nil {
		slog.Error("❌ Error al iniciar el bot", "error", err)
		repos.Close()
		os.Exit(1)
	}
}
