//go:build wireinject

package di

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/wire"

	"authmail/internal/adapter/discord"
	"authmail/internal/adapter/logging"
	"authmail/internal/adapter/payloadfile"
	"authmail/internal/adapter/supabase"
	"authmail/internal/app"
	"authmail/internal/config"
	"authmail/internal/domain/ports"
	"authmail/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideAuthConfigClient,
		providePayloadStore,
		provideNotifier,
		provideOutput,
		provideUpdateConfig,
		usecase.NewTemplateUpdate,
		wire.Bind(new(app.Runner), new(*usecase.TemplateUpdate)),
		provideSchedule,
		app.New,
	)
	return nil, nil
}

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})
	return slog.New(handler)
}

func provideAuthConfigClient(cfg *config.Config, logger ports.Logger) ports.AuthConfigClient {
	return supabase.New(supabase.Options{
		BaseURL:     cfg.APIBaseURL,
		ProjectRef:  cfg.ProjectRef,
		AccessToken: cfg.AccessToken,
		UserAgent:   cfg.UserAgent,
		TempDir:     cfg.TempDir,
		Timeout:     cfg.RequestTimeout,
	}, logger)
}

func providePayloadStore(cfg *config.Config) ports.PayloadStore {
	return payloadfile.New(cfg.OutputPath)
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	if cfg.NotifyWebhookURL == "" {
		return nil
	}
	return discord.NewWebhook(cfg.NotifyWebhookURL, cfg.RequestTimeout, logger)
}

func provideOutput() io.Writer {
	return os.Stdout
}

func provideUpdateConfig(cfg *config.Config) usecase.TemplateUpdateConfig {
	return usecase.TemplateUpdateConfig{
		DryRun: cfg.DryRun,
	}
}

func provideSchedule(cfg *config.Config) string {
	return cfg.ScheduleCron
}
