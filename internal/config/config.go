package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v3"

	"authmail/internal/adapter/supabase"
)

// Config contains runtime configuration values.
type Config struct {
	APIBaseURL       string
	ProjectRef       string
	AccessToken      string
	UserAgent        string
	RequestTimeout   time.Duration
	ScheduleCron     string
	DryRun           bool
	OutputPath       string
	TempDir          string
	NotifyWebhookURL string
	LogLevel         string
}

const (
	envPrefix         = "AUTHMAIL"
	envFile           = ".env"
	supabaseTokenEnv  = "SUPABASE_ACCESS_TOKEN"
	defaultTimeout    = 60 * time.Second
	defaultOutputPath = "auth-email-payload.json"
	defaultLogLevel   = "info"
)

// Load builds a Config from .env, environment variables and command-line flags.
func Load() (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}
	return Parse(os.Args[1:])
}

// Parse builds a Config from args, falling back to AUTHMAIL_* environment variables.
func Parse(args []string) (*Config, error) {
	cfg := &Config{}

	flags := flag.NewFlagSet("authmail", flag.ContinueOnError)
	flags.StringVar(&cfg.APIBaseURL, "api-url", supabase.DefaultBaseURL, "management API base URL")
	flags.StringVar(&cfg.ProjectRef, "project-ref", "", "project reference of the auth config to update")
	flags.StringVar(&cfg.AccessToken, "access-token", "", "management API access token (or "+supabaseTokenEnv+")")
	flags.StringVar(&cfg.UserAgent, "user-agent", supabase.DefaultUserAgent, "User-Agent header sent with the update")
	flags.DurationVar(&cfg.RequestTimeout, "request-timeout", defaultTimeout, "timeout for outbound requests")
	flags.StringVar(&cfg.ScheduleCron, "schedule", "", "cron expression to re-push on; empty runs once")
	flags.BoolVar(&cfg.DryRun, "dry-run", false, "write the payload to -out instead of sending it")
	flags.StringVar(&cfg.OutputPath, "out", defaultOutputPath, "payload file written in dry-run mode")
	flags.StringVar(&cfg.TempDir, "temp-dir", "", "directory for the request body scratch file")
	flags.StringVar(&cfg.NotifyWebhookURL, "notify-webhook-url", "", "Discord webhook receiving a run summary")
	flags.StringVar(&cfg.LogLevel, "log-level", defaultLogLevel, "debug, info, warn or error")
	_ = flags.String("config", "", "config file (flag-name value per line)")

	err := ff.Parse(flags, args,
		ff.WithEnvVarPrefix(envPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		return nil, err
	}

	if cfg.AccessToken == "" {
		cfg.AccessToken = os.Getenv(supabaseTokenEnv)
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if !cfg.DryRun {
		if cfg.ProjectRef == "" {
			return nil, fmt.Errorf("project ref is required (-project-ref or %s_PROJECT_REF)", envPrefix)
		}
		if cfg.AccessToken == "" {
			return nil, fmt.Errorf("access token is required (-access-token, %s_ACCESS_TOKEN or %s)", envPrefix, supabaseTokenEnv)
		}
	}

	return cfg, nil
}
