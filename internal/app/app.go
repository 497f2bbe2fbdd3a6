package app

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"authmail/internal/domain/ports"
)

const (
	scheduledRunTimeout = 2 * time.Minute
	stopTimeout         = 5 * time.Second
)

// Runner is one template update.
type Runner interface {
	Run(ctx context.Context) error
}

// App runs the template update once, and then on a cron schedule when one is set.
type App struct {
	cron     *cron.Cron
	update   Runner
	logger   ports.Logger
	schedule string
}

// New constructs an App instance. An empty schedule means run once and exit.
func New(update Runner, logger ports.Logger, schedule string) *App {
	return &App{
		cron:     cron.New(),
		update:   update,
		logger:   logger,
		schedule: schedule,
	}
}

// Run executes the update immediately. With a schedule it keeps re-pushing until ctx is done.
func (a *App) Run(ctx context.Context) error {
	if a.schedule == "" {
		return a.update.Run(ctx)
	}

	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.logger.Info(ctx, "running first template update immediately")
	if err := a.update.Run(ctx); err != nil {
		a.logger.Error(ctx, "initial template update failed", "error", err)
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(stopTimeout):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), scheduledRunTimeout)
		defer cancel()
		if err := a.update.Run(ctx); err != nil {
			a.logger.Error(ctx, "scheduled template update failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", a.schedule, err)
	}
	return nil
}
