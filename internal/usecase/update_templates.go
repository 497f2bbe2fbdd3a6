package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"
	"unicode/utf8"

	"authmail/internal/domain/model"
	"authmail/internal/domain/ports"
	"authmail/internal/templates"
)

const (
	statusUnknown       = "unknown"
	maxNotJSONBodyRunes = 500
	maxFailureBodyRunes = 1000
)

// ErrPreflight means a rendered template does not show the heading or preview text it was built from.
var ErrPreflight = errors.New("template preflight failed")

// TemplateUpdate renders the auth emails, pushes them in one request and prints a summary.
type TemplateUpdate struct {
	client   ports.AuthConfigClient
	store    ports.PayloadStore
	notifier ports.Notifier
	logger   ports.Logger
	out      io.Writer
	dryRun   bool
	catalog  func() (model.Catalog, error)
}

// TemplateUpdateConfig controls optional behaviours for the update.
type TemplateUpdateConfig struct {
	DryRun bool
}

// NewTemplateUpdate constructs a TemplateUpdate use case. store is used only in dry-run
// mode and notifier may be nil.
func NewTemplateUpdate(
	client ports.AuthConfigClient,
	store ports.PayloadStore,
	notifier ports.Notifier,
	logger ports.Logger,
	out io.Writer,
	cfg TemplateUpdateConfig,
) *TemplateUpdate {
	return &TemplateUpdate{
		client:   client,
		store:    store,
		notifier: notifier,
		logger:   logger,
		out:      out,
		dryRun:   cfg.DryRun,
		catalog:  templates.Catalog,
	}
}

// Run executes one update. Remote failures are printed, not returned; only local faults
// (content, preflight, payload file) produce an error.
func (u *TemplateUpdate) Run(ctx context.Context) error {
	start := time.Now()
	u.logger.Info(ctx, "starting template update", "dry_run", u.dryRun)

	catalog, err := u.catalog()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	rendered := templates.RenderAll(catalog)
	for _, r := range rendered {
		if err := templates.CheckOutline(r.HTML, r.Template.Params); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrPreflight, r.Template.Name, err)
		}
	}

	payload, err := AssemblePayload(rendered)
	if err != nil {
		return err
	}

	encoded, err := payload.Encode()
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	u.printf("Payload size: %d bytes\n", len(encoded))
	for _, r := range rendered {
		u.printf("%s template size: %d chars\n", r.Template.Label, utf8.RuneCountInString(r.HTML))
	}

	if u.dryRun {
		return u.save(ctx, payload)
	}

	res, err := u.client.PatchAuthConfig(ctx, payload)
	if err != nil {
		u.logger.Error(ctx, "auth config request failed", "error", err)
		u.printf("HTTP Status: %s\n", statusUnknown)
		u.printf("FAILED! Response: %s\n", truncateRunes(err.Error(), maxFailureBodyRunes))
		u.notify(ctx, failureNotification(statusUnknown, err.Error()))
		return nil
	}

	status := strconv.Itoa(res.StatusCode)
	u.printf("HTTP Status: %s\n", status)

	if !res.Succeeded() {
		u.logger.Warn(ctx, "auth config update rejected", "status", res.StatusCode)
		u.printf("FAILED! Response: %s\n", truncateRunes(string(res.Body), maxFailureBodyRunes))
		u.notify(ctx, failureNotification(status, string(res.Body)))
		return nil
	}

	report, err := Verify(res.Body, catalog)
	if err != nil {
		u.logger.Warn(ctx, "auth config response could not be verified", "error", err)
		u.printf("Response body (not JSON): %s\n", truncateRunes(string(res.Body), maxNotJSONBodyRunes))
		u.notify(ctx, model.Notification{
			Title:       "Auth email templates updated (unverified)",
			Description: "HTTP " + status + ", response body is not JSON",
			Success:     true,
		})
		return nil
	}

	u.printReport(report)
	u.notify(ctx, successNotification(status, report))

	u.logger.Info(ctx, "template update completed",
		"status", res.StatusCode,
		"all_passed", report.AllPassed(),
		"duration", time.Since(start),
	)
	return nil
}

func (u *TemplateUpdate) save(ctx context.Context, payload model.ConfigPayload) error {
	if u.store == nil {
		return fmt.Errorf("dry run requires a payload store")
	}
	path, size, err := u.store.Save(ctx, payload)
	if err != nil {
		return err
	}
	u.printf("DRY RUN: payload written to %s (%d bytes), nothing sent.\n", path, size)
	u.logger.Info(ctx, "dry run payload saved", "path", path, "bytes", size)
	return nil
}

func (u *TemplateUpdate) printReport(report *model.VerificationReport) {
	u.printf("\nSUCCESS! All email templates updated.\n")
	u.printf("  site_url: %s\n", report.SiteURL)
	for _, s := range report.Subjects {
		u.printf("  %s subject: %s\n", s.Name, s.Value)
	}
	for _, c := range report.Checks {
		u.printf("  [%s] %s: brand=%t logo=%t footer=%t outlook=%t\n",
			c.Status(), c.Label, c.Brand, c.Logo, c.Footer, c.Outlook)
	}
}

func (u *TemplateUpdate) notify(ctx context.Context, notification model.Notification) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Send(ctx, notification); err != nil {
		u.logger.Error(ctx, "failed to send run summary", "error", err)
	}
}

func (u *TemplateUpdate) printf(format string, args ...any) {
	if u.out == nil {
		return
	}
	fmt.Fprintf(u.out, format, args...)
}

func successNotification(status string, report *model.VerificationReport) model.Notification {
	fields := make([]model.NotificationField, 0, len(report.Checks))
	for _, c := range report.Checks {
		fields = append(fields, model.NotificationField{
			Name:   c.Label,
			Value:  c.Status(),
			Inline: true,
		})
	}
	return model.Notification{
		Title:       "Auth email templates updated",
		Description: fmt.Sprintf("HTTP %s for %s", status, report.SiteURL),
		Success:     true,
		Fields:      fields,
	}
}

func failureNotification(status, body string) model.Notification {
	return model.Notification{
		Title:       "Auth email template update failed",
		Description: fmt.Sprintf("HTTP %s: %s", status, truncateRunes(body, maxFailureBodyRunes)),
	}
}

func truncateRunes(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return string(runes[:limit])
}
