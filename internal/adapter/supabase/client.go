package supabase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"authmail/internal/domain/model"
	"authmail/internal/domain/ports"
)

const (
	DefaultBaseURL   = "https://api.supabase.com"
	DefaultUserAgent = "supabase-cli/2.67.1"

	authConfigPathTemplate = "/v1/projects/%s/config/auth"
	payloadFilePattern     = "auth-email-payload-*.json"
	maxResponseBytes       = 4 << 20
)

// Options configures a management API client.
type Options struct {
	BaseURL     string
	ProjectRef  string
	AccessToken string
	UserAgent   string
	TempDir     string
	Timeout     time.Duration
}

// Client talks to the Supabase Management API auth config endpoint.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	projectRef  string
	accessToken string
	userAgent   string
	tempDir     string
	logger      ports.Logger
}

var _ ports.AuthConfigClient = (*Client)(nil)

// New creates a management API client.
func New(opts Options, logger ports.Logger) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		httpClient:  &http.Client{Timeout: opts.Timeout},
		baseURL:     baseURL,
		projectRef:  opts.ProjectRef,
		accessToken: opts.AccessToken,
		userAgent:   userAgent,
		tempDir:     opts.TempDir,
		logger:      logger,
	}
}

// AuthConfigURL returns the endpoint the payload is sent to.
func (c *Client) AuthConfigURL() string {
	return c.baseURL + fmt.Sprintf(authConfigPathTemplate, c.projectRef)
}

// PatchAuthConfig writes the payload to a scratch file and sends it as the body of one
// PATCH request. The file is removed before returning. No retries.
func (c *Client) PatchAuthConfig(ctx context.Context, payload model.ConfigPayload) (*model.PushResult, error) {
	if c.projectRef == "" {
		return nil, fmt.Errorf("project ref is empty")
	}
	if c.accessToken == "" {
		return nil, fmt.Errorf("access token is empty")
	}

	path, size, err := c.writePayload(payload)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			c.logError(ctx, "failed to remove payload file", "path", path, "error", err)
		}
	}()

	c.logInfo(ctx, "payload written", "path", path, "bytes", size)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open payload file: %w", err)
	}
	defer file.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.AuthConfigURL(), file)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.ContentLength = size
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logInfo(ctx, "auth config request completed", "status", resp.StatusCode, "response_bytes", len(body))

	return &model.PushResult{
		StatusCode:   resp.StatusCode,
		Body:         body,
		PayloadBytes: size,
	}, nil
}

func (c *Client) writePayload(payload model.ConfigPayload) (string, int64, error) {
	data, err := payload.Encode()
	if err != nil {
		return "", 0, fmt.Errorf("encode payload: %w", err)
	}

	file, err := os.CreateTemp(c.tempDir, payloadFilePattern)
	if err != nil {
		return "", 0, fmt.Errorf("create payload file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", 0, fmt.Errorf("write payload file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return "", 0, fmt.Errorf("close payload file: %w", err)
	}

	return file.Name(), int64(len(data)), nil
}

func (c *Client) logInfo(ctx context.Context, msg string, args ...any) {
	if c.logger != nil {
		c.logger.Info(ctx, msg, args...)
	}
}

func (c *Client) logError(ctx context.Context, msg string, args ...any) {
	if c.logger != nil {
		c.logger.Error(ctx, msg, args...)
	}
}
