package discord

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authmail/internal/domain/model"
)

func TestSendPostsEmbed(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	hook := NewWebhook(srv.URL, time.Second, nil)
	hook.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	err := hook.Send(context.Background(), model.Notification{
		Title:       "Auth email templates updated",
		Description: "HTTP 200",
		Success:     true,
		Fields:      []model.NotificationField{{Name: "Invite", Value: "PASS", Inline: true}},
	})
	require.NoError(t, err)

	embeds := received["embeds"].([]any)
	require.Len(t, embeds, 1)
	embed := embeds[0].(map[string]any)
	assert.Equal(t, "Auth email templates updated", embed["title"])
	assert.Equal(t, "2026-01-02T03:04:05Z", embed["timestamp"])
	assert.EqualValues(t, colorSuccess, embed["color"])
	fields := embed["fields"].([]any)
	assert.Equal(t, "Invite", fields[0].(map[string]any)["name"])
}

func TestSendReportsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	err := NewWebhook(srv.URL, time.Second, nil).Send(context.Background(), model.Notification{Title: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestSendRequiresURL(t *testing.T) {
	err := NewWebhook("", time.Second, nil).Send(context.Background(), model.Notification{})
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	got := truncate(strings.Repeat("a", 20), 10)
	assert.Len(t, got, 10)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	got := truncate(strings.Repeat("é", 20), 10)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 10, utf8.RuneCountInString(got))
	assert.Equal(t, strings.Repeat("é", 7)+"...", got)
}
