package payloadfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authmail/internal/domain/model"
)

func TestSaveWritesPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	payload := model.ConfigPayload{"mailer_subjects_invite": "<Invite>"}
	got, size, err := New(path).Save(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), size)
	assert.Contains(t, string(data), "<Invite>")

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, map[string]string(payload), decoded)
}

func TestSaveRequiresPath(t *testing.T) {
	_, _, err := New("").Save(context.Background(), model.ConfigPayload{})
	assert.Error(t, err)
}
