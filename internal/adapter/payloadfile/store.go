package payloadfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/natefinch/atomic"

	"authmail/internal/domain/model"
	"authmail/internal/domain/ports"
)

// Store writes payloads to a fixed path for inspection instead of sending them.
type Store struct {
	path string
}

var _ ports.PayloadStore = (*Store)(nil)

// New creates a Store writing to path.
func New(path string) *Store {
	return &Store{path: path}
}

// Save replaces the file at the store path with the indented JSON payload.
func (s *Store) Save(_ context.Context, payload model.ConfigPayload) (string, int64, error) {
	if s.path == "" {
		return "", 0, fmt.Errorf("payload output path is empty")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return "", 0, fmt.Errorf("encode payload: %w", err)
	}

	size := int64(buf.Len())
	if err := atomic.WriteFile(s.path, &buf); err != nil {
		return "", 0, fmt.Errorf("write payload file: %w", err)
	}
	return s.path, size, nil
}
