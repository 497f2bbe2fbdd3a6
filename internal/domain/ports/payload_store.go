package ports

import (
	"context"

	"authmail/internal/domain/model"
)

// PayloadStore persists an assembled payload instead of sending it.
type PayloadStore interface {
	Save(ctx context.Context, payload model.ConfigPayload) (path string, size int64, err error)
}
