package ports

import (
	"context"

	"authmail/internal/domain/model"
)

// AuthConfigClient pushes auth configuration to the management API.
type AuthConfigClient interface {
	PatchAuthConfig(ctx context.Context, payload model.ConfigPayload) (*model.PushResult, error)
}
