package interfaces

import (
	"context"
	"time"

	"academia_bere/internal/domain/entities"
)

// IObjectStorage hands out direct upload URLs for lesson assets.
type IObjectStorage interface {
	PresignUpload(ctx context.Context, key, contentType string) (entities.UploadURL, error)
}

// INotifier tells the docente about events that need manual action.
type INotifier interface {
	NotifyTransferRequest(ctx context.Context, r entities.TransferRequest) error
}

// ITokenService issues and verifies access tokens.
type ITokenService interface {
	Issue(identity entities.Identity) (string, error)
	Parse(token string) (entities.Identity, error)
}

// ICache is a small in-process key/value cache.
type ICache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	Delete(key string)
}
