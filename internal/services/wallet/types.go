package wallet

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BalanceResult is returned by balance queries and mutations.
type BalanceResult struct {
	AccountID     uuid.UUID `json:"account_id"`
	Balance       int64     `json:"balance"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// Config holds configuration for the wallet service.
type Config struct {
	// CacheTTL bounds how long a balance read may be served from cache.
	CacheTTL time.Duration
}

// Cache defines the caching operations used by balance reads.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	GenerateKey(parts ...interface{}) string
}

type contextKey string

const actorContextKey contextKey = "walletActor"

// WithActor returns a context carrying the actor recorded as CreatedBy
// on audit entries produced within it.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

func actorFrom(ctx context.Context) string {
	if actor, ok := ctx.Value(actorContextKey).(string); ok && actor != "" {
		return actor
	}
	return SystemActor
}
