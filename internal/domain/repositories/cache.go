package repositories

import (
	"context"
	"time"
)

// ListingCache is the external cache collaborator. The services only ever
// delete keys; population is someone else's job.
type ListingCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
