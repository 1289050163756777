package store

import (
	"context"

	"github.com/bacharbh/shopeasy/internal/cart/domain"
)

// Store persists one cart per session under a fixed key. Load must never
// fail on a missing or corrupt value; both come back as an empty cart.
type Store interface {
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Clear(ctx context.Context, sessionID string) error
}
