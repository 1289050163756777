package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/bacharbh/shopeasy/internal/cart/domain"
	"github.com/redis/go-redis/v9"
)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client:  client,
		baseTTL: 30 * 24 * time.Hour,
	}
}

// RedisStore keeps the whole cart as a single JSON array of line items,
// rewritten after every mutation.
type RedisStore struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r *RedisStore) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	key := cartKey(sessionID)

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.New(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []domain.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		// Corrupt payloads reset to an empty cart instead of failing.
		log.Printf("discarding malformed cart for session %s: %v", sessionID, err)
		return domain.New(sessionID), nil
	}

	return &domain.Cart{SessionID: sessionID, Items: items}, nil
}

func (r *RedisStore) Save(ctx context.Context, cart *domain.Cart) error {
	items := cart.Items
	if items == nil {
		items = []domain.LineItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	ttl := r.baseTTL + time.Duration(rand.Intn(60))*time.Minute
	if err := r.client.Set(ctx, cartKey(cart.SessionID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
