package repository

import (
	"context"

	"github.com/bacharbh/shopeasy/internal/order/domain"
)

type OrderRepository interface {
	// Create stores the order and returns it with the store-assigned id.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}
