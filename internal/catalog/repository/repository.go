package repository

import (
	"context"

	"github.com/bacharbh/shopeasy/internal/catalog/domain"
)

// ProductRepository defines the interface for product data operations
// Consumers define this interface, not the MongoDB implementation
type ProductRepository interface {
	// List returns products in insertion order. A non-empty keyword
	// filters by case-insensitive substring match on the name.
	List(ctx context.Context, keyword string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// ReplaceAll wipes the collection and inserts the given products (seeding).
	ReplaceAll(ctx context.Context, products []domain.Product) ([]domain.Product, error)
}
