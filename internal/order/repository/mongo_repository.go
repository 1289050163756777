package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bacharbh/shopeasy/internal/order/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrOrderNotFound = errors.New("order not found")

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) OrderRepository {
	return &mongoRepository{
		collection: db.Collection("orders"),
	}
}

func (m *mongoRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	result, err := m.collection.InsertOne(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}
	return order, nil
}

func (m *mongoRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	var order domain.Order
	err = m.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}
