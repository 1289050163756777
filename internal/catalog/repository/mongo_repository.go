package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bacharbh/shopeasy/internal/catalog/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrProductNotFound = errors.New("product not found")

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) ProductRepository {
	return &mongoRepository{
		collection: db.Collection("products"),
	}
}

func (m *mongoRepository) List(ctx context.Context, keyword string) ([]domain.Product, error) {
	filter := bson.M{}
	if keyword != "" {
		filter["name"] = bson.M{"$regex": keyword, "$options": "i"}
	}

	cursor, err := m.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

func (m *mongoRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids behave like missing products, same as an
		// unknown but well-formed ObjectID.
		return nil, ErrProductNotFound
	}

	var product domain.Product
	err = m.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

func (m *mongoRepository) ReplaceAll(ctx context.Context, products []domain.Product) ([]domain.Product, error) {
	if _, err := m.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("failed to clear products: %w", err)
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(products))
	for i := range products {
		products[i].CreatedAt = now
		products[i].UpdatedAt = now
		docs = append(docs, products[i])
	}

	result, err := m.collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("failed to insert products: %w", err)
	}

	for i, id := range result.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			products[i].ID = oid
		}
	}

	return products, nil
}
