// One-shot database seeding: wipes the products collection and loads the
// stock demo catalog.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/bacharbh/shopeasy/internal/catalog/repository"
	"github.com/bacharbh/shopeasy/internal/seed"
)

func main() {
	mongoURI := getEnv("MONGO_URI", "mongodb://localhost:27017")
	mongoDBName := getEnv("MONGO_DB_NAME", "shopeasy")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := repository.ConnectMongoDB(ctx, mongoURI, mongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Client().Disconnect(context.Background())

	repo := repository.NewMongoRepository(db)
	created, err := repo.ReplaceAll(ctx, seed.Products())
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	log.Printf("Seeded %d products into %s", len(created), mongoDBName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
