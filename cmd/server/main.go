package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	cartservice "github.com/bacharbh/shopeasy/internal/cart/service"
	cartstore "github.com/bacharbh/shopeasy/internal/cart/store"
	catalogcache "github.com/bacharbh/shopeasy/internal/catalog/cache"
	catalogrepo "github.com/bacharbh/shopeasy/internal/catalog/repository"
	catalogservice "github.com/bacharbh/shopeasy/internal/catalog/service"
	"github.com/bacharbh/shopeasy/internal/checkout"
	h "github.com/bacharbh/shopeasy/internal/http"
	orderrepo "github.com/bacharbh/shopeasy/internal/order/repository"
	orderservice "github.com/bacharbh/shopeasy/internal/order/service"
	"github.com/bacharbh/shopeasy/internal/seed"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	HTTPPort        string
	MongoURI        string
	MongoDBName     string
	RedisAddr       string
	RedisPassword   string
	KafkaBrokers    string // comma separated, empty disables order events
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "5000"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:     getEnv("MONGO_DB_NAME", "shopeasy"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	mongoDB, err := catalogrepo.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	catalog := catalogservice.NewCatalogService(
		catalogrepo.NewMongoRepository(mongoDB),
		catalogcache.NewRedisCache(redisClient),
	)

	carts := cartservice.NewCartService(cartstore.NewRedisStore(redisClient), catalog)
	carts.Subscribe(func(e cartservice.CartEvent) {
		switch e.Kind {
		case cartservice.EventItemAdded:
			log.Printf("%s added to cart (session %s, %d items total)", e.ProductName, e.SessionID, e.TotalQuantity)
		case cartservice.EventCartCleared:
			log.Printf("cart cleared (session %s)", e.SessionID)
		}
	})

	var writer orderservice.EventWriter
	if cfg.KafkaBrokers != "" {
		kw := orderservice.NewKafkaWriter(strings.Split(cfg.KafkaBrokers, ",")...)
		defer kw.Close()
		writer = kw
		log.Printf("Publishing order events to %s", cfg.KafkaBrokers)
	}
	orders := orderservice.NewOrderService(orderrepo.NewMongoRepository(mongoDB), writer)

	flow := checkout.NewService(carts, orders)

	router := h.NewRouter(h.Handlers{
		Products: h.NewProductHandler(catalog, seed.Products, cfg.RequestTimeout),
		Cart:     h.NewCartHandler(carts, cfg.RequestTimeout),
		Checkout: h.NewCheckoutHandler(flow, cfg.RequestTimeout),
		Orders:   h.NewOrderHandler(orders, cfg.RequestTimeout),
	}, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	if err := mongoDB.Client().Disconnect(context.Background()); err != nil {
		log.Printf("mongo disconnect error: %v", err)
	}
	log.Println("server exited")
}
