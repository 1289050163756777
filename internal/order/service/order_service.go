package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/bacharbh/shopeasy/internal/order/domain"
	"github.com/bacharbh/shopeasy/internal/order/repository"
	"github.com/segmentio/kafka-go"
)

// EventWriter is the slice of kafka.Writer the service uses; tests swap in
// a capturing fake.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type OrderService struct {
	repo   repository.OrderRepository
	writer EventWriter // nil disables event publishing
}

func NewOrderService(repo repository.OrderRepository, writer EventWriter) *OrderService {
	return &OrderService{
		repo:   repo,
		writer: writer,
	}
}

// Create stores the order and, when a writer is configured, publishes an
// order-created event. Publish failures are logged, never surfaced: the
// order is already committed.
func (s *OrderService) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	if s.writer != nil {
		s.publishCreated(created)
	}
	return created, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

type orderCreatedEvent struct {
	OrderID    string    `json:"order_id"`
	TotalPrice float64   `json:"total_price"`
	ItemCount  int       `json:"item_count"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s *OrderService) publishCreated(order *domain.Order) {
	payload, err := json.Marshal(orderCreatedEvent{
		OrderID:    order.ID.Hex(),
		TotalPrice: order.TotalPrice,
		ItemCount:  len(order.OrderItems),
		CreatedAt:  order.CreatedAt,
	})
	if err != nil {
		log.Printf("failed to marshal order-created event: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(order.ID.Hex()), // order id for ordering
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order-created")},
		},
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		log.Printf("failed to publish order-created event for %v: %v", order.ID.Hex(), err)
	}
}

// NewKafkaWriter builds the writer for order events.
func NewKafkaWriter(brokers ...string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "order-created",
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
