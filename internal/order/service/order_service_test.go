package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bacharbh/shopeasy/internal/order/domain"
	"github.com/bacharbh/shopeasy/internal/order/repository"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockRepo struct {
	m      sync.Mutex
	err    error
	orders map[string]*domain.Order
}

func newMockRepo() *mockRepo {
	return &mockRepo{orders: map[string]*domain.Order{}}
}

func (m *mockRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	order.ID = primitive.NewObjectID()
	m.orders[order.ID.Hex()] = order
	return order, nil
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if order, ok := m.orders[id]; ok {
		return order, nil
	}
	return nil, repository.ErrOrderNotFound
}

type mockWriter struct {
	m    sync.Mutex
	err  error
	msgs []kafka.Message
}

func (m *mockWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	m.msgs = append(m.msgs, msgs...)
	return nil
}

func sampleOrder() *domain.Order {
	return &domain.Order{
		OrderItems: []domain.OrderItem{
			{Name: "Headphones", Qty: 2, Price: 10, Product: "p1"},
		},
		TotalPrice: 32.99,
	}
}

func TestCreate_AssignsID(t *testing.T) {
	svc := NewOrderService(newMockRepo(), nil)

	created, err := svc.Create(context.Background(), sampleOrder())

	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
}

func TestCreate_PublishesEvent(t *testing.T) {
	writer := &mockWriter{}
	svc := NewOrderService(newMockRepo(), writer)

	created, err := svc.Create(context.Background(), sampleOrder())
	require.NoError(t, err)

	writer.m.Lock()
	defer writer.m.Unlock()
	require.Len(t, writer.msgs, 1)
	assert.Equal(t, []byte(created.ID.Hex()), writer.msgs[0].Key)
	require.Len(t, writer.msgs[0].Headers, 1)
	assert.Equal(t, "event_type", writer.msgs[0].Headers[0].Key)
	assert.Equal(t, []byte("order-created"), writer.msgs[0].Headers[0].Value)
}

func TestCreate_PublishFailure_DoesNotFailOrder(t *testing.T) {
	writer := &mockWriter{err: errors.New("broker down")}
	svc := NewOrderService(newMockRepo(), writer)

	created, err := svc.Create(context.Background(), sampleOrder())

	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
}

func TestCreate_RepoFailure(t *testing.T) {
	repo := newMockRepo()
	repo.err = errors.New("mongo down")
	writer := &mockWriter{}
	svc := NewOrderService(repo, writer)

	created, err := svc.Create(context.Background(), sampleOrder())

	assert.Error(t, err)
	assert.Nil(t, created)
	writer.m.Lock()
	defer writer.m.Unlock()
	assert.Empty(t, writer.msgs) // no event for a failed order
}

func TestGet_RoundTrip(t *testing.T) {
	svc := NewOrderService(newMockRepo(), nil)

	created, err := svc.Create(context.Background(), sampleOrder())
	require.NoError(t, err)

	found, err := svc.Get(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.TotalPrice, found.TotalPrice)
}

func TestGet_NotFound(t *testing.T) {
	svc := NewOrderService(newMockRepo(), nil)

	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())

	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
