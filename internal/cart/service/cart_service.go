package service

import (
	"context"
	"errors"
	"log"
	"sync"

	catalogdomain "github.com/bacharbh/shopeasy/internal/catalog/domain"
	"github.com/bacharbh/shopeasy/internal/catalog/repository"
	"github.com/bacharbh/shopeasy/internal/cart/domain"
	"github.com/bacharbh/shopeasy/internal/cart/store"
)

// ProductResolver is the slice of the catalog the cart needs to snapshot
// name/price/image at add time.
type ProductResolver interface {
	Get(ctx context.Context, id string) (*catalogdomain.Product, error)
}

type CartService struct {
	store   store.Store
	catalog ProductResolver

	mu   sync.RWMutex
	subs []Subscriber
}

func NewCartService(store store.Store, catalog ProductResolver) *CartService {
	return &CartService{
		store:   store,
		catalog: catalog,
	}
}

// Subscribe registers a listener for post-mutation events.
func (s *CartService) Subscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, sub)
}

func (s *CartService) notify(event CartEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sub := range s.subs {
		sub(event)
	}
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	return s.store.Load(ctx, sessionID)
}

// AddToCart resolves the product reference and merges a snapshot line into
// the session's cart. An unresolvable reference is a silent no-op, not an
// error; the caller sees an unchanged cart.
func (s *CartService) AddToCart(ctx context.Context, sessionID, productID string, quantity int) (*domain.Cart, error) {
	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			log.Printf("add to cart ignored, unknown product %s", productID)
			return s.store.Load(ctx, sessionID)
		}
		return nil, err
	}

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Add(domain.LineItem{
		ProductID: product.ID.Hex(),
		Name:      product.Name,
		Price:     product.Price, // price at add time, never re-fetched
		Image:     product.Image,
	}, quantity)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}

	s.notify(CartEvent{
		Kind:          EventItemAdded,
		SessionID:     sessionID,
		ProductName:   product.Name,
		Quantity:      quantity,
		TotalQuantity: cart.TotalQuantity(),
	})
	return cart, nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Remove(productID)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}

	s.notify(CartEvent{
		Kind:          EventItemRemoved,
		SessionID:     sessionID,
		TotalQuantity: cart.TotalQuantity(),
	})
	return cart, nil
}

// UpdateQuantity sets a line's quantity in place; zero or negative values
// remove the line.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.SetQuantity(productID, quantity)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}

	s.notify(CartEvent{
		Kind:          EventItemUpdated,
		SessionID:     sessionID,
		Quantity:      quantity,
		TotalQuantity: cart.TotalQuantity(),
	})
	return cart, nil
}

// Clear resets the session to an empty cart; a later Load sees the empty
// sequence.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return err
	}

	s.notify(CartEvent{
		Kind:      EventCartCleared,
		SessionID: sessionID,
	})
	return nil
}
