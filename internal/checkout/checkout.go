// Package checkout turns a session's cart plus a shipping form into an
// order: Idle -> Validating -> Submitting -> Confirmed, or Failed when
// validation or the order store rejects the submission.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	cartdomain "github.com/bacharbh/shopeasy/internal/cart/domain"
	orderdomain "github.com/bacharbh/shopeasy/internal/order/domain"
	"github.com/bacharbh/shopeasy/internal/pricing"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/singleflight"
)

var (
	ErrMissingFields = errors.New("please fill in all required fields")
	ErrEmptyCart     = errors.New("cart is empty, nothing to checkout")
	ErrSubmitFailed  = errors.New("order submission failed")
)

// PaymentMethod is a cosmetic tag on the order; there is no gateway behind it.
const PaymentMethod = "Stripe"

type ShippingForm struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	State      string
	Country    string
	PostalCode string
	PromoCode  string
}

// CartAccess is what the flow needs from the cart: the snapshot to price
// and the clear-on-success.
type CartAccess interface {
	Get(ctx context.Context, sessionID string) (*cartdomain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type OrderCreator interface {
	Create(ctx context.Context, order *orderdomain.Order) (*orderdomain.Order, error)
}

type Result struct {
	OrderID string
	Email   string
	Status  Status
	Summary pricing.Summary
}

type Service struct {
	carts   CartAccess
	orders  OrderCreator
	breaker *gobreaker.CircuitBreaker[*orderdomain.Order]
	sfg     singleflight.Group // one in-flight submission per session
}

func NewService(carts CartAccess, orders OrderCreator) *Service {
	breaker := gobreaker.NewCircuitBreaker[*orderdomain.Order](gobreaker.Settings{
		Name: "order-store",
	})
	return &Service{
		carts:   carts,
		orders:  orders,
		breaker: breaker,
	}
}

// Submit runs the whole flow. Concurrent submissions for the same session
// collapse into one order creation; the duplicates receive the same result.
// On any failure the cart is left untouched.
func (s *Service) Submit(ctx context.Context, sessionID string, form ShippingForm) (*Result, error) {
	v, err, _ := s.sfg.Do(sessionID, func() (interface{}, error) {
		return s.submit(ctx, sessionID, form)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

func (s *Service) submit(ctx context.Context, sessionID string, form ShippingForm) (*Result, error) {
	if missing := form.missingFields(); len(missing) > 0 {
		log.Printf("checkout %s for session %s: missing %v", StatusFailed, sessionID, missing)
		return nil, ErrMissingFields
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	summary := pricing.Summarize(cart.Items, form.PromoCode)
	order := buildOrder(cart, form, summary)

	log.Printf("checkout %s for session %s: %d lines, total %.2f",
		StatusSubmitting, sessionID, len(order.OrderItems), order.TotalPrice)
	created, err := s.breaker.Execute(func() (*orderdomain.Order, error) {
		return s.orders.Create(ctx, order)
	})
	if err != nil {
		log.Printf("checkout %s for session %s: %v", StatusFailed, sessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		// The order exists; a stale cart is the lesser evil here.
		log.Printf("failed to clear cart for session %s after order %s: %v",
			sessionID, created.ID.Hex(), err)
	}

	return &Result{
		OrderID: created.ID.Hex(),
		Email:   form.Email,
		Status:  StatusConfirmed,
		Summary: summary,
	}, nil
}

func (f ShippingForm) missingFields() []string {
	required := map[string]string{
		"name":        f.Name,
		"email":       f.Email,
		"phone":       f.Phone,
		"address":     f.Address,
		"city":        f.City,
		"state":       f.State,
		"country":     f.Country,
		"postal_code": f.PostalCode,
	}

	var missing []string
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

func buildOrder(cart *cartdomain.Cart, form ShippingForm, summary pricing.Summary) *orderdomain.Order {
	items := make([]orderdomain.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, orderdomain.OrderItem{
			Name:    line.Name,
			Qty:     line.Quantity,
			Image:   line.Image,
			Price:   line.Price,
			Product: line.ProductID,
		})
	}

	return &orderdomain.Order{
		OrderItems: items,
		ShippingAddress: orderdomain.ShippingAddress{
			Address:    form.Address,
			City:       form.City,
			PostalCode: form.PostalCode,
			Country:    form.Country,
		},
		PaymentMethod: PaymentMethod,
		ItemsPrice:    summary.ItemsPrice,
		TaxPrice:      summary.TaxPrice,
		ShippingPrice: summary.ShippingPrice,
		TotalPrice:    summary.TotalPrice,
	}
}
