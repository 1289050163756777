// Package pricing derives the checkout totals from cart lines. Everything
// here is a pure function; promo state is transient and never persisted.
package pricing

import (
	"strings"

	"github.com/bacharbh/shopeasy/internal/cart/domain"
)

const (
	// TaxRate is flat, not jurisdiction-aware.
	TaxRate = 0.08
	// ShippingFlat applies regardless of cart contents.
	ShippingFlat = 5.99
	// PromoRate is the discount fraction granted by the promo token.
	PromoRate = 0.10

	promoToken = "DISCOUNT10"
)

// PromoValid reports whether the entered code grants the discount.
// Comparison is case-insensitive.
func PromoValid(code string) bool {
	return strings.ToUpper(code) == promoToken
}

type Summary struct {
	ItemsPrice    float64 `json:"itemsPrice"`
	DiscountPrice float64 `json:"discountPrice"`
	TaxPrice      float64 `json:"taxPrice"`
	ShippingPrice float64 `json:"shippingPrice"`
	TotalPrice    float64 `json:"totalPrice"`
	PromoApplied  bool    `json:"promoApplied"`
	IsEmpty       bool    `json:"isEmpty"`
}

// Summarize computes the price breakdown for the given lines. With a valid
// promo code the tax is computed on the discounted subtotal. An empty cart
// is tagged IsEmpty with all-zero figures so callers render an empty state
// instead of a shipping-only total.
func Summarize(items []domain.LineItem, promoCode string) Summary {
	if len(items) == 0 {
		return Summary{IsEmpty: true}
	}

	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	s := Summary{
		ItemsPrice:    subtotal,
		ShippingPrice: ShippingFlat,
	}

	if PromoValid(promoCode) {
		s.PromoApplied = true
		s.DiscountPrice = subtotal * PromoRate
	}

	discounted := subtotal - s.DiscountPrice
	s.TaxPrice = discounted * TaxRate
	s.TotalPrice = discounted + s.TaxPrice + s.ShippingPrice
	return s
}
