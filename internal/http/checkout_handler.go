package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bacharbh/shopeasy/internal/checkout"
	"github.com/bacharbh/shopeasy/internal/pricing"
)

// CheckoutFlow is the submission surface the handler depends on.
type CheckoutFlow interface {
	Submit(ctx context.Context, sessionID string, form checkout.ShippingForm) (*checkout.Result, error)
}

type CheckoutHandler struct {
	flow    CheckoutFlow
	timeout time.Duration
}

func NewCheckoutHandler(flow CheckoutFlow, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		flow:    flow,
		timeout: timeout,
	}
}

type CheckoutRequestDTO struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	PromoCode  string `json:"promo_code,omitempty"`
}

type CheckoutResponseDTO struct {
	OrderID string          `json:"order_id"`
	Email   string          `json:"email"`
	Status  string          `json:"status"`
	Summary pricing.Summary `json:"summary"`
}

func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result, err := h.flow.Submit(ctx, sessionID, checkout.ShippingForm{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		PromoCode:  req.PromoCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrMissingFields):
			respondError(w, http.StatusBadRequest, "validation_failed", err.Error())
		case errors.Is(err, checkout.ErrEmptyCart):
			respondError(w, http.StatusBadRequest, "empty_cart", err.Error())
		default:
			respondError(w, http.StatusBadGateway, "order_failed", "order failed, please try again")
		}
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
		OrderID: result.OrderID,
		Email:   result.Email,
		Status:  result.Status.String(),
		Summary: result.Summary,
	})
}
