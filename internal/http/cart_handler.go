package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bacharbh/shopeasy/internal/cart/domain"
	"github.com/bacharbh/shopeasy/internal/pricing"
	"github.com/go-chi/chi/v5"
)

// CartOperator is the cart surface the handler depends on.
type CartOperator interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	AddToCart(ctx context.Context, sessionID, productID string, quantity int) (*domain.Cart, error)
	RemoveFromCart(ctx context.Context, sessionID, productID string) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type CartHandler struct {
	carts   CartOperator
	timeout time.Duration
}

func NewCartHandler(carts CartOperator, timeout time.Duration) *CartHandler {
	return &CartHandler{
		carts:   carts,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartResponseDTO struct {
	Items         []domain.LineItem `json:"items"`
	TotalQuantity int               `json:"total_quantity"`
}

func cartResponse(cart *domain.Cart) CartResponseDTO {
	items := cart.Items
	if items == nil {
		items = []domain.LineItem{}
	}
	return CartResponseDTO{
		Items:         items,
		TotalQuantity: cart.TotalQuantity(),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}

	cart, err := h.carts.Get(ctx, sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(cart))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	cart, err := h.carts.AddToCart(ctx, sessionID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to add item")
		return
	}

	respondJSON(w, http.StatusCreated, cartResponse(cart))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}

	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Zero and negative quantities remove the line.
	cart, err := h.carts.UpdateQuantity(ctx, sessionID, productID, req.Quantity)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update quantity")
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(cart))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}

	productID := chi.URLParam(r, "product_id")
	cart, err := h.carts.RemoveFromCart(ctx, sessionID, productID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to remove item")
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(cart))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}

	if err := h.carts.Clear(ctx, sessionID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to clear cart")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetSummary prices the current cart, optionally with a promo code. The
// promo state lives in the query, never in storage.
func (h *CartHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}

	cart, err := h.carts.Get(ctx, sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}

	promo := r.URL.Query().Get("promo")
	if promo != "" && !pricing.PromoValid(promo) {
		respondError(w, http.StatusBadRequest, "invalid_promo", "invalid promo code")
		return
	}

	respondJSON(w, http.StatusOK, pricing.Summarize(cart.Items, promo))
}
