package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bacharbh/shopeasy/internal/order/domain"
	"github.com/bacharbh/shopeasy/internal/order/repository"
	"github.com/go-chi/chi/v5"
)

type OrderProvider interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
}

type OrderHandler struct {
	orders  OrderProvider
	timeout time.Duration
}

func NewOrderHandler(orders OrderProvider, timeout time.Duration) *OrderHandler {
	return &OrderHandler{
		orders:  orders,
		timeout: timeout,
	}
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	order, err := h.orders.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "order not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load order")
		return
	}

	respondJSON(w, http.StatusOK, order)
}
