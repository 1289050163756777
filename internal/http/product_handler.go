package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bacharbh/shopeasy/internal/catalog/domain"
	"github.com/bacharbh/shopeasy/internal/catalog/repository"
	"github.com/bacharbh/shopeasy/internal/catalog/service"
	"github.com/go-chi/chi/v5"
)

// CatalogProvider is the catalog surface the handler depends on.
type CatalogProvider interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Reseed(ctx context.Context, products []domain.Product) ([]domain.Product, error)
}

type ProductHandler struct {
	catalog  CatalogProvider
	seedData func() []domain.Product
	timeout  time.Duration
}

func NewProductHandler(catalog CatalogProvider, seedData func() []domain.Product, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		catalog:  catalog,
		seedData: seedData,
		timeout:  timeout,
	}
}

// GetProducts lists the catalog. A keyword query filters it, a sort query
// orders it by price; supplying both applies only the keyword filter.
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.catalog.Products(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load products")
		return
	}

	if keyword := r.URL.Query().Get("keyword"); keyword != "" {
		products = service.Search(products, keyword)
	} else if sortKey := r.URL.Query().Get("sort"); sortKey != "" {
		products = service.SortByPrice(products, sortKey)
	}

	if products == nil {
		products = []domain.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	product, err := h.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load product")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// SeedProducts wipes and reloads the catalog with the stock demo data.
func (h *ProductHandler) SeedProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	created, err := h.catalog.Reseed(ctx, h.seedData())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to seed products")
		return
	}

	respondJSON(w, http.StatusOK, created)
}
