package service

import (
	"sort"
	"strings"

	"github.com/bacharbh/shopeasy/internal/catalog/domain"
)

// Sort criteria recognized by SortByPrice. Anything else leaves the list as is.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// Search filters by case-insensitive substring match on name or description,
// preserving relative order. An empty query returns the input unchanged.
//
// Search and SortByPrice are independent views over the same list; applying
// one does not remember the other. Known limitation carried over from the
// storefront UI, where each control re-renders from the full list.
func Search(products []domain.Product, query string) []domain.Product {
	if query == "" {
		return products
	}

	q := strings.ToLower(query)
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SortByPrice returns a copy sorted by price. Unrecognized criteria return
// the original order unchanged.
func SortByPrice(products []domain.Product, criterion string) []domain.Product {
	if criterion != SortPriceAsc && criterion != SortPriceDesc {
		return products
	}

	sorted := make([]domain.Product, len(products))
	copy(sorted, products)

	sort.SliceStable(sorted, func(i, j int) bool {
		if criterion == SortPriceAsc {
			return sorted[i].Price < sorted[j].Price
		}
		return sorted[i].Price > sorted[j].Price
	})
	return sorted
}
