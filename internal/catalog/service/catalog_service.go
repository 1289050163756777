package service

import (
	"context"
	"errors"
	"log"

	"github.com/bacharbh/shopeasy/internal/catalog/cache"
	"github.com/bacharbh/shopeasy/internal/catalog/domain"
	"github.com/bacharbh/shopeasy/internal/catalog/repository"
	"golang.org/x/sync/singleflight"
)

type CatalogService struct {
	repo  repository.ProductRepository
	cache cache.ProductCache
	sfg   singleflight.Group // Prevents cache stampede on the product list
}

func NewCatalogService(repo repository.ProductRepository, cache cache.ProductCache) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
	}
}

// Products returns the full catalog, cache-aside through Redis. Concurrent
// cache misses collapse into a single repository read.
func (s *CatalogService) Products(ctx context.Context) ([]domain.Product, error) {
	v, err, _ := s.sfg.Do("products", func() (interface{}, error) {

		products, err := s.cache.Get(ctx)
		if err == nil {
			return products, nil // list is in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v \n", err) // log cache error but continue
		}

		products, errList := s.repo.List(ctx, "")
		if errList != nil {
			return nil, errList
		}

		go func() {
			if errSet := s.cache.Set(context.Background(), products); errSet != nil {
				log.Printf("cache set error: %v \n", errSet)
			}
		}()

		return products, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]domain.Product), nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Reseed replaces the whole catalog and invalidates the cached list.
func (s *CatalogService) Reseed(ctx context.Context, products []domain.Product) ([]domain.Product, error) {
	created, err := s.repo.ReplaceAll(ctx, products)
	if err != nil {
		return nil, err
	}

	if errDel := s.cache.Delete(ctx); errDel != nil {
		log.Printf("cache invalidate error: %v \n", errDel)
	}

	return created, nil
}
