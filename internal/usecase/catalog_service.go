package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/homecart/backend/internal/domain"
)

const dictionaryCacheKey = "catalog:dictionary"

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// CatalogService mediates access to the persisted product dictionary,
// serving parse calls from a TTL-cached snapshot and folding newly
// discovered products back in.
type CatalogService struct {
	repo               domain.CatalogRepository
	cache              domain.CacheRepository
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewCatalogService creates a new catalog service with dependencies
func NewCatalogService(
	repo domain.CatalogRepository,
	cache domain.CacheRepository,
	config CatalogServiceConfig,
) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}

	return &CatalogService{
		repo:               repo,
		cache:              cache,
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Dictionary returns the current product dictionary snapshot.
// Flow: check cache -> load from store -> cache -> return. Callers must
// treat the snapshot as read-only; mutation goes through MergeProducts.
func (s *CatalogService) Dictionary(ctx context.Context) (domain.ProductDictionary, error) {
	if value, err := s.cache.Get(ctx, dictionaryCacheKey); err == nil {
		if dict, ok := value.(domain.ProductDictionary); ok {
			return dict, nil
		}
	}

	dict, err := s.repo.Dictionary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	if err := s.cache.Set(ctx, dictionaryCacheKey, dict, s.cacheTTL); err != nil && s.enableDebugLogging {
		log.Printf("[CATALOG] failed to cache dictionary: %v", err)
	}

	return dict, nil
}

// EnsureProduct inserts {name, category} into the dictionary under the
// freshly normalized key, unless that key already exists. The dictionary
// only grows this way; existing entries are never re-weighted or replaced.
// Reports whether an insertion happened.
func (s *CatalogService) EnsureProduct(ctx context.Context, name, category string) (bool, error) {
	key := NormalizeProductName(name)
	if key == "" {
		return false, nil
	}

	dict, err := s.Dictionary(ctx)
	if err != nil {
		return false, err
	}
	if _, ok := dict[key]; ok {
		return false, nil
	}

	if category == "" {
		category = domain.CategoryOther
	}
	if err := s.repo.UpsertProduct(ctx, key, domain.Product{Name: name, Category: category}); err != nil {
		return false, err
	}

	// Drop the cached snapshot so the next parse sees the new entry.
	if err := s.cache.Delete(ctx, dictionaryCacheKey); err != nil && s.enableDebugLogging {
		log.Printf("[CATALOG] failed to invalidate dictionary cache: %v", err)
	}

	if s.enableDebugLogging {
		log.Printf("[CATALOG] learned product %q (category=%s)", name, category)
	}
	return true, nil
}

// MergeProducts folds the names of freshly added items back into the
// dictionary, skipping anything already known.
func (s *CatalogService) MergeProducts(ctx context.Context, items []domain.BulkParsedItem) error {
	for _, item := range items {
		if _, err := s.EnsureProduct(ctx, item.Name, item.Category); err != nil {
			return err
		}
	}
	return nil
}

// Categories returns the family's categories in display order.
func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.Categories(ctx)
}

// Lists returns the family's shopping lists.
func (s *CatalogService) Lists(ctx context.Context) ([]domain.ShoppingList, error) {
	return s.repo.Lists(ctx)
}
