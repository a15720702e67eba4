package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogRepository defines the interface for product dictionary persistence.
// Dictionary returns a full snapshot; the parsing core treats it as read-only.
type CatalogRepository interface {
	Dictionary(ctx context.Context) (ProductDictionary, error)
	UpsertProduct(ctx context.Context, key string, p Product) error
	Categories(ctx context.Context) ([]Category, error)
	Lists(ctx context.Context) ([]ShoppingList, error)
}

// ItemRepository defines the interface for shopping-list item persistence
type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	CreateBatch(ctx context.Context, items []*Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	ListByList(ctx context.Context, listID string) ([]*Item, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id string) error
	DeleteCompleted(ctx context.Context, listID string) (int64, error)
	DeleteAll(ctx context.Context, listID string) (int64, error)
}
