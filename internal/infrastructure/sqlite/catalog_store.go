package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/homecart/backend/internal/domain"
)

// CatalogStore persists the family product dictionary plus the category and
// list metadata.
type CatalogStore struct {
	db *sql.DB
}

// NewCatalogStore creates a catalog store backed by db
func NewCatalogStore(db *sql.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// Dictionary returns a full snapshot of the product dictionary keyed by
// normalized product name.
func (s *CatalogStore) Dictionary(ctx context.Context) (domain.ProductDictionary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, name, category, photo FROM products`)
	if err != nil {
		return nil, fmt.Errorf("failed to load product dictionary: %w", err)
	}
	defer rows.Close()

	dict := make(domain.ProductDictionary)
	for rows.Next() {
		var key string
		var p domain.Product
		if err := rows.Scan(&key, &p.Name, &p.Category, &p.Photo); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		dict[key] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return dict, nil
}

// UpsertProduct inserts or replaces the product stored under key. Callers
// are responsible for passing the freshly normalized key for p.Name.
func (s *CatalogStore) UpsertProduct(ctx context.Context, key string, p domain.Product) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO products (key, name, category, photo) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET name = excluded.name, category = excluded.category, photo = excluded.photo
	`, key, p.Name, p.Category, p.Photo)
	if err != nil {
		return fmt.Errorf("failed to upsert product: %w", err)
	}
	return nil
}

// Categories returns all categories ordered by display position.
func (s *CatalogStore) Categories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, icon, color, position FROM categories ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &c.Position); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// Lists returns all shopping lists.
func (s *CatalogStore) Lists(ctx context.Context) ([]domain.ShoppingList, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM lists ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping lists: %w", err)
	}
	defer rows.Close()

	var lists []domain.ShoppingList
	for rows.Next() {
		var l domain.ShoppingList
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lists: %w", err)
	}

	return lists, nil
}

// EnsureDefaults seeds the default categories and list on first run.
// Idempotent: existing rows are left untouched.
func (s *CatalogStore) EnsureDefaults(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range defaultCategories {
		_, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO categories (id, name, icon, color, position) VALUES (?, ?, ?, ?, ?)
		`, c.ID, c.Name, c.Icon, c.Color, c.Position)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.ID, err)
		}
	}

	for _, l := range defaultLists {
		_, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO lists (id, name) VALUES (?, ?)`, l.ID, l.Name)
		if err != nil {
			return fmt.Errorf("failed to seed list %s: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}
