package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/homecart/backend/internal/domain"
)

// ItemStore persists shopping-list items.
type ItemStore struct {
	db *sql.DB
}

// NewItemStore creates an item store backed by db
func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

// Create inserts a single item and fills in its timestamps.
func (s *ItemStore) Create(ctx context.Context, item *domain.Item) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (id, list_id, name, category, quantity, photo, in_cart, added_by, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, item.ID, item.ListID, item.Name, item.Category, item.Quantity, item.Photo,
		item.InCart, item.AddedBy, item.Position, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// CreateBatch inserts items in one transaction, mirroring the bulk-add flow.
func (s *ItemStore) CreateBatch(ctx context.Context, items []*domain.Item) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch insert: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, item := range items {
		item.CreatedAt = now
		item.UpdatedAt = now
		_, err := tx.ExecContext(ctx, `
			INSERT INTO items (id, list_id, name, category, quantity, photo, in_cart, added_by, position, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, item.ID, item.ListID, item.Name, item.Category, item.Quantity, item.Photo,
			item.InCart, item.AddedBy, item.Position, item.CreatedAt, item.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert item %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch insert: %w", err)
	}
	return nil
}

// GetByID returns the item with the given id, or ErrItemNotFound.
func (s *ItemStore) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	item := &domain.Item{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, list_id, name, category, quantity, photo, in_cart, added_by, position, created_at, updated_at
		FROM items WHERE id = ?
	`, id).Scan(&item.ID, &item.ListID, &item.Name, &item.Category, &item.Quantity,
		&item.Photo, &item.InCart, &item.AddedBy, &item.Position, &item.CreatedAt, &item.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// ListByList returns all items of a list, newest first.
func (s *ItemStore) ListByList(ctx context.Context, listID string) ([]*domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, list_id, name, category, quantity, photo, in_cart, added_by, position, created_at, updated_at
		FROM items WHERE list_id = ? ORDER BY created_at DESC, id ASC
	`, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		item := &domain.Item{}
		if err := rows.Scan(&item.ID, &item.ListID, &item.Name, &item.Category, &item.Quantity,
			&item.Photo, &item.InCart, &item.AddedBy, &item.Position, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// Update rewrites an item's mutable fields and bumps updated_at.
func (s *ItemStore) Update(ctx context.Context, item *domain.Item) error {
	item.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		UPDATE items SET name = ?, category = ?, quantity = ?, photo = ?, in_cart = ?, position = ?, updated_at = ?
		WHERE id = ?
	`, item.Name, item.Category, item.Quantity, item.Photo, item.InCart, item.Position, item.UpdatedAt, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Delete removes a single item.
func (s *ItemStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// DeleteCompleted removes every in-cart item of a list and reports how many
// rows went away.
func (s *ItemStore) DeleteCompleted(ctx context.Context, listID string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE list_id = ? AND in_cart = 1`, listID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear completed items: %w", err)
	}
	return result.RowsAffected()
}

// DeleteAll removes every item of a list.
func (s *ItemStore) DeleteAll(ctx context.Context, listID string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE list_id = ?`, listID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear items: %w", err)
	}
	return result.RowsAffected()
}
