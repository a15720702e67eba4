package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/homecart/backend/internal/domain"
)

// ListService owns the shopping-list item lifecycle: committing parsed item
// candidates, item CRUD, and clear flows. Mutations fan out to in-process
// subscribers so connected clients see the list move in near real time.
type ListService struct {
	items   domain.ItemRepository
	catalog *CatalogService

	mu          sync.Mutex
	subscribers map[string]map[int]chan []domain.Item
	nextSubID   int

	enableDebugLogging bool
}

// NewListService creates a new list service with dependencies
func NewListService(items domain.ItemRepository, catalog *CatalogService, enableDebugLogging bool) *ListService {
	return &ListService{
		items:              items,
		catalog:            catalog,
		subscribers:        make(map[string]map[int]chan []domain.Item),
		enableDebugLogging: enableDebugLogging,
	}
}

// AddParsedItems persists the selected parsed item candidates as list items
// and merges their names back into the product dictionary. Candidates with
// Selected == false are skipped. Returns the created items.
func (s *ListService) AddParsedItems(ctx context.Context, listID, addedBy string, parsed []domain.BulkParsedItem) ([]*domain.Item, error) {
	if listID == "" {
		return nil, domain.ErrInvalidRequest
	}

	var selected []domain.BulkParsedItem
	for _, p := range parsed {
		if p.Selected && p.Name != "" {
			selected = append(selected, p)
		}
	}
	if len(selected) == 0 {
		return nil, nil
	}

	items := make([]*domain.Item, len(selected))
	for i, p := range selected {
		category := p.Category
		if category == "" {
			category = domain.CategoryOther
		}
		items[i] = &domain.Item{
			ID:       uuid.NewString(),
			ListID:   listID,
			Name:     p.Name,
			Category: category,
			Quantity: p.Quantity,
			AddedBy:  addedBy,
		}
	}

	if err := s.items.CreateBatch(ctx, items); err != nil {
		return nil, fmt.Errorf("failed to add parsed items: %w", err)
	}

	// Dictionary growth happens strictly after the parse that produced
	// these candidates, never interleaved with it.
	if err := s.catalog.MergeProducts(ctx, selected); err != nil {
		return nil, fmt.Errorf("failed to merge products: %w", err)
	}

	if s.enableDebugLogging {
		log.Printf("[LIST] added %d items to list %s", len(items), listID)
	}

	s.notify(listID)
	return items, nil
}

// GetItem returns a single item by id.
func (s *ListService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.items.GetByID(ctx, id)
}

// Items returns the list's items, newest first.
func (s *ListService) Items(ctx context.Context, listID string) ([]*domain.Item, error) {
	return s.items.ListByList(ctx, listID)
}

// AddItem creates a single item, learning its product when unknown.
func (s *ListService) AddItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if item == nil || item.ListID == "" || item.Name == "" {
		return nil, domain.ErrInvalidRequest
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Category == "" {
		item.Category = domain.CategoryOther
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	if _, err := s.catalog.EnsureProduct(ctx, item.Name, item.Category); err != nil {
		return nil, err
	}

	s.notify(item.ListID)
	return item, nil
}

// UpdateItem rewrites an existing item.
func (s *ListService) UpdateItem(ctx context.Context, item *domain.Item) error {
	if item == nil || item.ID == "" {
		return domain.ErrInvalidRequest
	}
	if err := s.items.Update(ctx, item); err != nil {
		return err
	}
	s.notify(item.ListID)
	return nil
}

// DeleteItem removes a single item.
func (s *ListService) DeleteItem(ctx context.Context, listID, id string) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	s.notify(listID)
	return nil
}

// ClearCompleted removes every in-cart item of the list.
func (s *ListService) ClearCompleted(ctx context.Context, listID string) (int64, error) {
	n, err := s.items.DeleteCompleted(ctx, listID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.notify(listID)
	}
	return n, nil
}

// ClearAll removes every item of the list.
func (s *ListService) ClearAll(ctx context.Context, listID string) (int64, error) {
	n, err := s.items.DeleteAll(ctx, listID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.notify(listID)
	}
	return n, nil
}

// Subscribe registers for item snapshots of a list. After every mutation
// made through this service the current items are delivered on the returned
// channel; slow consumers miss intermediate snapshots rather than blocking
// writers. The cancel func must be called to release the subscription.
func (s *ListService) Subscribe(listID string) (<-chan []domain.Item, func()) {
	ch := make(chan []domain.Item, 1)

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	if s.subscribers[listID] == nil {
		s.subscribers[listID] = make(map[int]chan []domain.Item)
	}
	s.subscribers[listID][id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if subs, ok := s.subscribers[listID]; ok {
			if _, ok := subs[id]; ok {
				delete(subs, id)
				close(ch)
			}
			if len(subs) == 0 {
				delete(s.subscribers, listID)
			}
		}
	}

	return ch, cancel
}

// notify reloads the list and broadcasts the snapshot to subscribers.
func (s *ListService) notify(listID string) {
	s.mu.Lock()
	hasSubs := len(s.subscribers[listID]) > 0
	s.mu.Unlock()
	if !hasSubs {
		return
	}

	items, err := s.items.ListByList(context.Background(), listID)
	if err != nil {
		if s.enableDebugLogging {
			log.Printf("[LIST] failed to load items for broadcast: %v", err)
		}
		return
	}

	snapshot := make([]domain.Item, len(items))
	for i, item := range items {
		snapshot[i] = *item
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subscribers[listID] {
		select {
		case ch <- snapshot:
		default:
			// Replace the stale pending snapshot with the fresh one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}
