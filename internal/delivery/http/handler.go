package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/homecart/backend/internal/domain"
	"github.com/homecart/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	parser  *usecase.ParserService
	catalog *usecase.CatalogService
	lists   *usecase.ListService
}

// NewHandler creates a new HTTP handler
func NewHandler(parser *usecase.ParserService, catalog *usecase.CatalogService, lists *usecase.ListService) *Handler {
	return &Handler{
		parser:  parser,
		catalog: catalog,
		lists:   lists,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "homecart-backend",
		"version": "1.0.0",
	})
}

type parseRequest struct {
	Text string `json:"text" binding:"required"`
}

// ParseBulk previews a pasted text block as parsed item candidates.
// The dictionary snapshot is read-only during the parse; nothing is
// persisted until the client commits the selection.
func (h *Handler) ParseBulk(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	dict, err := h.catalog.Dictionary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product dictionary"})
		return
	}

	items := h.parser.ParseBulkText(req.Text, dict)
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type commitRequest struct {
	Items   []domain.BulkParsedItem `json:"items" binding:"required"`
	AddedBy string                  `json:"addedBy"`
}

// CommitParsedItems persists the selected parsed candidates to the list and
// merges new product names into the catalog.
func (h *Handler) CommitParsedItems(c *gin.Context) {
	listID := c.Param("listId")

	var req commitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items are required"})
		return
	}

	created, err := h.lists.AddParsedItems(c.Request.Context(), listID, req.AddedBy, req.Items)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add items"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"items": created, "added": len(created)})
}

// ListItems returns the items of a list, newest first.
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.lists.Items(c.Request.Context(), c.Param("listId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type createItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Quantity string `json:"quantity"`
	AddedBy  string `json:"addedBy"`
}

// CreateItem adds a single item to a list.
func (h *Handler) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	item, err := h.lists.AddItem(c.Request.Context(), &domain.Item{
		ListID:   c.Param("listId"),
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		AddedBy:  req.AddedBy,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

type updateItemRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Quantity *string `json:"quantity"`
	InCart   *bool   `json:"inCart"`
	Position *int    `json:"position"`
}

// UpdateItem applies a partial update to an item.
func (h *Handler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx := c.Request.Context()
	item, err := h.lists.GetItem(ctx, c.Param("itemId"))
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load item"})
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.InCart != nil {
		item.InCart = *req.InCart
	}
	if req.Position != nil {
		item.Position = *req.Position
	}

	if err := h.lists.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem removes a single item.
func (h *Handler) DeleteItem(c *gin.Context) {
	err := h.lists.DeleteItem(c.Request.Context(), c.Param("listId"), c.Param("itemId"))
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete item"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearItems removes the list's in-cart items, or every item when
// ?completed=false is passed explicitly.
func (h *Handler) ClearItems(c *gin.Context) {
	completedOnly := true
	if v := c.Query("completed"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "completed must be a boolean"})
			return
		}
		completedOnly = parsed
	}

	ctx := c.Request.Context()
	listID := c.Param("listId")

	var removed int64
	var err error
	if completedOnly {
		removed, err = h.lists.ClearCompleted(ctx, listID)
	} else {
		removed, err = h.lists.ClearAll(ctx, listID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// ListProducts returns the full product dictionary.
func (h *Handler) ListProducts(c *gin.Context) {
	dict, err := h.catalog.Dictionary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product dictionary"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": dict})
}

// SuggestProducts returns autocomplete candidates for a partial product name.
func (h *Handler) SuggestProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	dict, err := h.catalog.Dictionary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product dictionary"})
		return
	}

	suggestions := h.parser.Matcher().Suggest(query, dict, limit)
	if suggestions == nil {
		suggestions = []domain.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// ListCategories returns the family's categories in display order.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListLists returns the family's shopping lists.
func (h *Handler) ListLists(c *gin.Context) {
	lists, err := h.catalog.Lists(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list shopping lists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lists": lists})
}
