package domain

import "time"

// Product is a canonical catalog entry in the family product dictionary.
// Its identity for lookup purposes is the normalized form of Name, not an id.
type Product struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Photo    string `json:"photo,omitempty"`
}

// ProductDictionary maps normalized product name -> Product. Every key must
// equal the normalized form of its value's Name at insertion time; callers
// mutating a dictionary must preserve that invariant.
type ProductDictionary = map[string]Product

// ParsedLineItem is the result of tokenizing a single raw line of text.
// Quantity keeps its original unit text verbatim ("2 ק\"ג"), or is empty
// when no quantity expression was detected.
type ParsedLineItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// SplitResult is one segment of a candidate multi-item line together with
// the product it resolved to, if any.
type SplitResult struct {
	Text  string   `json:"text"`
	Match *Product `json:"match,omitempty"`
}

// BulkParsedItem is one parsed item candidate produced from a bulk text
// block. Selected defaults to true so the UI pre-checks every candidate;
// Matched reports whether a dictionary hit occurred.
type BulkParsedItem struct {
	OriginalText string `json:"originalText"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Quantity     string `json:"quantity"`
	Matched      bool   `json:"matched"`
	Selected     bool   `json:"selected"`
}

// Item is a shopping-list entry as persisted by the store layer.
type Item struct {
	ID        string    `json:"id"`
	ListID    string    `json:"listId"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  string    `json:"quantity"`
	Photo     string    `json:"photo,omitempty"`
	InCart    bool      `json:"inCart"`
	AddedBy   string    `json:"addedBy,omitempty"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Category is a display grouping for items and catalog products.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Position int    `json:"position"`
}

// ShoppingList is a named list items belong to.
type ShoppingList struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryOther is the fallback category assigned to items that did not
// resolve against the product dictionary.
const CategoryOther = "other"
