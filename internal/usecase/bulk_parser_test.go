package usecase

import (
	"testing"

	"github.com/homecart/backend/internal/domain"
)

func bulkDict() domain.ProductDictionary {
	return dictOf(
		domain.Product{Name: "חלב", Category: "dairy"},
		domain.Product{Name: "לחם", Category: "bakery"},
		domain.Product{Name: "ביצים", Category: "dairy"},
		domain.Product{Name: "מלפפונים", Category: "vegetables"},
	)
}

func TestParseBulkText(t *testing.T) {
	svc := NewParserService(ParserConfig{})

	t.Run("parses lines and skips blanks", func(t *testing.T) {
		text := "חלב\n\nלחם - 2\nמשהו לא מוכר"
		items := svc.ParseBulkText(text, bulkDict())
		if len(items) != 3 {
			t.Fatalf("got %d items, want 3: %+v", len(items), items)
		}

		if items[0].Name != "חלב" || items[0].Category != "dairy" || !items[0].Matched {
			t.Errorf("item 0 = %+v, want matched חלב/dairy", items[0])
		}
		if items[1].Name != "לחם" || items[1].Quantity != "2" || !items[1].Matched {
			t.Errorf("item 1 = %+v, want matched לחם qty 2", items[1])
		}
		if items[1].OriginalText != "לחם - 2" {
			t.Errorf("item 1 OriginalText = %q, want verbatim line", items[1].OriginalText)
		}
		if items[2].Matched || items[2].Category != domain.CategoryOther {
			t.Errorf("item 2 = %+v, want unmatched in %q", items[2], domain.CategoryOther)
		}
		for i, item := range items {
			if !item.Selected {
				t.Errorf("item %d not pre-selected", i)
			}
		}
	})

	t.Run("splits conjunction line into two items", func(t *testing.T) {
		items := svc.ParseBulkText("לחם וחלב", bulkDict())
		if len(items) != 2 {
			t.Fatalf("got %d items, want 2: %+v", len(items), items)
		}
		if items[0].Name != "לחם" || items[1].Name != "חלב" {
			t.Errorf("names = [%q, %q], want [לחם, חלב]", items[0].Name, items[1].Name)
		}
		for i, item := range items {
			if !item.Matched {
				t.Errorf("item %d not matched: %+v", i, item)
			}
			if item.Quantity != "" {
				t.Errorf("item %d quantity = %q, want empty for split items", i, item.Quantity)
			}
			if item.OriginalText != "לחם וחלב" {
				t.Errorf("item %d OriginalText = %q, want the shared line", i, item.OriginalText)
			}
		}
	})

	t.Run("splits adjacent products without delimiter", func(t *testing.T) {
		items := svc.ParseBulkText("חלב ביצים", bulkDict())
		if len(items) != 2 {
			t.Fatalf("got %d items, want 2: %+v", len(items), items)
		}
		if items[0].Name != "חלב" || items[1].Name != "ביצים" {
			t.Errorf("names = [%q, %q], want [חלב, ביצים]", items[0].Name, items[1].Name)
		}
	})

	t.Run("exact whole-line match suppresses the split", func(t *testing.T) {
		dict := dictOf(
			domain.Product{Name: "עוגיות", Category: "snacks"},
			domain.Product{Name: "שוקולד", Category: "snacks"},
			domain.Product{Name: "עוגיות שוקולד", Category: "snacks"},
		)
		items := svc.ParseBulkText("עוגיות שוקולד", dict)
		if len(items) != 1 {
			t.Fatalf("got %d items, want 1: %+v", len(items), items)
		}
		if items[0].Name != "עוגיות שוקולד" || !items[0].Matched {
			t.Errorf("item = %+v, want matched עוגיות שוקולד", items[0])
		}
	})

	t.Run("fuzzy match canonicalizes name and keeps quantity", func(t *testing.T) {
		items := svc.ParseBulkText("מלפפון x3", bulkDict())
		if len(items) != 1 {
			t.Fatalf("got %d items, want 1: %+v", len(items), items)
		}
		if items[0].Name != "מלפפונים" || items[0].Category != "vegetables" {
			t.Errorf("item = %+v, want canonical מלפפונים/vegetables", items[0])
		}
		if items[0].Quantity != "3" {
			t.Errorf("quantity = %q, want 3", items[0].Quantity)
		}
		if items[0].OriginalText != "מלפפון x3" {
			t.Errorf("OriginalText = %q, want verbatim line", items[0].OriginalText)
		}
	})

	t.Run("unmatched line keeps tokenized name", func(t *testing.T) {
		items := svc.ParseBulkText("Paper towels - 2", bulkDict())
		if len(items) != 1 {
			t.Fatalf("got %d items, want 1: %+v", len(items), items)
		}
		if items[0].Name != "Paper towels" || items[0].Quantity != "2" || items[0].Matched {
			t.Errorf("item = %+v, want unmatched Paper towels qty 2", items[0])
		}
	})

	t.Run("empty text yields no items", func(t *testing.T) {
		if items := svc.ParseBulkText("  \n\n ", bulkDict()); len(items) != 0 {
			t.Errorf("got %d items, want 0", len(items))
		}
	})
}
