package usecase

import (
	"log"
	"strings"

	"github.com/homecart/backend/internal/domain"
)

// ParserConfig holds configuration for the parser service
type ParserConfig struct {
	EnableDebugLogging bool
}

// ParserService turns free-form multi-line text pasted from chat apps into
// discrete shopping-list item candidates reconciled against the product
// dictionary.
type ParserService struct {
	matcher            *MatchingService
	enableDebugLogging bool
}

// NewParserService creates a new parser service with its own matcher
func NewParserService(config ParserConfig) *ParserService {
	return &ParserService{
		matcher:            NewMatchingService(MatchConfig{EnableDebugLogging: config.EnableDebugLogging}),
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Matcher exposes the underlying matching service for callers that need
// direct lookups (autocomplete, single-item add).
func (s *ParserService) Matcher() *MatchingService {
	return s.matcher
}

// ParseBulkText parses a multi-line text block into item candidates. Each
// non-blank line is tokenized, matched whole against the dictionary, and
// tried as a multi-product split; the split wins only when it yields at
// least two distinct matched products and the whole-line match was not
// exact. Every candidate comes back pre-selected and tagged with its
// verbatim originating line.
func (s *ParserService) ParseBulkText(text string, dict domain.ProductDictionary) []domain.BulkParsedItem {
	var items []domain.BulkParsedItem

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parsed := ParseLineItem(line)
		if parsed == nil {
			continue
		}

		match := s.matcher.FindBestMatch(parsed.Name, dict)
		isExactMatch := match != nil &&
			NormalizeProductName(match.Name) == NormalizeProductName(parsed.Name)

		subItems := s.TrySplitLine(parsed.Name, dict)
		uniqueProducts := make(map[string]struct{})
		for _, sub := range subItems {
			if sub.Match != nil {
				uniqueProducts[sub.Match.Name] = struct{}{}
			}
		}

		if s.enableDebugLogging {
			log.Printf("[PARSE] line=%q name=%q qty=%q exact=%v segments=%d distinct=%d",
				line, parsed.Name, parsed.Quantity, isExactMatch, len(subItems), len(uniqueProducts))
		}

		// Prefer the split only for a fuzzy (or missing) whole-line match
		// that decomposed into 2+ distinct known products. Quantity is
		// dropped for split-derived items: the original line's quantity
		// cannot be unambiguously distributed across them.
		switch {
		case len(subItems) > 1 && len(uniqueProducts) >= 2 && !isExactMatch:
			for _, sub := range subItems {
				item := domain.BulkParsedItem{
					OriginalText: line,
					Name:         sub.Text,
					Category:     domain.CategoryOther,
					Selected:     true,
				}
				if sub.Match != nil {
					item.Name = sub.Match.Name
					item.Category = sub.Match.Category
					item.Matched = true
				}
				items = append(items, item)
			}
		case match != nil:
			items = append(items, domain.BulkParsedItem{
				OriginalText: line,
				Name:         match.Name,
				Category:     match.Category,
				Quantity:     parsed.Quantity,
				Matched:      true,
				Selected:     true,
			})
		default:
			items = append(items, domain.BulkParsedItem{
				OriginalText: line,
				Name:         parsed.Name,
				Category:     domain.CategoryOther,
				Quantity:     parsed.Quantity,
				Matched:      false,
				Selected:     true,
			})
		}
	}

	return items
}
