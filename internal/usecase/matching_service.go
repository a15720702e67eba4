package usecase

import (
	"log"
	"sort"
	"strings"

	"github.com/homecart/backend/internal/domain"
)

// Length-adaptive acceptance thresholds. Very short strings (2-3 letters)
// would otherwise fuzzy-match almost anything in the dictionary, so the bar
// rises as the compared strings get shorter.
const (
	thresholdShort  = 0.75 // min(len) <= 3
	thresholdMedium = 0.6  // min(len) <= 5
	thresholdLong   = 0.5  // everything else
)

// Containment scoring knobs. A candidate that contains the input as a
// substring (plural/singular, attached modifiers) is rewarded above generic
// edit distance.
const (
	containsBonus    = 0.15 // input is a substring of the candidate
	minCoverageRatio = 0.8  // candidate-inside-input minimum coverage
)

// Default cap on autocomplete suggestions returned by Suggest.
const defaultSuggestLimit = 8

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	EnableDebugLogging bool
}

// MatchingService resolves noisy product name strings against the family
// product dictionary.
type MatchingService struct {
	enableDebugLogging bool
}

// NewMatchingService creates a new matching service with the given configuration
func NewMatchingService(config MatchConfig) *MatchingService {
	return &MatchingService{
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// FindBestMatch resolves inputName to the best matching product in the
// dictionary, or nil when nothing clears its acceptance threshold.
//
// Lookup order: exact normalized-key hit, then an exact normalized-name scan
// (covers dictionaries keyed differently than by normalized name), then a
// fuzzy scan combining substring containment scoring with edit-distance
// similarity. The fuzzy scan iterates keys in ascending order so that
// "first encountered wins on tie" is deterministic regardless of Go map
// iteration order.
func (s *MatchingService) FindBestMatch(inputName string, dict domain.ProductDictionary) *domain.Product {
	normalized := NormalizeProductName(inputName)
	if normalized == "" {
		return nil
	}

	// 1. Exact normalized-key match
	if p, ok := dict[normalized]; ok {
		return &p
	}

	keys := sortedKeys(dict)

	// 2. Exact name match (case insensitive)
	for _, k := range keys {
		p := dict[k]
		if NormalizeProductName(p.Name) == normalized {
			return &p
		}
	}

	// 3. Fuzzy matching with scoring
	var bestMatch *domain.Product
	bestScore := 0.0

	inputLen := len([]rune(normalized))
	for _, k := range keys {
		p := dict[k]
		pName := NormalizeProductName(p.Name)
		pLen := len([]rune(pName))

		var score float64
		switch {
		case strings.Contains(pName, normalized):
			score = float64(inputLen)/float64(pLen) + containsBonus
			if score > 1 {
				score = 1
			}
		case strings.Contains(normalized, pName):
			coverage := float64(pLen) / float64(inputLen)
			if coverage >= minCoverageRatio {
				score = coverage
			}
		default:
			score = levenshteinSimilarity(normalized, pName)
		}

		threshold := matchThreshold(inputLen, pLen)
		if score > bestScore && score > threshold {
			if s.enableDebugLogging {
				log.Printf("[MATCH] %q -> %q score=%.3f threshold=%.2f", normalized, pName, score, threshold)
			}
			bestScore = score
			candidate := p
			bestMatch = &candidate
		}
	}

	return bestMatch
}

// Suggest returns up to limit autocomplete candidates for a partial input:
// products whose normalized name contains the input (or vice versa), falling
// back to a single fuzzy match when no containment candidate exists. Inputs
// shorter than two runes yield no suggestions.
func (s *MatchingService) Suggest(input string, dict domain.ProductDictionary, limit int) []domain.Product {
	normalized := NormalizeProductName(input)
	if len([]rune(normalized)) < 2 {
		return nil
	}
	if limit <= 0 {
		limit = defaultSuggestLimit
	}

	var matches []domain.Product
	for _, k := range sortedKeys(dict) {
		p := dict[k]
		pName := NormalizeProductName(p.Name)
		if strings.Contains(pName, normalized) || strings.Contains(normalized, pName) {
			matches = append(matches, p)
			if len(matches) == limit {
				break
			}
		}
	}

	if len(matches) == 0 {
		if best := s.FindBestMatch(input, dict); best != nil {
			matches = append(matches, *best)
		}
	}

	return matches
}

// matchThreshold picks the acceptance threshold from the shorter of the two
// compared strings, measured in runes.
func matchThreshold(inputLen, candidateLen int) float64 {
	minLen := inputLen
	if candidateLen < minLen {
		minLen = candidateLen
	}
	switch {
	case minLen <= 3:
		return thresholdShort
	case minLen <= 5:
		return thresholdMedium
	default:
		return thresholdLong
	}
}

// sortedKeys returns the dictionary keys in ascending order for a
// deterministic, caller-visible scan order.
func sortedKeys(dict domain.ProductDictionary) []string {
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
