package usecase

import (
	"regexp"
	"strings"

	"github.com/homecart/backend/internal/domain"
)

// Maximum phrase window for the greedy segmentation strategy.
const maxPhraseWindow = 3

var (
	// Delimiter-based split attempts, in order: comma, slash, and the
	// leading-attached "ו" conjunction ("לחם וחלב" -> "לחם", "חלב").
	splitDelimiterRegexes = []*regexp.Regexp{
		regexp.MustCompile(`\s*,\s*`),
		regexp.MustCompile(`\s*/\s*`),
		regexp.MustCompile(`\s+ו`),
	}

	wordSplitRegex = regexp.MustCompile(`\s+`)
	pureDigitRegex = regexp.MustCompile(`^\d+\.?\d*$`)
)

// TrySplitLine decides whether text bundles two or more distinct products
// and, if so, how to segment it. Delimiter splits are tried first; failing
// those, a greedy longest-phrase-first segmentation races a single-word
// segmentation and the one resolving more dictionary matches wins. A winning
// segmentation is accepted only with more than one segment and at least two
// matches; otherwise the whole text comes back as a single unmatched segment.
func (s *ParserService) TrySplitLine(text string, dict domain.ProductDictionary) []domain.SplitResult {
	text = unicodeSpaceRegex.ReplaceAllString(text, " ")

	for _, delim := range splitDelimiterRegexes {
		var parts []string
		for _, p := range delim.Split(text, -1) {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) > 1 {
			results := make([]domain.SplitResult, len(parts))
			anyMatched := false
			for i, p := range parts {
				match := s.matcher.FindBestMatch(p, dict)
				results[i] = domain.SplitResult{Text: p, Match: match}
				if match != nil {
					anyMatched = true
				}
			}
			if anyMatched {
				return results
			}
		}
	}

	words := wordSplitRegex.Split(strings.TrimSpace(text), -1)
	if len(words) < 2 {
		return []domain.SplitResult{{Text: text}}
	}

	meaningful := make([]string, 0, len(words))
	for _, w := range words {
		if !pureDigitRegex.MatchString(w) {
			meaningful = append(meaningful, w)
		}
	}
	if len(meaningful) < 2 {
		return []domain.SplitResult{{Text: text}}
	}

	greedyResults := s.segmentGreedy(words, dict)
	singleResults := s.segmentSingleWords(meaningful, dict)

	greedyMatches := countMatches(greedyResults)
	singleMatches := countMatches(singleResults)

	// Ties favor the greedy segmentation (longer canonical phrases).
	best := greedyResults
	if singleMatches > greedyMatches {
		best = singleResults
	}
	bestMatchCount := greedyMatches
	if singleMatches > bestMatchCount {
		bestMatchCount = singleMatches
	}

	if len(best) > 1 && bestMatchCount >= 2 {
		return best
	}

	return []domain.SplitResult{{Text: text}}
}

// segmentGreedy scans left to right, skipping pure-digit words, taking at
// each position the longest phrase (up to maxPhraseWindow words) that
// resolves against the dictionary; unresolved words pass through as
// unmatched single-word segments.
func (s *ParserService) segmentGreedy(words []string, dict domain.ProductDictionary) []domain.SplitResult {
	var results []domain.SplitResult

	i := 0
	for i < len(words) {
		if pureDigitRegex.MatchString(words[i]) {
			i++
			continue
		}

		bestLen := 0
		var bestMatch *domain.Product
		maxLen := maxPhraseWindow
		if remaining := len(words) - i; remaining < maxLen {
			maxLen = remaining
		}
		for length := maxLen; length >= 1; length-- {
			phrase := strings.Join(words[i:i+length], " ")
			if match := s.matcher.FindBestMatch(phrase, dict); match != nil && match.Name != "" {
				bestLen = length
				bestMatch = match
				break
			}
		}

		if bestMatch != nil {
			results = append(results, domain.SplitResult{
				Text:  strings.Join(words[i:i+bestLen], " "),
				Match: bestMatch,
			})
			i += bestLen
		} else {
			results = append(results, domain.SplitResult{Text: words[i]})
			i++
		}
	}

	return results
}

// segmentSingleWords matches each meaningful word independently.
func (s *ParserService) segmentSingleWords(words []string, dict domain.ProductDictionary) []domain.SplitResult {
	results := make([]domain.SplitResult, len(words))
	for i, w := range words {
		results[i] = domain.SplitResult{Text: w, Match: s.matcher.FindBestMatch(w, dict)}
	}
	return results
}

func countMatches(results []domain.SplitResult) int {
	n := 0
	for _, r := range results {
		if r.Match != nil {
			n++
		}
	}
	return n
}
