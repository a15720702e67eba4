package usecase

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Package-level compiled regex pattern for performance. \p{Zs} covers the
// unicode space separators (NBSP and friends) that Go's ASCII-only \s misses;
// chat apps routinely paste those.
var whitespaceRunRegex = regexp.MustCompile(`[\s\p{Zs}]+`)

// NormalizeProductName canonicalizes a free-text product name into the
// comparison key used throughout the matcher and the product dictionary.
// Text pasted from chat apps arrives in mixed Unicode composition forms, so
// the name is NFC-folded before trimming, whitespace collapsing, and
// case-folding. The function is idempotent:
// NormalizeProductName(NormalizeProductName(s)) == NormalizeProductName(s).
func NormalizeProductName(name string) string {
	result := norm.NFC.String(name)
	result = whitespaceRunRegex.ReplaceAllString(result, " ")
	result = strings.TrimSpace(result)
	return strings.ToLower(result)
}
