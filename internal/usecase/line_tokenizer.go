package usecase

import (
	"regexp"
	"strings"

	"github.com/homecart/backend/internal/domain"
)

// Leading decorations stripped before quantity extraction: bullets/dashes,
// "1." / "2)" ordinals, and checkbox/checkmark glyphs (with or without the
// emoji variation selector).
var (
	leadingBulletRegex   = regexp.MustCompile(`^\s*[-•*·–—]\s*`)
	leadingOrdinalRegex  = regexp.MustCompile(`^\s*\d+[.)]\s*`)
	leadingCheckboxRegex = regexp.MustCompile(`^\s*[✅✓☑⬜🔲]\x{FE0F}?\s*`)

	// Unicode space separators folded to plain spaces up front, so the \s in
	// the quantity patterns below sees them.
	unicodeSpaceRegex = regexp.MustCompile(`\p{Zs}`)
)

// hebrewUnitWords is the recognized quantity-unit vocabulary: packages,
// units, kg, kilo, grams, liter, ml, bottles, bags, boxes, carton.
const hebrewUnitWords = `חבילות|חבילה|יח'?|יחידות?|ק"ג|קילו|גרם|ליטר|מ"ל|בקבוקים?|שקיות?|קופסאות?|קרטון`

// Quantity extraction patterns, tried in order; the first match wins.
// Explicit separators come before the catch-all trailing bare number so a
// multi-word name ending in a number-like token is not truncated.
var (
	// "מלפפונים - 2" or "קולה - 2 ליטר"
	dashQuantityRegex = regexp.MustCompile(`^(.+?)\s*[-–—]\s*(\d+\.?\d*)\s*(.*)$`)

	// "ביצים x2" or "לחם X3"
	multiplierQuantityRegex = regexp.MustCompile(`^(.+?)\s*[xX×]\s*(\d+\.?\d*)\s*(.*)$`)

	// "2 מלפפונים" or "3 חבילות פיתות"
	leadingQuantityRegex = regexp.MustCompile(`^(\d+\.?\d*)\s+(` + hebrewUnitWords + `)?\s*(.+)$`)

	// "עגבניות 2 ק"ג" (trailing quantity, unit word mandatory)
	trailingUnitQuantityRegex = regexp.MustCompile(`^(.+?)\s+(\d+\.?\d*)\s*(` + hebrewUnitWords + `)$`)

	// "בננות 5" (trailing bare number)
	trailingBareQuantityRegex = regexp.MustCompile(`^(.+?)\s+(\d+\.?\d*)$`)
)

// ParseLineItem tokenizes one raw text line into a (name, quantity) pair.
// It strips leading decorations, then tries the ordered quantity patterns;
// when none applies the whole cleaned line becomes the name and quantity
// stays empty. Returns nil when the line is empty after cleaning.
func ParseLineItem(line string) *domain.ParsedLineItem {
	cleaned := unicodeSpaceRegex.ReplaceAllString(line, " ")
	cleaned = leadingBulletRegex.ReplaceAllString(cleaned, "")
	cleaned = leadingOrdinalRegex.ReplaceAllString(cleaned, "")
	cleaned = leadingCheckboxRegex.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return nil
	}

	name := cleaned
	quantity := ""

	if m := dashQuantityRegex.FindStringSubmatch(name); m != nil {
		name = strings.TrimSpace(m[1])
		quantity = strings.TrimSpace(m[2] + " " + m[3])
	}

	if quantity == "" {
		if m := multiplierQuantityRegex.FindStringSubmatch(name); m != nil {
			name = strings.TrimSpace(m[1])
			quantity = strings.TrimSpace(m[2] + " " + m[3])
		}
	}

	if quantity == "" {
		if m := leadingQuantityRegex.FindStringSubmatch(name); m != nil {
			quantity = strings.TrimSpace(m[1] + " " + m[2])
			name = strings.TrimSpace(m[3])
		}
	}

	if quantity == "" {
		if m := trailingUnitQuantityRegex.FindStringSubmatch(name); m != nil {
			name = strings.TrimSpace(m[1])
			quantity = strings.TrimSpace(m[2] + " " + m[3])
		}
	}

	if quantity == "" {
		if m := trailingBareQuantityRegex.FindStringSubmatch(name); m != nil {
			// Guard against lines that are themselves mostly numeric.
			if len([]rune(strings.TrimSpace(m[1]))) > 1 {
				name = strings.TrimSpace(m[1])
				quantity = m[2]
			}
		}
	}

	return &domain.ParsedLineItem{Name: name, Quantity: quantity}
}
