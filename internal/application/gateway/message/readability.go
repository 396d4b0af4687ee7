package message

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// internalItemKeys are host bookkeeping entries that must never leak into
// the customer-facing message.
var internalItemKeys = map[string]struct{}{
	"_qty":               {},
	"_tax_class":         {},
	"_line_total":        {},
	"_line_subtotal":     {},
	"_line_tax":          {},
	"_line_subtotal_tax": {},
	"_product_id":        {},
	"_variation_id":      {},
	"_reduced_stock":     {},
}

// keySynonyms maps normalized attribute keys to their preferred display
// form. Both the English and Indonesian spellings collapse to one label.
var keySynonyms = map[string]string{
	"color":    "Warna",
	"colour":   "Warna",
	"warna":    "Warna",
	"size":     "Ukuran",
	"ukuran":   "Ukuran",
	"material": "Bahan",
	"bahan":    "Bahan",
}

// valueSynonyms maps normalized attribute values to their preferred
// display form, mainly apparel sizes.
var valueSynonyms = map[string]string{
	"s":           "Small (S)",
	"small":       "Small (S)",
	"m":           "Medium (M)",
	"medium":      "Medium (M)",
	"l":           "Large (L)",
	"large":       "Large (L)",
	"xl":          "Extra Large (XL)",
	"extra large": "Extra Large (XL)",
	"xxl":         "Double Extra Large (XXL)",
}

// strippedKeyPrefixes are host attribute-key prefixes with no meaning to
// the customer.
var strippedKeyPrefixes = []string{"attribute_", "pa_"}

// titleCase constructs the caser per call; cases.Caser carries transform
// state and must not be shared across concurrently-served requests.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func isInternalKey(key string) bool {
	if _, ok := internalItemKeys[key]; ok {
		return true
	}
	// Host convention: leading underscore marks internal entries.
	return strings.HasPrefix(key, "_")
}

// normalize lowercases and replaces separator characters with spaces so
// synonym lookup is insensitive to case and separator style.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

// ReadableKey turns an attribute key into a display label. The transform
// is case-insensitive and idempotent: feeding back a formatted label
// returns it unchanged.
func ReadableKey(key string) string {
	for _, canonical := range keySynonyms {
		if key == canonical {
			return key
		}
	}

	stripped := strings.ToLower(strings.TrimSpace(key))
	for _, prefix := range strippedKeyPrefixes {
		stripped = strings.TrimPrefix(stripped, prefix)
	}

	norm := normalize(stripped)
	if canonical, ok := keySynonyms[norm]; ok {
		return canonical
	}
	return titleCase(norm)
}

// ReadableValue turns an attribute value into a display form, following
// the same idempotency and case rules as ReadableKey.
func ReadableValue(value string) string {
	for _, canonical := range valueSynonyms {
		if value == canonical {
			return value
		}
	}

	norm := normalize(value)
	if canonical, ok := valueSynonyms[norm]; ok {
		return canonical
	}
	return titleCase(norm)
}
