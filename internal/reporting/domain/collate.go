package reporting

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newNameCollator builds the collator used for customer and product name
// ordering: case-insensitive with natural number handling. Collators keep
// internal buffers, so each aggregation builds its own and discards it.
func newNameCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase, collate.Numeric)
}
