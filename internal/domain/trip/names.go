package trip

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NameOrder returns a comparer for display names using English collation.
// A collator is not safe for concurrent use, so take one per sort.
func NameOrder() func(a, b string) int {
	collator := collate.New(language.English)
	return collator.CompareString
}
