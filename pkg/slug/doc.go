// Package slug generates URL-safe slugs for resources that are addressed by
// name, such as forum categories.
//
// Make folds Unicode diacritics to their ASCII base characters using
// golang.org/x/text (NFD decomposition, combining-mark removal, NFC
// recomposition), lowercases the result, and collapses everything that is not
// a letter or digit into single hyphens:
//
//	slug.Make("Café & Crème Brûlée!")          // "cafe-creme-brulee"
//	slug.Make("Go  Tips", slug.MaxLength(5))   // "go-ti"
//	slug.Make("News", slug.WithSuffix(6))      // "news-x7g3k2"
//
// WithSuffix appends a random alphanumeric tail for collision avoidance; the
// caller still owns uniqueness, the suffix only makes collisions unlikely.
// Characters outside the Latin diacritic range (CJK, emoji, ...) carry no
// decomposition and are dropped like any other non-alphanumeric rune.
package slug
