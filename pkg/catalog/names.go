package catalog

import "strings"

// NormalizeName canonicalizes a brand or category name: only ASCII letters
// are kept, the first is upper-cased and the rest lower-cased. The result
// is empty when the input has no letters.
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			if b.Len() == 0 {
				r -= 'a' - 'A'
			}
		case r >= 'A' && r <= 'Z':
			if b.Len() > 0 {
				r += 'a' - 'A'
			}
		default:
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
