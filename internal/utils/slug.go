package utils

import (
	"strings"
	"unicode"
)

// Slugify turns a display name into a URL-safe identifier: lowercase ASCII
// letters and digits separated by single hyphens. Every other character is
// dropped, runs of whitespace and hyphens collapse into one hyphen and the
// result never starts or ends with a hyphen. It never fails; distinct inputs
// may produce the same slug and callers enforce uniqueness.
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingHyphen := false
	for _, r := range strings.ToLower(text) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingHyphen = true
		}
	}
	return b.String()
}
