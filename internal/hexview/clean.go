package hexview

import (
	"strings"
	"unicode"
)

// CleanBytes returns a copy of data with every byte outside printable
// ASCII replaced by '.'. With keepSpacing, tab, newline and carriage
// return survive. Output length equals input length.
func CleanBytes(data []byte, keepSpacing bool) []byte {
	out := make([]byte, len(data))
	for i, c := range data {
		switch {
		case 31 < c && c < 127:
			out[i] = c
		case keepSpacing && (c == '\t' || c == '\n' || c == '\r'):
			out[i] = c
		default:
			out[i] = '.'
		}
	}
	return out
}

// CleanString returns s with every control, separator or otherwise
// non-graphic rune replaced by '.'. Plain space always survives; with
// keepSpacing, tab, newline and carriage return survive too. Rune
// count is preserved.
func CleanString(s string, keepSpacing bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == ' ':
			b.WriteRune(r)
		case keepSpacing && (r == '\t' || r == '\n' || r == '\r'):
			b.WriteRune(r)
		case !unicode.IsGraphic(r) || unicode.In(r, unicode.Z):
			b.WriteByte('.')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
