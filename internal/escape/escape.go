// Package escape converts raw bytes to and from a printable escaped
// form.
//
// Encode is lossless for arbitrary binary: every byte outside printable
// ASCII comes out as a named escape or \xNN, and Decode reverses it
// exactly. The escaped form is safe to embed between single quotes;
// double quotes pass through untouched.
package escape

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTrailingBackslash reports an escape cut off at end of input.
	ErrTrailingBackslash = errors.New("escape: trailing backslash")
	// ErrInvalidHexEscape reports a \x with fewer than two hex digits.
	ErrInvalidHexEscape = errors.New("escape: invalid \\x escape")
)

const hexDigit = "0123456789abcdef"

// Encode renders data as printable ASCII. Tab, newline and carriage
// return become \t, \n and \r; backslash and single quote get a leading
// backslash; every other byte below 0x20 or at 0x7f and above becomes
// \xNN.
func Encode(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == '\'':
			b.WriteString(`\'`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c < 0x20 || c >= 0x7f:
			b.WriteByte('\\')
			b.WriteByte('x')
			b.WriteByte(hexDigit[c>>4])
			b.WriteByte(hexDigit[c&0xf])
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Decode parses an escaped form back into raw bytes. It accepts every
// escape Encode emits plus \a \b \f \v \", octal escapes of one to
// three digits, and backslash-newline continuation. An unknown escape
// keeps the backslash and the byte after it.
func Decode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}
		i++
		if i >= len(s) {
			return nil, ErrTrailingBackslash
		}
		e := s[i]
		i++
		switch e {
		case '\n':
			// line continuation, emits nothing
		case '\\':
			out = append(out, '\\')
		case '\'':
			out = append(out, '\'')
		case '"':
			out = append(out, '"')
		case 'a':
			out = append(out, '\a')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'v':
			out = append(out, '\v')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v := int(e - '0')
			for n := 1; n < 3 && i < len(s) && isOctal(s[i]); n++ {
				v = v<<3 | int(s[i]-'0')
				i++
			}
			out = append(out, byte(v))
		case 'x':
			if len(s)-i < 2 || !isHex(s[i]) || !isHex(s[i+1]) {
				return nil, fmt.Errorf("%w at offset %d", ErrInvalidHexEscape, i-2)
			}
			out = append(out, unhex(s[i])<<4|unhex(s[i+1]))
			i += 2
		default:
			out = append(out, '\\', e)
		}
	}
	return out, nil
}

func isOctal(c byte) bool { return '0' <= c && c <= '7' }

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
