// Package bitops provides single-byte bit accessors for hand-decoding
// wire headers and flag bytes.
package bitops

// Set returns b with the bit at offset forced to value. Offset 0 is the
// least significant bit; offsets past 7 shift out of the byte and leave
// b unchanged.
func Set(b byte, offset uint, value bool) byte {
	mask := byte(1) << offset
	if value {
		return b | mask
	}
	return b &^ mask
}

// Get reports whether the bit at offset is set. Offset 0 is the least
// significant bit.
func Get(b byte, offset uint) bool {
	return b&(byte(1)<<offset) != 0
}
