package hexview

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

const (
	rowBytes = 16
	hexWidth = rowBytes*3 - 1 // two digits per byte plus separating spaces
)

// Record is one rendered dump row covering up to 16 input bytes.
type Record struct {
	Offset string // zero-padded hex offset of the row's first byte
	Hex    string // space-separated hex pairs, padded to fixed width
	Text   string // printable projection of the row's bytes
}

// Dump yields one Record per 16-byte row of data. The sequence is
// stateless; it can be ranged more than once and stopped early.
func Dump(data []byte) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for i := 0; i < len(data); i += rowBytes {
			end := i + rowBytes
			if end > len(data) {
				end = len(data)
			}
			if !yield(row(i, data[i:end])) {
				return
			}
		}
	}
}

func row(offset int, chunk []byte) Record {
	var hex strings.Builder
	for i, c := range chunk {
		if i > 0 {
			hex.WriteByte(' ')
		}
		fmt.Fprintf(&hex, "%02x", c)
	}
	return Record{
		Offset: fmt.Sprintf("%010x", offset),
		Hex:    fmt.Sprintf("%-*s", hexWidth, hex.String()),
		Text:   string(CleanBytes(chunk, false)),
	}
}

// Fprint writes the dump of data to w, one row per line.
func Fprint(w io.Writer, data []byte) error {
	for rec := range Dump(data) {
		if _, err := fmt.Fprintf(w, "%s  %s  %s\n", rec.Offset, rec.Hex, rec.Text); err != nil {
			return err
		}
	}
	return nil
}
