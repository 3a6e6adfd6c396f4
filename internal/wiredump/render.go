package wiredump

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/danmuck/wirekit/internal/bitops"
	"github.com/danmuck/wirekit/internal/escape"
	"github.com/danmuck/wirekit/internal/hexview"
)

// Render writes a readable dump of one frame using the default naming
// tables.
func Render(w io.Writer, f Frame) error {
	return DefaultNaming().Render(w, f)
}

// RenderStream renders frames from r until the stream ends, using the
// default naming tables.
func RenderStream(w io.Writer, r io.Reader, limits Limits) (int, error) {
	return DefaultNaming().RenderStream(w, r, limits)
}

// Render writes a readable dump of one frame.
func (n Naming) Render(w io.Writer, f Frame) error {
	h := f.Header
	if _, err := fmt.Fprintf(w, "frame message_id=%d type=%s flags=%s payload_len=%d\n",
		h.MessageID, n.messageName(h.MessageType), n.flagString(h.Flags), h.PayloadLen); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  magic=0x%08x%s version=%d header_len=%d\n",
		h.Magic, n.magicNote(h.Magic), h.Version, h.HeaderLen); err != nil {
		return err
	}
	if (h.Flags&FlagHasAuth != 0) != (len(f.Auth) > 0) {
		if _, err := fmt.Fprintln(w, "  note: has_auth flag and auth length disagree"); err != nil {
			return err
		}
	}
	if len(f.Auth) > 0 {
		if _, err := fmt.Fprintf(w, "  auth %d bytes\n", len(f.Auth)); err != nil {
			return err
		}
		if err := dumpIndented(w, f.Auth); err != nil {
			return err
		}
	}

	fields, walkErr := WalkFields(f.Payload)
	for _, fld := range fields {
		if err := n.renderField(w, fld); err != nil {
			return err
		}
	}
	if walkErr != nil {
		consumed := 0
		for _, fld := range fields {
			consumed += FieldHeaderLen + len(fld.Value)
		}
		rest := f.Payload[consumed:]
		if _, err := fmt.Fprintf(w, "  note: field walk stopped: %v\n", walkErr); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  trailing %d bytes\n", len(rest)); err != nil {
			return err
		}
		if err := dumpIndented(w, rest); err != nil {
			return err
		}
	}
	return nil
}

// RenderStream renders every frame from r until EOF, returning the
// count of complete frames rendered. On a truncated or oversized tail
// the frames before it stay written and the error is returned.
func (n Naming) RenderStream(w io.Writer, r io.Reader, limits Limits) (int, error) {
	count := 0
	for {
		f, err := ReadFrame(r, limits)
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return count, err
		}
		if err := n.Render(w, f); err != nil {
			return count, err
		}
		count++
	}
}

func (n Naming) renderField(w io.Writer, fld Field) error {
	name := n.Types.NameOr(fld.Type, fmt.Sprintf("type%d", fld.Type))
	if fld.Type == TypeString {
		_, err := fmt.Fprintf(w, "  field id=%d type=%s len=%d value='%s'\n",
			fld.ID, name, len(fld.Value), escape.Encode(fld.Value))
		return err
	}
	if v, ok := fld.Uint(); ok {
		_, err := fmt.Fprintf(w, "  field id=%d type=%s len=%d value=%d\n",
			fld.ID, name, len(fld.Value), v)
		return err
	}
	if v, ok := fld.Bool(); ok {
		_, err := fmt.Fprintf(w, "  field id=%d type=%s len=%d value=%t\n",
			fld.ID, name, len(fld.Value), v)
		return err
	}
	if _, err := fmt.Fprintf(w, "  field id=%d type=%s len=%d\n",
		fld.ID, name, len(fld.Value)); err != nil {
		return err
	}
	return dumpIndented(w, fld.Value)
}

func (n Naming) messageName(v uint32) string {
	return n.Messages.NameOr(v, fmt.Sprintf("%d", v))
}

func (n Naming) magicNote(magic uint32) string {
	if name, ok := n.Magics.Name(magic); ok {
		return fmt.Sprintf(" (%s)", name)
	}
	return ""
}

func (n Naming) flagString(flags uint32) string {
	var names []string
	for offset := uint(0); offset < 8; offset++ {
		if !bitops.Get(byte(flags), offset) {
			continue
		}
		names = append(names, n.Flags.NameOr(uint32(1)<<offset, fmt.Sprintf("bit%d", offset)))
	}
	if len(names) == 0 {
		return fmt.Sprintf("0x%08x", flags)
	}
	return fmt.Sprintf("0x%08x (%s)", flags, strings.Join(names, ","))
}

func dumpIndented(w io.Writer, data []byte) error {
	for rec := range hexview.Dump(data) {
		if _, err := fmt.Fprintf(w, "    %s  %s  %s\n", rec.Offset, rec.Hex, rec.Text); err != nil {
			return err
		}
	}
	return nil
}
