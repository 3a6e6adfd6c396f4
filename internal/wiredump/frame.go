package wiredump

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// FixedHeaderLen is the size of the fixed frame header on the wire.
	FixedHeaderLen uint16 = 32

	FlagHasAuth    uint32 = 0x01
	FlagIsResponse uint32 = 0x02
	FlagIsError    uint32 = 0x04
)

var (
	ErrShortHeader       = errors.New("wiredump: short fixed header")
	ErrHeaderLenTooSmall = errors.New("wiredump: header_len smaller than fixed header")
	ErrAuthTooLarge      = errors.New("wiredump: auth too large")
	ErrPayloadTooLarge   = errors.New("wiredump: payload too large")
	ErrTruncated         = errors.New("wiredump: truncated frame body")
)

// Header is the fixed wire header.
type Header struct {
	Magic       uint32
	Version     uint16
	HeaderLen   uint16
	MessageID   uint64
	MessageType uint32
	Flags       uint32
	PayloadLen  uint64
}

// Frame is one complete wire message.
type Frame struct {
	Header  Header
	Auth    []byte
	Payload []byte
}

// Limits constrains decode memory use when walking untrusted captures.
type Limits struct {
	MaxAuthBytes    uint64
	MaxPayloadBytes uint64
}

func DefaultLimits() Limits {
	return Limits{
		MaxAuthBytes:    64 * 1024,
		MaxPayloadBytes: 8 * 1024 * 1024,
	}
}

// ReadFrame reads one frame from r. A clean end of stream returns
// io.EOF; a header cut off partway returns ErrShortHeader. Magic and
// version are not checked, rendering reports them as found.
func ReadFrame(r io.Reader, limits Limits) (Frame, error) {
	var fixed [FixedHeaderLen]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Frame{}, ErrShortHeader
		}
		return Frame{}, err
	}

	h, err := DecodeHeader(fixed[:])
	if err != nil {
		return Frame{}, err
	}

	if h.HeaderLen < FixedHeaderLen {
		return Frame{}, fmt.Errorf("%w: %d", ErrHeaderLenTooSmall, h.HeaderLen)
	}

	authLen := uint64(h.HeaderLen - FixedHeaderLen)
	if authLen > limits.MaxAuthBytes {
		return Frame{}, fmt.Errorf("%w: %d bytes", ErrAuthTooLarge, authLen)
	}
	if h.PayloadLen > limits.MaxPayloadBytes {
		return Frame{}, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, h.PayloadLen)
	}

	auth := make([]byte, authLen)
	if authLen > 0 {
		if _, err := io.ReadFull(r, auth); err != nil {
			return Frame{}, truncated(err)
		}
	}

	payload := make([]byte, h.PayloadLen)
	if h.PayloadLen > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			return Frame{}, truncated(err)
		}
	}

	return Frame{Header: h, Auth: auth, Payload: payload}, nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

// EncodeFrame serializes f, recomputing header_len, payload_len and the
// auth flag from the body. It builds captures and test fixtures.
func EncodeFrame(f Frame) ([]byte, error) {
	if len(f.Auth) > int(^uint16(0))-int(FixedHeaderLen) {
		return nil, fmt.Errorf("%w: %d bytes", ErrAuthTooLarge, len(f.Auth))
	}

	h := f.Header
	h.HeaderLen = FixedHeaderLen + uint16(len(f.Auth))
	h.PayloadLen = uint64(len(f.Payload))
	if len(f.Auth) > 0 {
		h.Flags |= FlagHasAuth
	} else {
		h.Flags &^= FlagHasAuth
	}

	out := make([]byte, 0, int(h.HeaderLen)+len(f.Payload))
	out = append(out, EncodeHeader(h)...)
	out = append(out, f.Auth...)
	out = append(out, f.Payload...)
	return out, nil
}

func EncodeHeader(h Header) []byte {
	buf := make([]byte, FixedHeaderLen)
	binary.BigEndian.PutUint32(buf[0:4], h.Magic)
	binary.BigEndian.PutUint16(buf[4:6], h.Version)
	binary.BigEndian.PutUint16(buf[6:8], h.HeaderLen)
	binary.BigEndian.PutUint64(buf[8:16], h.MessageID)
	binary.BigEndian.PutUint32(buf[16:20], h.MessageType)
	binary.BigEndian.PutUint32(buf[20:24], h.Flags)
	binary.BigEndian.PutUint64(buf[24:32], h.PayloadLen)
	return buf
}

func DecodeHeader(b []byte) (Header, error) {
	if len(b) != int(FixedHeaderLen) {
		return Header{}, fmt.Errorf("wiredump: invalid fixed header length: %d", len(b))
	}
	return Header{
		Magic:       binary.BigEndian.Uint32(b[0:4]),
		Version:     binary.BigEndian.Uint16(b[4:6]),
		HeaderLen:   binary.BigEndian.Uint16(b[6:8]),
		MessageID:   binary.BigEndian.Uint64(b[8:16]),
		MessageType: binary.BigEndian.Uint32(b[16:20]),
		Flags:       binary.BigEndian.Uint32(b[20:24]),
		PayloadLen:  binary.BigEndian.Uint64(b[24:32]),
	}, nil
}
