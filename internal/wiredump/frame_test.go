package wiredump

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestEncodeReadFrameRoundTrip(t *testing.T) {
	payload := EncodeFields([]Field{{ID: 1, Type: TypeString, Value: []byte("intent-1")}})
	in := Frame{
		Header:  Header{Magic: 0xEDCE1001, Version: 1, MessageID: 42, MessageType: 1},
		Auth:    []byte("auth"),
		Payload: payload,
	}
	raw, err := EncodeFrame(in)
	if err != nil {
		t.Fatalf("encode frame: %v", err)
	}
	out, err := ReadFrame(bytes.NewReader(raw), DefaultLimits())
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if out.Header.Magic != in.Header.Magic || out.Header.MessageType != in.Header.MessageType || out.Header.MessageID != in.Header.MessageID {
		t.Fatalf("header mismatch: got=%+v want=%+v", out.Header, in.Header)
	}
	if out.Header.Flags&FlagHasAuth == 0 {
		t.Fatalf("auth flag not recomputed on encode")
	}
	if string(out.Auth) != "auth" {
		t.Fatalf("auth mismatch: %q", string(out.Auth))
	}
	if !bytes.Equal(out.Payload, payload) {
		t.Fatalf("payload mismatch")
	}
}

func TestReadFrameCleanEOF(t *testing.T) {
	_, err := ReadFrame(bytes.NewReader(nil), DefaultLimits())
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReadFrameShortHeaderIsDeterministic(t *testing.T) {
	_, err := ReadFrame(bytes.NewReader([]byte{1, 2, 3}), DefaultLimits())
	if !errors.Is(err, ErrShortHeader) {
		t.Fatalf("expected ErrShortHeader, got %v", err)
	}
}

func TestReadFrameHeaderLenTooSmall(t *testing.T) {
	h := Header{Magic: 1, Version: 1, HeaderLen: 8, MessageID: 1, MessageType: 1}
	_, err := ReadFrame(bytes.NewReader(EncodeHeader(h)), DefaultLimits())
	if !errors.Is(err, ErrHeaderLenTooSmall) {
		t.Fatalf("expected ErrHeaderLenTooSmall, got %v", err)
	}
}

func TestReadFrameEnforcesLimits(t *testing.T) {
	limits := Limits{MaxAuthBytes: 64, MaxPayloadBytes: 256}

	raw, err := EncodeFrame(Frame{
		Header:  Header{Magic: 1, Version: 1, MessageID: 7, MessageType: 2},
		Payload: bytes.Repeat([]byte{0xAB}, 512),
	})
	if err != nil {
		t.Fatalf("encode frame: %v", err)
	}
	if _, err := ReadFrame(bytes.NewReader(raw), limits); !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}

	raw, err = EncodeFrame(Frame{
		Header: Header{Magic: 1, Version: 1, MessageID: 7, MessageType: 2},
		Auth:   bytes.Repeat([]byte{0x01}, 128),
	})
	if err != nil {
		t.Fatalf("encode frame: %v", err)
	}
	if _, err := ReadFrame(bytes.NewReader(raw), limits); !errors.Is(err, ErrAuthTooLarge) {
		t.Fatalf("expected ErrAuthTooLarge, got %v", err)
	}
}

func TestReadFrameTruncatedBody(t *testing.T) {
	raw, err := EncodeFrame(Frame{
		Header:  Header{Magic: 1, Version: 1, MessageID: 9, MessageType: 5},
		Payload: []byte("0123456789"),
	})
	if err != nil {
		t.Fatalf("encode frame: %v", err)
	}
	_, err = ReadFrame(bytes.NewReader(raw[:len(raw)-4]), DefaultLimits())
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestDecodeHeaderLengthChecked(t *testing.T) {
	if _, err := DecodeHeader(make([]byte, 8)); err == nil {
		t.Fatalf("expected error for short header buffer")
	}
}
