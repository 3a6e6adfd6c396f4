package wiredump

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// FieldHeaderLen is the fixed per-field header size inside a payload.
const FieldHeaderLen = 7

var (
	ErrShortFieldHeader = errors.New("wiredump: short field header")
	ErrShortFieldValue  = errors.New("wiredump: short field value")
)

// Field type IDs from the tlv contract.
const (
	TypeU8     uint8 = 1
	TypeU16    uint8 = 2
	TypeU32    uint8 = 3
	TypeU64    uint8 = 4
	TypeBool   uint8 = 5
	TypeString uint8 = 6
	TypeBytes  uint8 = 7
)

// Field is one decoded TLV field.
type Field struct {
	ID    uint16
	Type  uint8
	Value []byte
}

func EncodeField(f Field) []byte {
	buf := make([]byte, FieldHeaderLen+len(f.Value))
	binary.BigEndian.PutUint16(buf[0:2], f.ID)
	buf[2] = f.Type
	binary.BigEndian.PutUint32(buf[3:7], uint32(len(f.Value)))
	copy(buf[7:], f.Value)
	return buf
}

func EncodeFields(fields []Field) []byte {
	out := make([]byte, 0)
	for _, f := range fields {
		out = append(out, EncodeField(f)...)
	}
	return out
}

// WalkFields decodes fields from payload until it ends or breaks.
// Unlike a strict decoder it returns the fields decoded so far next to
// the error, so a damaged capture still renders its readable prefix.
func WalkFields(payload []byte) ([]Field, error) {
	fields := make([]Field, 0)
	i := 0
	for i < len(payload) {
		if len(payload)-i < FieldHeaderLen {
			return fields, fmt.Errorf("%w at offset %d", ErrShortFieldHeader, i)
		}
		id := binary.BigEndian.Uint16(payload[i : i+2])
		typeID := payload[i+2]
		l := binary.BigEndian.Uint32(payload[i+3 : i+7])
		i += FieldHeaderLen
		if uint64(len(payload)-i) < uint64(l) {
			return fields, fmt.Errorf("%w at offset %d", ErrShortFieldValue, i-FieldHeaderLen)
		}
		val := make([]byte, l)
		copy(val, payload[i:i+int(l)])
		i += int(l)
		fields = append(fields, Field{ID: id, Type: typeID, Value: val})
	}
	return fields, nil
}

// Uint decodes the value as the declared unsigned width. ok is false
// when the type is not an unsigned scalar or the length is wrong.
func (f Field) Uint() (uint64, bool) {
	switch f.Type {
	case TypeU8:
		if len(f.Value) == 1 {
			return uint64(f.Value[0]), true
		}
	case TypeU16:
		if len(f.Value) == 2 {
			return uint64(binary.BigEndian.Uint16(f.Value)), true
		}
	case TypeU32:
		if len(f.Value) == 4 {
			return uint64(binary.BigEndian.Uint32(f.Value)), true
		}
	case TypeU64:
		if len(f.Value) == 8 {
			return binary.BigEndian.Uint64(f.Value), true
		}
	}
	return 0, false
}

// Bool decodes a bool field. ok is false on type or length mismatch.
func (f Field) Bool() (bool, bool) {
	if f.Type == TypeBool && len(f.Value) == 1 {
		return f.Value[0] != 0, true
	}
	return false, false
}
