// Package wire holds the little-endian byte-cursor shared by the VARIANT
// codec and the packet framer. b-CAP is little-endian throughout (§6).
package wire

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrShortBuffer is returned when a read runs past the end of the cursor.
var ErrShortBuffer = errors.New("wire: short buffer")

// Cursor is a forward-only reader over a byte slice. Unlike bytes.Reader it
// exposes Remaining/Pos, which the packet framer uses to slice the payload
// out after the header and to hand the compressed tail to the inflater.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps b for sequential little-endian reads.
func NewCursor(b []byte) *Cursor { return &Cursor{data: b} }

// Pos returns the current read offset.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the number of unread bytes.
func (c *Cursor) Len() int { return len(c.data) - c.pos }

// Remaining returns the unread tail without advancing the cursor.
func (c *Cursor) Remaining() []byte { return c.data[c.pos:] }

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n int) error {
	if n < 0 || c.Len() < n {
		return ErrShortBuffer
	}
	c.pos += n
	return nil
}

// ReadBytes consumes and returns the next n bytes.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || c.Len() < n {
		return nil, ErrShortBuffer
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) ReadU64() (uint64, error) {
	b, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

func (c *Cursor) ReadI64() (int64, error) {
	v, err := c.ReadU64()
	return int64(v), err
}

func (c *Cursor) ReadByte() (byte, error) {
	b, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) ReadF32() (float32, error) {
	v, err := c.ReadU32()
	return math.Float32frombits(v), err
}

func (c *Cursor) ReadF64() (float64, error) {
	v, err := c.ReadU64()
	return math.Float64frombits(v), err
}

// PutU16/PutU32/PutU64/PutF32/PutF64 append little-endian encodings to dst
// and return the grown slice, mirroring the encode side's append-only style.
func PutU16(dst []byte, v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return append(dst, b[:]...)
}

func PutU32(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

func PutU64(dst []byte, v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return append(dst, b[:]...)
}

func PutI16(dst []byte, v int16) []byte { return PutU16(dst, uint16(v)) }
func PutI32(dst []byte, v int32) []byte { return PutU32(dst, uint32(v)) }
func PutI64(dst []byte, v int64) []byte { return PutU64(dst, uint64(v)) }

func PutF32(dst []byte, v float32) []byte { return PutU32(dst, math.Float32bits(v)) }
func PutF64(dst []byte, v float64) []byte { return PutU64(dst, math.Float64bits(v)) }

// LittleEndianPutUint32At overwrites the 4 bytes at dst[offset:offset+4] in
// place, used to backfill a length field reserved earlier with a placeholder.
func LittleEndianPutUint32At(dst []byte, offset int, v uint32) {
	binary.LittleEndian.PutUint32(dst[offset:offset+4], v)
}
