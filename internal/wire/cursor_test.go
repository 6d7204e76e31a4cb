package wire

import "testing"

func TestCursor_ScalarRoundTrip(t *testing.T) {
	buf := PutU16(nil, 0xBEEF)
	buf = PutU32(buf, 0xDEADBEEF)
	buf = PutI32(buf, -12345)
	buf = PutU64(buf, 0x0102030405060708)
	buf = PutF32(buf, 3.5)
	buf = PutF64(buf, -2.25)

	c := NewCursor(buf)
	if v, err := c.ReadU16(); err != nil || v != 0xBEEF {
		t.Fatalf("ReadU16 = %#x, %v", v, err)
	}
	if v, err := c.ReadU32(); err != nil || v != 0xDEADBEEF {
		t.Fatalf("ReadU32 = %#x, %v", v, err)
	}
	if v, err := c.ReadI32(); err != nil || v != -12345 {
		t.Fatalf("ReadI32 = %d, %v", v, err)
	}
	if v, err := c.ReadU64(); err != nil || v != 0x0102030405060708 {
		t.Fatalf("ReadU64 = %#x, %v", v, err)
	}
	if v, err := c.ReadF32(); err != nil || v != 3.5 {
		t.Fatalf("ReadF32 = %v, %v", v, err)
	}
	if v, err := c.ReadF64(); err != nil || v != -2.25 {
		t.Fatalf("ReadF64 = %v, %v", v, err)
	}
	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}
}

func TestCursor_ShortBuffer(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})
	if _, err := c.ReadU32(); err != ErrShortBuffer {
		t.Fatalf("ReadU32 on 2-byte buffer: err = %v, want ErrShortBuffer", err)
	}
}

func TestLittleEndianPutUint32At(t *testing.T) {
	buf := make([]byte, 8)
	LittleEndianPutUint32At(buf, 2, 0x01020304)
	c := NewCursor(buf[2:6])
	v, err := c.ReadU32()
	if err != nil || v != 0x01020304 {
		t.Fatalf("readback = %#x, %v", v, err)
	}
}
