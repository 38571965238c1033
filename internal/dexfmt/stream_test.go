package dexfmt

import (
	"errors"
	"testing"
)

func TestCodeStream_LittleEndian(t *testing.T) {
	units := []uint16{0x0201, 0x0403, 0x0605, 0x0807, 0x0a09, 0x0c0b, 0x0e0d, 0x100f}
	s := NewCodeStream(units, 0)

	b, err := s.ReadUint8()
	if err != nil || b != 0x01 {
		t.Fatalf("ReadUint8 = 0x%x, %v", b, err)
	}
	// Unaligned reads straddle code units.
	u16, err := s.ReadUint16()
	if err != nil || u16 != 0x0302 {
		t.Fatalf("ReadUint16 = 0x%x, %v", u16, err)
	}
	u32, err := s.ReadUint32()
	if err != nil || u32 != 0x07060504 {
		t.Fatalf("ReadUint32 = 0x%x, %v", u32, err)
	}
	u64, err := s.ReadUint64()
	if err != nil || u64 != 0x0f0e0d0c0b0a0908 {
		t.Fatalf("ReadUint64 = 0x%x, %v", u64, err)
	}
	if _, err := s.ReadUint16(); !errors.Is(err, ErrStreamEOF) {
		t.Errorf("ReadUint16 with one byte left: err = %v, want ErrStreamEOF", err)
	}
	if b, err := s.ReadUint8(); err != nil || b != 0x10 {
		t.Errorf("last ReadUint8 = 0x%x, %v", b, err)
	}
}

func TestCodeStream_StartAt(t *testing.T) {
	units := []uint16{0xffff, 0xfffe, 0xffff}
	s := NewCodeStream(units, 1)
	v, err := s.ReadInt32()
	if err != nil || v != -2 {
		t.Errorf("ReadInt32 = %d, %v; want -2", v, err)
	}
}

func TestCodeStream_EOF(t *testing.T) {
	s := NewCodeStream([]uint16{0x1234}, 0)
	if _, err := s.ReadUint32(); !errors.Is(err, ErrStreamEOF) {
		t.Errorf("ReadUint32 err = %v, want ErrStreamEOF", err)
	}
	// A failed read does not advance.
	if v, err := s.ReadUint16(); err != nil || v != 0x1234 {
		t.Errorf("ReadUint16 = 0x%x, %v", v, err)
	}
	if _, err := s.ReadUint8(); !errors.Is(err, ErrStreamEOF) {
		t.Errorf("ReadUint8 err = %v, want ErrStreamEOF", err)
	}

	past := NewCodeStream([]uint16{1}, 5)
	if _, err := past.ReadUint8(); !errors.Is(err, ErrStreamEOF) {
		t.Errorf("read past end err = %v, want ErrStreamEOF", err)
	}
}
