// Code-unit byte stream.
// Dalvik payload tables are byte-addressed data laid over 16-bit code units,
// low byte first.
package dexfmt

import (
	"errors"
)

var ErrStreamEOF = errors.New("stream: unexpected end of code units")

// CodeStream reads little-endian values from a code-unit array at byte
// granularity.
type CodeStream struct {
	units []uint16
	pos   int // byte offset
	end   int
}

// NewCodeStream creates a stream over units starting at code unit index pos.
func NewCodeStream(units []uint16, pos uint32) *CodeStream {
	end := len(units) * 2
	off := int(pos) * 2
	if off > end {
		off = end
	}
	return &CodeStream{units: units, pos: off, end: end}
}

func (s *CodeStream) byteAt(off int) uint8 {
	u := s.units[off>>1]
	if off&1 != 0 {
		return uint8(u >> 8)
	}
	return uint8(u)
}

// readLE reads n bytes as a little-endian value.
func (s *CodeStream) readLE(n int) (uint64, error) {
	if s.pos+n > s.end {
		return 0, ErrStreamEOF
	}
	var v uint64
	for i := 0; i < n; i++ {
		v |= uint64(s.byteAt(s.pos+i)) << (8 * i)
	}
	s.pos += n
	return v, nil
}

// ReadUint8 reads a single byte.
func (s *CodeStream) ReadUint8() (uint8, error) {
	v, err := s.readLE(1)
	return uint8(v), err
}

// ReadUint16 reads a little-endian uint16.
func (s *CodeStream) ReadUint16() (uint16, error) {
	v, err := s.readLE(2)
	return uint16(v), err
}

// ReadUint32 reads a little-endian uint32.
func (s *CodeStream) ReadUint32() (uint32, error) {
	v, err := s.readLE(4)
	return uint32(v), err
}

// ReadUint64 reads a little-endian uint64.
func (s *CodeStream) ReadUint64() (uint64, error) {
	return s.readLE(8)
}

// ReadInt32 reads a little-endian int32.
func (s *CodeStream) ReadInt32() (int32, error) {
	v, err := s.ReadUint32()
	return int32(v), err
}
