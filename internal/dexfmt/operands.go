package dexfmt

import "fmt"

// Operands is the generic decode of one instruction.
// A, B and C are the first, second and third operands in encoding order;
// branch offsets are already absolute code-unit positions.
type Operands struct {
	A, B, C uint32
	Long    uint64   // wide literals (51l, const-wide/*, const-wide/high16)
	Args    []uint16 // argument registers of 35c/3rc
}

// Ra returns A as a register number.
func (o Operands) Ra() uint16 { return uint16(o.A) }

// Rb returns B as a register number.
func (o Operands) Rb() uint16 { return uint16(o.B) }

// Rc returns C as a register number.
func (o Operands) Rc() uint16 { return uint16(o.C) }

// DecodeError reports code units that cannot be decoded. Decoders panic
// with *DecodeError; callers recover it at the method boundary.
type DecodeError struct {
	Offset uint32 // code unit index of the instruction
	Kind   DiagKind
	Need   uint32 // code units required from Offset
	Have   uint32 // code units available from Offset
	Msg    string
}

func (e *DecodeError) Error() string {
	if e.Kind == DiagTruncated {
		return fmt.Sprintf("dexfmt: truncated at %04x: need %d code units, have %d", e.Offset, e.Need, e.Have)
	}
	return fmt.Sprintf("dexfmt: invalid at %04x: %s", e.Offset, e.Msg)
}

// CheckAvail panics with a truncation *DecodeError unless need code units
// are available starting at pos.
func CheckAvail(units []uint16, pos uint32, need uint64) {
	have := uint64(len(units)) - uint64(pos)
	if uint64(pos) > uint64(len(units)) {
		have = 0
	}
	if need > have {
		panic(&DecodeError{Offset: pos, Kind: DiagTruncated, Need: uint32(min(need, 1<<32-1)), Have: uint32(have)})
	}
}

// DecodeOperands decodes the operands of the instruction at units[pos]
// according to the layout of opcode and returns the position of the next
// instruction. It is not total: it panics with a truncation *DecodeError
// if the instruction runs past the end of units, and with an invalid
// *DecodeError for a 35c argument count above 5.
func DecodeOperands(units []uint16, pos uint32, opcode uint8) (uint32, Operands) {
	format := formats[opcode]
	size := format.Size()
	CheckAvail(units, pos, uint64(size))

	var d Operands
	w := uint32(units[pos])
	var w2, w3 uint32
	if size >= 2 {
		w2 = uint32(units[pos+1])
	}
	if size >= 3 {
		w3 = uint32(units[pos+2])
	}

	switch format {
	case F12x, F11n:
		d.A = (w >> 8) & 0xF
		d.B = w >> 12
	case F11x, F10t:
		d.A = w >> 8

	case F20t:
		d.A = w2
	case F22x, F21t, F21s, F21h, F21c:
		d.A = w >> 8
		d.B = w2
	case F23x, F22b:
		d.A = w >> 8
		d.B = w2 & 0xFF
		d.C = w2 >> 8
	case F22t, F22s, F22c:
		d.A = (w >> 8) & 0xF
		d.B = w >> 12
		d.C = w2

	case F30t:
		d.A = w2 ^ (w3 << 16)
	case F32x:
		d.A = w2
		d.B = w3
	case F31i, F31t, F31c:
		d.A = w >> 8
		d.B = w2 ^ (w3 << 16)
	case F35c:
		n := w >> 12
		if n > 5 {
			panic(&DecodeError{Offset: pos, Kind: DiagInvalid, Msg: fmt.Sprintf("35c argument count %d", n)})
		}
		d.A = w2
		regs := [5]uint16{
			uint16(w3) & 0xF, uint16(w3>>4) & 0xF, uint16(w3>>8) & 0xF, uint16(w3>>12) & 0xF,
			uint16(w>>8) & 0xF,
		}
		d.Args = append([]uint16(nil), regs[:n]...)
	case F3rc:
		n := w >> 8
		d.A = w2
		for i := w3; i < w3+n; i++ {
			d.Args = append(d.Args, uint16(i))
		}

	case F51l:
		d.A = w >> 8
		for i := uint32(0); i < 4; i++ {
			d.Long ^= uint64(units[pos+1+i]) << (16 * i)
		}
	}

	// Sign extension.
	switch format {
	case F11n:
		d.B = uint32(int8(d.B<<4) >> 4)
	case F10t:
		d.A = uint32(int8(d.A))
	case F22b:
		d.C = uint32(int8(d.C))
	case F20t:
		d.A = uint32(int16(d.A))
	case F21t, F21s:
		d.B = uint32(int16(d.B))
	case F22t, F22s:
		d.C = uint32(int16(d.C))
	}

	// High-16 literals: const/high16 widens into B, const-wide/high16 into Long.
	if format == F21h {
		if opcode == 0x15 {
			d.B <<= 16
		} else {
			d.Long = uint64(d.B) << 48
		}
	}

	// const-wide/16 and const-wide/32 always carry their literal in Long.
	if opcode == 0x16 || opcode == 0x17 {
		d.Long = uint64(int64(int32(d.B)))
	}

	if format.kind() == 't' {
		switch format.String()[1] {
		case '0':
			d.A += pos
		case '1':
			d.B += pos
		case '2':
			d.C += pos
		}
	}

	return pos + size, d
}
