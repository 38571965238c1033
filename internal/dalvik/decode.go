package dalvik

import (
	"fmt"

	"undex/internal/dexfmt"
)

// DecodeStream decodes a method's code units into instructions in a single
// forward pass. Truncated instructions or payloads panic with
// *dexfmt.DecodeError; use Decode to get an error instead.
func DecodeStream(units []uint16) []Instruction {
	var insts []Instruction
	pos := uint32(0)
	for pos < uint32(len(units)) {
		var in Instruction
		pos, in = decodeInstruction(units, pos)
		insts = append(insts, in)
	}
	return insts
}

// Decode is DecodeStream with decode failures returned as an error.
// On error no instructions are returned.
func Decode(units []uint16) (insts []Instruction, err error) {
	defer func() {
		if r := recover(); r != nil {
			de, ok := r.(*dexfmt.DecodeError)
			if !ok {
				panic(r)
			}
			insts, err = nil, fmt.Errorf("dalvik: decode: %w", de)
		}
	}()
	return DecodeStream(units), nil
}

func decodeInstruction(units []uint16, pos uint32) (uint32, Instruction) {
	word := units[pos]
	opcode := uint8(word)
	newPos, ops := dexfmt.DecodeOperands(units, pos, opcode)

	in := Instruction{
		Category: CategoryOf(opcode),
		Opcode:   opcode,
		Start:    pos,
		Operands: ops,
	}

	// Payloads are recognized by the exact marker value, not by being
	// referenced from a switch or fill-array-data instruction.
	switch word {
	case markerPackedSwitch:
		in.Switch, newPos = decodePackedSwitch(units, pos)
	case markerSparseSwitch:
		in.Switch, newPos = decodeSparseSwitch(units, pos)
	case markerFillArray:
		in.Fill, newPos = decodeFillArray(units, pos)
	}

	in.End = newPos
	return newPos, in
}

// decodePackedSwitch reads ident, size, first_key, targets[size].
func decodePackedSwitch(units []uint16, pos uint32) (*SwitchTable, uint32) {
	dexfmt.CheckAvail(units, pos, 2)
	size := uint32(units[pos+1])
	need := 2 + (1+uint64(size))*2
	dexfmt.CheckAvail(units, pos, need)

	st := dexfmt.NewCodeStream(units, pos+2)
	first := mustInt32(st, pos)
	t := &SwitchTable{
		Packed:  true,
		Keys:    make([]int32, size),
		Targets: make([]int32, size),
	}
	for i := uint32(0); i < size; i++ {
		t.Keys[i] = first + int32(i)
		t.Targets[i] = mustInt32(st, pos)
	}
	return t, pos + uint32(need)
}

// decodeSparseSwitch reads ident, size, keys[size], targets[size].
func decodeSparseSwitch(units []uint16, pos uint32) (*SwitchTable, uint32) {
	dexfmt.CheckAvail(units, pos, 2)
	size := uint32(units[pos+1])
	need := 2 + 2*uint64(size)*2
	dexfmt.CheckAvail(units, pos, need)

	st := dexfmt.NewCodeStream(units, pos+2)
	t := &SwitchTable{
		Keys:    make([]int32, size),
		Targets: make([]int32, size),
	}
	for i := range t.Keys {
		t.Keys[i] = mustInt32(st, pos)
	}
	for i := range t.Targets {
		t.Targets[i] = mustInt32(st, pos)
	}
	return t, pos + uint32(need)
}

// decodeFillArray reads ident, element_width, size (u32), then size
// elements packed at element_width bytes each. Widths other than 1, 2, 4
// and 8 are rejected before size is trusted.
func decodeFillArray(units []uint16, pos uint32) (*FillArrayPayload, uint32) {
	dexfmt.CheckAvail(units, pos, 4)
	width := uint32(units[pos+1]) % 16
	switch width {
	case 1, 2, 4, 8:
	default:
		panic(&dexfmt.DecodeError{Offset: pos, Kind: dexfmt.DiagInvalid, Msg: fmt.Sprintf("fill-array-data element width %d", width)})
	}
	size := uint32(units[pos+2]) | uint32(units[pos+3])<<16
	need := 4 + (uint64(size)*uint64(width)+1)/2
	dexfmt.CheckAvail(units, pos, need)

	st := dexfmt.NewCodeStream(units, pos+4)
	p := &FillArrayPayload{Width: width, Values: make([]uint64, size)}
	for i := range p.Values {
		p.Values[i] = readElement(st, width, pos)
	}
	return p, pos + uint32(need)
}

func readElement(st *dexfmt.CodeStream, width, pos uint32) uint64 {
	var v uint64
	var err error
	switch width {
	case 1:
		var b uint8
		b, err = st.ReadUint8()
		v = uint64(b)
	case 2:
		var h uint16
		h, err = st.ReadUint16()
		v = uint64(h)
	case 4:
		var w uint32
		w, err = st.ReadUint32()
		v = uint64(w)
	default:
		v, err = st.ReadUint64()
	}
	if err != nil {
		panic(&dexfmt.DecodeError{Offset: pos, Kind: dexfmt.DiagTruncated, Msg: err.Error()})
	}
	return v
}

func mustInt32(st *dexfmt.CodeStream, pos uint32) int32 {
	v, err := st.ReadInt32()
	if err != nil {
		panic(&dexfmt.DecodeError{Offset: pos, Kind: dexfmt.DiagTruncated, Msg: err.Error()})
	}
	return v
}
