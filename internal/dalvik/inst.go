// Package dalvik decodes Dalvik method bytecode into typed instruction
// records and annotates them with local dataflow facts.
package dalvik

import "undex/internal/dexfmt"

// TypeRef is a type descriptor such as "I" or "Ljava/lang/String;".
// The empty string means unknown.
type TypeRef string

const (
	TypeVoid      TypeRef = "V"
	TypeThrowable TypeRef = "Ljava/lang/Throwable;"
)

// Payload markers: the full first code unit of an inline data table.
const (
	markerPackedSwitch uint16 = 0x0100
	markerSparseSwitch uint16 = 0x0200
	markerFillArray    uint16 = 0x0300
)

// Instruction is one decoded instruction or inline data table.
// Everything except Notes is fixed at decode time.
type Instruction struct {
	Category Category
	Opcode   uint8
	Start    uint32 // code unit index of the first unit
	End      uint32 // code unit index after the last unit
	dexfmt.Operands

	Switch *SwitchTable      // packed/sparse switch payload
	Fill   *FillArrayPayload // fill-array-data payload

	Notes Annotations
}

// Len returns the instruction length in code units.
func (in *Instruction) Len() uint32 { return in.End - in.Start }

// IsPayload reports whether the instruction is an inline data table.
func (in *Instruction) IsPayload() bool { return in.Switch != nil || in.Fill != nil }

// Annotations holds the facts written by the annotation passes.
// The zero value means not annotated.
type Annotations struct {
	ResultType TypeRef       // move-result*/move-exception only
	Cast       *ImplicitCast // if-eqz/if-nez only
}

// ImplicitCast records registers known to hold Type on the branch taken
// after an instance-of check.
type ImplicitCast struct {
	Type uint32   // type index from the instance-of
	Regs []uint16 // ascending
}

// SwitchTable is the logical key -> relative target mapping of a switch
// payload. Targets are code-unit offsets relative to the switch instruction
// that references the payload.
type SwitchTable struct {
	Packed  bool
	Keys    []int32
	Targets []int32
}

// Len returns the number of cases.
func (t *SwitchTable) Len() int { return len(t.Keys) }

// Lookup returns the relative target for key.
// Later duplicate keys win, as in a map built in payload order.
func (t *SwitchTable) Lookup(key int32) (int32, bool) {
	for i := len(t.Keys) - 1; i >= 0; i-- {
		if t.Keys[i] == key {
			return t.Targets[i], true
		}
	}
	return 0, false
}

// Map returns the table as a map.
func (t *SwitchTable) Map() map[int32]int32 {
	m := make(map[int32]int32, len(t.Keys))
	for i, k := range t.Keys {
		m[k] = t.Targets[i]
	}
	return m
}

// FillArrayPayload is the literal data of a fill-array-data payload.
type FillArrayPayload struct {
	Width  uint32 // element width in bytes
	Values []uint64
}
