package dalvik

import (
	"fmt"
	"strings"

	"undex/internal/dexfmt"
)

// Annotator returns an optional inline comment for an instruction.
// Empty string means no annotation.
type Annotator func(in *Instruction) string

// Line is one rendered listing line.
type Line struct {
	Offset   uint32
	Raw      string // up to three code units in hex
	Mnemonic string
	Operands string
	Comment  string
	Category Category
}

// String renders the line as stable text:
// <offset>: <raw units>  <mnemonic> <operands>  ; <comment>
func (l Line) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04x: %-16s %s", l.Offset, l.Raw, l.Mnemonic)
	if l.Operands != "" {
		b.WriteByte(' ')
		b.WriteString(l.Operands)
	}
	if l.Comment != "" {
		fmt.Fprintf(&b, "  ; %s", l.Comment)
	}
	return b.String()
}

// Lines renders instructions for display. units must be the code units the
// instructions were decoded from. Annotators are checked in order; the first
// non-empty result becomes the comment.
func Lines(units []uint16, insts []Instruction, annotators ...Annotator) []Line {
	lines := make([]Line, 0, len(insts))
	for i := range insts {
		in := &insts[i]
		l := Line{
			Offset:   in.Start,
			Raw:      rawUnits(units, in),
			Mnemonic: mnemonic(in),
			Operands: operandText(in),
			Category: in.Category,
		}
		for _, ann := range annotators {
			if s := ann(in); s != "" {
				l.Comment = s
				break
			}
		}
		lines = append(lines, l)
	}
	return lines
}

// Format renders instructions as a text listing, one line per instruction.
func Format(units []uint16, insts []Instruction, annotators ...Annotator) string {
	var b strings.Builder
	for _, l := range Lines(units, insts, annotators...) {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func rawUnits(units []uint16, in *Instruction) string {
	end := in.End
	if end > in.Start+3 {
		end = in.Start + 3
	}
	if end > uint32(len(units)) {
		end = uint32(len(units))
	}
	parts := make([]string, 0, 3)
	for p := in.Start; p < end; p++ {
		parts = append(parts, fmt.Sprintf("%04x", units[p]))
	}
	if in.End-in.Start > 3 {
		parts = append(parts, "..")
	}
	return strings.Join(parts, " ")
}

func mnemonic(in *Instruction) string {
	switch {
	case in.Switch != nil && in.Switch.Packed:
		return ".packed-switch"
	case in.Switch != nil:
		return ".sparse-switch"
	case in.Fill != nil:
		return ".array-data"
	}
	return dexfmt.Name(in.Opcode)
}

// refKind names the constant pool a 21c/22c/31c/35c/3rc index points into.
func refKind(c Category) string {
	switch c {
	case ConstString:
		return "string"
	case ConstClass, CheckCast, InstanceOf, NewInstance, NewArray, FilledNewArray:
		return "type"
	case InstanceGet, InstancePut, StaticGet, StaticPut:
		return "field"
	case InvokeVirtual, InvokeSuper, InvokeDirect, InvokeStatic, InvokeInterface:
		return "method"
	}
	return "ref"
}

func operandText(in *Instruction) string {
	switch {
	case in.Switch != nil:
		return fmt.Sprintf("size=%d", in.Switch.Len())
	case in.Fill != nil:
		return fmt.Sprintf("width=%d size=%d", in.Fill.Width, len(in.Fill.Values))
	}

	kind := refKind(in.Category)
	switch dexfmt.FormatOf(in.Opcode) {
	case dexfmt.F12x, dexfmt.F22x, dexfmt.F32x:
		return fmt.Sprintf("v%d, v%d", in.A, in.B)
	case dexfmt.F11n, dexfmt.F21s, dexfmt.F31i:
		if in.Category == Const64 {
			return fmt.Sprintf("v%d, #%d", in.A, int64(in.Long))
		}
		return fmt.Sprintf("v%d, #%d", in.A, int32(in.B))
	case dexfmt.F21h:
		if in.Category == Const64 {
			return fmt.Sprintf("v%d, #0x%x", in.A, in.Long)
		}
		return fmt.Sprintf("v%d, #0x%x", in.A, in.B)
	case dexfmt.F51l:
		return fmt.Sprintf("v%d, #%d", in.A, int64(in.Long))
	case dexfmt.F11x:
		return fmt.Sprintf("v%d", in.A)
	case dexfmt.F10t, dexfmt.F20t, dexfmt.F30t:
		return fmt.Sprintf("%04x", in.A)
	case dexfmt.F21t, dexfmt.F31t:
		return fmt.Sprintf("v%d, %04x", in.A, in.B)
	case dexfmt.F21c, dexfmt.F31c:
		return fmt.Sprintf("v%d, %s@%d", in.A, kind, in.B)
	case dexfmt.F23x:
		return fmt.Sprintf("v%d, v%d, v%d", in.A, in.B, in.C)
	case dexfmt.F22b, dexfmt.F22s:
		return fmt.Sprintf("v%d, v%d, #%d", in.A, in.B, int32(in.C))
	case dexfmt.F22t:
		return fmt.Sprintf("v%d, v%d, %04x", in.A, in.B, in.C)
	case dexfmt.F22c:
		return fmt.Sprintf("v%d, v%d, %s@%d", in.A, in.B, kind, in.C)
	case dexfmt.F35c, dexfmt.F3rc:
		regs := make([]string, len(in.Args))
		for i, r := range in.Args {
			regs[i] = fmt.Sprintf("v%d", r)
		}
		return fmt.Sprintf("{%s}, %s@%d", strings.Join(regs, ", "), kind, in.A)
	}
	return ""
}

// ResultTypeAnnotator annotates move-result instructions with their
// inferred type.
func ResultTypeAnnotator() Annotator {
	return func(in *Instruction) string {
		if in.Category != MoveResult || in.Notes.ResultType == "" {
			return ""
		}
		return "type " + string(in.Notes.ResultType)
	}
}

// CastAnnotator annotates branches carrying an implicit cast. typeName, if
// non-nil, resolves the type index to a descriptor.
func CastAnnotator(typeName func(idx uint32) string) Annotator {
	return func(in *Instruction) string {
		c := in.Notes.Cast
		if c == nil {
			return ""
		}
		regs := make([]string, len(c.Regs))
		for i, r := range c.Regs {
			regs[i] = fmt.Sprintf("v%d", r)
		}
		t := fmt.Sprintf("type@%d", c.Type)
		if typeName != nil {
			if s := typeName(c.Type); s != "" {
				t = s
			}
		}
		return fmt.Sprintf("cast %s -> %s", strings.Join(regs, ","), t)
	}
}

// PayloadAnnotator summarizes switch and fill-array-data payloads.
// At most limit entries are shown; limit <= 0 shows all.
func PayloadAnnotator(limit int) Annotator {
	return func(in *Instruction) string {
		var parts []string
		var total int
		switch {
		case in.Switch != nil:
			total = in.Switch.Len()
			for i, k := range in.Switch.Keys {
				if limit > 0 && i >= limit {
					break
				}
				parts = append(parts, fmt.Sprintf("%d:%+d", k, in.Switch.Targets[i]))
			}
		case in.Fill != nil:
			total = len(in.Fill.Values)
			for i, v := range in.Fill.Values {
				if limit > 0 && i >= limit {
					break
				}
				parts = append(parts, fmt.Sprintf("0x%x", v))
			}
		default:
			return ""
		}
		if len(parts) < total {
			parts = append(parts, "...")
		}
		return strings.Join(parts, " ")
	}
}
