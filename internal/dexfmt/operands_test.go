package dexfmt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeOperands(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		pos   uint32
		next  uint32
		want  Operands
	}{
		{"nop 10x", []uint16{0x0000}, 0, 1, Operands{}},
		{"move 12x", []uint16{0x3201}, 0, 1, Operands{A: 2, B: 3}},
		{"const/4 negative 11n", []uint16{0xf112}, 0, 1, Operands{A: 1, B: 0xffffffff}},
		{"return 11x", []uint16{0x070f}, 0, 1, Operands{A: 7}},
		{"goto back 10t", []uint16{0x0000, 0x0000, 0xfe28}, 2, 3, Operands{A: 0}},
		{"goto/16 20t", []uint16{0x0029, 0x0010}, 0, 2, Operands{A: 0x10}},
		{"move/from16 22x", []uint16{0x0502, 0x0100}, 0, 2, Operands{A: 5, B: 0x100}},
		{"if-nez 21t", []uint16{0x0000, 0x0339, 0xffff}, 1, 3, Operands{A: 3}},
		{"const/16 21s", []uint16{0x0213, 0x8000}, 0, 2, Operands{A: 2, B: 0xffff8000}},
		{"const/high16 21h", []uint16{0x0115, 0x4120}, 0, 2, Operands{A: 1, B: 0x41200000}},
		{"const-wide/high16 21h", []uint16{0x0119, 0x4024}, 0, 2, Operands{A: 1, B: 0x4024, Long: 0x4024 << 48}},
		{"const-string 21c", []uint16{0x041a, 0x0033}, 0, 2, Operands{A: 4, B: 0x33}},
		{"add-int 23x", []uint16{0x0090, 0x0201}, 0, 2, Operands{A: 0, B: 1, C: 2}},
		{"add-int/lit8 22b", []uint16{0x00d8, 0xff01}, 0, 2, Operands{A: 0, B: 1, C: 0xffffffff}},
		{"if-eq 22t", []uint16{0x1032, 0x0004}, 0, 2, Operands{A: 0, B: 1, C: 4}},
		{"add-int/lit16 22s", []uint16{0x21d0, 0xfffe}, 0, 2, Operands{A: 1, B: 2, C: 0xfffffffe}},
		{"iget 22c", []uint16{0x1052, 0x0009}, 0, 2, Operands{A: 0, B: 1, C: 9}},
		{"goto/32 30t", []uint16{0x002a, 0x0001, 0x0001}, 0, 3, Operands{A: 0x10001}},
		{"move/16 32x", []uint16{0x0003, 0x0100, 0x0200}, 0, 3, Operands{A: 0x100, B: 0x200}},
		{"const 31i", []uint16{0x0314, 0x5678, 0x1234}, 0, 3, Operands{A: 3, B: 0x12345678}},
		{"fill-array-data 31t", []uint16{0x0026, 0x0006, 0x0000}, 0, 3, Operands{A: 0, B: 6}},
		{"const-string/jumbo 31c", []uint16{0x001b, 0x0000, 0x0001}, 0, 3, Operands{A: 0, B: 0x10000}},
		{"invoke-virtual 35c", []uint16{0x5f6e, 0x0042, 0x4321}, 0, 3,
			Operands{A: 0x42, Args: []uint16{1, 2, 3, 4, 0xf}}},
		{"invoke-static/range 3rc", []uint16{0x0377, 0x0007, 0x0010}, 0, 3,
			Operands{A: 7, Args: []uint16{0x10, 0x11, 0x12}}},
		{"const-wide 51l", []uint16{0x0218, 0x4444, 0x3333, 0x2222, 0x1111}, 0, 5,
			Operands{A: 2, Long: 0x1111222233334444}},
		{"const-wide/16 21s", []uint16{0x0016, 0xffff}, 0, 2, Operands{B: 0xffffffff, Long: 0xffffffffffffffff}},
		{"const-wide/32 31i", []uint16{0x0017, 0x0001, 0x0000}, 0, 3, Operands{B: 1, Long: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := uint8(tt.units[tt.pos])
			next, got := DecodeOperands(tt.units, tt.pos, op)
			if next != tt.next {
				t.Errorf("next = %d, want %d", next, tt.next)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("operands mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeOperands_Truncated(t *testing.T) {
	defer func() {
		de, ok := recover().(*DecodeError)
		if !ok {
			t.Fatal("expected *DecodeError panic")
		}
		if de.Kind != DiagTruncated || de.Need != 5 || de.Have != 2 || de.Offset != 1 {
			t.Errorf("error = %+v", de)
		}
	}()
	DecodeOperands([]uint16{0x0000, 0x0018, 0x0000}, 1, 0x18)
}

func TestDecodeOperands_BadArgCount(t *testing.T) {
	defer func() {
		de, ok := recover().(*DecodeError)
		if !ok || de.Kind != DiagInvalid {
			t.Errorf("recovered %v, want invalid *DecodeError", de)
		}
	}()
	DecodeOperands([]uint16{0x606e, 0, 0}, 0, 0x6e)
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		op   uint8
		want Format
		size uint32
	}{
		{0x00, F10x, 1},
		{0x18, F51l, 5},
		{0x24, F35c, 3},
		{0x25, F3rc, 3},
		{0x2b, F31t, 3},
		{0x38, F21t, 2},
		{0xe3, F10x, 1},
	}
	for _, tt := range tests {
		f := FormatOf(tt.op)
		if f != tt.want || f.Size() != tt.size {
			t.Errorf("FormatOf(0x%02x) = %s (size %d), want %s (size %d)", tt.op, f, f.Size(), tt.want, tt.size)
		}
	}
}

func TestName(t *testing.T) {
	tests := map[uint8]string{
		0x00: "nop",
		0x0d: "move-exception",
		0x20: "instance-of",
		0x2b: "packed-switch",
		0x38: "if-eqz",
		0x73: "unused-73",
		0x78: "invoke-interface/range",
		0x8f: "int-to-short",
		0xaf: "rem-double",
		0xcf: "rem-double/2addr",
		0xd1: "rsub-int",
		0xe2: "ushr-int/lit8",
		0xff: "unused-ff",
	}
	for op, want := range tests {
		if got := Name(op); got != want {
			t.Errorf("Name(0x%02x) = %q, want %q", op, got, want)
		}
	}
}
