package dalvik

import "testing"

func TestCategoryOf_Total(t *testing.T) {
	for op := 0; op < 256; op++ {
		c := CategoryOf(uint8(op))
		if c > BinaryOpConst {
			t.Errorf("CategoryOf(0x%02x) = %d, outside enumeration", op, c)
		}
		if c.String() == "" {
			t.Errorf("CategoryOf(0x%02x) has no name", op)
		}
	}
}

func TestCategoryOf_Known(t *testing.T) {
	tests := []struct {
		op   uint8
		want Category
	}{
		{0x00, Nop},
		{0x01, Move},
		{0x04, MoveWide},
		{0x07, Move}, // move-object
		{0x0a, MoveResult},
		{0x0d, MoveResult}, // move-exception
		{0x0e, Return},
		{0x12, Const32},
		{0x18, Const64},
		{0x1a, ConstString},
		{0x1c, ConstClass},
		{0x1f, CheckCast},
		{0x20, InstanceOf},
		{0x24, FilledNewArray},
		{0x25, FilledNewArray},
		{0x26, FillArrayData},
		{0x27, Throw},
		{0x2a, Goto},
		{0x2b, Switch},
		{0x2c, Switch},
		{0x31, Cmp},
		{0x32, If},
		{0x38, IfZ},
		{0x3d, IfZ},
		{0x3e, Nop}, // unused
		{0x44, ArrayGet},
		{0x51, ArrayPut},
		{0x52, InstanceGet},
		{0x5f, InstancePut},
		{0x60, StaticGet},
		{0x6d, StaticPut},
		{0x6e, InvokeVirtual},
		{0x71, InvokeStatic},
		{0x73, Nop},
		{0x76, InvokeDirect},
		{0x78, InvokeInterface},
		{0x7b, UnaryOp},
		{0x8f, UnaryOp},
		{0x90, BinaryOp},
		{0xcf, BinaryOp},
		{0xd0, BinaryOpConst},
		{0xe2, BinaryOpConst},
		{0xe3, Nop},
		{0xff, Nop},
	}
	for _, tt := range tests {
		if got := CategoryOf(tt.op); got != tt.want {
			t.Errorf("CategoryOf(0x%02x) = %s, want %s", tt.op, got, tt.want)
		}
	}
}

func TestCategory_IsInvoke(t *testing.T) {
	for c := Nop; c <= BinaryOpConst; c++ {
		want := c >= InvokeVirtual && c <= InvokeInterface
		if got := c.IsInvoke(); got != want {
			t.Errorf("%s.IsInvoke() = %v, want %v", c, got, want)
		}
	}
}
