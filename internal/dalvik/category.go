package dalvik

import "fmt"

// Category is the semantic class of a Dalvik opcode.
type Category uint8

const (
	Nop Category = iota
	Move
	MoveWide
	MoveResult
	Return
	Const32
	Const64
	ConstString
	ConstClass
	MonitorEnter
	MonitorExit
	CheckCast
	InstanceOf
	ArrayLen
	NewInstance
	NewArray
	FilledNewArray
	FillArrayData
	Throw
	Goto
	Switch
	Cmp
	If
	IfZ
	ArrayGet
	ArrayPut
	InstanceGet
	InstancePut
	StaticGet
	StaticPut
	InvokeVirtual
	InvokeSuper
	InvokeDirect
	InvokeStatic
	InvokeInterface
	UnaryOp
	BinaryOp
	BinaryOpConst
)

var categoryNames = [...]string{
	Nop:             "Nop",
	Move:            "Move",
	MoveWide:        "MoveWide",
	MoveResult:      "MoveResult",
	Return:          "Return",
	Const32:         "Const32",
	Const64:         "Const64",
	ConstString:     "ConstString",
	ConstClass:      "ConstClass",
	MonitorEnter:    "MonitorEnter",
	MonitorExit:     "MonitorExit",
	CheckCast:       "CheckCast",
	InstanceOf:      "InstanceOf",
	ArrayLen:        "ArrayLen",
	NewInstance:     "NewInstance",
	NewArray:        "NewArray",
	FilledNewArray:  "FilledNewArray",
	FillArrayData:   "FillArrayData",
	Throw:           "Throw",
	Goto:            "Goto",
	Switch:          "Switch",
	Cmp:             "Cmp",
	If:              "If",
	IfZ:             "IfZ",
	ArrayGet:        "ArrayGet",
	ArrayPut:        "ArrayPut",
	InstanceGet:     "InstanceGet",
	InstancePut:     "InstancePut",
	StaticGet:       "StaticGet",
	StaticPut:       "StaticPut",
	InvokeVirtual:   "InvokeVirtual",
	InvokeSuper:     "InvokeSuper",
	InvokeDirect:    "InvokeDirect",
	InvokeStatic:    "InvokeStatic",
	InvokeInterface: "InvokeInterface",
	UnaryOp:         "UnaryOp",
	BinaryOp:        "BinaryOp",
	BinaryOpConst:   "BinaryOpConst",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// IsInvoke reports whether c is one of the five invoke kinds.
func (c Category) IsInvoke() bool {
	switch c {
	case InvokeVirtual, InvokeSuper, InvokeDirect, InvokeStatic, InvokeInterface:
		return true
	}
	return false
}

// categories maps every opcode byte to its category. Unassigned bytes are Nop.
var categories = [256]Category{
	Nop, Move, Move, Move, // 00
	MoveWide, MoveWide, MoveWide, Move, // 04
	Move, Move, MoveResult, MoveResult, // 08
	MoveResult, MoveResult, Return, Return, // 0c
	Return, Return, Const32, Const32, // 10
	Const32, Const32, Const64, Const64, // 14
	Const64, Const64, ConstString, ConstString, // 18
	ConstClass, MonitorEnter, MonitorExit, CheckCast, // 1c
	InstanceOf, ArrayLen, NewInstance, NewArray, // 20
	FilledNewArray, FilledNewArray, FillArrayData, Throw, // 24
	Goto, Goto, Goto, Switch, // 28
	Switch, Cmp, Cmp, Cmp, // 2c
	Cmp, Cmp, If, If, // 30
	If, If, If, If, // 34
	IfZ, IfZ, IfZ, IfZ, // 38
	IfZ, IfZ, Nop, Nop, // 3c
	Nop, Nop, Nop, Nop, // 40
	ArrayGet, ArrayGet, ArrayGet, ArrayGet, // 44
	ArrayGet, ArrayGet, ArrayGet, ArrayPut, // 48
	ArrayPut, ArrayPut, ArrayPut, ArrayPut, // 4c
	ArrayPut, ArrayPut, InstanceGet, InstanceGet, // 50
	InstanceGet, InstanceGet, InstanceGet, InstanceGet, // 54
	InstanceGet, InstancePut, InstancePut, InstancePut, // 58
	InstancePut, InstancePut, InstancePut, InstancePut, // 5c
	StaticGet, StaticGet, StaticGet, StaticGet, // 60
	StaticGet, StaticGet, StaticGet, StaticPut, // 64
	StaticPut, StaticPut, StaticPut, StaticPut, // 68
	StaticPut, StaticPut, InvokeVirtual, InvokeSuper, // 6c
	InvokeDirect, InvokeStatic, InvokeInterface, Nop, // 70
	InvokeVirtual, InvokeSuper, InvokeDirect, InvokeStatic, // 74
	InvokeInterface, Nop, Nop, UnaryOp, // 78
	UnaryOp, UnaryOp, UnaryOp, UnaryOp, // 7c
	UnaryOp, UnaryOp, UnaryOp, UnaryOp, // 80
	UnaryOp, UnaryOp, UnaryOp, UnaryOp, // 84
	UnaryOp, UnaryOp, UnaryOp, UnaryOp, // 88
	UnaryOp, UnaryOp, UnaryOp, UnaryOp, // 8c
	BinaryOp, BinaryOp, BinaryOp, BinaryOp, // 90
	BinaryOp, BinaryOp, BinaryOp, BinaryOp, // 94
	BinaryOp, BinaryOp, BinaryOp, BinaryOp, // 98
	BinaryOp, BinaryOp, BinaryOp, BinaryOp, // 9c
	BinaryOp, BinaryOp, BinaryOp, BinaryOp, // a0
	BinaryOp, BinaryOp, BinaryOp, BinaryOp, // a4
	BinaryOp, BinaryOp, BinaryOp, BinaryOp, // a8
	BinaryOp, BinaryOp, BinaryOp, BinaryOp, // ac
	BinaryOp, BinaryOp, BinaryOp, BinaryOp, // b0
	BinaryOp, BinaryOp, BinaryOp, BinaryOp, // b4
	BinaryOp, BinaryOp, BinaryOp, BinaryOp, // b8
	BinaryOp, BinaryOp, BinaryOp, BinaryOp, // bc
	BinaryOp, BinaryOp, BinaryOp, BinaryOp, // c0
	BinaryOp, BinaryOp, BinaryOp, BinaryOp, // c4
	BinaryOp, BinaryOp, BinaryOp, BinaryOp, // c8
	BinaryOp, BinaryOp, BinaryOp, BinaryOp, // cc
	BinaryOpConst, BinaryOpConst, BinaryOpConst, BinaryOpConst, // d0
	BinaryOpConst, BinaryOpConst, BinaryOpConst, BinaryOpConst, // d4
	BinaryOpConst, BinaryOpConst, BinaryOpConst, BinaryOpConst, // d8
	BinaryOpConst, BinaryOpConst, BinaryOpConst, BinaryOpConst, // dc
	BinaryOpConst, BinaryOpConst, BinaryOpConst, Nop, // e0
	Nop, Nop, Nop, Nop, // e4
	Nop, Nop, Nop, Nop, // e8
	Nop, Nop, Nop, Nop, // ec
	Nop, Nop, Nop, Nop, // f0
	Nop, Nop, Nop, Nop, // f4
	Nop, Nop, Nop, Nop, // f8
	Nop, Nop, Nop, Nop, // fc
}

// CategoryOf returns the category of opcode op.
func CategoryOf(op uint8) Category { return categories[op] }
