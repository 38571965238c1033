package dexfmt

import "fmt"

// Format identifies one of the Dalvik instruction operand layouts.
// The name encodes the size in code units, the register count and the
// operand kind (x: none, n: nibble literal, s/h/i/l/b: literals, t: branch,
// c: constant-pool index).
type Format uint8

const (
	F10x Format = iota
	F12x
	F11n
	F11x
	F10t
	F20t
	F22x
	F21t
	F21s
	F21h
	F21c
	F23x
	F22b
	F22t
	F22s
	F22c
	F30t
	F32x
	F31i
	F31t
	F31c
	F35c
	F3rc
	F51l
)

var formatNames = [...]string{
	F10x: "10x", F12x: "12x", F11n: "11n", F11x: "11x", F10t: "10t",
	F20t: "20t", F22x: "22x", F21t: "21t", F21s: "21s", F21h: "21h",
	F21c: "21c", F23x: "23x", F22b: "22b", F22t: "22t", F22s: "22s",
	F22c: "22c", F30t: "30t", F32x: "32x", F31i: "31i", F31t: "31t",
	F31c: "31c", F35c: "35c", F3rc: "3rc", F51l: "51l",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Size returns the instruction length in code units.
func (f Format) Size() uint32 { return uint32(formatNames[f][0] - '0') }

// kind returns the operand kind letter.
func (f Format) kind() byte { return formatNames[f][2] }

// formats maps each opcode byte to its operand layout.
// Unused opcodes decode as 10x.
var formats = [256]Format{
	F10x, F12x, F22x, F32x, F12x, F22x, F32x, F12x, // 00
	F22x, F32x, F11x, F11x, F11x, F11x, F10x, F11x, // 08
	F11x, F11x, F11n, F21s, F31i, F21h, F21s, F31i, // 10
	F51l, F21h, F21c, F31c, F21c, F11x, F11x, F21c, // 18
	F22c, F12x, F21c, F22c, F35c, F3rc, F31t, F11x, // 20
	F10t, F20t, F30t, F31t, F31t, F23x, F23x, F23x, // 28
	F23x, F23x, F22t, F22t, F22t, F22t, F22t, F22t, // 30
	F21t, F21t, F21t, F21t, F21t, F21t, F10x, F10x, // 38
	F10x, F10x, F10x, F10x, F23x, F23x, F23x, F23x, // 40
	F23x, F23x, F23x, F23x, F23x, F23x, F23x, F23x, // 48
	F23x, F23x, F22c, F22c, F22c, F22c, F22c, F22c, // 50
	F22c, F22c, F22c, F22c, F22c, F22c, F22c, F22c, // 58
	F21c, F21c, F21c, F21c, F21c, F21c, F21c, F21c, // 60
	F21c, F21c, F21c, F21c, F21c, F21c, F35c, F35c, // 68
	F35c, F35c, F35c, F10x, F3rc, F3rc, F3rc, F3rc, // 70
	F3rc, F10x, F10x, F12x, F12x, F12x, F12x, F12x, // 78
	F12x, F12x, F12x, F12x, F12x, F12x, F12x, F12x, // 80
	F12x, F12x, F12x, F12x, F12x, F12x, F12x, F12x, // 88
	F23x, F23x, F23x, F23x, F23x, F23x, F23x, F23x, // 90
	F23x, F23x, F23x, F23x, F23x, F23x, F23x, F23x, // 98
	F23x, F23x, F23x, F23x, F23x, F23x, F23x, F23x, // a0
	F23x, F23x, F23x, F23x, F23x, F23x, F23x, F23x, // a8
	F12x, F12x, F12x, F12x, F12x, F12x, F12x, F12x, // b0
	F12x, F12x, F12x, F12x, F12x, F12x, F12x, F12x, // b8
	F12x, F12x, F12x, F12x, F12x, F12x, F12x, F12x, // c0
	F12x, F12x, F12x, F12x, F12x, F12x, F12x, F12x, // c8
	F22s, F22s, F22s, F22s, F22s, F22s, F22s, F22s, // d0
	F22b, F22b, F22b, F22b, F22b, F22b, F22b, F22b, // d8
	F22b, F22b, F22b, F10x, F10x, F10x, F10x, F10x, // e0
	F10x, F10x, F10x, F10x, F10x, F10x, F10x, F10x, // e8
	F10x, F10x, F10x, F10x, F10x, F10x, F10x, F10x, // f0
	F10x, F10x, F10x, F10x, F10x, F10x, F10x, F10x, // f8
}

// FormatOf returns the operand layout of opcode op.
func FormatOf(op uint8) Format { return formats[op] }

// names holds the mnemonic of every assigned opcode.
var names = [256]string{
	0x00: "nop",
	0x01: "move",
	0x02: "move/from16",
	0x03: "move/16",
	0x04: "move-wide",
	0x05: "move-wide/from16",
	0x06: "move-wide/16",
	0x07: "move-object",
	0x08: "move-object/from16",
	0x09: "move-object/16",
	0x0a: "move-result",
	0x0b: "move-result-wide",
	0x0c: "move-result-object",
	0x0d: "move-exception",
	0x0e: "return-void",
	0x0f: "return",
	0x10: "return-wide",
	0x11: "return-object",
	0x12: "const/4",
	0x13: "const/16",
	0x14: "const",
	0x15: "const/high16",
	0x16: "const-wide/16",
	0x17: "const-wide/32",
	0x18: "const-wide",
	0x19: "const-wide/high16",
	0x1a: "const-string",
	0x1b: "const-string/jumbo",
	0x1c: "const-class",
	0x1d: "monitor-enter",
	0x1e: "monitor-exit",
	0x1f: "check-cast",
	0x20: "instance-of",
	0x21: "array-length",
	0x22: "new-instance",
	0x23: "new-array",
	0x24: "filled-new-array",
	0x25: "filled-new-array/range",
	0x26: "fill-array-data",
	0x27: "throw",
	0x28: "goto",
	0x29: "goto/16",
	0x2a: "goto/32",
	0x2b: "packed-switch",
	0x2c: "sparse-switch",
	0x2d: "cmpl-float",
	0x2e: "cmpg-float",
	0x2f: "cmpl-double",
	0x30: "cmpg-double",
	0x31: "cmp-long",
	0x32: "if-eq",
	0x33: "if-ne",
	0x34: "if-lt",
	0x35: "if-ge",
	0x36: "if-gt",
	0x37: "if-le",
	0x38: "if-eqz",
	0x39: "if-nez",
	0x3a: "if-ltz",
	0x3b: "if-gez",
	0x3c: "if-gtz",
	0x3d: "if-lez",
	0x44: "aget",
	0x45: "aget-wide",
	0x46: "aget-object",
	0x47: "aget-boolean",
	0x48: "aget-byte",
	0x49: "aget-char",
	0x4a: "aget-short",
	0x4b: "aput",
	0x4c: "aput-wide",
	0x4d: "aput-object",
	0x4e: "aput-boolean",
	0x4f: "aput-byte",
	0x50: "aput-char",
	0x51: "aput-short",
	0x52: "iget",
	0x53: "iget-wide",
	0x54: "iget-object",
	0x55: "iget-boolean",
	0x56: "iget-byte",
	0x57: "iget-char",
	0x58: "iget-short",
	0x59: "iput",
	0x5a: "iput-wide",
	0x5b: "iput-object",
	0x5c: "iput-boolean",
	0x5d: "iput-byte",
	0x5e: "iput-char",
	0x5f: "iput-short",
	0x60: "sget",
	0x61: "sget-wide",
	0x62: "sget-object",
	0x63: "sget-boolean",
	0x64: "sget-byte",
	0x65: "sget-char",
	0x66: "sget-short",
	0x67: "sput",
	0x68: "sput-wide",
	0x69: "sput-object",
	0x6a: "sput-boolean",
	0x6b: "sput-byte",
	0x6c: "sput-char",
	0x6d: "sput-short",
	0x6e: "invoke-virtual",
	0x6f: "invoke-super",
	0x70: "invoke-direct",
	0x71: "invoke-static",
	0x72: "invoke-interface",
	0x74: "invoke-virtual/range",
	0x75: "invoke-super/range",
	0x76: "invoke-direct/range",
	0x77: "invoke-static/range",
	0x78: "invoke-interface/range",
	0x7b: "neg-int",
	0x7c: "not-int",
	0x7d: "neg-long",
	0x7e: "not-long",
	0x7f: "neg-float",
	0x80: "neg-double",
	0x81: "int-to-long",
	0x82: "int-to-float",
	0x83: "int-to-double",
	0x84: "long-to-int",
	0x85: "long-to-float",
	0x86: "long-to-double",
	0x87: "float-to-int",
	0x88: "float-to-long",
	0x89: "float-to-double",
	0x8a: "double-to-int",
	0x8b: "double-to-long",
	0x8c: "double-to-float",
	0x8d: "int-to-byte",
	0x8e: "int-to-char",
	0x8f: "int-to-short",
	0x90: "add-int",
	0x91: "sub-int",
	0x92: "mul-int",
	0x93: "div-int",
	0x94: "rem-int",
	0x95: "and-int",
	0x96: "or-int",
	0x97: "xor-int",
	0x98: "shl-int",
	0x99: "shr-int",
	0x9a: "ushr-int",
	0x9b: "add-long",
	0x9c: "sub-long",
	0x9d: "mul-long",
	0x9e: "div-long",
	0x9f: "rem-long",
	0xa0: "and-long",
	0xa1: "or-long",
	0xa2: "xor-long",
	0xa3: "shl-long",
	0xa4: "shr-long",
	0xa5: "ushr-long",
	0xa6: "add-float",
	0xa7: "sub-float",
	0xa8: "mul-float",
	0xa9: "div-float",
	0xaa: "rem-float",
	0xab: "add-double",
	0xac: "sub-double",
	0xad: "mul-double",
	0xae: "div-double",
	0xaf: "rem-double",
	0xb0: "add-int/2addr",
	0xb1: "sub-int/2addr",
	0xb2: "mul-int/2addr",
	0xb3: "div-int/2addr",
	0xb4: "rem-int/2addr",
	0xb5: "and-int/2addr",
	0xb6: "or-int/2addr",
	0xb7: "xor-int/2addr",
	0xb8: "shl-int/2addr",
	0xb9: "shr-int/2addr",
	0xba: "ushr-int/2addr",
	0xbb: "add-long/2addr",
	0xbc: "sub-long/2addr",
	0xbd: "mul-long/2addr",
	0xbe: "div-long/2addr",
	0xbf: "rem-long/2addr",
	0xc0: "and-long/2addr",
	0xc1: "or-long/2addr",
	0xc2: "xor-long/2addr",
	0xc3: "shl-long/2addr",
	0xc4: "shr-long/2addr",
	0xc5: "ushr-long/2addr",
	0xc6: "add-float/2addr",
	0xc7: "sub-float/2addr",
	0xc8: "mul-float/2addr",
	0xc9: "div-float/2addr",
	0xca: "rem-float/2addr",
	0xcb: "add-double/2addr",
	0xcc: "sub-double/2addr",
	0xcd: "mul-double/2addr",
	0xce: "div-double/2addr",
	0xcf: "rem-double/2addr",
	0xd0: "add-int/lit16",
	0xd1: "rsub-int",
	0xd2: "mul-int/lit16",
	0xd3: "div-int/lit16",
	0xd4: "rem-int/lit16",
	0xd5: "and-int/lit16",
	0xd6: "or-int/lit16",
	0xd7: "xor-int/lit16",
	0xd8: "add-int/lit8",
	0xd9: "rsub-int/lit8",
	0xda: "mul-int/lit8",
	0xdb: "div-int/lit8",
	0xdc: "rem-int/lit8",
	0xdd: "and-int/lit8",
	0xde: "or-int/lit8",
	0xdf: "xor-int/lit8",
	0xe0: "shl-int/lit8",
	0xe1: "shr-int/lit8",
	0xe2: "ushr-int/lit8",
}

// Name returns the mnemonic of opcode op, or "unused-XX" for unassigned bytes.
func Name(op uint8) string {
	if s := names[op]; s != "" {
		return s
	}
	return fmt.Sprintf("unused-%02x", op)
}
