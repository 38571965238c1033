package render

import "undex/internal/dalvik"

// Theme holds colors for CFG rendering and terminal listings.
type Theme struct {
	Background string
	NodeFill   string
	NodeBorder string
	TextColor  string

	// Edge colors by successor kind.
	EdgeTaken       string // branch/case taken
	EdgeFallthrough string // conditional fallthrough
	EdgeDirect      string // unconditional

	// Node accents.
	EntryBorder   string // method entry block
	HandlerBorder string // exception handler entry
	TermFill      string // return/throw blocks

	// ANSI SGR parameters for listing mnemonics by group.
	ANSIBranch  string
	ANSIInvoke  string
	ANSIMove    string
	ANSIConst   string
	ANSIPayload string
	ANSIComment string
	ANSIOffset  string
}

// NASA is the NASA/Bauhaus theme: geometric, monochrome, sparse color.
var NASA = Theme{
	Background: "#F5F5F5",
	NodeFill:   "white",
	NodeBorder: "#1A1A1A",
	TextColor:  "#1A1A1A",

	EdgeTaken:       "#0B3D91", // NASA blue
	EdgeFallthrough: "#FC3D21", // NASA red
	EdgeDirect:      "#424242", // dark gray

	EntryBorder:   "#0B3D91",
	HandlerBorder: "#E65100", // deep orange
	TermFill:      "#ECEFF1", // blue-gray 50

	ANSIBranch:  "1;34",
	ANSIInvoke:  "36",
	ANSIMove:    "32",
	ANSIConst:   "33",
	ANSIPayload: "35",
	ANSIComment: "90",
	ANSIOffset:  "2",
}

// mnemonicSGR returns the SGR parameters for a listing line's mnemonic.
func (t Theme) mnemonicSGR(l dalvik.Line) string {
	if len(l.Mnemonic) > 0 && l.Mnemonic[0] == '.' {
		return t.ANSIPayload
	}
	switch l.Category {
	case dalvik.Goto, dalvik.If, dalvik.IfZ, dalvik.Switch, dalvik.Return, dalvik.Throw:
		return t.ANSIBranch
	case dalvik.InvokeVirtual, dalvik.InvokeSuper, dalvik.InvokeDirect, dalvik.InvokeStatic, dalvik.InvokeInterface:
		return t.ANSIInvoke
	case dalvik.Move, dalvik.MoveWide, dalvik.MoveResult:
		return t.ANSIMove
	case dalvik.Const32, dalvik.Const64, dalvik.ConstString, dalvik.ConstClass:
		return t.ANSIConst
	}
	return ""
}
