package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"undex/internal/dalvik"
)

// ColorMode selects when listings are colored.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("render: unknown color mode %q", s)
}

// ColorEnabled reports whether output to f should be colored.
// In auto mode color requires a terminal, no NO_COLOR and a TERM other
// than "dumb".
func ColorEnabled(mode ColorMode, f *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

func sgr(params, s string) string {
	if params == "" || s == "" {
		return s
	}
	return "\x1b[" + params + "m" + s + "\x1b[0m"
}

// Listing renders lines as text. With color set, offsets, mnemonics and
// comments are wrapped in ANSI escapes from t; the uncolored output is
// identical to dalvik.Format.
func Listing(lines []dalvik.Line, t Theme, color bool) string {
	var b strings.Builder
	for _, l := range lines {
		if !color {
			b.WriteString(l.String())
			b.WriteByte('\n')
			continue
		}
		b.WriteString(sgr(t.ANSIOffset, fmt.Sprintf("%04x:", l.Offset)))
		fmt.Fprintf(&b, " %-16s ", l.Raw)
		b.WriteString(sgr(t.mnemonicSGR(l), l.Mnemonic))
		if l.Operands != "" {
			b.WriteByte(' ')
			b.WriteString(l.Operands)
		}
		if l.Comment != "" {
			b.WriteString("  ")
			b.WriteString(sgr(t.ANSIComment, "; "+l.Comment))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
