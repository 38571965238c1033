// Package dexfmt provides shared types, diagnostics and the per-opcode
// operand layouts for Dalvik code units.
package dexfmt

import "fmt"

// DiagKind classifies a diagnostic message.
type DiagKind string

const (
	DiagTruncated DiagKind = "truncated"
	DiagInvalid   DiagKind = "invalid"
)

// Diag records a non-fatal issue encountered while processing a method.
type Diag struct {
	Offset uint32   `json:"offset"`
	Kind   DiagKind `json:"kind"`
	Msg    string   `json:"msg"`
	Method string   `json:"method,omitempty"`
}

func (d Diag) String() string {
	if d.Method != "" {
		return fmt.Sprintf("[%s] %s@%04x: %s", d.Kind, d.Method, d.Offset, d.Msg)
	}
	return fmt.Sprintf("[%s] %04x: %s", d.Kind, d.Offset, d.Msg)
}

// Diags accumulates diagnostics.
type Diags struct {
	items []Diag
}

// AddDiag appends a fully populated diagnostic.
func (d *Diags) AddDiag(diag Diag) { d.items = append(d.items, diag) }

func (d *Diags) Items() []Diag { return d.items }
func (d *Diags) Len() int      { return len(d.items) }

// Mode controls error handling behavior.
type Mode int

const (
	ModeStrict     Mode = iota // first failing method returns error
	ModeBestEffort             // drop failing methods, accumulate diags
)

// Options controls batch decoding behavior across packages.
type Options struct {
	Mode    Mode
	Workers int // concurrent method decoders; 0 = use default
}

// DefaultWorkers is the default number of concurrent method decoders.
const DefaultWorkers = 8

func (o Options) EffectiveWorkers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return DefaultWorkers
}
