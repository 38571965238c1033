// Package method loads Dalvik method bodies and their constant-pool context
// from YAML files and decodes them.
package method

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"undex/internal/dalvik"
)

// File is a parsed method file.
type File struct {
	Pool    Pool     `yaml:"pool"`
	Methods []Method `yaml:"methods"`
}

// Method is one method body.
type Method struct {
	Name  string    `yaml:"name"`
	Insns CodeUnits `yaml:"insns"`
	// Catch lists the code-unit offsets of exception handler entries.
	Catch []uint32 `yaml:"catch,omitempty"`
}

// CatchSet returns Catch as a set.
func (m *Method) CatchSet() map[uint32]bool {
	set := make(map[uint32]bool, len(m.Catch))
	for _, off := range m.Catch {
		set[off] = true
	}
	return set
}

// CodeUnits is a method's insns array. In YAML it is either a sequence of
// integers or a string of whitespace-separated 4-digit hex words.
type CodeUnits []uint16

func (c *CodeUnits) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		units, err := parseHexWords(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*c = units
		return nil
	case yaml.SequenceNode:
		var ints []uint16
		if err := value.Decode(&ints); err != nil {
			return err
		}
		*c = ints
		return nil
	}
	return fmt.Errorf("line %d: insns must be a hex string or an integer sequence", value.Line)
}

func parseHexWords(s string) ([]uint16, error) {
	fields := strings.Fields(s)
	units := make([]uint16, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimPrefix(f, "0x")
		v, err := strconv.ParseUint(f, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("bad code unit %q: %w", f, err)
		}
		units = append(units, uint16(v))
	}
	return units, nil
}

// MethodRef describes one method_id: its display name and return type.
// In YAML a bare scalar is shorthand for the return type.
type MethodRef struct {
	Name   string `yaml:"name"`
	Return string `yaml:"return"`
}

func (r *MethodRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		r.Return = value.Value
		return nil
	}
	type plain MethodRef
	return value.Decode((*plain)(r))
}

// Pool is the slice of a dex constant pool the annotators need.
// It implements dalvik.Pool.
type Pool struct {
	Methods map[uint32]MethodRef `yaml:"methods"`
	Types   map[uint32]string    `yaml:"types"`
}

// MethodReturnType returns the return type of method idx, or "" if unknown.
func (p *Pool) MethodReturnType(idx uint32) dalvik.TypeRef {
	return dalvik.TypeRef(p.Methods[idx].Return)
}

// ArrayElementType strips one array dimension from type idx.
// Unknown indices resolve to "".
func (p *Pool) ArrayElementType(idx uint32) dalvik.TypeRef {
	return dalvik.TypeRef(strings.TrimPrefix(p.Types[idx], "["))
}

// TypeName returns the descriptor of type idx, or "" if unknown.
func (p *Pool) TypeName(idx uint32) string { return p.Types[idx] }

// MethodName returns the display name of method idx, falling back to
// "method@<idx>".
func (p *Pool) MethodName(idx uint32) string {
	if ref, ok := p.Methods[idx]; ok && ref.Name != "" {
		return ref.Name
	}
	return fmt.Sprintf("method@%d", idx)
}

// LoadFile reads and parses a method file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("method: reading %s: %w", path, err)
	}
	return ParseFile(data, path)
}

// ParseFile parses method file content from bytes.
// The path argument is used only for error messages.
func ParseFile(data []byte, path string) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("method: parsing %s: %w", path, err)
	}
	if err := f.validate(path); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate(path string) error {
	for i := range f.Methods {
		m := &f.Methods[i]
		if m.Name == "" {
			m.Name = fmt.Sprintf("method#%d", i)
		}
		for _, off := range m.Catch {
			if off == 0 {
				return fmt.Errorf("method: %s: %s: catch address 0 is not a valid handler entry", path, m.Name)
			}
		}
	}
	return nil
}
