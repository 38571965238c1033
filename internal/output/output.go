// Package output writes undex results to files.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"undex/internal/dexfmt"
)

// FileName maps a method name such as "LFoo/Bar;->baz(I)V" to a name that
// is safe to use as a single path element.
func FileName(method string) string {
	var b strings.Builder
	for _, r := range method {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '_', r == '.', r == '$':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	s := strings.Trim(b.String(), "_")
	if s == "" {
		return "method"
	}
	return s
}

// WriteListing writes a method listing to asm/<name>.txt.
func WriteListing(dir, name, text string) error {
	path := filepath.Join(dir, "asm", FileName(name)+".txt")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: mkdir asm: %w", err)
	}
	return os.WriteFile(path, []byte(text), 0644)
}

// WriteDOT writes a DOT graph to <sub>/<name>.dot and returns its path.
// An empty sub writes into dir itself.
func WriteDOT(dir, sub, name, dot string) (string, error) {
	base := dir
	if sub != "" {
		base = filepath.Join(dir, sub)
	}
	if err := os.MkdirAll(base, 0755); err != nil {
		return "", fmt.Errorf("output: mkdir %s: %w", base, err)
	}
	path := filepath.Join(base, FileName(name)+".dot")
	if err := os.WriteFile(path, []byte(dot), 0644); err != nil {
		return "", fmt.Errorf("output: write %s: %w", path, err)
	}
	return path, nil
}

// RunDot renders dotPath to outPath with graphviz.
func RunDot(dotPath, outPath, format string) error {
	cmd := exec.Command("dot", "-T"+format, "-o", outPath, dotPath)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// WriteDiags writes diagnostics to diags.json.
func WriteDiags(dir string, diags []dexfmt.Diag) error {
	if diags == nil {
		diags = []dexfmt.Diag{}
	}
	return writeJSON(filepath.Join(dir, "diags.json"), diags)
}

// WriteJSONL writes one JSON record per line to dir/name.
func WriteJSONL[T any](dir, name string, records []T) error {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", name, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	for i := range records {
		if err := enc.Encode(&records[i]); err != nil {
			return fmt.Errorf("output: write %s: %w", name, err)
		}
	}
	return f.Close()
}

// ReadJSONL reads a JSONL file into a slice of T.
func ReadJSONL[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []T
	dec := json.NewDecoder(f)
	for dec.More() {
		var rec T
		if err := dec.Decode(&rec); err != nil {
			return records, fmt.Errorf("line %d: %w", len(records)+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("output: encode %s: %w", path, err)
	}
	return nil
}
