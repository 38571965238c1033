package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"undex/internal/dalvik"
	"undex/internal/dexfmt"
	"undex/internal/output"
)

const testYAML = `
pool:
  methods:
    0: {name: "LFoo;->get()I", return: I}
methods:
  - name: "LFoo;->a()I"
    insns: "0071 0000 0000 000a 000f"
  - name: "LFoo;->broken()V"
    insns: "0014 0000"
`

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "methods.yaml")
	if err := os.WriteFile(path, []byte(testYAML), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCmdJSON(t *testing.T) {
	in := writeInput(t)
	out := t.TempDir()
	if err := cmdJSON([]string{"--in", in, "--out", out}); err != nil {
		t.Fatalf("cmdJSON: %v", err)
	}

	methods, err := output.ReadJSONL[dalvik.MethodRecord](filepath.Join(out, "methods.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	want := []dalvik.MethodRecord{{Name: "LFoo;->a()I", CodeUnits: 5, Insts: 3, Blocks: 1, Invokes: 1}}
	if diff := cmp.Diff(want, methods); diff != "" {
		t.Errorf("methods.jsonl mismatch (-want +got):\n%s", diff)
	}

	insts, err := output.ReadJSONL[dalvik.InstRecord](filepath.Join(out, "insts.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	if len(insts) != 3 {
		t.Fatalf("got %d inst records, want 3", len(insts))
	}
	if insts[1].ResultType != "I" {
		t.Errorf("move-result type = %q, want I", insts[1].ResultType)
	}

	diags, err := os.ReadFile(filepath.Join(out, "diags.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(diags), "LFoo;->broken()V") {
		t.Errorf("diags.json does not name the broken method:\n%s", diags)
	}
}

func TestCmdJSON_Strict(t *testing.T) {
	in := writeInput(t)
	err := cmdJSON([]string{"--in", in, "--out", t.TempDir(), "--strict"})
	if err == nil {
		t.Fatal("expected strict mode to fail on the truncated method")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error %q does not name the method", err)
	}
}

func TestCmdDecode_Out(t *testing.T) {
	in := writeInput(t)
	out := t.TempDir()
	if err := cmdDecode([]string{"--in", in, "--out", out}); err != nil {
		t.Fatalf("cmdDecode: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(out, "asm", "LFoo___a__I.txt"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"invoke-static", "move-result v0", "; type I"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("listing missing %q:\n%s", want, data)
		}
	}
}

func TestCmdCFGAndGraph(t *testing.T) {
	in := writeInput(t)
	out := t.TempDir()
	if err := cmdCFG([]string{"--in", in, "--out", out}); err != nil {
		t.Fatalf("cmdCFG: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "cfg", "LFoo___a__I.dot")); err != nil {
		t.Errorf("per-method CFG missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "cfg.dot")); err != nil {
		t.Errorf("overview CFG missing: %v", err)
	}

	if err := cmdGraph([]string{"--in", in, "--out", out}); err != nil {
		t.Fatalf("cmdGraph: %v", err)
	}
	dot, err := os.ReadFile(filepath.Join(out, "callgraph.dot"))
	if err != nil {
		t.Fatal(err)
	}
	if len(dot) == 0 {
		t.Error("expected non-empty callgraph.dot")
	}
}

func TestCommonFlagsOptions(t *testing.T) {
	in, strict, workers := "x", true, 3
	c := commonFlags{in: &in, strict: &strict, workers: &workers}
	if got := c.options(); got.Mode != dexfmt.ModeStrict || got.Workers != 3 {
		t.Errorf("options = %+v", got)
	}
}
