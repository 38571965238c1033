package callgraph

import (
	"fmt"
	"testing"

	"github.com/zboralski/lattice/render"
	"undex/internal/dalvik"
)

func namer(m map[uint32]string) MethodNamer {
	return func(idx uint32) string { return m[idx] }
}

func TestBuildCFG_DOTOutput(t *testing.T) {
	// B0: invoke-static Foo.a; if-eqz v0 -> B2
	// B1: invoke-static Foo.b; return-void
	// B2: invoke-static Foo.c; return-void
	units := []uint16{
		0x0071, 0x0000, 0x0000, // 0: invoke-static {}, method@0
		0x0038, 0x0006, // 3: if-eqz v0, +6 -> 9
		0x0071, 0x0001, 0x0000, // 5: invoke-static {}, method@1
		0x000e,                 // 8: return-void
		0x0071, 0x0002, 0x0000, // 9: invoke-static {}, method@2
		0x000e, // 12: return-void
	}
	insts := dalvik.DecodeStream(units)
	names := namer(map[uint32]string{0: "LFoo;->a()V", 1: "LFoo;->b()V"})

	cfg := BuildCFG([]FuncInfo{{Name: "LMain;->run()V", Insts: insts}}, names)
	if len(cfg.Funcs) != 1 {
		t.Fatalf("expected 1 function, got %d", len(cfg.Funcs))
	}
	f := cfg.Funcs[0]
	if f.Name != "LMain;->run()V" {
		t.Errorf("func name = %q", f.Name)
	}
	if len(f.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(f.Blocks))
	}

	b0 := f.Blocks[0]
	if len(b0.Calls) != 1 || b0.Calls[0].Callee != "LFoo;->a()V" {
		t.Errorf("B0 calls = %+v", b0.Calls)
	}
	if len(b0.Succs) != 2 {
		t.Errorf("B0 succs = %+v", b0.Succs)
	}
	if b1 := f.Blocks[1]; len(b1.Calls) != 1 || b1.Calls[0].Callee != "LFoo;->b()V" || !b1.Term {
		t.Errorf("B1 = %+v", b1)
	}
	// Unnamed callee falls back to the method index.
	if b2 := f.Blocks[2]; len(b2.Calls) != 1 || b2.Calls[0].Callee != "method@2" {
		t.Errorf("B2 calls = %+v", b2.Calls)
	}

	dot := render.DOTCFG(cfg, "undex CFG")
	if dot == "" {
		t.Error("expected non-empty DOT output")
	}
}

func TestBuildFuncCFG_SkipsPayloadBlocks(t *testing.T) {
	units := []uint16{
		0x002b, 0x0004, 0x0000, // 0: packed-switch v0, payload at 4
		0x000e,                // 3: return-void
		0x0100, 1, 0, 0, 3, 0, // 4: payload
	}
	insts := dalvik.DecodeStream(units)
	lcfg, n := BuildFuncCFG(FuncInfo{Name: "sw", Insts: insts}, nil)
	if n != 3 {
		t.Errorf("dalvik blocks = %d, want 3", n)
	}
	if len(lcfg.Blocks) != 2 {
		t.Errorf("lattice blocks = %d, want 2", len(lcfg.Blocks))
	}
}

func TestBuildCallGraph_DOTOutput(t *testing.T) {
	invoke := func(idx uint16) []uint16 { return []uint16{0x0071, idx, 0x0000} }
	code := func(parts ...[]uint16) []dalvik.Instruction {
		var units []uint16
		for _, p := range parts {
			units = append(units, p...)
		}
		units = append(units, 0x000e)
		return dalvik.DecodeStream(units)
	}
	names := namer(map[uint32]string{1: "init", 2: "run", 3: "log"})

	funcs := []FuncInfo{
		{Name: "main", Insts: code(invoke(1), invoke(2), invoke(2))},
		{Name: "init", Insts: code(invoke(3))},
		{Name: "run", Insts: code(invoke(3), invoke(9))},
		{Name: "log", Insts: code()},
	}
	cg := BuildCallGraph(funcs, names)

	if len(cg.Nodes) != 4 {
		t.Errorf("expected 4 nodes, got %d", len(cg.Nodes))
	}
	// main->run appears twice in code but once after dedup; method@9 has no name.
	if len(cg.Edges) != 4 {
		t.Errorf("expected 4 edges, got %d: %v", len(cg.Edges), fmt.Sprint(cg.Edges))
	}

	dot := render.DOT(cg, "undex call graph")
	if dot == "" {
		t.Error("expected non-empty DOT output")
	}
}
