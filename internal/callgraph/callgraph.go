package callgraph

import (
	"github.com/zboralski/lattice"
	"undex/internal/dalvik"
)

// MethodNamer resolves a method index to a display name.
type MethodNamer func(idx uint32) string

// FuncInfo holds the data needed to build call graph and CFG for one method.
type FuncInfo struct {
	Name  string
	Insts []dalvik.Instruction
	Catch map[uint32]bool
}

// BuildCallGraph constructs a lattice.Graph from decoded methods.
// Each method becomes a node. Each invoke becomes an edge to the callee
// name returned by names; invokes that resolve to "" are skipped.
func BuildCallGraph(funcs []FuncInfo, names MethodNamer) *lattice.Graph {
	g := &lattice.Graph{}
	for _, f := range funcs {
		g.Nodes = append(g.Nodes, f.Name)
		for i := range f.Insts {
			in := &f.Insts[i]
			if !in.Category.IsInvoke() {
				continue
			}
			callee := names(in.A)
			if callee == "" {
				continue
			}
			g.Edges = append(g.Edges, lattice.Edge{
				Caller: f.Name,
				Callee: callee,
			})
		}
	}
	g.Dedup()
	return g
}
