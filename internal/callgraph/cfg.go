package callgraph

import (
	"fmt"

	"github.com/zboralski/lattice"
	"undex/internal/dalvik"
)

// BuildCFG constructs a lattice.CFGGraph from decoded methods.
// Each FuncInfo is converted to a lattice.FuncCFG via dalvik.BuildCFG
// then mapped to lattice types.
func BuildCFG(funcs []FuncInfo, names MethodNamer) *lattice.CFGGraph {
	cg := &lattice.CFGGraph{}
	for _, f := range funcs {
		dcfg := dalvik.BuildCFG(f.Name, f.Insts, f.Catch)
		cg.Funcs = append(cg.Funcs, convertFuncCFG(&dcfg, names))
	}
	return cg
}

// BuildFuncCFG builds a single-method lattice.FuncCFG.
// Returns the FuncCFG and the number of basic blocks (for filtering trivial methods).
func BuildFuncCFG(f FuncInfo, names MethodNamer) (*lattice.FuncCFG, int) {
	dcfg := dalvik.BuildCFG(f.Name, f.Insts, f.Catch)
	return convertFuncCFG(&dcfg, names), len(dcfg.Blocks)
}

// convertFuncCFG maps a dalvik.FuncCFG to a lattice.FuncCFG.
// Payload blocks are dropped; block IDs are kept so successor references
// stay valid.
func convertFuncCFG(dcfg *dalvik.FuncCFG, names MethodNamer) *lattice.FuncCFG {
	lcfg := &lattice.FuncCFG{Name: dcfg.Name}
	for _, db := range dcfg.Blocks {
		if db.IsPayload {
			continue
		}
		lb := &lattice.BasicBlock{
			ID:    db.ID,
			Start: db.Start,
			End:   db.End,
			Term:  db.IsTerm,
		}

		for _, ds := range db.Succs {
			lb.Succs = append(lb.Succs, lattice.Successor{
				BlockID: ds.BlockID,
				Cond:    ds.Cond,
			})
		}

		for idx := db.Start; idx < db.End && idx < len(dcfg.Insts); idx++ {
			in := &dcfg.Insts[idx]
			if !in.Category.IsInvoke() {
				continue
			}
			callee := ""
			if names != nil {
				callee = names(in.A)
			}
			if callee == "" {
				callee = fmt.Sprintf("method@%d", in.A)
			}
			lb.Calls = append(lb.Calls, lattice.CallSite{
				Offset: idx,
				Callee: callee,
			})
		}

		lcfg.Blocks = append(lcfg.Blocks, lb)
	}
	return lcfg
}
