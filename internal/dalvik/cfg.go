package dalvik

import "sort"

// BasicBlock represents a sequence of instructions with a single entry point.
type BasicBlock struct {
	ID        int
	Start     int    // index into FuncCFG.Insts (inclusive)
	End       int    // index into FuncCFG.Insts (exclusive)
	Succs     []Succ // successor edges
	IsEntry   bool
	IsHandler bool // starts at an exception handler entry
	IsTerm    bool // ends with return or throw
	IsPayload bool // holds only inline data tables
}

// Succ describes a control-flow successor edge.
type Succ struct {
	BlockID int
	Cond    string // "" = unconditional, "T" = taken/case, "F" = fallthrough
}

// FuncCFG is a per-method control flow graph.
type FuncCFG struct {
	Name   string
	Blocks []BasicBlock
	Insts  []Instruction
}

// BuildCFG constructs a control flow graph from a method's instructions.
// The algorithm:
//  1. Find block leaders: index 0, branch targets, instructions after
//     terminators, and exception handler entries.
//  2. Partition instructions into blocks by leaders.
//  3. Compute successor edges from each block's last instruction.
//
// Exceptional edges are not modeled; handler blocks appear as extra roots.
func BuildCFG(name string, insts []Instruction, catchAddrs map[uint32]bool) FuncCFG {
	if len(insts) == 0 {
		return FuncCFG{Name: name, Insts: insts}
	}
	byOffset := OffsetIndex(insts)

	// Pass 1: Identify block leaders.
	leaders := map[int]bool{0: true}
	branches := make([]*BranchInfo, len(insts))
	for i := range insts {
		if catchAddrs[insts[i].Start] {
			leaders[i] = true
		}
		bi := DecodeBranch(insts, i, byOffset)
		if bi == nil {
			continue
		}
		branches[i] = bi
		if i+1 < len(insts) {
			leaders[i+1] = true
		}
		for _, t := range bi.Targets {
			if idx, ok := byOffset[t]; ok {
				leaders[idx] = true
			}
		}
	}

	sorted := make([]int, 0, len(leaders))
	for idx := range leaders {
		sorted = append(sorted, idx)
	}
	sort.Ints(sorted)

	// Pass 2: Partition into blocks.
	blocks := make([]BasicBlock, len(sorted))
	leaderToBlock := make(map[int]int, len(sorted))
	for i, start := range sorted {
		end := len(insts)
		if i+1 < len(sorted) {
			end = sorted[i+1]
		}
		payload := true
		for j := start; j < end; j++ {
			if !insts[j].IsPayload() {
				payload = false
				break
			}
		}
		blocks[i] = BasicBlock{
			ID:        i,
			Start:     start,
			End:       end,
			IsEntry:   start == 0,
			IsHandler: catchAddrs[insts[start].Start],
			IsPayload: payload,
		}
		leaderToBlock[start] = i
	}

	// Pass 3: Compute successors.
	for i := range blocks {
		blk := &blocks[i]
		if blk.IsPayload {
			continue
		}
		last := blk.End - 1
		bi := branches[last]

		if bi == nil {
			if next, ok := leaderToBlock[blk.End]; ok {
				blk.Succs = append(blk.Succs, Succ{BlockID: next})
			}
			continue
		}
		if bi.IsTerm {
			blk.IsTerm = true
			continue
		}

		cond := ""
		if bi.Cond {
			cond = "T"
		}
		seen := make(map[int]bool)
		for _, t := range bi.Targets {
			idx, ok := byOffset[t]
			if !ok {
				continue
			}
			bid := leaderToBlock[idx]
			if seen[bid] {
				continue
			}
			seen[bid] = true
			blk.Succs = append(blk.Succs, Succ{BlockID: bid, Cond: cond})
		}
		if bi.Cond {
			if next, ok := leaderToBlock[blk.End]; ok {
				blk.Succs = append(blk.Succs, Succ{BlockID: next, Cond: "F"})
			}
		}
	}

	return FuncCFG{
		Name:   name,
		Blocks: blocks,
		Insts:  insts,
	}
}
