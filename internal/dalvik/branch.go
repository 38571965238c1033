package dalvik

// BranchInfo describes the control transfer of a decoded instruction.
type BranchInfo struct {
	Targets []uint32 // absolute code-unit targets, in case order for switches
	Cond    bool     // true if execution may fall through
	IsTerm  bool     // true for return-* and throw
}

// OffsetIndex maps instruction start offsets to indices in insts.
func OffsetIndex(insts []Instruction) map[uint32]int {
	m := make(map[uint32]int, len(insts))
	for i := range insts {
		m[insts[i].Start] = i
	}
	return m
}

// DecodeBranch returns the control transfer of insts[i], or nil if it
// falls through unconditionally. Switch targets are resolved through the
// payload the switch references; a missing payload yields no targets.
func DecodeBranch(insts []Instruction, i int, byOffset map[uint32]int) *BranchInfo {
	in := &insts[i]
	switch in.Category {
	case Return, Throw:
		return &BranchInfo{IsTerm: true}
	case Goto:
		return &BranchInfo{Targets: []uint32{in.A}}
	case If:
		return &BranchInfo{Targets: []uint32{in.C}, Cond: true}
	case IfZ:
		return &BranchInfo{Targets: []uint32{in.B}, Cond: true}
	case Switch:
		bi := &BranchInfo{Cond: true}
		idx, ok := byOffset[in.B]
		if !ok || insts[idx].Switch == nil {
			return bi
		}
		for _, rel := range insts[idx].Switch.Targets {
			bi.Targets = append(bi.Targets, uint32(int64(in.Start)+int64(rel)))
		}
		return bi
	}
	return nil
}

// IsBranchTerminator returns true if the instruction ends a basic block.
func IsBranchTerminator(insts []Instruction, i int, byOffset map[uint32]int) bool {
	return DecodeBranch(insts, i, byOffset) != nil
}
