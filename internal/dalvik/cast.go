package dalvik

import "sort"

// Opcodes of the two branches that test an instance-of result.
const (
	opIfEqz uint8 = 0x38
	opIfNez uint8 = 0x39
)

// AnnotateImplicitCasts marks if-eqz/if-nez instructions that test the
// result of the immediately preceding instance-of. The checked register,
// plus the source of a move into it directly before the instance-of, is
// known to hold the checked type on one side of the branch.
func AnnotateImplicitCasts(insts []Instruction) {
	for i := range insts {
		if op := insts[i].Opcode; op != opIfEqz && op != opIfNez {
			continue
		}
		if i == 0 || insts[i-1].Category != InstanceOf {
			continue
		}
		prev := &insts[i-1]
		regs := map[uint16]bool{prev.Rb(): true}
		if i > 1 && insts[i-2].Category == Move && insts[i-2].Ra() == prev.Rb() {
			regs[insts[i-2].Rb()] = true
		}
		// The boolean result is never a checked value, even when it
		// aliases one of the registers above.
		delete(regs, prev.Ra())
		if len(regs) == 0 {
			continue
		}

		sorted := make([]uint16, 0, len(regs))
		for r := range regs {
			sorted = append(sorted, r)
		}
		sort.Slice(sorted, func(a, b int) bool { return sorted[a] < sorted[b] })
		insts[i].Notes.Cast = &ImplicitCast{Type: prev.C, Regs: sorted}
	}
}
