package dalvik

import "errors"

// ErrCatchAtEntry is the panic value of AnnotateResultTypes when the catch
// address set contains offset 0.
var ErrCatchAtEntry = errors.New("dalvik: catch address set contains offset 0")

// Pool resolves constant-pool references needed by the annotators.
type Pool interface {
	// MethodReturnType returns the return type descriptor of method idx.
	MethodReturnType(idx uint32) TypeRef
	// ArrayElementType returns the element type of array type idx.
	ArrayElementType(idx uint32) TypeRef
}

// AnnotateResultTypes records, for every move-result-class instruction, the
// type produced by the instruction immediately before it: the return type of
// a non-void invoke, the element type of a filled-new-array, or Throwable at
// an exception handler entry. Only adjacent pairs are considered.
//
// catchAddrs must not contain offset 0; if it does, AnnotateResultTypes
// panics with ErrCatchAtEntry before touching insts.
func AnnotateResultTypes(insts []Instruction, catchAddrs map[uint32]bool, pool Pool) {
	if catchAddrs[0] {
		panic(ErrCatchAtEntry)
	}
	for i := 1; i < len(insts); i++ {
		prev, next := &insts[i-1], &insts[i]
		if next.Category != MoveResult {
			continue
		}
		next.Notes.ResultType = resultType(prev, next, catchAddrs, pool)
	}
}

func resultType(prev, next *Instruction, catchAddrs map[uint32]bool, pool Pool) TypeRef {
	if prev.Category.IsInvoke() {
		if rt := pool.MethodReturnType(prev.A); rt != TypeVoid {
			return rt
		}
	} else if prev.Category == FilledNewArray {
		return pool.ArrayElementType(prev.A)
	}
	if catchAddrs[next.Start] {
		return TypeThrowable
	}
	return ""
}
