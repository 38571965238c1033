package dalvik

// lo and hi split a 32-bit value into the two code units that hold it.
func lo(v int32) uint16 { return uint16(uint32(v)) }
func hi(v int32) uint16 { return uint16(uint32(v) >> 16) }

// fakePool resolves method and type indices from maps.
type fakePool struct {
	methods map[uint32]TypeRef
	elems   map[uint32]TypeRef
}

func (p fakePool) MethodReturnType(idx uint32) TypeRef { return p.methods[idx] }
func (p fakePool) ArrayElementType(idx uint32) TypeRef { return p.elems[idx] }
