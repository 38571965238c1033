package dalvik

// MethodRecord is one line in methods.jsonl.
type MethodRecord struct {
	Name      string `json:"name"`
	CodeUnits int    `json:"code_units"`
	Insts     int    `json:"insts"`
	Blocks    int    `json:"blocks,omitempty"`
	Invokes   int    `json:"invokes,omitempty"`
}

// InstRecord is one line in insts.jsonl.
type InstRecord struct {
	Method     string           `json:"method"`
	Offset     uint32           `json:"offset"`
	End        uint32           `json:"end"`
	Opcode     string           `json:"opcode"`
	Category   string           `json:"category"`
	A          uint32           `json:"a,omitempty"`
	B          uint32           `json:"b,omitempty"`
	C          uint32           `json:"c,omitempty"`
	Long       uint64           `json:"long,omitempty"`
	Args       []uint16         `json:"args,omitempty"`
	Switch     map[int32]int32  `json:"switch,omitempty"`
	Fill       *FillArrayRecord `json:"fill,omitempty"`
	ResultType string           `json:"result_type,omitempty"`
	Cast       *CastRecord      `json:"cast,omitempty"`
}

// FillArrayRecord is the JSON form of a FillArrayPayload.
type FillArrayRecord struct {
	Width  uint32   `json:"width"`
	Values []uint64 `json:"values"`
}

// CastRecord is the JSON form of an ImplicitCast.
type CastRecord struct {
	Type uint32   `json:"type"`
	Regs []uint16 `json:"regs"`
}

// Records converts a method's instructions into JSONL records.
func Records(method string, insts []Instruction) []InstRecord {
	recs := make([]InstRecord, len(insts))
	for i := range insts {
		in := &insts[i]
		r := InstRecord{
			Method:     method,
			Offset:     in.Start,
			End:        in.End,
			Opcode:     mnemonic(in),
			Category:   in.Category.String(),
			A:          in.A,
			B:          in.B,
			C:          in.C,
			Long:       in.Long,
			Args:       in.Args,
			ResultType: string(in.Notes.ResultType),
		}
		if in.Switch != nil {
			r.Switch = in.Switch.Map()
		}
		if in.Fill != nil {
			r.Fill = &FillArrayRecord{Width: in.Fill.Width, Values: in.Fill.Values}
		}
		if c := in.Notes.Cast; c != nil {
			r.Cast = &CastRecord{Type: c.Type, Regs: c.Regs}
		}
		recs[i] = r
	}
	return recs
}
