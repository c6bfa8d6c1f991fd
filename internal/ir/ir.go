// Package ir is the compilation-unit model the lowering pass consumes: one
// IntermediateRepresentation per invocation, owning an ordered byte-code
// instruction stream, an ordered symbol list, and an ordered data-item
// list. Indices into the symbol and data lists are stable: they are the
// 0-based position at append time and never change, matching spec.md §3's
// invariant.
package ir

// CompilationUnitId is an opaque tag, unique per compilation unit.
type CompilationUnitId uint64

// IntermediateRepresentation is one compilation unit: the byte-code stream
// the lowering pass walks, plus the symbol and data tables it refers into.
type IntermediateRepresentation struct {
	ID              CompilationUnitId
	Filename        string
	TopLevelSymbol  string
	ByteCode        []Instruction
	Symbols         []Symbol
	Data            []DataItem
}

// New creates an empty compilation unit. Byte code, symbols, and data are
// appended exclusively by the constructing driver; the lowering pass
// consumes the unit exactly once.
func New(id CompilationUnitId, filename, topLevelSymbol string) *IntermediateRepresentation {
	return &IntermediateRepresentation{
		ID:             id,
		Filename:       filename,
		TopLevelSymbol: topLevelSymbol,
	}
}

// AddInstruction appends instr to the byte-code stream.
func (u *IntermediateRepresentation) AddInstruction(instr Instruction) {
	u.ByteCode = append(u.ByteCode, instr)
}

// AddSymbol appends symbol and returns its stable index within this unit.
func (u *IntermediateRepresentation) AddSymbol(symbol Symbol) uint32 {
	u.Symbols = append(u.Symbols, symbol)
	return uint32(len(u.Symbols) - 1)
}

// AddData appends item and returns its stable index within this unit.
func (u *IntermediateRepresentation) AddData(item DataItem) uint32 {
	u.Data = append(u.Data, item)
	return uint32(len(u.Data) - 1)
}
