package lowering

import (
	"fmt"

	"github.com/sammosampson/go-coff/internal/coff"
	"github.com/sammosampson/go-coff/internal/ir"
)

// preambleSymbolCount is the number of fixed symbol-table entries every
// object file carries before any user symbol: the `.file` debug symbol and
// its name-auxiliary record, the `.data` section-definition symbol and its
// auxiliary record, and the `.text` section-definition symbol and its
// auxiliary record.
const preambleSymbolCount uint32 = 6

// dataSectionSymbolIndex is the fixed symbol table index of the `.data`
// section-definition symbol: position 2 in the preamble (`.file`=0,
// its aux=1, `.data`=2). LoadDataSectionAddressToReg64 always relocates
// against this fixed index rather than against symbolIndexFor, because a
// data item's address is always relative to the one `.data` section
// symbol, never to a user-declared symbol.
const dataSectionSymbolIndex uint32 = 2

// symbolIndexFor converts an IR-local symbol index (0-based, in the order
// a compilation unit declared its symbols) into its final COFF symbol
// table index. User symbols are appended after the fixed preamble and the
// `.absolut` symbol (index 6), in reverse declaration order, so the first
// symbol a unit declares ends up at the highest index and the last ends up
// immediately after `.absolut`.
func symbolIndexFor(totalIRSymbols, irSymbolIndex uint32) uint32 {
	return (preambleSymbolCount + totalIRSymbols) - irSymbolIndex
}

// emitSymbolTable appends the fixed preamble, then every user symbol in
// reverse declaration order, translating each ir.Symbol variant to the
// coff.Coff method that serialises it.
func emitSymbolTable(c *coff.Coff, unit *ir.IntermediateRepresentation) error {
	c.AddDebugFileNameSymbols(unit.Filename)
	c.AddDataSectionHeaderSymbols()
	c.AddTextSectionHeaderSymbols()
	c.AddAbsoluteStaticSymbol(".absolut", 0)

	for i := len(unit.Symbols) - 1; i >= 0; i-- {
		if err := emitSymbol(c, unit.Symbols[i]); err != nil {
			return err
		}
	}
	return nil
}

func emitSymbol(c *coff.Coff, sym ir.Symbol) error {
	switch v := sym.(type) {
	case ir.DataSectionItem:
		c.AddDataSectionStaticSymbol(v.Name, v.Value)
	case ir.ForeignExternal:
		c.AddForeignExternalSymbol(v.Name)
	case ir.AbsoluteExternal:
		c.AddAbsoluteExternalSymbol(v.Name, v.Value)
	case ir.ExternalCodeLabel:
		c.AddTextSectionExternalSymbol(v.Name, v.Position)
	default:
		return fmt.Errorf("unsupported symbol %T", sym)
	}
	return nil
}
