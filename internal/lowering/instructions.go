package lowering

import (
	"fmt"

	"github.com/sammosampson/go-coff/internal/coff"
	"github.com/sammosampson/go-coff/internal/encoder"
	"github.com/sammosampson/go-coff/internal/ir"
	"github.com/sammosampson/go-coff/internal/registers"
)

// emitInstruction lowers a single IR instruction onto c's .text section,
// resolving its register operands and, where it names one, translating its
// IR-local symbol index to a final COFF symbol table index via
// symbolIndexFor.
func emitInstruction(c *coff.Coff, totalIRSymbols uint32, instr ir.Instruction) error {
	switch v := instr.(type) {
	case ir.CallToSymbol:
		encoder.CallRelocatableAddr(c, coff.RelocatableValue{
			SymbolIndex: symbolIndexFor(totalIRSymbols, v.SymbolIndex),
		})

	case ir.PushReg64:
		reg, err := resolveRegister(v.Register)
		if err != nil {
			return err
		}
		encoder.PushReg64(c, reg)

	case ir.PopReg64:
		reg, err := resolveRegister(v.Register)
		if err != nil {
			return err
		}
		encoder.PopReg64(c, reg)

	case ir.AddValueToReg8:
		reg, err := resolveRegister(v.To)
		if err != nil {
			return err
		}
		encoder.AddValueToReg8(c, v.Value, reg)

	case ir.SubValueFromReg8:
		reg, err := resolveRegister(v.From)
		if err != nil {
			return err
		}
		encoder.SubValueFromReg8(c, v.Value, reg)

	case ir.MoveValueToReg32:
		reg, err := resolveRegister(v.To)
		if err != nil {
			return err
		}
		encoder.MoveDwordValueToReg(c, v.Value, reg)

	case ir.MoveSymbolToReg32:
		reg, err := resolveRegister(v.To)
		if err != nil {
			return err
		}
		encoder.MoveDwordRelocatableValueToReg(c, coff.RelocatableValue{
			SymbolIndex: symbolIndexFor(totalIRSymbols, v.SymbolIndex),
		}, reg)

	case ir.MoveRegToReg64:
		from, err := resolveRegister(v.From)
		if err != nil {
			return err
		}
		to, err := resolveRegister(v.To)
		if err != nil {
			return err
		}
		encoder.MoveRegToReg64(c, from, to)

	case ir.MoveValueToRegPlusOffset32:
		reg, err := resolveRegister(v.To)
		if err != nil {
			return err
		}
		encoder.MoveValueToRegPlusOffset32(c, v.Value, reg, v.Offset)

	case ir.MoveRegToRegPlusOffset32:
		from, err := resolveRegister(v.From)
		if err != nil {
			return err
		}
		to, err := resolveRegister(v.To)
		if err != nil {
			return err
		}
		encoder.MoveRegToRegPlusOffset32(c, from, to, v.Offset)

	case ir.MoveRegToRegPlusOffset64:
		from, err := resolveRegister(v.From)
		if err != nil {
			return err
		}
		to, err := resolveRegister(v.To)
		if err != nil {
			return err
		}
		encoder.MoveRegToRegPlusOffset64(c, from, to, v.Offset)

	case ir.MoveRegPlusOffsetToReg32:
		from, err := resolveRegister(v.From)
		if err != nil {
			return err
		}
		to, err := resolveRegister(v.To)
		if err != nil {
			return err
		}
		encoder.MoveRegPlusOffsetToReg32(c, from, v.Offset, to)

	case ir.MoveRegPlusOffsetToReg64:
		from, err := resolveRegister(v.From)
		if err != nil {
			return err
		}
		to, err := resolveRegister(v.To)
		if err != nil {
			return err
		}
		encoder.MoveRegPlusOffsetToReg64(c, from, v.Offset, to)

	case ir.LoadDataSectionAddressToReg64:
		to, err := resolveRegister(v.To)
		if err != nil {
			return err
		}
		encoder.LeaRIPRelativeToReg(c, registers.IP, coff.RelocatableValue{
			SymbolIndex:       dataSectionSymbolIndex,
			InitialValueToUse: v.DataSectionOffset,
		}, to)

	case ir.ZeroReg64:
		reg, err := resolveRegister(v.Register)
		if err != nil {
			return err
		}
		encoder.XorReg64IntoReg(c, reg)

	case ir.Return:
		encoder.Ret(c)

	default:
		return fmt.Errorf("unsupported instruction %T", instr)
	}

	return nil
}
