package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sammosampson/go-coff/internal/diagnostics"
	"github.com/sammosampson/go-coff/internal/ir"
	"github.com/sammosampson/go-coff/internal/lowering"
)

// stdOutputHandle is the Windows API STD_OUTPUT_HANDLE constant (-11),
// reinterpreted as the raw 32-bit pattern the linker stamps into the
// absolute symbol.
const stdOutputHandle uint32 = 0xFFFFFFF5

var helloCmd = &cobra.Command{
	Use:     "hello",
	GroupID: "demo",
	Short:   "Emit the two-unit hello-world program (main, print)",
	Long: `Hello emits two object files from a hand-built IR: a "print" unit that
writes a fixed message to STD_OUTPUT_HANDLE via GetStdHandle/WriteFile, and
a "main" unit that calls it. No front end is involved — the IR below is
built directly, the way a front end would have built it.`,
	RunE: runHello,
}

func runHello(cmd *cobra.Command, args []string) error {
	units := []*ir.IntermediateRepresentation{
		buildPrintUnit(),
		buildMainUnit(),
	}

	for _, unit := range units {
		rec := diagnostics.New(unit.Filename)

		opts := lowering.Options{Diagnostics: rec}
		if useFixed {
			opts.Timestamp = func() uint32 { return fixedTime }
		}

		obj, name, err := lowering.Lower(unit, opts)
		if err != nil {
			return fmt.Errorf("lowering %s: %w", unit.Filename, err)
		}

		if verbose {
			for _, entry := range rec.Entries() {
				cmd.Println(entry.String())
			}
		}

		outPath := filepath.Join(outDir, name)
		if err := obj.WriteToFile(outPath); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		cmd.Println("wrote", outPath)
	}

	return nil
}

// buildPrintUnit constructs the "print" compilation unit: it resolves
// STD_OUTPUT_HANDLE, writes a fixed message to it via WriteFile, and
// returns.
func buildPrintUnit() *ir.IntermediateRepresentation {
	const message = "Hello, world!\n"

	unit := ir.New(1, "print.hep", "print")

	dataOffset := unit.AddData(ir.String{Value: message})

	getStdHandle := unit.AddSymbol(ir.ForeignExternal{Name: "GetStdHandle"})
	writeFile := unit.AddSymbol(ir.ForeignExternal{Name: "WriteFile"})
	stdOutHandleSym := unit.AddSymbol(ir.AbsoluteExternal{Name: "STD_OUTPUT_HANDLE", Value: stdOutputHandle})
	unit.AddSymbol(ir.DataSectionItem{Name: "message", Value: dataOffset})
	unit.AddSymbol(ir.ExternalCodeLabel{Name: "print", Position: 0})

	unit.AddInstruction(ir.PushReg64{Register: ir.BasePointer()})
	unit.AddInstruction(ir.MoveRegToReg64{From: ir.StackPointer(), To: ir.BasePointer()})
	unit.AddInstruction(ir.SubValueFromReg8{Value: 0x40, From: ir.StackPointer()})

	unit.AddInstruction(ir.MoveSymbolToReg32{SymbolIndex: stdOutHandleSym, To: ir.CallArg(0)})
	unit.AddInstruction(ir.CallToSymbol{SymbolIndex: getStdHandle})
	unit.AddInstruction(ir.MoveRegToRegPlusOffset64{From: ir.CallReturnArg(0), To: ir.BasePointer(), Offset: 0x30})

	unit.AddInstruction(ir.MoveRegPlusOffsetToReg64{From: ir.BasePointer(), Offset: 0x30, To: ir.CallArg(0)})
	unit.AddInstruction(ir.LoadDataSectionAddressToReg64{DataSectionOffset: dataOffset, To: ir.CallArg(1)})
	unit.AddInstruction(ir.MoveValueToReg32{Value: uint32(len(message)), To: ir.CallArg(2)})
	unit.AddInstruction(ir.MoveValueToReg32{Value: 0, To: ir.CallArg(3)})
	unit.AddInstruction(ir.CallToSymbol{SymbolIndex: writeFile})

	unit.AddInstruction(ir.AddValueToReg8{Value: 0x40, To: ir.StackPointer()})
	unit.AddInstruction(ir.PopReg64{Register: ir.BasePointer()})
	unit.AddInstruction(ir.Return{})

	return unit
}

// buildMainUnit constructs the "main" compilation unit: it calls print
// and returns 0.
func buildMainUnit() *ir.IntermediateRepresentation {
	unit := ir.New(2, "main.hep", "main")

	printSym := unit.AddSymbol(ir.ForeignExternal{Name: "print"})
	unit.AddSymbol(ir.ExternalCodeLabel{Name: "main", Position: 0})

	unit.AddInstruction(ir.PushReg64{Register: ir.BasePointer()})
	unit.AddInstruction(ir.MoveRegToReg64{From: ir.StackPointer(), To: ir.BasePointer()})
	unit.AddInstruction(ir.SubValueFromReg8{Value: 0x20, From: ir.StackPointer()})

	unit.AddInstruction(ir.CallToSymbol{SymbolIndex: printSym})
	unit.AddInstruction(ir.MoveValueToReg32{Value: 0, To: ir.CallReturnArg(0)})

	unit.AddInstruction(ir.AddValueToReg8{Value: 0x20, To: ir.StackPointer()})
	unit.AddInstruction(ir.PopReg64{Register: ir.BasePointer()})
	unit.AddInstruction(ir.Return{})

	return unit
}
