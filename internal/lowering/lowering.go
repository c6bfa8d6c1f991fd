// Package lowering is the bridge between the IR and the COFF builder: it
// walks a compilation unit's data table, byte-code, and symbol table in
// turn, driving internal/encoder and internal/coff to produce one complete
// object file. Nothing here decides instruction encodings itself — that is
// internal/encoder's job — lowering only resolves IR-local references
// (register operands, symbol indices) into the concrete values the encoder
// and the COFF builder need.
package lowering

import (
	"fmt"
	"strings"

	"github.com/sammosampson/go-coff/internal/coff"
	"github.com/sammosampson/go-coff/internal/diagnostics"
	"github.com/sammosampson/go-coff/internal/ir"
)

// Options configures a Lower invocation.
type Options struct {
	// Timestamp, if non-nil, is forwarded to coff.New; see coff.Options.
	Timestamp func() uint32

	// Diagnostics, if non-nil, records phase transitions and notable
	// events as lowering progresses. A nil value is safe to use.
	Diagnostics *diagnostics.Recorder
}

func (o Options) recorder() *diagnostics.Recorder {
	if o.Diagnostics != nil {
		return o.Diagnostics
	}
	return diagnostics.New("")
}

// Lower translates one compilation unit into a complete *coff.Coff and
// returns the object file name it should be written under.
func Lower(unit *ir.IntermediateRepresentation, opts Options) (*coff.Coff, string, error) {
	rec := opts.recorder()
	c := coff.New(coff.Options{Timestamp: opts.Timestamp})

	rec.SetPhase("emitting .data")
	for _, item := range unit.Data {
		switch d := item.(type) {
		case ir.String:
			c.AppendDataString(d.Value)
		default:
			return nil, "", fmt.Errorf("lowering %s: unsupported data item %T", unit.Filename, item)
		}
	}
	rec.Info(fmt.Sprintf("appended %d data item(s)", len(unit.Data)))

	rec.SetPhase("emitting .text")
	total := uint32(len(unit.Symbols))
	for i, instr := range unit.ByteCode {
		if err := emitInstruction(c, total, instr); err != nil {
			return nil, "", fmt.Errorf("lowering %s: instruction %d: %w", unit.Filename, i, err)
		}
	}
	rec.Info(fmt.Sprintf("emitted %d instruction(s), %d text byte(s)", len(unit.ByteCode), c.TextLen()))

	rec.SetPhase("emitting symbol table")
	if err := emitSymbolTable(c, unit); err != nil {
		return nil, "", fmt.Errorf("lowering %s: %w", unit.Filename, err)
	}
	rec.Info(fmt.Sprintf("appended %d symbol(s)", c.SymbolCount()))

	if rec.HasErrors() {
		return nil, "", fmt.Errorf("lowering %s: aborted with recorded errors", unit.Filename)
	}

	return c, outputFileName(unit), nil
}

// outputFileName derives the object file name for a lowered compilation
// unit: its source file name with any ".hep" suffix stripped, followed by
// a dash and its top-level symbol, followed by ".obj".
func outputFileName(unit *ir.IntermediateRepresentation) string {
	stripped := strings.TrimSuffix(unit.Filename, ".hep")
	return fmt.Sprintf("%s-%s.obj", stripped, unit.TopLevelSymbol)
}
