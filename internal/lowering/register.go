package lowering

import (
	"fmt"

	"github.com/sammosampson/go-coff/internal/ir"
	"github.com/sammosampson/go-coff/internal/registers"
)

// resolveRegister maps an IR register operand onto its AMD64 register
// code under the Microsoft x64 calling convention: argument 0..3 map to
// CX, DX, R8, R9; only return-argument 0 (AX) is encoded. Both limits
// are reported as errors rather than panics — a malformed IR should fail
// the lowering pass, not crash it.
func resolveRegister(r ir.Register) (registers.Code, error) {
	switch v := r.(type) {
	case ir.CallArgRegister:
		switch v.Index {
		case 0:
			return registers.CX, nil
		case 1:
			return registers.DX, nil
		case 2:
			return registers.R8, nil
		case 3:
			return registers.R9, nil
		default:
			return 0, fmt.Errorf("call argument register index %d is not supported; the Microsoft x64 convention passes only 4 arguments in registers", v.Index)
		}
	case ir.CallReturnArgRegister:
		if v.Index != 0 {
			return 0, fmt.Errorf("call return register index %d is not supported; only the primary return value (AX) is encoded", v.Index)
		}
		return registers.AX, nil
	case ir.StackPointerRegister:
		return registers.SP, nil
	case ir.BasePointerRegister:
		return registers.BP, nil
	default:
		return 0, fmt.Errorf("unknown register operand %T", r)
	}
}
