package ir

// Instruction is one IR byte-code operation. This is the full, closed set
// spec.md §3 enumerates — there are no other variants, and the lowering
// pass's switch over them is expected to be exhaustive.
type Instruction interface {
	isInstruction()
}

// CallToSymbol is a near relative CALL to a symbol; the displacement is
// emitted as a REL32 relocation against SymbolIndex.
type CallToSymbol struct{ SymbolIndex uint32 }

func (CallToSymbol) isInstruction() {}

// PushReg64 pushes a 64-bit register onto the stack.
type PushReg64 struct{ Register Register }

func (PushReg64) isInstruction() {}

// PopReg64 pops a 64-bit register off the stack.
type PopReg64 struct{ Register Register }

func (PopReg64) isInstruction() {}

// AddValueToReg8 adds an 8-bit immediate to a 64-bit register.
type AddValueToReg8 struct {
	Value uint8
	To    Register
}

func (AddValueToReg8) isInstruction() {}

// SubValueFromReg8 subtracts an 8-bit immediate from a 64-bit register.
type SubValueFromReg8 struct {
	Value uint8
	From  Register
}

func (SubValueFromReg8) isInstruction() {}

// MoveValueToReg32 loads a 32-bit immediate into a register.
type MoveValueToReg32 struct {
	Value uint32
	To    Register
}

func (MoveValueToReg32) isInstruction() {}

// MoveSymbolToReg32 loads a 32-bit immediate into a register, where the
// immediate is an ADDR32 relocation against SymbolIndex.
type MoveSymbolToReg32 struct {
	SymbolIndex uint32
	To          Register
}

func (MoveSymbolToReg32) isInstruction() {}

// MoveRegToReg64 copies one 64-bit register into another.
type MoveRegToReg64 struct{ From, To Register }

func (MoveRegToReg64) isInstruction() {}

// MoveValueToRegPlusOffset32 stores a 32-bit immediate at [r+offset].
//
// The encoder always emits the SIB byte 0x24, which pins this encoding to
// [RSP+disp8]-style addressing regardless of the register named here —
// see internal/encoder's doc comment on this instruction.
type MoveValueToRegPlusOffset32 struct {
	Value  uint32
	To     Register
	Offset uint8
}

func (MoveValueToRegPlusOffset32) isInstruction() {}

// MoveRegToRegPlusOffset32 stores a register at [base+offset] (32-bit form,
// no REX.W).
type MoveRegToRegPlusOffset32 struct {
	From, To Register
	Offset   uint8
}

func (MoveRegToRegPlusOffset32) isInstruction() {}

// MoveRegToRegPlusOffset64 stores a register at [base+offset] (64-bit form,
// REX.W).
type MoveRegToRegPlusOffset64 struct {
	From, To Register
	Offset   uint8
}

func (MoveRegToRegPlusOffset64) isInstruction() {}

// MoveRegPlusOffsetToReg32 loads [from+offset] into a register (32-bit
// form).
type MoveRegPlusOffsetToReg32 struct {
	From   Register
	Offset uint8
	To     Register
}

func (MoveRegPlusOffsetToReg32) isInstruction() {}

// MoveRegPlusOffsetToReg64 loads [from+offset] into a register (64-bit
// form, REX.W). Unlike the 32-bit form, this does not apply REX.R for an
// extended destination register — see internal/encoder's TODO on this
// instruction; it is a preserved asymmetry, not a bug to silently fix.
type MoveRegPlusOffsetToReg64 struct {
	From   Register
	Offset uint8
	To     Register
}

func (MoveRegPlusOffsetToReg64) isInstruction() {}

// LoadDataSectionAddressToReg64 is a RIP-relative LEA of a .data section
// item's address into a register, emitted as a REL32 relocation against
// the fixed .data section symbol.
type LoadDataSectionAddressToReg64 struct {
	DataSectionOffset uint32
	To                Register
}

func (LoadDataSectionAddressToReg64) isInstruction() {}

// ZeroReg64 zeroes a 64-bit register by XOR-ing it against itself.
type ZeroReg64 struct{ Register Register }

func (ZeroReg64) isInstruction() {}

// Return is a near return.
type Return struct{}

func (Return) isInstruction() {}
