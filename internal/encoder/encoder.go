// Package encoder is the AMD64 instruction encoder: one emission function
// per ByteCodeInstruction shape, each a pure appender onto a coff.Coff's
// .text section. Every multi-byte immediate is little-endian; REX prefixes,
// ModR/M bytes, and relocation entries are emitted exactly as spec.md §4.1
// describes — this package does not decide addressing modes or choose
// registers, it only encodes the ones it is given.
package encoder

import (
	"github.com/sammosampson/go-coff/internal/coff"
	"github.com/sammosampson/go-coff/internal/coffconst"
	"github.com/sammosampson/go-coff/internal/registers"
)

// ModR/M mod field values.
const (
	modRIPRelative      byte = 0b00 // no displacement; used for RIP-relative LEA
	modRegisterIndirect byte = 0b01 // [reg+disp8]
	modRegisterDirect   byte = 0b11 // reg, reg
)

// REX prefix bytes.
const (
	rexW byte = 0x48 // 64-bit operand size
	rexR byte = 0x44 // extends ModR/M.reg
	rexB byte = 0x41 // extends ModR/M.rm
)

// Opcode bytes.
const (
	opAdd        byte = 0x83
	opLea        byte = 0x8D
	opXor        byte = 0x31
	opPush       byte = 0x50
	opPop        byte = 0x58
	opMovRToRM   byte = 0x89
	opMovRMToR   byte = 0x8B
	opMovImmToR  byte = 0xB8
	opMovImmToRM byte = 0xC7
	opCall       byte = 0xE8
	opRet        byte = 0xC3
)

// ModR/M reg-field values used by opcode 0x83's secondary opcode extension.
const (
	secondaryOpAdd byte = 0x0
	secondaryOpSub byte = 0x5
)

func modRM(mod, reg, rm byte) byte {
	return mod<<6 | reg<<3 | rm
}

// rexWithB returns REX.W, adding REX.B if reg is one of the extended
// registers (R8, R9) that need it to select as a ModR/M rm field.
func rexWithB(reg registers.Code) byte {
	if reg.HasHighBit() {
		return rexW | rexB
	}
	return rexW
}

// PushReg64 appends a PUSH of a 64-bit register: 0x50+rd. No REX prefix is
// ever emitted, so this cannot address an extended register (R8-R15);
// callers must stick to the low eight.
func PushReg64(c *coff.Coff, reg registers.Code) {
	c.AppendTextByte(opPush + byte(reg))
}

// PopReg64 appends a POP of a 64-bit register: 0x58+rd. No REX prefix is
// ever emitted, so this cannot address an extended register (R8-R15);
// callers must stick to the low eight.
func PopReg64(c *coff.Coff, reg registers.Code) {
	c.AppendTextByte(opPop + byte(reg))
}

// SubValueFromReg8 appends a 64-bit SUB of an 8-bit immediate:
// [REX.B] 48 83 /5 ib.
func SubValueFromReg8(c *coff.Coff, value uint8, reg registers.Code) {
	c.AppendTextByte(rexWithB(reg))
	c.AppendTextByte(opAdd)
	c.AppendTextByte(modRM(modRegisterDirect, secondaryOpSub, reg.Low3()))
	c.AppendTextByte(value)
}

// AddValueToReg8 appends a 64-bit ADD of an 8-bit immediate:
// [REX.B] 48 83 /0 ib.
func AddValueToReg8(c *coff.Coff, value uint8, reg registers.Code) {
	c.AppendTextByte(rexWithB(reg))
	c.AppendTextByte(opAdd)
	c.AppendTextByte(modRM(modRegisterDirect, secondaryOpAdd, reg.Low3()))
	c.AppendTextByte(value)
}

// MoveDwordValueToReg appends a 32-bit immediate load: [REX.B] B8+rd id.
func MoveDwordValueToReg(c *coff.Coff, value uint32, reg registers.Code) {
	if reg.HasHighBit() {
		c.AppendTextByte(rexB)
	}
	c.AppendTextByte(opMovImmToR + reg.Low3())
	c.AppendTextBytes(littleEndian32(value))
}

// MoveDwordRelocatableValueToReg appends a 32-bit immediate load whose
// value is an ADDR32 relocation against a symbol.
func MoveDwordRelocatableValueToReg(c *coff.Coff, value coff.RelocatableValue, reg registers.Code) {
	if reg.HasHighBit() {
		c.AppendTextByte(rexB)
	}
	c.AppendTextByte(opMovImmToR + reg.Low3())
	c.AddRelocatableTextValue(value, coffconst.ImageRelAMD64Addr32)
}

// MoveRegToReg64 appends a 64-bit register-to-register MOV:
// REX.W[.R][.B] 89 /r.
func MoveRegToReg64(c *coff.Coff, from, to registers.Code) {
	rex := rexW
	if from.HasHighBit() {
		rex |= rexR
	}
	if to.HasHighBit() {
		rex |= rexB
	}
	c.AppendTextByte(rex)
	c.AppendTextByte(opMovRToRM)
	c.AppendTextByte(modRM(modRegisterDirect, from.Low3(), to.Low3()))
}

// MoveValueToRegPlusOffset32 stores a 32-bit immediate at [reg+offset].
//
// The trailing SIB byte is hardcoded to 0x24 (SIB base RSP, no index),
// regardless of reg: this only correctly addresses [RSP+disp8], even
// though the ModR/M rm field above it does name the requested register.
// This is a known limitation carried from the original design, not
// silently worked around here.
func MoveValueToRegPlusOffset32(c *coff.Coff, value uint32, reg registers.Code, offset uint8) {
	c.AppendTextByte(rexW)
	c.AppendTextByte(opMovImmToRM)
	c.AppendTextByte(modRM(modRegisterIndirect, secondaryOpAdd, reg.Low3()))
	c.AppendTextByte(0x24)
	c.AppendTextByte(offset)
	c.AppendTextBytes(littleEndian32(value))
}

// MoveRegToRegPlusOffset64 stores a register at [base+offset] (REX.W 89
// /r). Neither from nor base is ever extended by a REX bit; both are
// encoded with their raw register codes.
func MoveRegToRegPlusOffset64(c *coff.Coff, from, base registers.Code, offset uint8) {
	c.AppendTextByte(rexW)
	c.AppendTextByte(opMovRToRM)
	c.AppendTextByte(modRM(modRegisterIndirect, byte(from), byte(base)))
	c.AppendTextByte(offset)
}

// MoveRegToRegPlusOffset32 stores a register at [base+offset], with no REX
// prefix at all. Neither from nor base is ever extended; both are encoded
// with their raw register codes.
func MoveRegToRegPlusOffset32(c *coff.Coff, from, base registers.Code, offset uint8) {
	c.AppendTextByte(opMovRToRM)
	c.AppendTextByte(modRM(modRegisterIndirect, byte(from), byte(base)))
	c.AppendTextByte(offset)
}

// MoveRegPlusOffsetToReg32 loads [base+offset] into a register, applying
// REX.R if the destination register has the high bit set. base is always
// encoded with its raw register code; it is never extended.
func MoveRegPlusOffsetToReg32(c *coff.Coff, base registers.Code, offset uint8, to registers.Code) {
	if to.HasHighBit() {
		c.AppendTextByte(rexR)
	}
	c.AppendTextByte(opMovRMToR)
	c.AppendTextByte(modRM(modRegisterIndirect, to.Low3(), byte(base)))
	c.AppendTextByte(offset)
}

// MoveRegPlusOffsetToReg64 loads [base+offset] into a register (REX.W[.B]).
//
// TODO: unlike MoveRegPlusOffsetToReg32, this does not apply REX.R for a
// high-bit destination register — the ModR/M reg field still names it, but
// without the prefix bit the encoded register is wrong for R8-R15. Callers
// must stick to non-extended destination registers here. This asymmetry is
// preserved from the original design.
func MoveRegPlusOffsetToReg64(c *coff.Coff, base registers.Code, offset uint8, to registers.Code) {
	rex := rexW
	if base.HasHighBit() {
		rex |= rexB
	}
	c.AppendTextByte(rex)
	c.AppendTextByte(opMovRMToR)
	c.AppendTextByte(modRM(modRegisterIndirect, to.Low3(), base.Low3()))
	c.AppendTextByte(offset)
}

// CallRelocatableAddr appends a near relative CALL: E8 + REL32 relocation.
func CallRelocatableAddr(c *coff.Coff, addr coff.RelocatableValue) {
	c.AppendTextByte(opCall)
	c.AddRelocatableTextValue(addr, coffconst.ImageRelAMD64Rel32)
}

// LeaRIPRelativeToReg appends a RIP-relative LEA: REX.W 8D /r + REL32
// relocation. addrReg is always registers.IP (the RIP-relative marker).
func LeaRIPRelativeToReg(c *coff.Coff, addrReg registers.Code, offset coff.RelocatableValue, to registers.Code) {
	rex := rexW
	if to.HasHighBit() {
		rex |= rexR
	}
	c.AppendTextByte(rex)
	c.AppendTextByte(opLea)
	c.AppendTextByte(modRM(modRIPRelative, to.Low3(), addrReg.Low3()))
	c.AddRelocatableTextValue(offset, coffconst.ImageRelAMD64Rel32)
}

// XorReg64IntoReg appends a 64-bit XOR of a register against itself,
// zeroing it. REX.B is always set (ModR/M.rm is always a register this
// backend owns); REX.R is added if the register has the high bit set.
func XorReg64IntoReg(c *coff.Coff, reg registers.Code) {
	rex := rexW | rexB
	if reg.HasHighBit() {
		rex |= rexR
	}
	c.AppendTextByte(rex)
	c.AppendTextByte(opXor)
	c.AppendTextByte(modRM(modRegisterDirect, reg.Low3(), reg.Low3()))
}

// Ret appends a near return: 0xC3.
func Ret(c *coff.Coff) {
	c.AppendTextByte(opRet)
}

func littleEndian32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}
