// Package registers holds the small AMD64 general-purpose register catalog
// the encoder addresses: AX, CX, DX, SP, BP, IP (the RIP-relative marker),
// R8 and R9. Unlike a full assembler's register table (every GPR at every
// operand width), this catalog only needs the registers the IR's calling
// convention and instruction set actually reach.
package registers

// Code is a stable small-integer register encoding, suitable for packing
// directly into a ModR/M byte.
type Code byte

const (
	AX Code = 0x00
	CX Code = 0x01
	DX Code = 0x02
	SP Code = 0x04
	BP Code = 0x05
	// IP is the RIP-relative addressing marker: it shares BP's bit pattern,
	// but mod=0 selects RIP-relative rather than register-indirect
	// addressing for this encoding, so it is never used as a ModR/M rm
	// field outside of LEA's RIP-relative form.
	IP Code = 0x05
	R8 Code = 0x08
	R9 Code = 0x09
)

// HasHighBit reports whether reg is one of the extended registers (R8, R9,
// ...) that need a REX.B or REX.R bit to select.
func (c Code) HasHighBit() bool {
	return c&0x8 == 0x8
}

// Low3 returns the register's low 3 bits, the value actually packed into a
// ModR/M reg or rm field once the high bit has been folded into the REX
// prefix.
func (c Code) Low3() byte {
	return byte(c) & 0x7
}
