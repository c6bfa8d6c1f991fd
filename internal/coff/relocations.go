package coff

import (
	"github.com/sammosampson/go-coff/internal/bytesutil"
	"github.com/sammosampson/go-coff/internal/coffconst"
)

// relocationEntry is a 10-byte COFF relocation: a byte offset within .text
// that needs patching by the linker, the symbol table index it resolves
// against, and the relocation kind.
type relocationEntry struct {
	PointerToReference uint32
	SymbolIndex        uint32
	RelocationType     uint16
}

// RelocatableValue pairs a COFF symbol table index with the placeholder
// 4-byte value written into .text until the linker resolves it.
type RelocatableValue struct {
	SymbolIndex       uint32
	InitialValueToUse uint32
}

// AddRelocatableTextValue records a relocation entry pointing at the next 4
// bytes of .text, then appends those 4 bytes (the caller-supplied
// placeholder, little-endian) to .text. This is the only way a relocation
// and its placeholder bytes are added, so the two can never drift apart:
// every relocation's PointerToReference is exactly the offset of the 4
// bytes it names.
func (c *Coff) AddRelocatableTextValue(value RelocatableValue, relocationType uint16) {
	c.addRelocationEntry(relocationEntry{
		PointerToReference: c.textSectionHeader.SizeOfSection,
		SymbolIndex:        value.SymbolIndex,
		RelocationType:     relocationType,
	})
	c.AppendTextBytes(bytesutil.Uint32ToBytes(value.InitialValueToUse))
}

func (c *Coff) addRelocationEntry(entry relocationEntry) {
	c.relocations = append(c.relocations, entry)
	c.textSectionHeader.NumberOfRelocations++
	c.header.PointerToSymbolTable += coffconst.SizeOfRelocationEntry
	c.touch()
}
