package coff

// SectionSizes reports the current byte length of .data and .text, for
// tests that check spec.md §8 property 3 (text's pointer-to-section equals
// the base offset plus the length of .data).
func (c *Coff) SectionSizes() (dataLen, textLen uint32) {
	return c.dataSectionHeader.SizeOfSection, c.textSectionHeader.SizeOfSection
}

// SymbolCount returns the number of symbol-table entries appended so far
// (including auxiliary entries, each of which occupies one 18-byte slot).
func (c *Coff) SymbolCount() int {
	return len(c.symbols)
}

// RelocationCount returns the number of relocation entries appended so far.
func (c *Coff) RelocationCount() int {
	return len(c.relocations)
}

// PointerToSymbolTable returns the header's current pointer-to-symbol-table
// field, for tests checking spec.md §8 property 2.
func (c *Coff) PointerToSymbolTable() uint32 {
	return c.header.PointerToSymbolTable
}
