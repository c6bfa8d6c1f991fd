package coff

// AppendTextByte appends one byte to .text, advancing every field that byte
// offset feeds: the section's own size, the section's pointer to its
// relocation table (relocations always sit immediately after .text), and
// the header's pointer to the symbol table (the symbol table always sits
// immediately after the relocation table).
func (c *Coff) AppendTextByte(b byte) {
	c.textSection = append(c.textSection, b)
	c.textSectionHeader.SizeOfSection++
	c.textSectionHeader.PointerToRelocations++
	c.header.PointerToSymbolTable++
	c.touch()
}

// AppendTextBytes appends each byte of entries to .text in order.
func (c *Coff) AppendTextBytes(entries []byte) {
	for _, b := range entries {
		c.AppendTextByte(b)
	}
}

// TextLen returns the current size of .text, i.e. the byte offset at which
// the next appended instruction will begin. Used by the lowering pass to
// stamp ExternalCodeLabel.position at the moment a label is created.
func (c *Coff) TextLen() uint32 {
	return c.textSectionHeader.SizeOfSection
}

// AppendDataString appends the raw bytes of s to .data (no implicit
// terminator — callers append '\0' themselves if they want one) and
// returns the byte offset within .data at which it was written. Appending
// to .data shifts everything that follows it: .data's own size and
// relocation pointer, and .text's section/relocation pointers and, in
// turn, the header's symbol table pointer.
func (c *Coff) AppendDataString(s string) uint32 {
	pointer := c.dataSectionHeader.SizeOfSection
	c.advanceDataSection(uint32(len(s)))
	c.dataSection = append(c.dataSection, s...)
	return pointer
}

func (c *Coff) advanceDataSection(amount uint32) {
	c.dataSectionHeader.SizeOfSection += amount
	c.dataSectionHeader.PointerToRelocations += amount
	c.textSectionHeader.PointerToSection += amount
	c.textSectionHeader.PointerToRelocations += amount
	c.header.PointerToSymbolTable += amount
	c.touch()
}
