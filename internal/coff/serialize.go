package coff

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Serialize writes the builder's current state to w in the exact order
// spec.md §4.2 specifies: header, .data section header, .text section
// header, .data bytes, .text bytes, relocations, symbols, then the 4-byte
// string table length followed by the string table bytes. Every multi-byte
// field is little-endian; there is no padding between fields or records.
func (c *Coff) Serialize(w io.Writer) error {
	for _, v := range []any{c.header, c.dataSectionHeader, c.textSectionHeader} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("coff: failed writing header: %w", err)
		}
	}

	if _, err := w.Write(c.dataSection); err != nil {
		return fmt.Errorf("coff: failed writing .data section: %w", err)
	}
	if _, err := w.Write(c.textSection); err != nil {
		return fmt.Errorf("coff: failed writing .text section: %w", err)
	}

	for _, reloc := range c.relocations {
		if err := binary.Write(w, binary.LittleEndian, reloc); err != nil {
			return fmt.Errorf("coff: failed writing relocation entry: %w", err)
		}
	}

	for _, sym := range c.symbols {
		encoded := sym.encode()
		if _, err := w.Write(encoded[:]); err != nil {
			return fmt.Errorf("coff: failed writing symbol entry: %w", err)
		}
	}

	if err := binary.Write(w, binary.LittleEndian, c.stringsTableLen); err != nil {
		return fmt.Errorf("coff: failed writing string table length: %w", err)
	}
	if _, err := w.Write(c.strings); err != nil {
		return fmt.Errorf("coff: failed writing string table: %w", err)
	}

	return nil
}

// WriteToFile serialises the object and writes it to a new file at path,
// matching original_source's create-then-write-then-flush file lifecycle:
// the file is created, written once, and closed within this call.
func (c *Coff) WriteToFile(path string) error {
	return writeToFile(path, c.Serialize)
}
