package coff_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/sammosampson/go-coff/internal/coff"
	"github.com/sammosampson/go-coff/internal/coffconst"
)

func fixedTimestamp() uint32 { return 0x11223344 }

func newFixed() *coff.Coff {
	return coff.New(coff.Options{Timestamp: fixedTimestamp})
}

func TestNewHasExpectedInitialLayout(t *testing.T) {
	c := newFixed()

	dataLen, textLen := c.SectionSizes()
	if dataLen != 0 || textLen != 0 {
		t.Fatalf("expected empty sections, got data=%d text=%d", dataLen, textLen)
	}
	if c.SymbolCount() != 0 {
		t.Fatalf("expected no symbols, got %d", c.SymbolCount())
	}
	if c.RelocationCount() != 0 {
		t.Fatalf("expected no relocations, got %d", c.RelocationCount())
	}

	wantBase := uint32(coffconst.SizeOfHeader + 2*coffconst.SizeOfSectionHeader)
	if got := c.PointerToSymbolTable(); got != wantBase {
		t.Fatalf("PointerToSymbolTable = %d, want %d", got, wantBase)
	}
}

// TestAppendTextByteBookkeeping asserts spec.md §4.2's monotonic text-append
// bookkeeping: every byte appended to .text advances the section size, the
// section's own relocation pointer, and the header's symbol table pointer.
func TestAppendTextByteBookkeeping(t *testing.T) {
	c := newFixed()
	base := c.PointerToSymbolTable()

	c.AppendTextBytes([]byte{0xC3, 0x90, 0x90})

	_, textLen := c.SectionSizes()
	if textLen != 3 {
		t.Fatalf(".text size = %d, want 3", textLen)
	}
	if got := c.PointerToSymbolTable(); got != base+3 {
		t.Fatalf("PointerToSymbolTable = %d, want %d", got, base+3)
	}

	var buf bytes.Buffer
	if err := c.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	// .text's PointerToRelocations sits 24 bytes into the second section
	// header, which follows the file header and the .data section header.
	textRelocs := coffconst.SizeOfHeader + coffconst.SizeOfSectionHeader + 24
	if got := binary.LittleEndian.Uint32(buf.Bytes()[textRelocs:]); got != base+3 {
		t.Fatalf(".text PointerToRelocations = %d, want %d", got, base+3)
	}
}

// TestAppendDataStringShiftsText asserts spec.md §4.2: appending bytes to
// .data shifts .text's pointer-to-section by the same amount, since .text
// is serialised immediately after .data.
func TestAppendDataStringShiftsText(t *testing.T) {
	c := newFixed()
	base := c.PointerToSymbolTable()

	offset := c.AppendDataString("Hi\x00")
	if offset != 0 {
		t.Fatalf("first data item offset = %d, want 0", offset)
	}

	dataLen, _ := c.SectionSizes()
	if dataLen != 3 {
		t.Fatalf(".data size = %d, want 3", dataLen)
	}
	if got := c.PointerToSymbolTable(); got != base+3 {
		t.Fatalf("PointerToSymbolTable = %d, want %d", got, base+3)
	}

	var buf bytes.Buffer
	if err := c.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	// .text's PointerToSection sits 20 bytes into the second section header.
	textSection := coffconst.SizeOfHeader + coffconst.SizeOfSectionHeader + 20
	if got := binary.LittleEndian.Uint32(buf.Bytes()[textSection:]); got != base+3 {
		t.Fatalf(".text PointerToSection = %d, want %d", got, base+3)
	}
}

// TestAddRelocatableTextValue asserts spec.md §8 property 4: the 4 bytes
// at the relocation's PointerToReference equal the supplied placeholder.
func TestAddRelocatableTextValue(t *testing.T) {
	c := newFixed()
	c.AppendTextByte(0xE8) // CALL opcode, for realism

	c.AddRelocatableTextValue(coff.RelocatableValue{SymbolIndex: 7, InitialValueToUse: 0}, coffconst.ImageRelAMD64Rel32)

	if c.RelocationCount() != 1 {
		t.Fatalf("RelocationCount = %d, want 1", c.RelocationCount())
	}

	var buf bytes.Buffer
	if err := c.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	// The relocation's PointerToReference is 1 (immediately after the CALL
	// opcode byte); the .text section in the serialised output starts
	// right after header+2*sectionHeader+data.
	textStart := coffconst.SizeOfHeader + 2*coffconst.SizeOfSectionHeader
	placeholder := buf.Bytes()[textStart+1 : textStart+5]
	for _, b := range placeholder {
		if b != 0 {
			t.Fatalf("expected zeroed placeholder bytes, got %v", placeholder)
		}
	}
}

// TestNamedSymbolPolicy asserts spec.md §8 property 6: names <= 8 bytes are
// short-named, longer names go through the string table.
func TestNamedSymbolPolicy(t *testing.T) {
	c := newFixed()
	c.AddForeignExternalSymbol("print")               // 5 bytes: short-named
	c.AddForeignExternalSymbol("GetStdHandleForLongNm") // >8 bytes: long-named

	if c.SymbolCount() != 2 {
		t.Fatalf("SymbolCount = %d, want 2", c.SymbolCount())
	}

	var buf bytes.Buffer
	if err := c.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	full := buf.Bytes()
	if !bytes.Contains(full, []byte("GetStdHandleForLongNm\x00")) {
		t.Fatalf("expected string table to contain the long name, got %x", full)
	}
}

// TestSerializeLengthInvariant asserts spec.md §8 property 1: total
// serialised length equals the sum of every component's contribution.
func TestSerializeLengthInvariant(t *testing.T) {
	c := newFixed()
	c.AppendTextBytes([]byte{0x55, 0xC3})
	c.AppendDataString("abc")
	c.AddRelocatableTextValue(coff.RelocatableValue{SymbolIndex: 1, InitialValueToUse: 0}, coffconst.ImageRelAMD64Addr32)
	c.AddForeignExternalSymbol("x")

	var buf bytes.Buffer
	if err := c.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	dataLen, textLen := c.SectionSizes()
	stringsLen := 4 // "x" is short-named; nothing is appended to the string table
	exact := coffconst.SizeOfHeader + 2*coffconst.SizeOfSectionHeader +
		int(dataLen) + int(textLen) +
		c.RelocationCount()*coffconst.SizeOfRelocationEntry +
		c.SymbolCount()*coffconst.SizeOfSymbol +
		stringsLen

	if buf.Len() != exact {
		t.Fatalf("serialised length = %d, want %d", buf.Len(), exact)
	}
}
