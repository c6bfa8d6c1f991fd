package coff

import (
	"bytes"
	"encoding/binary"

	"github.com/sammosampson/go-coff/internal/bytesutil"
	"github.com/sammosampson/go-coff/internal/coffconst"
)

// Symbol is the 18-byte COFF symbol-table entry. It is a tagged variant in
// spirit (short-named, long-named, raw name-auxiliary, section-auxiliary)
// but a plain interface in this Go rendering: each concrete type knows how
// to serialise itself to exactly 18 bytes, so callers never see the raw
// union spec.md §9 warns against exposing.
type Symbol interface {
	encode() [18]byte
}

type shortNamedSymbol struct {
	Name               [8]byte
	Value              uint32
	SectionNumber      uint16
	SymbolType         uint16
	StorageClass       uint8
	NumberOfAuxSymbols uint8
}

func (s shortNamedSymbol) encode() [18]byte { return mustEncode18(s) }

type longNamedSymbol struct {
	Pad                  uint32
	PointerToStringTable uint32
	Value                uint32
	SectionNumber        uint16
	SymbolType           uint16
	StorageClass         uint8
	NumberOfAuxSymbols   uint8
}

func (s longNamedSymbol) encode() [18]byte { return mustEncode18(s) }

// nameAuxSymbol is the raw-name continuation record that immediately
// follows a `.file` debug symbol, carrying the zero-padded source file
// name (truncated to 18 bytes if longer).
type nameAuxSymbol struct {
	Raw [18]byte
}

func (s nameAuxSymbol) encode() [18]byte { return s.Raw }

type sectionAuxSymbol struct {
	Length              uint32
	NumberOfRelocations uint16
	NumberOfLineNumbers uint16
	Checksum            uint32
	Number              uint16
	Selection           uint8
	Pad                 [3]byte
}

func (s sectionAuxSymbol) encode() [18]byte { return mustEncode18(s) }

func mustEncode18(v any) [18]byte {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
		panic(err)
	}
	var out [18]byte
	copy(out[:], buf.Bytes())
	return out
}

func (c *Coff) addSymbol(s Symbol) {
	c.symbols = append(c.symbols, s)
	c.header.NumberOfSymbols++
	c.touch()
}

// addString appends entry, zero-terminated, to the string table and returns
// the offset at which it was written (the 4-byte length count occupies
// offset 0; the first stored name starts at offset 4).
func (c *Coff) addString(entry string) uint32 {
	pointer := c.stringsTableLen
	encoded := bytesutil.ZeroTerminated(entry)
	c.stringsTableLen += uint32(len(encoded))
	c.strings = append(c.strings, encoded...)
	c.touch()
	return pointer
}

// addNamedSymbol is the named-symbol policy of spec.md §4.2: names of 8
// bytes or fewer are stored inline (short-named); longer names are appended
// to the string table and referenced by offset (long-named).
func (c *Coff) addNamedSymbol(name string, value uint32, sectionNumber, symbolType uint16, storageClass, numAux uint8) {
	if len(name) <= 8 {
		c.addSymbol(shortNamedSymbol{
			Name:               bytesutil.Pad8(name),
			Value:              value,
			SectionNumber:      sectionNumber,
			SymbolType:         symbolType,
			StorageClass:       storageClass,
			NumberOfAuxSymbols: numAux,
		})
		return
	}

	pointer := c.addString(name)
	c.addSymbol(longNamedSymbol{
		PointerToStringTable: pointer,
		Value:                value,
		SectionNumber:        sectionNumber,
		SymbolType:           symbolType,
		StorageClass:         storageClass,
		NumberOfAuxSymbols:   numAux,
	})
}

func (c *Coff) addStaticSymbol(name string, value uint32, sectionNumber uint16) {
	c.addNamedSymbol(name, value, sectionNumber, 0, coffconst.ImageSymClassStatic, 0)
}

func (c *Coff) addExternalSymbol(name string, value uint32, sectionNumber uint16) {
	c.addNamedSymbol(name, value, sectionNumber, 0, coffconst.ImageSymClassExternal, 0)
}

// AddDebugFileNameSymbols appends the `.file` debug symbol followed by its
// raw-name auxiliary record naming fileName.
func (c *Coff) AddDebugFileNameSymbols(fileName string) {
	c.addNamedSymbol(".file", 0, coffconst.ImageSymDebug, 0, coffconst.ImageSymClassFile, 1)
	c.addSymbol(nameAuxSymbol{Raw: bytesutil.Pad18(fileName)})
}

func (c *Coff) addSectionSymbols(sectionName string, sectionNumber uint16, sectionLength uint32, numberOfRelocations uint16) {
	c.addNamedSymbol(sectionName, 0, sectionNumber, 0, coffconst.ImageSymClassStatic, 1)
	c.addSymbol(sectionAuxSymbol{
		Length:              sectionLength,
		NumberOfRelocations: numberOfRelocations,
	})
}

// AddDataSectionHeaderSymbols appends the `.data` section-definition symbol
// pair, sized from the section's current state.
func (c *Coff) AddDataSectionHeaderSymbols() {
	c.addSectionSymbols(".data", coffconst.SectionNumberData, c.dataSectionHeader.SizeOfSection, c.dataSectionHeader.NumberOfRelocations)
}

// AddTextSectionHeaderSymbols appends the `.text` section-definition symbol
// pair, sized from the section's current state.
func (c *Coff) AddTextSectionHeaderSymbols() {
	c.addSectionSymbols(".text", coffconst.SectionNumberText, c.textSectionHeader.SizeOfSection, c.textSectionHeader.NumberOfRelocations)
}

// AddAbsoluteStaticSymbol appends a static symbol with an absolute
// (non-relocatable) value, such as the fixed `.absolut` trailer symbol.
func (c *Coff) AddAbsoluteStaticSymbol(name string, value uint32) {
	c.addStaticSymbol(name, value, coffconst.ImageSymAbsolute)
}

// AddDataSectionStaticSymbol appends a static symbol naming an item at a
// given offset within .data.
func (c *Coff) AddDataSectionStaticSymbol(name string, value uint32) {
	c.addStaticSymbol(name, value, coffconst.SectionNumberData)
}

// AddForeignExternalSymbol appends an external symbol with no defining
// section (resolved entirely by the linker), value 0.
func (c *Coff) AddForeignExternalSymbol(name string) {
	c.addExternalSymbol(name, 0, 0)
}

// AddAbsoluteExternalSymbol appends an external symbol with an absolute
// value, not tied to any section.
func (c *Coff) AddAbsoluteExternalSymbol(name string, value uint32) {
	c.addExternalSymbol(name, value, coffconst.ImageSymAbsolute)
}

// AddTextSectionExternalSymbol appends an external symbol defined at a byte
// offset within .text.
func (c *Coff) AddTextSectionExternalSymbol(name string, value uint32) {
	c.addExternalSymbol(name, value, coffconst.SectionNumberText)
}
