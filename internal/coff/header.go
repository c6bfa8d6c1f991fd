package coff

import (
	"github.com/sammosampson/go-coff/internal/bytesutil"
	"github.com/sammosampson/go-coff/internal/coffconst"
)

// header is the 20-byte COFF file header. Field order matches spec.md §6
// exactly; encoding/binary.Write serialises it with no inter-field padding
// since every field is a fixed-width integer.
type header struct {
	Magic                uint16
	NumberOfSections     uint16
	TimeDateStamp        uint32
	PointerToSymbolTable uint32
	NumberOfSymbols      uint32
	SizeOfOptionalHeader uint16
	Flags                uint16
}

// sectionHeader is the 40-byte COFF section header.
type sectionHeader struct {
	ShortName            [8]byte
	PhysicalAddress      uint32
	VirtualAddress       uint32
	SizeOfSection        uint32
	PointerToSection     uint32
	PointerToRelocations uint32
	PointerToLineNumbers uint32
	NumberOfRelocations  uint16
	NumberOfLineNumbers  uint16
	Flags                uint32
}

// initialBaseDynamicDataPointer is the byte offset at which section data
// begins: immediately after the file header and the two section headers.
func initialBaseDynamicDataPointer() uint32 {
	return coffconst.SizeOfHeader + 2*coffconst.SizeOfSectionHeader
}

func defaultTimestamp() uint32 {
	return bytesutil.CurrentTimestamp()
}
