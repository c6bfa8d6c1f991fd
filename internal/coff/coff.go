// Package coff is an in-memory representation of a Microsoft COFF object
// file for AMD64. It exposes a small set of monotonic mutation primitives —
// append a byte to a section, add a relocation, add a symbol — each of
// which keeps every header and section-header offset field consistent in
// one step, so the in-memory state is always a valid serialisation
// candidate for the bytes appended so far. Nothing here removes or
// rewrites a previously appended byte, entry, or symbol.
package coff

import (
	"github.com/sammosampson/go-coff/internal/bytesutil"
	"github.com/sammosampson/go-coff/internal/coffconst"
)

// Coff is the builder: the sole owner of one object file's worth of
// sections, relocations, symbols, and string table. Create one with New
// per lowering invocation; it is not safe to share across invocations.
type Coff struct {
	header            header
	dataSectionHeader sectionHeader
	textSectionHeader sectionHeader
	dataSection       []byte
	textSection       []byte
	relocations       []relocationEntry
	symbols           []Symbol
	stringsTableLen   uint32
	strings           []byte

	timestamp func() uint32
}

// Options configures a new Coff builder.
type Options struct {
	// Timestamp, if non-nil, is called to produce the header and symbol
	// timestamp stamped on every mutation. Per design note, this value is
	// cosmetic; callers that want byte-reproducible output should supply a
	// fixed-value function here instead of the default wall-clock source.
	Timestamp func() uint32
}

// New creates an empty Coff builder with the fixed initial header and
// section-header layout spec.md §4.2 describes: two sections (.data,
// .text), pointer fields seeded to the base dynamic data pointer (the byte
// offset immediately after the header and the two section headers), and an
// empty string table whose length field already counts itself.
func New(opts Options) *Coff {
	ts := opts.Timestamp
	if ts == nil {
		ts = defaultTimestamp
	}

	base := initialBaseDynamicDataPointer()

	c := &Coff{
		header: header{
			Magic:                coffconst.ImageFileMachineAMD64,
			NumberOfSections:     2,
			TimeDateStamp:        ts(),
			PointerToSymbolTable: base,
			NumberOfSymbols:      0,
			SizeOfOptionalHeader: 0,
			Flags:                0,
		},
		dataSectionHeader: sectionHeader{
			ShortName:            bytesutil.Pad8(".data"),
			PointerToSection:     base,
			PointerToRelocations: base,
			Flags:                coffconst.ImageScnCntInitialisedData | coffconst.ImageScnAlign4Bytes | coffconst.ImageScnMemRead | coffconst.ImageScnMemWrite,
		},
		textSectionHeader: sectionHeader{
			ShortName:            bytesutil.Pad8(".text"),
			PointerToSection:     base,
			PointerToRelocations: base,
			Flags:                coffconst.ImageScnCntCode | coffconst.ImageScnAlign16Bytes | coffconst.ImageScnMemExecute | coffconst.ImageScnMemRead,
		},
		stringsTableLen: 0x4,
		timestamp:       ts,
	}

	return c
}

func (c *Coff) touch() {
	c.header.TimeDateStamp = c.timestamp()
}
