// Package coffconst names the Microsoft COFF constants this backend emits:
// machine type, section flags, relocation types, symbol storage classes and
// special section numbers, and the fixed sizes of the packed on-disk
// structures. Naming follows the ImageSym*/ImageScn* convention used by
// Go COFF/PE readers in the wild (e.g. saferwall/pe's symbol.go) rather than
// the bare hex constants original_source used inline.
package coffconst

const (
	// ImageFileMachineAMD64 is the COFF header's target-machine field for
	// x86-64.
	ImageFileMachineAMD64 uint16 = 0x8664
)

// Section characteristics (CoffSectionHeader.Flags).
const (
	ImageScnCntCode            uint32 = 0x00000020
	ImageScnCntInitialisedData uint32 = 0x00000040
	ImageScnAlign4Bytes        uint32 = 0x00300000
	ImageScnAlign16Bytes       uint32 = 0x00500000
	ImageScnMemExecute         uint32 = 0x20000000
	ImageScnMemRead            uint32 = 0x40000000
	ImageScnMemWrite           uint32 = 0x80000000
)

// Relocation types (CoffRelocationEntry.Type), AMD64 subset.
const (
	ImageRelAMD64Addr32 uint16 = 0x02
	ImageRelAMD64Rel32  uint16 = 0x04
)

// Symbol storage classes (CoffSymbol.StorageClass).
const (
	ImageSymClassFile     uint8 = 0x67
	ImageSymClassExternal uint8 = 0x02
	ImageSymClassStatic   uint8 = 0x03
)

// Special symbol section numbers (CoffSymbol.SectionNumber).
const (
	ImageSymDebug    uint16 = 0xFFFE
	ImageSymAbsolute uint16 = 0xFFFF
)

// Fixed section numbers used by this backend's two-section object layout.
const (
	SectionNumberData uint16 = 1
	SectionNumberText uint16 = 2
)

// Packed on-disk structure sizes, in bytes.
const (
	SizeOfHeader          = 20
	SizeOfSectionHeader   = 40
	SizeOfRelocationEntry = 10
	SizeOfSymbol          = 18
)
