// Package spirv defines the SPIR-V binary format vocabulary: the word
// type, module constants, opcodes, and operand enumerant values.
//
// The constants mirror the machine-readable SPIR-V core grammar. Only the
// subset covered by the grammar tables in the grammar package is defined.
package spirv

// Word is the fundamental 32-bit unit of a SPIR-V module. All offsets and
// counts in the binary format are word-granular.
type Word = uint32

// SPIR-V module constants.
const (
	// MagicNumber is the fixed first word of a valid module. A module
	// whose first word is the byte-swapped magic was produced on an
	// opposite-endianness host and is rejected, not converted.
	MagicNumber Word = 0x07230203

	// MajorVersion and MinorVersion identify the grammar revision the
	// tables in the grammar package were built from.
	MajorVersion uint8 = 1
	MinorVersion uint8 = 1

	// Revision is the grammar revision within the version.
	Revision = 8
)

// Version packs a major/minor pair into a module header version word.
// The layout is 0x00MMmm00: major in byte 2, minor in byte 1.
func Version(major, minor uint8) Word {
	return Word(major)<<16 | Word(minor)<<8
}
