// Package ir defines the in-memory representation of a parsed SPIR-V
// module: the module header, instructions, and their concrete operands.
//
// Values of these types are constructed by the binary parser and handed to
// its consumer; the parser retains no reference to them afterwards.
package ir

import (
	"fmt"
	"strconv"

	"github.com/AlexxNica/rspirv/grammar"
	"github.com/AlexxNica/rspirv/spirv"
)

// ModuleHeader holds the five fixed words at the start of every module.
type ModuleHeader struct {
	Magic     spirv.Word
	Version   spirv.Word
	Generator spirv.Word
	Bound     spirv.Word
	// Schema is the reserved instruction schema word. It is surfaced as
	// read; the format reserves it as zero but this parser does not
	// enforce that.
	Schema spirv.Word
}

// MajorVersion extracts the major version from the packed version word.
func (h ModuleHeader) MajorVersion() uint8 { return uint8(h.Version >> 16) }

// MinorVersion extracts the minor version from the packed version word.
func (h ModuleHeader) MinorVersion() uint8 { return uint8(h.Version >> 8) }

// Instruction is one decoded instruction. ResultType and ResultID are zero
// when the instruction's grammar declares no result type or result;
// identifiers in a valid module are always nonzero.
type Instruction struct {
	Opcode     spirv.Op
	ResultType spirv.Word
	ResultID   spirv.Word
	Operands   []Operand
}

// Operand is one concrete, kind-tagged operand value. Which field carries
// the value follows from the kind's category: Word for identifier
// references, enumerant words, and one-word literals; Wide for literals
// wider than one word; Str for string literals.
type Operand struct {
	Kind grammar.OperandKind
	Word spirv.Word
	Wide uint64
	Str  string
}

// String renders the operand for diagnostics: identifiers as %n, enum words
// by their symbol where the grammar knows one, literals as numbers.
func (o Operand) String() string {
	def, ok := grammar.LookupKind(o.Kind)
	if !ok {
		return fmt.Sprintf("%s(%d)", o.Kind, o.Word)
	}
	switch def.Category {
	case grammar.CategoryID:
		return "%" + strconv.FormatUint(uint64(o.Word), 10)
	case grammar.CategoryLiteralString:
		return strconv.Quote(o.Str)
	case grammar.CategoryLiteralNumber:
		if o.Wide != 0 {
			return strconv.FormatUint(o.Wide, 10)
		}
		return strconv.FormatUint(uint64(o.Word), 10)
	case grammar.CategoryValueEnum:
		if e := def.Enumerant(o.Word); e != nil {
			return e.Symbol
		}
	case grammar.CategoryBitEnum:
		return "0x" + strconv.FormatUint(uint64(o.Word), 16)
	}
	return strconv.FormatUint(uint64(o.Word), 10)
}

// Module is a fully loaded module: its header and every instruction in
// stream order.
type Module struct {
	Header       *ModuleHeader
	Instructions []Instruction
}
