// Package grammar holds the static SPIR-V instruction and operand-kind
// tables consumed by the binary parser.
//
// The tables are a read-only oracle built once at package load from the
// SPIR-V core grammar. Lookups never mutate them, so they are safe for
// concurrent use. An opcode missing from the table is a normal lookup miss,
// not a fault: the grammar covers a subset of the core instruction set and
// the parser reports unknown opcodes to its caller.
package grammar

import "github.com/AlexxNica/rspirv/spirv"

// Quantifier is the multiplicity rule for a logical operand.
type Quantifier int

const (
	// One requires exactly one occurrence.
	One Quantifier = iota
	// ZeroOrOne permits the operand to be absent at the end of an
	// instruction.
	ZeroOrOne
	// ZeroOrMore repeats the operand until the instruction's words are
	// exhausted. It may only appear as the last logical operand.
	ZeroOrMore
)

// LogicalOperand is one grammar-declared operand slot. A single logical
// operand can expand to zero, one, or many concrete operands in the decoded
// instruction.
type LogicalOperand struct {
	Kind       OperandKind
	Quantifier Quantifier
}

// Instruction is the grammar for one opcode: its ordered logical operands.
// Operand order is authoritative; the binary stream must match it.
type Instruction struct {
	Opcode   spirv.Op
	Name     string
	Operands []LogicalOperand
}

// Category classifies an operand kind for decoding purposes.
type Category int

const (
	// CategoryID kinds are one-word identifier references.
	CategoryID Category = iota
	// CategoryLiteralNumber kinds are numeric literals of a fixed word
	// width.
	CategoryLiteralNumber
	// CategoryLiteralString kinds are NUL-terminated UTF-8 strings packed
	// into words.
	CategoryLiteralString
	// CategoryValueEnum kinds are one-word enumerant values.
	CategoryValueEnum
	// CategoryBitEnum kinds are one-word bit sets of enumerant flags.
	CategoryBitEnum
	// CategoryComposite kinds expand to their base kinds in declared
	// order.
	CategoryComposite
)

// Enumerant is one legal value of an enum operand kind, together with the
// operand kinds it mandates as extra immediate words.
type Enumerant struct {
	Symbol     string
	Value      uint32
	Parameters []OperandKind
}

// KindDef describes how an operand kind is decoded. Literal-number kinds
// occupy one word unless the kind is context dependent, in which case the
// parser derives the width from the enclosing instruction's result type.
type KindDef struct {
	Kind     OperandKind
	Category Category

	// Bases lists the sub-kinds of composite kinds in declared order.
	Bases []OperandKind

	// Enumerants lists the legal values of enum kinds in value order.
	Enumerants []Enumerant
}

// Enumerant returns the enumerant with the given value, or nil if the value
// is not part of the kind.
func (d *KindDef) Enumerant(value uint32) *Enumerant {
	for i := range d.Enumerants {
		if d.Enumerants[i].Value == value {
			return &d.Enumerants[i]
		}
	}
	return nil
}

// Mask returns the union of all flag values of a bit-enum kind. Bits outside
// the mask are not part of the kind.
func (d *KindDef) Mask() uint32 {
	var m uint32
	for i := range d.Enumerants {
		m |= d.Enumerants[i].Value
	}
	return m
}

// LookupOpcode returns the instruction grammar for an opcode. The second
// result is false when the opcode is not in the table.
func LookupOpcode(op spirv.Op) (*Instruction, bool) {
	inst, ok := instructionIndex[op]
	return inst, ok
}

// LookupKind returns the definition of an operand kind. The second result is
// false when the kind is unknown.
func LookupKind(kind OperandKind) (*KindDef, bool) {
	def, ok := kindIndex[kind]
	return def, ok
}

var instructionIndex = func() map[spirv.Op]*Instruction {
	m := make(map[spirv.Op]*Instruction, len(instructions))
	for i := range instructions {
		m[instructions[i].Opcode] = &instructions[i]
	}
	return m
}()

var kindIndex = func() map[OperandKind]*KindDef {
	m := make(map[OperandKind]*KindDef, len(kinds))
	for i := range kinds {
		m[kinds[i].Kind] = &kinds[i]
	}
	return m
}()
