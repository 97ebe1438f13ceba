package binary

import (
	"fmt"

	"github.com/AlexxNica/rspirv/grammar"
	"github.com/AlexxNica/rspirv/ir"
)

// decodeOperand decodes one logical operand of the given kind into its
// concrete operands, consuming the matching number of words. Enum operands
// whose value mandates extra operands yield those in the same sequence,
// and composite kinds yield one concrete operand per base kind.
func (p *Parser) decodeOperand(kind grammar.OperandKind) ([]ir.Operand, error) {
	def, ok := grammar.LookupKind(kind)
	if !ok {
		return nil, p.operandError(fmt.Errorf("no definition for operand kind %s", kind))
	}

	switch def.Category {
	case grammar.CategoryID:
		w, err := p.decoder.ID()
		if err != nil {
			return nil, p.operandError(err)
		}
		return []ir.Operand{{Kind: kind, Word: w}}, nil

	case grammar.CategoryLiteralNumber:
		return p.decodeNumber(def)

	case grammar.CategoryLiteralString:
		s, err := p.decoder.String()
		if err != nil {
			return nil, p.operandError(err)
		}
		return []ir.Operand{{Kind: kind, Str: s}}, nil

	case grammar.CategoryValueEnum:
		return p.decodeValueEnum(def)

	case grammar.CategoryBitEnum:
		return p.decodeBitEnum(def)

	case grammar.CategoryComposite:
		var ops []ir.Operand
		for _, base := range def.Bases {
			sub, err := p.decodeOperand(base)
			if err != nil {
				return nil, err
			}
			ops = append(ops, sub...)
		}
		return ops, nil
	}

	return nil, p.operandError(fmt.Errorf("unhandled operand category %d", def.Category))
}

// decodeNumber reads a numeric literal. Most literal kinds occupy one word;
// a context-dependent literal takes the width of the enclosing instruction's
// result type, as recorded from the type declarations seen so far.
func (p *Parser) decodeNumber(def *grammar.KindDef) ([]ir.Operand, error) {
	width := 1
	if def.Kind == grammar.LiteralContextDependentNumber {
		if w, ok := p.typeWidths[p.curType]; ok {
			width = w
		}
	}
	if width <= 1 {
		w, err := p.decoder.Word()
		if err != nil {
			return nil, p.operandError(err)
		}
		return []ir.Operand{{Kind: def.Kind, Word: w}}, nil
	}

	words, err := p.decoder.Words(width)
	if err != nil {
		return nil, p.operandError(err)
	}
	// Low word first, matching the module's word order.
	var wide uint64
	for i, w := range words {
		wide |= uint64(w) << (32 * i)
	}
	return []ir.Operand{{Kind: def.Kind, Word: words[0], Wide: wide}}, nil
}

// decodeValueEnum reads an enumerant word, then the operands that enumerant
// mandates.
func (p *Parser) decodeValueEnum(def *grammar.KindDef) ([]ir.Operand, error) {
	w, err := p.decoder.Word()
	if err != nil {
		return nil, p.operandError(err)
	}
	e := def.Enumerant(w)
	if e == nil {
		return nil, p.operandError(fmt.Errorf("%w %d for %s",
			ErrInvalidEnumValue, w, def.Kind))
	}

	ops := []ir.Operand{{Kind: def.Kind, Word: w}}
	return p.appendParameters(ops, e.Parameters)
}

// decodeBitEnum reads a flag-set word, then the operands mandated by each
// set flag in the kind's declared flag order.
func (p *Parser) decodeBitEnum(def *grammar.KindDef) ([]ir.Operand, error) {
	w, err := p.decoder.Word()
	if err != nil {
		return nil, p.operandError(err)
	}
	if unknown := w &^ def.Mask(); unknown != 0 {
		return nil, p.operandError(fmt.Errorf("%w 0x%x for %s",
			ErrInvalidEnumValue, unknown, def.Kind))
	}

	ops := []ir.Operand{{Kind: def.Kind, Word: w}}
	for i := range def.Enumerants {
		e := &def.Enumerants[i]
		if e.Value != 0 && w&e.Value == e.Value {
			ops, err = p.appendParameters(ops, e.Parameters)
			if err != nil {
				return nil, err
			}
		}
	}
	return ops, nil
}

func (p *Parser) appendParameters(ops []ir.Operand, parameters []grammar.OperandKind) ([]ir.Operand, error) {
	for _, kind := range parameters {
		sub, err := p.decodeOperand(kind)
		if err != nil {
			return nil, err
		}
		ops = append(ops, sub...)
	}
	return ops, nil
}
