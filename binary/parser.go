package binary

import (
	"errors"

	"github.com/AlexxNica/rspirv/grammar"
	"github.com/AlexxNica/rspirv/ir"
	"github.com/AlexxNica/rspirv/spirv"
)

// headerWords is the fixed size of the module header.
const headerWords = 5

// errComplete signals the clean end of the instruction stream inside the
// parse loop. It never escapes Parse.
var errComplete = errors.New("complete")

// Parse decodes a SPIR-V binary module and feeds it to the consumer. It
// returns nil when the whole buffer was consumed and the consumer
// finalized, and a *ParseError otherwise. The buffer is not retained.
//
// Each call is independent; concurrent calls on distinct buffers and
// distinct consumers are safe.
func Parse(data []byte, c Consumer) error {
	return newParser(NewDecoder(data), c).parse()
}

// ParseWords is Parse for a buffer already assembled into words.
func ParseWords(words []spirv.Word, c Consumer) error {
	return newParser(NewWordDecoder(words), c).parse()
}

// Parser is the push-style module parser: it validates the header, decodes
// instructions against the grammar tables, and drives a Consumer.
type Parser struct {
	decoder  *Decoder
	consumer Consumer

	// instIndex is the 1-based index of the instruction being decoded;
	// zero means the header.
	instIndex int

	// typeWidths maps numeric type ids to the word width of their
	// literals, fed by type declarations as they stream past.
	typeWidths map[spirv.Word]int

	// curType is the result type of the instruction being decoded. It
	// sizes context-dependent literals.
	curType spirv.Word
}

func newParser(d *Decoder, c Consumer) *Parser {
	return &Parser{
		decoder:    d,
		consumer:   c,
		typeWidths: make(map[spirv.Word]int),
	}
}

func (p *Parser) parse() error {
	if err := p.apply(p.consumer.Initialize()); err != nil {
		return err
	}

	header, err := p.parseHeader()
	if err != nil {
		return err
	}
	debugf("parsed header: version %d.%d, bound %d",
		header.MajorVersion(), header.MinorVersion(), header.Bound)
	if err := p.apply(p.consumer.ConsumeHeader(header)); err != nil {
		return err
	}

	for {
		inst, err := p.parseInstruction()
		if errors.Is(err, errComplete) {
			break
		}
		if err != nil {
			return err
		}
		if err := p.apply(p.consumer.ConsumeInstruction(inst)); err != nil {
			return err
		}
	}

	return p.apply(p.consumer.Finalize())
}

// apply translates a consumer directive into the parser's error states.
func (p *Parser) apply(a Action) error {
	switch a.kind {
	case actionStop:
		return &ParseError{Status: StatusConsumerStopRequested}
	case actionError:
		return &ParseError{Status: StatusConsumerError, Cause: a.err}
	}
	return nil
}

func (p *Parser) parseHeader() (ir.ModuleHeader, error) {
	words, err := p.decoder.Words(headerWords)
	if err != nil {
		return ir.ModuleHeader{}, &ParseError{
			Status: StatusHeaderIncomplete,
			Cause:  err,
		}
	}
	if words[0] != spirv.MagicNumber {
		if words[0] == swapBytes(spirv.MagicNumber) {
			return ir.ModuleHeader{}, &ParseError{Status: StatusEndiannessUnsupported}
		}
		return ir.ModuleHeader{}, &ParseError{Status: StatusHeaderIncorrect}
	}
	return ir.ModuleHeader{
		Magic:     words[0],
		Version:   words[1],
		Generator: words[2],
		Bound:     words[3],
		Schema:    words[4],
	}, nil
}

// parseInstruction decodes one instruction record. It returns errComplete
// when the stream is cleanly exhausted at a record boundary.
func (p *Parser) parseInstruction() (ir.Instruction, error) {
	p.instIndex++

	word, err := p.decoder.Word()
	if err != nil {
		// No window is active between records, so the only failure is
		// stream exhaustion: the end of the module.
		return ir.Instruction{}, errComplete
	}

	wordCount, opcode := splitInstructionWord(word)
	if wordCount == 0 {
		return ir.Instruction{}, &ParseError{
			Status: StatusWordCountZero,
			Offset: p.decoder.Offset() - 1,
			Index:  p.instIndex,
		}
	}

	g, ok := grammar.LookupOpcode(opcode)
	if !ok {
		return ir.Instruction{}, &ParseError{
			Status: StatusOpcodeUnknown,
			Offset: p.decoder.Offset() - 1,
			Index:  p.instIndex,
			Opcode: uint16(opcode),
		}
	}

	operandWords := int(wordCount) - 1
	if operandWords > p.decoder.Remaining() {
		return ir.Instruction{}, &ParseError{
			Status: StatusInstructionIncomplete,
			Offset: p.decoder.Offset() - 1,
			Index:  p.instIndex,
		}
	}

	p.decoder.SetLimit(operandWords)
	inst, err := p.parseOperands(g)
	if err != nil {
		return ir.Instruction{}, err
	}
	if !p.decoder.LimitReached() {
		return ir.Instruction{}, &ParseError{
			Status: StatusOperandExceeded,
			Offset: p.decoder.Offset(),
			Index:  p.instIndex,
		}
	}
	p.decoder.ClearLimit()
	p.recordTypeWidth(inst)

	debugf("parsed instruction #%d: %s", p.instIndex, g.Name)
	return inst, nil
}

// recordTypeWidth notes the literal width of numeric type declarations so
// that later context-dependent literals can be sized from their result type.
func (p *Parser) recordTypeWidth(inst ir.Instruction) {
	switch inst.Opcode {
	case spirv.OpTypeInt, spirv.OpTypeFloat:
		if len(inst.Operands) == 0 {
			return
		}
		words := 1
		if inst.Operands[0].Word > 32 {
			words = 2
		}
		p.typeWidths[inst.ResultID] = words
	}
}

// parseOperands walks the grammar's logical operands in order and fills in
// the instruction's result fields and concrete operand list from the
// current word window.
func (p *Parser) parseOperands(g *grammar.Instruction) (ir.Instruction, error) {
	inst := ir.Instruction{Opcode: g.Opcode}
	p.curType = 0

	for i := 0; i < len(g.Operands); {
		lop := g.Operands[i]

		if p.decoder.LimitReached() {
			// Words are exhausted with logical operands pending: a
			// required operand is an error, optional and variadic
			// ones terminate the instruction.
			if lop.Quantifier == grammar.One {
				return ir.Instruction{}, &ParseError{
					Status: StatusOperandExpected,
					Offset: p.decoder.Offset() - 1,
					Index:  p.instIndex,
				}
			}
			break
		}

		switch lop.Kind {
		case grammar.IDResultType:
			w, err := p.decoder.ID()
			if err != nil {
				return ir.Instruction{}, p.operandError(err)
			}
			inst.ResultType = w
			p.curType = w
		case grammar.IDResult:
			w, err := p.decoder.ID()
			if err != nil {
				return ir.Instruction{}, p.operandError(err)
			}
			inst.ResultID = w
		default:
			ops, err := p.decodeOperand(lop.Kind)
			if err != nil {
				return ir.Instruction{}, err
			}
			inst.Operands = append(inst.Operands, ops...)
		}

		// A variadic operand re-applies until the window drains; the
		// others advance after one decode.
		if lop.Quantifier != grammar.ZeroOrMore {
			i++
		}
	}

	return inst, nil
}

func (p *Parser) operandError(err error) error {
	return &ParseError{Status: StatusOperandError, Cause: err}
}

// splitInstructionWord splits an instruction's first word into its declared
// word count (high 16 bits) and opcode (low 16 bits).
func splitInstructionWord(w spirv.Word) (uint16, spirv.Op) {
	return uint16(w >> 16), spirv.Op(w & 0xffff)
}

func swapBytes(w spirv.Word) spirv.Word {
	return w<<24 | w<<8&0x00ff0000 | w>>8&0x0000ff00 | w>>24
}
