package binary

import "fmt"

// Status discriminates the terminal states of a parse. The set is closed:
// every way a parse can end maps to exactly one status.
type Status int

const (
	// StatusComplete is the internal success sentinel; Parse returns nil
	// instead of surfacing it.
	StatusComplete Status = iota

	// StatusConsumerStopRequested: the consumer returned Stop. A clean
	// caller-directed abort, not malformed input.
	StatusConsumerStopRequested

	// StatusConsumerError: the consumer returned an error of its own.
	StatusConsumerError

	// StatusHeaderIncomplete: fewer than five words in the buffer.
	StatusHeaderIncomplete

	// StatusHeaderIncorrect: the first word is not the magic constant.
	StatusHeaderIncorrect

	// StatusEndiannessUnsupported: the first word is the byte-swapped
	// magic constant; opposite-endianness input is rejected, not
	// converted.
	StatusEndiannessUnsupported

	// StatusInstructionIncomplete: an instruction's declared word count
	// runs past the end of the buffer.
	StatusInstructionIncomplete

	// StatusWordCountZero: an instruction declares a word count of zero.
	StatusWordCountZero

	// StatusOpcodeUnknown: the opcode has no grammar in the table.
	StatusOpcodeUnknown

	// StatusOperandExpected: the grammar requires another operand but the
	// instruction's words are exhausted.
	StatusOperandExpected

	// StatusOperandExceeded: all grammar operands are satisfied but the
	// instruction declares more words.
	StatusOperandExceeded

	// StatusOperandError: decoding an operand failed; the cause carries
	// the cursor-level error.
	StatusOperandError
)

var statusNames = [...]string{
	StatusComplete:              "complete",
	StatusConsumerStopRequested: "consumer stop requested",
	StatusConsumerError:         "consumer error",
	StatusHeaderIncomplete:      "header incomplete",
	StatusHeaderIncorrect:       "header incorrect",
	StatusEndiannessUnsupported: "endianness unsupported",
	StatusInstructionIncomplete: "instruction incomplete",
	StatusWordCountZero:         "word count zero",
	StatusOpcodeUnknown:         "opcode unknown",
	StatusOperandExpected:       "operand expected",
	StatusOperandExceeded:       "operand exceeded",
	StatusOperandError:          "operand error",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ParseError is the single error type returned by Parse. Status selects the
// variant; Offset, Index, Opcode, and Cause are populated per variant:
// structural errors carry the word offset of the failing record and the
// 1-based instruction index, OpcodeUnknown additionally carries the opcode,
// and consumer/header/operand errors wrap their originating cause.
type ParseError struct {
	Status Status
	Offset int
	Index  int
	Opcode uint16
	Cause  error
}

func (e *ParseError) Error() string {
	switch e.Status {
	case StatusConsumerStopRequested:
		return "stop parsing requested by consumer"
	case StatusConsumerError:
		return fmt.Sprintf("consumer error: %v", e.Cause)
	case StatusHeaderIncomplete:
		return fmt.Sprintf("incomplete module header: %v", e.Cause)
	case StatusHeaderIncorrect:
		return "incorrect module header"
	case StatusEndiannessUnsupported:
		return "unsupported endianness"
	case StatusInstructionIncomplete:
		return fmt.Sprintf("incomplete instruction #%d at offset %d",
			e.Index, e.Offset)
	case StatusWordCountZero:
		return fmt.Sprintf("zero word count found for instruction #%d at offset %d",
			e.Index, e.Offset)
	case StatusOpcodeUnknown:
		return fmt.Sprintf("unknown opcode (%d) for instruction #%d at offset %d",
			e.Opcode, e.Index, e.Offset)
	case StatusOperandExpected:
		return fmt.Sprintf("expected more operands for instruction #%d at offset %d",
			e.Index, e.Offset)
	case StatusOperandExceeded:
		return fmt.Sprintf("found extra operands for instruction #%d at offset %d",
			e.Index, e.Offset)
	case StatusOperandError:
		return fmt.Sprintf("operand decoding error: %v", e.Cause)
	}
	return "completed parsing"
}

// Unwrap returns the wrapped cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is matches two parse errors on status alone, so callers can test
// errors.Is(err, &ParseError{Status: StatusOpcodeUnknown}).
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && e.Status == t.Status
}
