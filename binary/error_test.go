package binary

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseErrorMessages(t *testing.T) {
	cause := errors.New("underflow")

	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Status: StatusConsumerStopRequested},
			"stop parsing requested by consumer"},
		{&ParseError{Status: StatusConsumerError, Cause: cause},
			"consumer error: underflow"},
		{&ParseError{Status: StatusHeaderIncomplete, Cause: cause},
			"incomplete module header: underflow"},
		{&ParseError{Status: StatusHeaderIncorrect},
			"incorrect module header"},
		{&ParseError{Status: StatusEndiannessUnsupported},
			"unsupported endianness"},
		{&ParseError{Status: StatusInstructionIncomplete, Index: 2, Offset: 9},
			"incomplete instruction #2 at offset 9"},
		{&ParseError{Status: StatusWordCountZero, Index: 1, Offset: 5},
			"zero word count found for instruction #1 at offset 5"},
		{&ParseError{Status: StatusOpcodeUnknown, Opcode: 999, Index: 3, Offset: 12},
			"unknown opcode (999) for instruction #3 at offset 12"},
		{&ParseError{Status: StatusOperandExpected, Index: 1, Offset: 7},
			"expected more operands for instruction #1 at offset 7"},
		{&ParseError{Status: StatusOperandExceeded, Index: 1, Offset: 7},
			"found extra operands for instruction #1 at offset 7"},
		{&ParseError{Status: StatusOperandError, Cause: cause},
			"operand decoding error: underflow"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Status.String(), func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseErrorIs(t *testing.T) {
	err := fmt.Errorf("parse: %w",
		&ParseError{Status: StatusOpcodeUnknown, Opcode: 999})

	if !errors.Is(err, &ParseError{Status: StatusOpcodeUnknown}) {
		t.Error("errors.Is did not match on status")
	}
	if errors.Is(err, &ParseError{Status: StatusWordCountZero}) {
		t.Error("errors.Is matched a different status")
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("underflow")
	err := &ParseError{Status: StatusOperandError, Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach the cause")
	}
}

func TestStatusString(t *testing.T) {
	if got := StatusOperandExceeded.String(); got != "operand exceeded" {
		t.Errorf("String: got %q", got)
	}
	if got := Status(99).String(); got != "Status(99)" {
		t.Errorf("String out of range: got %q", got)
	}
}
