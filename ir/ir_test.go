package ir

import (
	"testing"

	"github.com/AlexxNica/rspirv/grammar"
	"github.com/AlexxNica/rspirv/spirv"
)

func TestModuleHeaderVersion(t *testing.T) {
	tests := []struct {
		version      spirv.Word
		major, minor uint8
	}{
		{spirv.Version(1, 0), 1, 0},
		{spirv.Version(1, 3), 1, 3},
		{spirv.Version(2, 11), 2, 11},
	}

	for _, tt := range tests {
		h := ModuleHeader{Version: tt.version}
		if h.MajorVersion() != tt.major || h.MinorVersion() != tt.minor {
			t.Errorf("version 0x%08x: got %d.%d, want %d.%d",
				tt.version, h.MajorVersion(), h.MinorVersion(), tt.major, tt.minor)
		}
	}
}

func TestOperandString(t *testing.T) {
	tests := []struct {
		name    string
		operand Operand
		want    string
	}{
		{"id", Operand{Kind: grammar.IDRef, Word: 7}, "%7"},
		{"literal", Operand{Kind: grammar.LiteralInteger, Word: 42}, "42"},
		{"wide literal", Operand{
			Kind: grammar.LiteralContextDependentNumber,
			Word: 0x89abcdef,
			Wide: 0x0123456789abcdef,
		}, "81985529216486895"},
		{"string", Operand{Kind: grammar.LiteralString, Str: "main"}, `"main"`},
		{"enum symbol", Operand{Kind: grammar.Capability, Word: 1}, "Shader"},
		{"enum without symbol", Operand{Kind: grammar.Capability, Word: 9999}, "9999"},
		{"bit set", Operand{Kind: grammar.MemoryAccess, Word: 0x3}, "0x3"},
		{"unknown kind", Operand{Kind: grammar.OperandKind(-1), Word: 5},
			"OperandKind(-1)(5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.operand.String(); got != tt.want {
				t.Errorf("String: got %q, want %q", got, tt.want)
			}
		})
	}
}
