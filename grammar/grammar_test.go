package grammar

import (
	"reflect"
	"testing"

	"github.com/AlexxNica/rspirv/spirv"
)

func TestLookupOpcode(t *testing.T) {
	inst, ok := LookupOpcode(spirv.OpTypeInt)
	if !ok {
		t.Fatal("OpTypeInt not in table")
	}
	if inst.Name != "OpTypeInt" {
		t.Errorf("Name: got %q, want OpTypeInt", inst.Name)
	}
	if len(inst.Operands) != 3 {
		t.Errorf("operand count: got %d, want 3", len(inst.Operands))
	}

	if _, ok := LookupOpcode(spirv.Op(0xffff)); ok {
		t.Error("lookup of unassigned opcode succeeded")
	}
}

func TestLookupKind(t *testing.T) {
	def, ok := LookupKind(Capability)
	if !ok {
		t.Fatal("Capability not in table")
	}
	if def.Category != CategoryValueEnum {
		t.Errorf("Category: got %v, want CategoryValueEnum", def.Category)
	}

	if _, ok := LookupKind(OperandKind(-1)); ok {
		t.Error("lookup of bogus kind succeeded")
	}
}

func TestEnumerantLookup(t *testing.T) {
	def, _ := LookupKind(Decoration)

	e := def.Enumerant(30)
	if e == nil || e.Symbol != "Location" {
		t.Fatalf("Enumerant(30): got %+v, want Location", e)
	}
	if len(e.Parameters) != 1 || e.Parameters[0] != LiteralInteger {
		t.Errorf("Location parameters: got %v", e.Parameters)
	}

	if def.Enumerant(9999) != nil {
		t.Error("Enumerant(9999) matched")
	}
}

func TestEnumerantsMatchConstants(t *testing.T) {
	// The tables and the spirv package expose the same enumerants; lookups
	// by the typed constants must land on the matching symbol and
	// mandated parameters.
	tests := []struct {
		kind       OperandKind
		value      uint32
		symbol     string
		parameters []OperandKind
	}{
		{Capability, uint32(spirv.CapabilityShader), "Shader", nil},
		{SourceLanguage, uint32(spirv.SourceLanguageGLSL), "GLSL", nil},
		{StorageClass, uint32(spirv.StorageClassPushConstant), "PushConstant", nil},
		{Decoration, uint32(spirv.DecorationBuiltIn), "BuiltIn", params(BuiltIn)},
		{Decoration, uint32(spirv.DecorationLinkageAttributes), "LinkageAttributes",
			params(LiteralString, LinkageType)},
		{ExecutionMode, uint32(spirv.ExecutionModeLocalSize), "LocalSize",
			params(LiteralInteger, LiteralInteger, LiteralInteger)},
		{MemoryAccess, uint32(spirv.MemoryAccessAligned), "Aligned",
			params(LiteralInteger)},
		{ImageOperands, uint32(spirv.ImageOperandsGrad), "Grad",
			params(IDRef, IDRef)},
	}

	for _, tt := range tests {
		def, ok := LookupKind(tt.kind)
		if !ok {
			t.Fatalf("%s not in table", tt.kind)
		}
		e := def.Enumerant(tt.value)
		if e == nil {
			t.Errorf("%s: no enumerant for value %d", tt.kind, tt.value)
			continue
		}
		if e.Symbol != tt.symbol {
			t.Errorf("%s value %d: got symbol %q, want %q",
				tt.kind, tt.value, e.Symbol, tt.symbol)
		}
		if !reflect.DeepEqual(e.Parameters, tt.parameters) {
			t.Errorf("%s %s: parameters got %v, want %v",
				tt.kind, tt.symbol, e.Parameters, tt.parameters)
		}
	}
}

func TestBitEnumMask(t *testing.T) {
	def, _ := LookupKind(MemoryAccess)
	if got := def.Mask(); got != 0x07 {
		t.Errorf("Mask: got 0x%x, want 0x07", got)
	}
}

// Table invariants the parser relies on.

func TestEveryReferencedKindIsDefined(t *testing.T) {
	sawKind := func(k OperandKind) {
		t.Helper()
		if _, ok := LookupKind(k); !ok {
			t.Errorf("kind %s has no definition", k)
		}
	}

	for _, inst := range instructions {
		for _, lop := range inst.Operands {
			sawKind(lop.Kind)
		}
	}
	for i := range kinds {
		for _, base := range kinds[i].Bases {
			sawKind(base)
		}
		for _, e := range kinds[i].Enumerants {
			for _, p := range e.Parameters {
				sawKind(p)
			}
		}
	}
}

func TestVariadicOperandIsLast(t *testing.T) {
	for _, inst := range instructions {
		for i, lop := range inst.Operands {
			if lop.Quantifier == ZeroOrMore && i != len(inst.Operands)-1 {
				t.Errorf("%s: variadic operand %d is not last", inst.Name, i)
			}
		}
	}
}

func TestRequiredNeverFollowsOptional(t *testing.T) {
	for _, inst := range instructions {
		optionalSeen := false
		for i, lop := range inst.Operands {
			switch lop.Quantifier {
			case ZeroOrOne, ZeroOrMore:
				optionalSeen = true
			case One:
				if optionalSeen {
					t.Errorf("%s: required operand %d follows an optional one",
						inst.Name, i)
				}
			}
		}
	}
}

func TestResultOperandPositions(t *testing.T) {
	for _, inst := range instructions {
		for i, lop := range inst.Operands {
			switch lop.Kind {
			case IDResultType:
				if i != 0 {
					t.Errorf("%s: result type at position %d", inst.Name, i)
				}
			case IDResult:
				if i > 1 {
					t.Errorf("%s: result at position %d", inst.Name, i)
				}
			}
		}
	}
}

func TestValueEnumValuesUnique(t *testing.T) {
	for i := range kinds {
		def := &kinds[i]
		if def.Category != CategoryValueEnum && def.Category != CategoryBitEnum {
			continue
		}
		seen := make(map[uint32]string, len(def.Enumerants))
		for _, e := range def.Enumerants {
			if prev, dup := seen[e.Value]; dup {
				t.Errorf("%s: value %d shared by %s and %s",
					def.Kind, e.Value, prev, e.Symbol)
			}
			seen[e.Value] = e.Symbol
		}
	}
}

func TestCompositeKindsHaveBases(t *testing.T) {
	for i := range kinds {
		def := &kinds[i]
		if def.Category == CategoryComposite && len(def.Bases) == 0 {
			t.Errorf("%s: composite kind without bases", def.Kind)
		}
	}
}
