package binary

import (
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/AlexxNica/rspirv/spirv"
)

func TestTraceConsumerForwards(t *testing.T) {
	words := moduleWords([]spirv.Word{instWord(2, spirv.OpTypeVoid), 1})

	r := &recorder{}
	if err := ParseWords(words, NewTraceConsumer(r, zap.NewNop())); err != nil {
		t.Fatalf("ParseWords: %v", err)
	}

	want := []string{"Initialize", "ConsumeHeader", "ConsumeInstruction", "Finalize"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls: got %v, want %v", r.calls, want)
	}
	if len(r.insts) != 1 || r.insts[0].ResultID != 1 {
		t.Errorf("instructions: got %+v", r.insts)
	}
}

func TestTraceConsumerPassesDirectivesThrough(t *testing.T) {
	words := moduleWords([]spirv.Word{instWord(1, spirv.OpNop)})

	r := &recorder{instAction: Stop}
	err := ParseWords(words, NewTraceConsumer(r, nil))
	assertStatus(t, err, StatusConsumerStopRequested)
}
