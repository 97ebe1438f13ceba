package binary

import (
	"go.uber.org/zap"

	"github.com/AlexxNica/rspirv/ir"
)

// TraceConsumer wraps a Consumer and logs every callback before forwarding
// it. Directives from the wrapped consumer pass through unchanged.
type TraceConsumer struct {
	next Consumer
	log  *zap.Logger
}

// NewTraceConsumer creates a tracing wrapper around next. A nil logger
// falls back to the package logger.
func NewTraceConsumer(next Consumer, log *zap.Logger) *TraceConsumer {
	if log == nil {
		log = Logger()
	}
	return &TraceConsumer{next: next, log: log}
}

func (t *TraceConsumer) Initialize() Action {
	t.log.Debug("parse started")
	return t.next.Initialize()
}

func (t *TraceConsumer) ConsumeHeader(header ir.ModuleHeader) Action {
	t.log.Debug("module header",
		zap.Uint8("major", header.MajorVersion()),
		zap.Uint8("minor", header.MinorVersion()),
		zap.Uint32("generator", header.Generator),
		zap.Uint32("bound", header.Bound),
		zap.Uint32("schema", header.Schema),
	)
	return t.next.ConsumeHeader(header)
}

func (t *TraceConsumer) ConsumeInstruction(inst ir.Instruction) Action {
	t.log.Debug("instruction",
		zap.Uint16("opcode", uint16(inst.Opcode)),
		zap.Uint32("result", inst.ResultID),
		zap.Int("operands", len(inst.Operands)),
	)
	return t.next.ConsumeInstruction(inst)
}

func (t *TraceConsumer) Finalize() Action {
	t.log.Debug("parse finished")
	return t.next.Finalize()
}
