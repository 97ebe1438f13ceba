package binary

import "github.com/AlexxNica/rspirv/ir"

type actionKind int8

const (
	actionContinue actionKind = iota
	actionStop
	actionError
)

// Action is the directive a consumer returns after each callback to steer
// the parse.
type Action struct {
	err  error
	kind actionKind
}

var (
	// Continue lets the parse proceed.
	Continue = Action{kind: actionContinue}

	// Stop aborts the parse cleanly; Parse returns a
	// StatusConsumerStopRequested error and issues no further callbacks.
	Stop = Action{kind: actionStop}
)

// Abort aborts the parse with an error attributed to the consumer; Parse
// returns a StatusConsumerError error wrapping err.
func Abort(err error) Action {
	return Action{kind: actionError, err: err}
}

// Consumer receives the parsed module piece by piece.
//
// Initialize is called before any decoding and Finalize after the whole
// buffer has been consumed. ConsumeHeader is called once after the module
// header validates, then ConsumeInstruction once per instruction in stream
// order. The parser honors the returned Action after every callback, so a
// consumer can end the parse from any of them. Values passed to the
// callbacks are owned by the consumer; the parser keeps no reference.
//
// A Consumer is driven by exactly one Parse call at a time.
type Consumer interface {
	Initialize() Action
	ConsumeHeader(header ir.ModuleHeader) Action
	ConsumeInstruction(inst ir.Instruction) Action
	Finalize() Action
}
