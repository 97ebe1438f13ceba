// Package binary decodes SPIR-V binary modules.
//
// The decoder is streaming: Parse walks the module once and pushes the
// header and each instruction to a caller-supplied Consumer, which steers
// the parse through the Action it returns from every callback. Load is the
// batch convenience built on top, collecting everything into an ir.Module.
//
// # Parsing
//
// Implement Consumer and feed it a module:
//
//	data, _ := os.ReadFile("shader.spv")
//	if err := binary.Parse(data, consumer); err != nil {
//	    var perr *binary.ParseError
//	    if errors.As(err, &perr) {
//	        log.Printf("parse failed: %v (instruction #%d)", perr, perr.Index)
//	    }
//	}
//
// Or load the whole module at once:
//
//	module, err := binary.Load(data)
//
// # Errors
//
// Every way a parse can fail is one variant of ParseError, discriminated by
// Status. Structural errors carry the word offset and 1-based instruction
// index of the failing record; consumer- and operand-originated errors wrap
// their cause. A parse either consumes the whole buffer and finalizes the
// consumer, or reports exactly one error; there is no partial success and
// no recovery.
//
// # Grammar
//
// Instruction decoding is driven by the static tables in the grammar
// package. Opcodes absent from the tables surface as StatusOpcodeUnknown.
package binary
