// Package rspirv is a Go library for working with SPIR-V binary modules.
//
// The library decodes a SPIR-V binary into a structured in-memory
// representation, delivered incrementally to a caller-supplied consumer.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	rspirv/
//	├── spirv/     SPIR-V vocabulary: word type, magic, opcodes, enumerants
//	├── grammar/   Static instruction and operand-kind grammar tables
//	├── binary/    Streaming binary parser, consumer protocol, module loader
//	├── ir/        In-memory representation of headers and instructions
//	└── cmd/       spirv-info module inspector
//
// # Quick Start
//
// Load a module into memory:
//
//	data, _ := os.ReadFile("shader.spv")
//	module, err := binary.Load(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, inst := range module.Instructions {
//	    fmt.Println(inst.Opcode)
//	}
//
// Or stream it through your own binary.Consumer to avoid materializing the
// whole module.
package rspirv
