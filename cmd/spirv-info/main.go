// Command spirv-info inspects SPIR-V binary modules.
// It prints the module header and instruction statistics, and can browse
// the instruction stream interactively.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/AlexxNica/rspirv/binary"
	"github.com/AlexxNica/rspirv/grammar"
	"github.com/AlexxNica/rspirv/ir"
	"github.com/AlexxNica/rspirv/spirv"
)

var cli struct {
	File        string `arg:"" help:"SPIR-V binary module (.spv)" type:"existingfile"`
	Stats       bool   `help:"Print per-opcode instruction counts"`
	Verbose     bool   `short:"v" help:"Enable debug logging"`
	Interactive bool   `short:"i" help:"Browse instructions interactively"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("spirv-info"),
		kong.Description("Inspect a SPIR-V binary module."),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	data, err := os.ReadFile(cli.File)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	var log *zap.Logger
	if cli.Verbose {
		log, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer log.Sync()
		binary.SetLogger(log)
	}

	if cli.Interactive {
		return runInteractive(cli.File, data)
	}

	stats := newStatsConsumer()
	var consumer binary.Consumer = stats
	if log != nil {
		consumer = binary.NewTraceConsumer(stats, log)
	}
	if err := binary.Parse(data, consumer); err != nil {
		return fmt.Errorf("parse %s: %w", cli.File, err)
	}

	printHeader(stats.header)
	fmt.Printf("Instructions: %d\n", stats.count)
	if cli.Stats {
		printStats(stats.opcodes)
	}
	return nil
}

func printHeader(h ir.ModuleHeader) {
	fmt.Printf("Module:     %s\n", cli.File)
	fmt.Printf("Version:    %d.%d\n", h.MajorVersion(), h.MinorVersion())
	fmt.Printf("Generator:  0x%08x\n", h.Generator)
	fmt.Printf("Bound:      %d\n", h.Bound)
	fmt.Printf("Schema:     %d\n", h.Schema)
}

func printStats(opcodes map[spirv.Op]int) {
	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(opcodes))
	for op, n := range opcodes {
		entries = append(entries, entry{name: opcodeName(op), count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})

	fmt.Printf("\nOpcode counts:\n")
	for _, e := range entries {
		fmt.Printf("  %6d  %s\n", e.count, e.name)
	}
}

func opcodeName(op spirv.Op) string {
	if g, ok := grammar.LookupOpcode(op); ok {
		return g.Name
	}
	return fmt.Sprintf("Op(%d)", uint16(op))
}

// statsConsumer captures the header and counts instructions per opcode as
// they stream past.
type statsConsumer struct {
	header  ir.ModuleHeader
	count   int
	opcodes map[spirv.Op]int
}

func newStatsConsumer() *statsConsumer {
	return &statsConsumer{opcodes: make(map[spirv.Op]int)}
}

func (s *statsConsumer) Initialize() binary.Action { return binary.Continue }

func (s *statsConsumer) ConsumeHeader(header ir.ModuleHeader) binary.Action {
	s.header = header
	return binary.Continue
}

func (s *statsConsumer) ConsumeInstruction(inst ir.Instruction) binary.Action {
	s.count++
	s.opcodes[inst.Opcode]++
	return binary.Continue
}

func (s *statsConsumer) Finalize() binary.Action { return binary.Continue }
