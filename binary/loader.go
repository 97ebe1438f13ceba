package binary

import "github.com/AlexxNica/rspirv/ir"

// Loader is a Consumer that assembles the whole module in memory.
type Loader struct {
	module ir.Module
}

// NewLoader creates an empty Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Module returns the module assembled so far.
func (l *Loader) Module() *ir.Module {
	return &l.module
}

func (l *Loader) Initialize() Action { return Continue }

func (l *Loader) ConsumeHeader(header ir.ModuleHeader) Action {
	l.module.Header = &header
	return Continue
}

func (l *Loader) ConsumeInstruction(inst ir.Instruction) Action {
	l.module.Instructions = append(l.module.Instructions, inst)
	return Continue
}

func (l *Loader) Finalize() Action { return Continue }

// Load parses a binary module into an ir.Module.
func Load(data []byte) (*ir.Module, error) {
	l := NewLoader()
	if err := Parse(data, l); err != nil {
		return nil, err
	}
	return l.Module(), nil
}
