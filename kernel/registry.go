package kernel

import (
	"github.com/hupe1980/quantgo/gate"
)

// Constraint describes when a kernel implementation is applicable.
type Constraint struct {
	// MinQubits is the smallest state-vector size the implementation
	// admits.
	MinQubits int
	// MaxQubits is the largest admitted size; 0 means unbounded.
	MaxQubits int
	// NeedsAligned restricts the implementation to aligned buffers.
	NeedsAligned bool
}

func (c Constraint) admits(numQubits int, mm MemoryModel) bool {
	if numQubits < c.MinQubits {
		return false
	}
	if c.MaxQubits != 0 && numQubits > c.MaxQubits {
		return false
	}
	if c.NeedsAligned && mm != MemoryAligned {
		return false
	}
	return true
}

// Implementation annotates a kernel with its applicability constraints and a
// performance ranking per (threading, memory model) pair.
type Implementation struct {
	Kernel     Kernel
	Constraint Constraint
	// Priority ranks the implementation for each configuration, indexed
	// [Threading][MemoryModel]. Higher wins; ties go to registration
	// order.
	Priority [numThreadings][numMemoryModels]int
}

// Registry is the static catalog mapping each operation identifier to the
// kernel implementations capable of executing it. The default registry is
// built once at package init; custom registries exist for testing and
// benchmarking.
type Registry struct {
	gates       map[gate.GateOp][]Implementation
	generators  map[gate.GeneratorOp][]Implementation
	matrices    map[gate.MatrixOp][]Implementation
	cgates      map[gate.ControlledGateOp][]Implementation
	cgenerators map[gate.ControlledGeneratorOp][]Implementation
	cmatrices   map[gate.ControlledMatrixOp][]Implementation
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		gates:       make(map[gate.GateOp][]Implementation),
		generators:  make(map[gate.GeneratorOp][]Implementation),
		matrices:    make(map[gate.MatrixOp][]Implementation),
		cgates:      make(map[gate.ControlledGateOp][]Implementation),
		cgenerators: make(map[gate.ControlledGeneratorOp][]Implementation),
		cmatrices:   make(map[gate.ControlledMatrixOp][]Implementation),
	}
}

// RegisterGate adds an implementation for a gate operation.
func (r *Registry) RegisterGate(op gate.GateOp, impl Implementation) {
	r.gates[op] = append(r.gates[op], impl)
}

// RegisterGenerator adds an implementation for a generator operation.
func (r *Registry) RegisterGenerator(op gate.GeneratorOp, impl Implementation) {
	r.generators[op] = append(r.generators[op], impl)
}

// RegisterMatrix adds an implementation for a matrix operation.
func (r *Registry) RegisterMatrix(op gate.MatrixOp, impl Implementation) {
	r.matrices[op] = append(r.matrices[op], impl)
}

// RegisterControlledGate adds an implementation for a controlled gate.
func (r *Registry) RegisterControlledGate(op gate.ControlledGateOp, impl Implementation) {
	r.cgates[op] = append(r.cgates[op], impl)
}

// RegisterControlledGenerator adds an implementation for a controlled
// generator.
func (r *Registry) RegisterControlledGenerator(op gate.ControlledGeneratorOp, impl Implementation) {
	r.cgenerators[op] = append(r.cgenerators[op], impl)
}

// RegisterControlledMatrix adds an implementation for a controlled matrix
// operation.
func (r *Registry) RegisterControlledMatrix(op gate.ControlledMatrixOp, impl Implementation) {
	r.cmatrices[op] = append(r.cmatrices[op], impl)
}

// Priorities used by the default registry. Strided is preferred wherever it
// applies; the aligned memory model gives it a further edge since its block
// walks keep amplitude pairs on the same cache line.
var (
	stridedPriority = [numThreadings][numMemoryModels]int{
		SingleThread: {MemoryDefault: 20, MemoryAligned: 22},
		MultiThread:  {MemoryDefault: 20, MemoryAligned: 22},
	}
	gatherPriority = [numThreadings][numMemoryModels]int{
		SingleThread: {MemoryDefault: 10, MemoryAligned: 10},
		MultiThread:  {MemoryDefault: 10, MemoryAligned: 10},
	}
)

var defaultRegistry = buildDefaultRegistry()

// DefaultRegistry returns the process-wide registry holding every built-in
// kernel implementation. It is read-only after init.
func DefaultRegistry() *Registry { return defaultRegistry }

func buildDefaultRegistry() *Registry {
	r := NewRegistry()

	gatherImpl := Implementation{
		Kernel:     GatherScatter,
		Constraint: Constraint{MinQubits: 1},
		Priority:   gatherPriority,
	}

	for _, op := range gate.Gates() {
		if _, ok := stridedGateFns[op]; ok {
			r.RegisterGate(op, Implementation{
				Kernel:     Strided,
				Constraint: Constraint{MinQubits: op.NumWires()},
				Priority:   stridedPriority,
			})
		}
		r.RegisterGate(op, gatherImpl)
	}

	// Generators are implemented by the strided kernel only: they are
	// Pauli applications and projections, not matrix multiplications.
	for _, op := range gate.Generators() {
		r.RegisterGenerator(op, Implementation{
			Kernel:     Strided,
			Constraint: Constraint{MinQubits: op.NumWires()},
			Priority:   stridedPriority,
		})
	}

	for _, op := range gate.MatrixOps() {
		if op != gate.MultiQubitOp {
			r.RegisterMatrix(op, Implementation{
				Kernel:     Strided,
				Constraint: Constraint{MinQubits: minWiresFor(op)},
				Priority:   stridedPriority,
			})
		}
		r.RegisterMatrix(op, gatherImpl)
	}

	for _, op := range gate.ControlledGates() {
		if op.NumWires() == 1 {
			r.RegisterControlledGate(op, Implementation{
				Kernel:     Strided,
				Constraint: Constraint{MinQubits: 2},
				Priority:   stridedPriority,
			})
		}
		r.RegisterControlledGate(op, gatherImpl)
	}

	for _, op := range gate.ControlledGenerators() {
		r.RegisterControlledGenerator(op, Implementation{
			Kernel:     Strided,
			Constraint: Constraint{MinQubits: 2},
			Priority:   stridedPriority,
		})
	}

	for _, op := range gate.ControlledMatrixOps() {
		if op == gate.NCSingleQubitOp {
			r.RegisterControlledMatrix(op, Implementation{
				Kernel:     Strided,
				Constraint: Constraint{MinQubits: 2},
				Priority:   stridedPriority,
			})
		}
		r.RegisterControlledMatrix(op, gatherImpl)
	}

	return r
}

func minWiresFor(op gate.MatrixOp) int {
	switch op {
	case gate.SingleQubitOp:
		return 1
	case gate.TwoQubitOp:
		return 2
	default:
		return 3
	}
}

// Maps holds one resolved kernel per operation identifier, one map per
// operation family. Built once per state-vector instance and immutable
// thereafter.
type Maps struct {
	Gates                map[gate.GateOp]Kernel
	Generators           map[gate.GeneratorOp]Kernel
	Matrices             map[gate.MatrixOp]Kernel
	ControlledGates      map[gate.ControlledGateOp]Kernel
	ControlledGenerators map[gate.ControlledGeneratorOp]Kernel
	ControlledMatrices   map[gate.ControlledMatrixOp]Kernel
}

// Clone returns a deep copy of the maps.
func (m *Maps) Clone() *Maps {
	out := &Maps{
		Gates:                make(map[gate.GateOp]Kernel, len(m.Gates)),
		Generators:           make(map[gate.GeneratorOp]Kernel, len(m.Generators)),
		Matrices:             make(map[gate.MatrixOp]Kernel, len(m.Matrices)),
		ControlledGates:      make(map[gate.ControlledGateOp]Kernel, len(m.ControlledGates)),
		ControlledGenerators: make(map[gate.ControlledGeneratorOp]Kernel, len(m.ControlledGenerators)),
		ControlledMatrices:   make(map[gate.ControlledMatrixOp]Kernel, len(m.ControlledMatrices)),
	}
	for k, v := range m.Gates {
		out.Gates[k] = v
	}
	for k, v := range m.Generators {
		out.Generators[k] = v
	}
	for k, v := range m.Matrices {
		out.Matrices[k] = v
	}
	for k, v := range m.ControlledGates {
		out.ControlledGates[k] = v
	}
	for k, v := range m.ControlledGenerators {
		out.ControlledGenerators[k] = v
	}
	for k, v := range m.ControlledMatrices {
		out.ControlledMatrices[k] = v
	}
	return out
}

// Select resolves one kernel per operation identifier from the registry for
// the given configuration. The result is pure and deterministic: the same
// inputs always yield the same maps. It fails with ErrNoAdmissibleKernel if
// any identifier in the registry has no admissible implementation.
func Select(r *Registry, numQubits int, threading Threading, memoryModel MemoryModel) (*Maps, error) {
	maps := &Maps{
		Gates:                make(map[gate.GateOp]Kernel, len(r.gates)),
		Generators:           make(map[gate.GeneratorOp]Kernel, len(r.generators)),
		Matrices:             make(map[gate.MatrixOp]Kernel, len(r.matrices)),
		ControlledGates:      make(map[gate.ControlledGateOp]Kernel, len(r.cgates)),
		ControlledGenerators: make(map[gate.ControlledGeneratorOp]Kernel, len(r.cgenerators)),
		ControlledMatrices:   make(map[gate.ControlledMatrixOp]Kernel, len(r.cmatrices)),
	}

	for op, impls := range r.gates {
		k, err := selectOne(op.String(), impls, numQubits, threading, memoryModel)
		if err != nil {
			return nil, err
		}
		maps.Gates[op] = k
	}
	for op, impls := range r.generators {
		k, err := selectOne(op.String(), impls, numQubits, threading, memoryModel)
		if err != nil {
			return nil, err
		}
		maps.Generators[op] = k
	}
	for op, impls := range r.matrices {
		k, err := selectOne(op.String(), impls, numQubits, threading, memoryModel)
		if err != nil {
			return nil, err
		}
		maps.Matrices[op] = k
	}
	for op, impls := range r.cgates {
		k, err := selectOne(op.String(), impls, numQubits, threading, memoryModel)
		if err != nil {
			return nil, err
		}
		maps.ControlledGates[op] = k
	}
	for op, impls := range r.cgenerators {
		k, err := selectOne(op.String(), impls, numQubits, threading, memoryModel)
		if err != nil {
			return nil, err
		}
		maps.ControlledGenerators[op] = k
	}
	for op, impls := range r.cmatrices {
		k, err := selectOne(op.String(), impls, numQubits, threading, memoryModel)
		if err != nil {
			return nil, err
		}
		maps.ControlledMatrices[op] = k
	}

	return maps, nil
}

func selectOne(opName string, impls []Implementation, numQubits int, threading Threading, memoryModel MemoryModel) (Kernel, error) {
	best := -1
	bestPriority := 0

	for i, impl := range impls {
		if !impl.Constraint.admits(numQubits, memoryModel) {
			continue
		}
		if forced, ok := ForcedKernel(); ok && impl.Kernel == forced {
			// A valid environment override wins outright when the
			// forced kernel admits the operation.
			return impl.Kernel, nil
		}
		if p := impl.Priority[threading][memoryModel]; best == -1 || p > bestPriority {
			best = i
			bestPriority = p
		}
	}

	if best == -1 {
		return 0, &ErrNoAdmissibleKernel{Op: opName, NumQubits: numQubits}
	}

	return impls[best].Kernel, nil
}
