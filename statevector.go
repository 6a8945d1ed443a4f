package quantgo

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hupe1980/quantgo/buffer"
	"github.com/hupe1980/quantgo/gate"
	"github.com/hupe1980/quantgo/kernel"
)

// Storage is the backing store a state vector operates on. The core holds a
// non-owning view of the amplitude slice; any type exposing 2^NumQubits
// contiguous amplitudes can serve.
type Storage interface {
	// Data returns the backing amplitude slice.
	Data() []complex128
	// NumQubits returns the number of qubits the storage represents.
	NumQubits() int
	// SetBasisState overwrites the storage with a computational basis
	// state.
	SetBasisState(index uint64) error
}

// StateVector is a dense n-qubit quantum state with in-place operation
// application and measurement. All kernel choices are resolved at
// construction; the resulting operation-to-kernel maps are immutable.
//
// A StateVector is not safe for concurrent use.
type StateVector struct {
	storage     Storage
	data        []complex128
	numQubits   int
	threading   kernel.Threading
	memoryModel kernel.MemoryModel
	maps        *kernel.Maps
	dispatcher  *kernel.Dispatcher
	rng         *rand.Rand
	logger      *Logger
	metrics     MetricsCollector
}

// New creates a state vector of numQubits qubits initialized to the zero
// basis state, with storage allocated under the configured memory model.
func New(numQubits int, optFns ...Option) (*StateVector, error) {
	if numQubits <= 0 {
		return nil, fmt.Errorf("%w: number of qubits must be positive, got %d", ErrInvalidArgument, numQubits)
	}

	o := applyOptions(optFns)
	return newStateVector(buffer.New(numQubits, o.memoryModel), o)
}

// NewWithStorage creates a state vector operating on caller-owned storage.
// The storage contents are taken as-is; they are not reset.
func NewWithStorage(storage Storage, optFns ...Option) (*StateVector, error) {
	n := storage.NumQubits()
	if n <= 0 {
		return nil, fmt.Errorf("%w: number of qubits must be positive, got %d", ErrInvalidArgument, n)
	}
	if len(storage.Data()) != 1<<n {
		return nil, fmt.Errorf("%w: storage holds %d amplitudes, want %d", ErrInvalidArgument, len(storage.Data()), 1<<n)
	}

	return newStateVector(storage, applyOptions(optFns))
}

func newStateVector(storage Storage, o options) (*StateVector, error) {
	numQubits := storage.NumQubits()

	maps, err := kernel.Select(o.registry, numQubits, o.threading, o.memoryModel)
	if err != nil {
		return nil, translateError(err)
	}

	var rng *rand.Rand
	if o.seeded {
		rng = rand.New(rand.NewPCG(o.seed, 0))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	sv := &StateVector{
		storage:     storage,
		data:        storage.Data(),
		numQubits:   numQubits,
		threading:   o.threading,
		memoryModel: o.memoryModel,
		maps:        maps,
		dispatcher:  kernel.NewDispatcher(o.threading),
		rng:         rng,
		logger:      o.logger,
		metrics:     o.metricsCollector,
	}

	sv.logger.Debug("kernel maps selected",
		"num_qubits", numQubits,
		"threading", o.threading.String(),
		"memory_model", o.memoryModel.String(),
	)

	return sv, nil
}

// NumQubits returns the number of qubits.
func (sv *StateVector) NumQubits() int { return sv.numQubits }

// Len returns the number of amplitudes, 2^NumQubits.
func (sv *StateVector) Len() int { return len(sv.data) }

// Threading returns the threading mode fixed at construction.
func (sv *StateVector) Threading() kernel.Threading { return sv.threading }

// MemoryModel returns the memory model fixed at construction.
func (sv *StateVector) MemoryModel() kernel.MemoryModel { return sv.memoryModel }

// SupportedKernels returns a copy of the resolved operation-to-kernel maps.
func (sv *StateVector) SupportedKernels() *kernel.Maps { return sv.maps.Clone() }

// Amplitudes returns a copy of the current amplitudes.
func (sv *StateVector) Amplitudes() []complex128 {
	out := make([]complex128, len(sv.data))
	copy(out, sv.data)
	return out
}

// SetBasisState overwrites the state with the computational basis state of
// the given index. The kernel maps are untouched.
func (sv *StateVector) SetBasisState(index uint64) error {
	if err := sv.storage.SetBasisState(index); err != nil {
		return translateError(err)
	}
	sv.data = sv.storage.Data()
	return nil
}

func (sv *StateVector) finishApply(name string, wires []int, start time.Time, err error) error {
	err = translateError(err)
	sv.metrics.RecordApply(name, time.Since(start), err)
	sv.logger.LogApply(name, wires, err)
	return err
}

// resolveKernel looks up the construction-time kernel for an operation. A
// custom registry may carry no entry for it at all, which Select cannot
// catch; a silent map miss would fall back to the zero-valued kernel.
func resolveKernel[O comparable](m map[O]kernel.Kernel, op O, name string) (kernel.Kernel, error) {
	k, ok := m[op]
	if !ok {
		return 0, fmt.Errorf("%w: no kernel resolved for operation %q", ErrConfiguration, name)
	}
	return k, nil
}

// ApplyOperation applies a named gate in place. The kernel comes from the
// map resolved at construction.
func (sv *StateVector) ApplyOperation(name string, wires []int, inverse bool, params ...float64) error {
	op, ok := gate.ParseGate(name)
	if !ok {
		return sv.finishApply(name, wires, time.Now(), &gate.ErrUnknownOperation{Name: name})
	}
	k, err := resolveKernel(sv.maps.Gates, op, name)
	if err != nil {
		return sv.finishApply(name, wires, time.Now(), err)
	}
	return sv.applyGate(k, op, wires, inverse, params)
}

// ApplyOperationWithKernel applies a named gate with an explicit kernel
// choice, bypassing the resolved map.
func (sv *StateVector) ApplyOperationWithKernel(k kernel.Kernel, name string, wires []int, inverse bool, params ...float64) error {
	op, ok := gate.ParseGate(name)
	if !ok {
		return sv.finishApply(name, wires, time.Now(), &gate.ErrUnknownOperation{Name: name})
	}
	return sv.applyGate(k, op, wires, inverse, params)
}

func (sv *StateVector) applyGate(k kernel.Kernel, op gate.GateOp, wires []int, inverse bool, params []float64) error {
	start := time.Now()
	err := sv.dispatcher.ApplyGate(k, sv.data, sv.numQubits, op, wires, inverse, params)
	return sv.finishApply(op.String(), wires, start, err)
}

// ApplyOperationOrMatrix applies a named gate if the name resolves, and
// falls back to the supplied matrix otherwise. The matrix must be row-major
// with side 2^len(wires).
func (sv *StateVector) ApplyOperationOrMatrix(name string, wires []int, inverse bool, params []float64, matrix []complex128) error {
	if op, ok := gate.ParseGate(name); ok {
		k, err := resolveKernel(sv.maps.Gates, op, name)
		if err != nil {
			return sv.finishApply(name, wires, time.Now(), err)
		}
		return sv.applyGate(k, op, wires, inverse, params)
	}
	if len(matrix) == 0 {
		return sv.finishApply(name, wires, time.Now(), &gate.ErrUnknownOperation{Name: name})
	}
	return sv.ApplyMatrix(matrix, wires, inverse)
}

// ApplyMatrix applies a row-major unitary matrix of side 2^len(wires) in
// place. The inverse flag applies the conjugate transpose instead.
func (sv *StateVector) ApplyMatrix(m []complex128, wires []int, inverse bool) error {
	op := gate.MatrixOpFor(len(wires))
	k, err := resolveKernel(sv.maps.Matrices, op, op.String())
	if err != nil {
		return sv.finishApply(op.String(), wires, time.Now(), err)
	}
	return sv.applyMatrix(k, op, m, wires, inverse)
}

// ApplyMatrixWithKernel applies a matrix with an explicit kernel choice.
func (sv *StateVector) ApplyMatrixWithKernel(k kernel.Kernel, m []complex128, wires []int, inverse bool) error {
	return sv.applyMatrix(k, gate.MatrixOpFor(len(wires)), m, wires, inverse)
}

func (sv *StateVector) applyMatrix(k kernel.Kernel, op gate.MatrixOp, m []complex128, wires []int, inverse bool) error {
	start := time.Now()
	err := sv.dispatcher.ApplyMatrix(k, sv.data, sv.numQubits, m, wires, inverse)
	return sv.finishApply(op.String(), wires, start, err)
}

// ApplyControlledOperation applies a named gate under the given control
// wires and values. Empty controls delegate to the plain path.
func (sv *StateVector) ApplyControlledOperation(name string, controlWires []int, controlValues []bool, wires []int, inverse bool, params ...float64) error {
	if len(controlWires) == 0 && len(controlValues) == 0 {
		return sv.ApplyOperation(name, wires, inverse, params...)
	}

	op, ok := gate.ParseControlledGate(name)
	if !ok {
		return sv.finishApply(name, wires, time.Now(), &gate.ErrUnknownOperation{Name: name})
	}
	k, err := resolveKernel(sv.maps.ControlledGates, op, name)
	if err != nil {
		return sv.finishApply(name, wires, time.Now(), err)
	}
	return sv.applyControlledGate(k, op, controlWires, controlValues, wires, inverse, params)
}

// ApplyControlledOperationWithKernel applies a controlled gate with an
// explicit kernel choice.
func (sv *StateVector) ApplyControlledOperationWithKernel(k kernel.Kernel, name string, controlWires []int, controlValues []bool, wires []int, inverse bool, params ...float64) error {
	if len(controlWires) == 0 && len(controlValues) == 0 {
		return sv.ApplyOperationWithKernel(k, name, wires, inverse, params...)
	}

	op, ok := gate.ParseControlledGate(name)
	if !ok {
		return sv.finishApply(name, wires, time.Now(), &gate.ErrUnknownOperation{Name: name})
	}
	return sv.applyControlledGate(k, op, controlWires, controlValues, wires, inverse, params)
}

func (sv *StateVector) applyControlledGate(k kernel.Kernel, op gate.ControlledGateOp, controlWires []int, controlValues []bool, wires []int, inverse bool, params []float64) error {
	start := time.Now()
	err := sv.dispatcher.ApplyControlledGate(k, sv.data, sv.numQubits, op, controlWires, controlValues, wires, inverse, params)
	return sv.finishApply(op.String(), wires, start, err)
}

// ApplyControlledOperationOrMatrix applies a named controlled gate if the
// name resolves, and falls back to the supplied target matrix otherwise.
func (sv *StateVector) ApplyControlledOperationOrMatrix(name string, controlWires []int, controlValues []bool, wires []int, inverse bool, params []float64, matrix []complex128) error {
	if len(controlWires) == 0 && len(controlValues) == 0 {
		return sv.ApplyOperationOrMatrix(name, wires, inverse, params, matrix)
	}

	if op, ok := gate.ParseControlledGate(name); ok {
		k, err := resolveKernel(sv.maps.ControlledGates, op, name)
		if err != nil {
			return sv.finishApply(name, wires, time.Now(), err)
		}
		return sv.applyControlledGate(k, op, controlWires, controlValues, wires, inverse, params)
	}
	if len(matrix) == 0 {
		return sv.finishApply(name, wires, time.Now(), &gate.ErrUnknownOperation{Name: name})
	}
	return sv.ApplyControlledMatrix(matrix, controlWires, controlValues, wires, inverse)
}

// ApplyControlledMatrix applies a row-major target matrix under the given
// control wires and values.
func (sv *StateVector) ApplyControlledMatrix(m []complex128, controlWires []int, controlValues []bool, wires []int, inverse bool) error {
	op := gate.ControlledMatrixOpFor(len(wires))
	k, err := resolveKernel(sv.maps.ControlledMatrices, op, op.String())
	if err != nil {
		return sv.finishApply(op.String(), wires, time.Now(), err)
	}
	return sv.applyControlledMatrix(k, op, m, controlWires, controlValues, wires, inverse)
}

// ApplyControlledMatrixWithKernel applies a controlled matrix with an
// explicit kernel choice.
func (sv *StateVector) ApplyControlledMatrixWithKernel(k kernel.Kernel, m []complex128, controlWires []int, controlValues []bool, wires []int, inverse bool) error {
	return sv.applyControlledMatrix(k, gate.ControlledMatrixOpFor(len(wires)), m, controlWires, controlValues, wires, inverse)
}

func (sv *StateVector) applyControlledMatrix(k kernel.Kernel, op gate.ControlledMatrixOp, m []complex128, controlWires []int, controlValues []bool, wires []int, inverse bool) error {
	start := time.Now()
	err := sv.dispatcher.ApplyControlledMatrix(k, sv.data, sv.numQubits, m, controlWires, controlValues, wires, inverse)
	return sv.finishApply(op.String(), wires, start, err)
}

// ApplyGenerator applies the generator of a named parametric gate in place
// and returns its scalar coefficient.
func (sv *StateVector) ApplyGenerator(name string, wires []int, adjoint bool) (float64, error) {
	op, ok := gate.ParseGenerator(name)
	if !ok {
		return 0, sv.finishGenerator(name, time.Now(), &gate.ErrUnknownOperation{Name: name})
	}
	k, err := resolveKernel(sv.maps.Generators, op, name)
	if err != nil {
		return 0, sv.finishGenerator(name, time.Now(), err)
	}
	return sv.applyGenerator(k, op, wires, adjoint)
}

// ApplyGeneratorWithKernel applies a generator with an explicit kernel
// choice.
func (sv *StateVector) ApplyGeneratorWithKernel(k kernel.Kernel, name string, wires []int, adjoint bool) (float64, error) {
	op, ok := gate.ParseGenerator(name)
	if !ok {
		return 0, sv.finishGenerator(name, time.Now(), &gate.ErrUnknownOperation{Name: name})
	}
	return sv.applyGenerator(k, op, wires, adjoint)
}

func (sv *StateVector) applyGenerator(k kernel.Kernel, op gate.GeneratorOp, wires []int, adjoint bool) (float64, error) {
	start := time.Now()
	coeff, err := sv.dispatcher.ApplyGenerator(k, sv.data, sv.numQubits, op, wires, adjoint)
	return coeff, sv.finishGenerator(op.String(), start, err)
}

// ApplyControlledGenerator applies the generator of a named parametric gate
// under the given control wires and values, returning its coefficient.
// Empty controls delegate to the plain generator path.
func (sv *StateVector) ApplyControlledGenerator(name string, controlWires []int, controlValues []bool, wires []int, adjoint bool) (float64, error) {
	if len(controlWires) == 0 && len(controlValues) == 0 {
		return sv.ApplyGenerator(name, wires, adjoint)
	}

	op, ok := gate.ParseControlledGenerator(name)
	if !ok {
		return 0, sv.finishGenerator(name, time.Now(), &gate.ErrUnknownOperation{Name: name})
	}
	k, err := resolveKernel(sv.maps.ControlledGenerators, op, name)
	if err != nil {
		return 0, sv.finishGenerator(name, time.Now(), err)
	}

	start := time.Now()
	coeff, err := sv.dispatcher.ApplyControlledGenerator(k, sv.data, sv.numQubits, op, controlWires, controlValues, wires, adjoint)
	return coeff, sv.finishGenerator(op.String(), start, err)
}

func (sv *StateVector) finishGenerator(name string, start time.Time, err error) error {
	err = translateError(err)
	sv.metrics.RecordGenerator(name, time.Since(start), err)
	return err
}
