package kernel

import (
	"github.com/hupe1980/quantgo/gate"
)

// Dispatcher invokes kernel functions against a raw amplitude buffer. It is
// a thin handle around the package's static dispatch tables carrying the
// threading mode kernels fan out with; constructing one is free.
//
// Every precondition is checked before any buffer mutation: a returned error
// guarantees the state is untouched.
type Dispatcher struct {
	threading Threading
}

// NewDispatcher returns a dispatcher whose kernels use the given threading
// mode.
func NewDispatcher(threading Threading) *Dispatcher {
	return &Dispatcher{threading: threading}
}

func (d *Dispatcher) exec() *exec {
	return &exec{threading: d.threading}
}

// HasGate reports whether a name resolves to a gate operation.
func HasGate(name string) bool {
	_, ok := gate.ParseGate(name)
	return ok
}

// ApplyGate applies a named gate with an explicit kernel choice.
func (d *Dispatcher) ApplyGate(k Kernel, data []complex128, numQubits int, op gate.GateOp, wires []int, inverse bool, params []float64) error {
	if err := validateOperation(op.String(), numQubits, wires, op.NumWires(), op.NumParams(), params); err != nil {
		return err
	}

	switch k {
	case Strided:
		fn, ok := stridedGateFns[op]
		if !ok {
			return &ErrKernelUnavailable{Kernel: k, Op: op.String()}
		}
		fn(d.exec(), data, numQubits, wires, inverse, params)
		return nil
	case GatherScatter:
		gatherGate(d.exec(), data, numQubits, op, wires, inverse, params)
		return nil
	default:
		return &ErrKernelUnavailable{Kernel: k, Op: op.String()}
	}
}

// ApplyGateByName resolves the operation name and applies it.
func (d *Dispatcher) ApplyGateByName(k Kernel, data []complex128, numQubits int, name string, wires []int, inverse bool, params []float64) error {
	op, ok := gate.ParseGate(name)
	if !ok {
		return &gate.ErrUnknownOperation{Name: name}
	}
	return d.ApplyGate(k, data, numQubits, op, wires, inverse, params)
}

// ApplyGenerator applies the generator of a parametric gate and returns its
// scalar coefficient.
func (d *Dispatcher) ApplyGenerator(k Kernel, data []complex128, numQubits int, op gate.GeneratorOp, wires []int, adjoint bool) (float64, error) {
	if err := validateOperation(op.String(), numQubits, wires, op.NumWires(), 0, nil); err != nil {
		return 0, err
	}

	if k != Strided {
		return 0, &ErrKernelUnavailable{Kernel: k, Op: op.String()}
	}
	fn, ok := stridedGeneratorFns[op]
	if !ok {
		return 0, &ErrKernelUnavailable{Kernel: k, Op: op.String()}
	}
	return fn(d.exec(), data, numQubits, wires, adjoint), nil
}

// ApplyMatrix applies a caller-supplied row-major matrix of side 2^|wires|.
func (d *Dispatcher) ApplyMatrix(k Kernel, data []complex128, numQubits int, m []complex128, wires []int, inverse bool) error {
	if err := validateWires(numQubits, wires); err != nil {
		return err
	}
	if err := validateMatrix(m, len(wires)); err != nil {
		return err
	}

	switch k {
	case Strided:
		switch len(wires) {
		case 1:
			stridedMatrixSingle(d.exec(), data, numQubits, m, wires, inverse)
		case 2:
			stridedMatrixTwo(d.exec(), data, numQubits, m, wires, inverse)
		default:
			return &ErrKernelUnavailable{Kernel: k, Op: gate.MatrixOpFor(len(wires)).String()}
		}
		return nil
	case GatherScatter:
		gatherMatrix(d.exec(), data, numQubits, m, wires, inverse, 0, 0)
		return nil
	default:
		return &ErrKernelUnavailable{Kernel: k, Op: gate.MatrixOpFor(len(wires)).String()}
	}
}

// ApplyControlledGate applies a named gate under the given control wires and
// values.
func (d *Dispatcher) ApplyControlledGate(k Kernel, data []complex128, numQubits int, op gate.ControlledGateOp, controlWires []int, controlValues []bool, wires []int, inverse bool, params []float64) error {
	if err := validateOperation(op.String(), numQubits, wires, op.NumWires(), op.NumParams(), params); err != nil {
		return err
	}
	if err := validateControls(numQubits, controlWires, controlValues, wires); err != nil {
		return err
	}
	cmask, cpattern := controlMasks(numQubits, controlWires, controlValues)

	switch k {
	case Strided:
		if op.NumWires() != 1 {
			return &ErrKernelUnavailable{Kernel: k, Op: op.String()}
		}
		stridedControlledGate(d.exec(), data, numQubits, op, cmask, cpattern, wires, inverse, params)
		return nil
	case GatherScatter:
		gatherControlledGate(d.exec(), data, numQubits, op, cmask, cpattern, wires, inverse, params)
		return nil
	default:
		return &ErrKernelUnavailable{Kernel: k, Op: op.String()}
	}
}

// ApplyControlledGenerator applies the generator of a controlled parametric
// gate and returns its scalar coefficient.
func (d *Dispatcher) ApplyControlledGenerator(k Kernel, data []complex128, numQubits int, op gate.ControlledGeneratorOp, controlWires []int, controlValues []bool, wires []int, adjoint bool) (float64, error) {
	if err := validateOperation(op.String(), numQubits, wires, op.NumWires(), 0, nil); err != nil {
		return 0, err
	}
	if err := validateControls(numQubits, controlWires, controlValues, wires); err != nil {
		return 0, err
	}

	if k != Strided {
		return 0, &ErrKernelUnavailable{Kernel: k, Op: op.String()}
	}
	fn, ok := stridedControlledGeneratorFns[op]
	if !ok {
		return 0, &ErrKernelUnavailable{Kernel: k, Op: op.String()}
	}
	cmask, cpattern := controlMasks(numQubits, controlWires, controlValues)
	return fn(d.exec(), data, numQubits, cmask, cpattern, wires, adjoint), nil
}

// ApplyControlledMatrix applies a caller-supplied matrix under the given
// control wires and values.
func (d *Dispatcher) ApplyControlledMatrix(k Kernel, data []complex128, numQubits int, m []complex128, controlWires []int, controlValues []bool, wires []int, inverse bool) error {
	if err := validateWires(numQubits, wires); err != nil {
		return err
	}
	if err := validateControls(numQubits, controlWires, controlValues, wires); err != nil {
		return err
	}
	if err := validateMatrix(m, len(wires)); err != nil {
		return err
	}
	cmask, cpattern := controlMasks(numQubits, controlWires, controlValues)

	switch k {
	case Strided:
		if len(wires) != 1 {
			return &ErrKernelUnavailable{Kernel: k, Op: gate.ControlledMatrixOpFor(len(wires)).String()}
		}
		stridedControlledMatrixSingle(d.exec(), data, numQubits, m, cmask, cpattern, wires, inverse)
		return nil
	case GatherScatter:
		gatherMatrix(d.exec(), data, numQubits, m, wires, inverse, cmask, cpattern)
		return nil
	default:
		return &ErrKernelUnavailable{Kernel: k, Op: gate.ControlledMatrixOpFor(len(wires)).String()}
	}
}

func validateOperation(opName string, numQubits int, wires []int, wantWires, wantParams int, params []float64) error {
	if len(wires) != wantWires {
		return &ErrWireCount{Op: opName, Expected: wantWires, Actual: len(wires)}
	}
	if err := validateWires(numQubits, wires); err != nil {
		return err
	}
	if len(params) != wantParams {
		return &gate.ErrParamCount{Op: opName, Expected: wantParams, Actual: len(params)}
	}
	return nil
}

func validateWires(numQubits int, wires []int) error {
	if len(wires) == 0 {
		return ErrNoWires
	}
	for i, w := range wires {
		if w < 0 || w >= numQubits {
			return &ErrWireOutOfRange{Wire: w, NumQubits: numQubits}
		}
		for j := 0; j < i; j++ {
			if wires[j] == w {
				return ErrDuplicateWires
			}
		}
	}
	return nil
}

func validateControls(numQubits int, controlWires []int, controlValues []bool, targets []int) error {
	if len(controlWires) != len(controlValues) {
		return &ErrControlLengthMismatch{Wires: len(controlWires), Values: len(controlValues)}
	}
	for i, w := range controlWires {
		if w < 0 || w >= numQubits {
			return &ErrWireOutOfRange{Wire: w, NumQubits: numQubits}
		}
		for j := 0; j < i; j++ {
			if controlWires[j] == w {
				return ErrDuplicateWires
			}
		}
		for _, t := range targets {
			if t == w {
				return ErrControlOverlap
			}
		}
	}
	return nil
}

func validateMatrix(m []complex128, numWires int) error {
	dim := 1 << numWires
	if len(m) != dim*dim {
		return &ErrDimensionMismatch{Expected: dim * dim, Actual: len(m)}
	}
	return nil
}

func controlMasks(numQubits int, controlWires []int, controlValues []bool) (mask, pattern int) {
	for i, w := range controlWires {
		s := wireStride(numQubits, w)
		mask |= s
		if controlValues[i] {
			pattern |= s
		}
	}
	return mask, pattern
}
