package quantgo

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hupe1980/quantgo/kernel"
)

// PostselectIgnore disables postselection in Measure.
const PostselectIgnore = -1

// machineEps is the double-precision machine epsilon.
const machineEps = 0x1p-52

// Seed reseeds the measurement RNG stream. Sampling after two identical
// seeds produces identical sequences.
func (sv *StateVector) Seed(seed uint64) {
	sv.rng = rand.New(rand.NewPCG(seed, 0))
}

// Probs returns the marginal probabilities of observing the wire in |0>
// and |1>. The |1> probability is the complement of the |0> probability,
// so the pair always sums to one.
func (sv *StateVector) Probs(wire int) ([2]float64, error) {
	start := time.Now()

	if err := sv.checkWire(wire); err != nil {
		err = translateError(err)
		sv.metrics.RecordMeasure(wire, time.Since(start), err)
		return [2]float64{}, err
	}

	st := 1 << (sv.numQubits - 1 - wire)
	var p0 float64
	for i, a := range sv.data {
		if i&st == 0 {
			p0 += real(a)*real(a) + imag(a)*imag(a)
		}
	}

	sv.metrics.RecordMeasure(wire, time.Since(start), nil)
	return [2]float64{p0, 1 - p0}, nil
}

// Collapse projects the state onto the given branch of the wire: the
// disagreeing branch is zeroed and the remainder renormalized. If the
// surviving branch carries (numerically) no weight the state is left
// unnormalized.
func (sv *StateVector) Collapse(wire, branch int) error {
	start := time.Now()
	err := translateError(sv.collapse(wire, branch))
	sv.metrics.RecordMeasure(wire, time.Since(start), err)
	return err
}

func (sv *StateVector) collapse(wire, branch int) error {
	if err := sv.checkWire(wire); err != nil {
		return err
	}
	if branch != 0 && branch != 1 {
		return fmt.Errorf("%w: branch must be 0 or 1, got %d", ErrInvalidArgument, branch)
	}

	// Zero the branch that disagrees with the outcome.
	st := 1 << (sv.numQubits - 1 - wire)
	zeroBit := 0
	if branch == 0 {
		zeroBit = st
	}
	for i := range sv.data {
		if i&st == zeroBit {
			sv.data[i] = 0
		}
	}

	sv.Normalize()
	return nil
}

// Normalize rescales the amplitudes to unit norm in a single pass. States
// with norm at or below 100 times machine epsilon are left untouched: after
// a failed projection there is nothing meaningful to rescale.
func (sv *StateVector) Normalize() {
	var sum float64
	for _, a := range sv.data {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}

	norm := math.Sqrt(sum)
	if norm <= 100*machineEps {
		return
	}

	inv := complex(1/norm, 0)
	for i := range sv.data {
		sv.data[i] *= inv
	}
}

// Measure samples the wire in the computational basis and collapses the
// state onto the observed branch.
//
// If postselect is 0 or 1 and the sample disagrees, the state is reset to
// the zero basis state and the sample is -1. Pass PostselectIgnore to
// disable postselection. With reset, an observed |1> is flipped back to |0>
// with a PauliX after the collapse.
func (sv *StateVector) Measure(wire, postselect int, reset bool) (int, error) {
	start := time.Now()
	sample, err := sv.measure(wire, postselect, reset)
	err = translateError(err)
	sv.metrics.RecordMeasure(wire, time.Since(start), err)
	sv.logger.LogMeasure(wire, sample, err)
	return sample, err
}

func (sv *StateVector) measure(wire, postselect int, reset bool) (int, error) {
	if err := sv.checkWire(wire); err != nil {
		return 0, err
	}
	if postselect != PostselectIgnore && postselect != 0 && postselect != 1 {
		return 0, fmt.Errorf("%w: postselect must be 0, 1 or PostselectIgnore, got %d", ErrInvalidArgument, postselect)
	}

	st := 1 << (sv.numQubits - 1 - wire)
	var p0 float64
	for i, a := range sv.data {
		if i&st == 0 {
			p0 += real(a)*real(a) + imag(a)*imag(a)
		}
	}

	sample := 1
	if sv.rng.Float64() < p0 {
		sample = 0
	}

	if postselect != PostselectIgnore && sample != postselect {
		if err := sv.SetBasisState(0); err != nil {
			return 0, err
		}
		return -1, nil
	}

	if err := sv.collapse(wire, sample); err != nil {
		return 0, err
	}

	if reset && sample == 1 {
		if err := sv.ApplyOperation("PauliX", []int{wire}, false); err != nil {
			return 0, err
		}
	}

	return sample, nil
}

// ApplyMidMeasure performs a mid-circuit measurement on exactly one wire.
// postselect carries at most one value; empty means no postselection.
func (sv *StateVector) ApplyMidMeasure(wires []int, postselect []int, reset bool) (int, error) {
	if len(wires) != 1 {
		return 0, fmt.Errorf("%w: mid-circuit measurement takes exactly one wire, got %d", ErrInvalidArgument, len(wires))
	}
	if len(postselect) > 1 {
		return 0, fmt.Errorf("%w: at most one postselect value, got %d", ErrInvalidArgument, len(postselect))
	}

	ps := PostselectIgnore
	if len(postselect) == 1 {
		ps = postselect[0]
	}
	return sv.Measure(wires[0], ps, reset)
}

func (sv *StateVector) checkWire(wire int) error {
	if wire < 0 || wire >= sv.numQubits {
		return &kernel.ErrWireOutOfRange{Wire: wire, NumQubits: sv.numQubits}
	}
	return nil
}
