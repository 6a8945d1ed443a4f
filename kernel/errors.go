package kernel

import (
	"errors"
	"fmt"
)

// ErrNoAdmissibleKernel indicates that the registry holds no kernel whose
// applicability constraints admit the configuration. This is a configuration
// error: state-vector construction must abort.
type ErrNoAdmissibleKernel struct {
	Op        string
	NumQubits int
}

func (e *ErrNoAdmissibleKernel) Error() string {
	return fmt.Sprintf("no admissible kernel for %s with %d qubit(s)", e.Op, e.NumQubits)
}

// ErrKernelUnavailable indicates an explicit kernel choice that does not
// implement the requested operation.
type ErrKernelUnavailable struct {
	Kernel Kernel
	Op     string
}

func (e *ErrKernelUnavailable) Error() string {
	return fmt.Sprintf("kernel %s does not implement %s", e.Kernel, e.Op)
}

// ErrWireOutOfRange indicates a wire index outside [0, numQubits).
type ErrWireOutOfRange struct {
	Wire      int
	NumQubits int
}

func (e *ErrWireOutOfRange) Error() string {
	return fmt.Sprintf("wire %d out of range for %d qubit(s)", e.Wire, e.NumQubits)
}

// ErrWireCount indicates a wire list whose length does not match the
// operation's fixed arity.
type ErrWireCount struct {
	Op       string
	Expected int
	Actual   int
}

func (e *ErrWireCount) Error() string {
	return fmt.Sprintf("%s acts on %d wire(s), got %d", e.Op, e.Expected, e.Actual)
}

// ErrControlLengthMismatch indicates control wires and control values of
// different lengths.
type ErrControlLengthMismatch struct {
	Wires  int
	Values int
}

func (e *ErrControlLengthMismatch) Error() string {
	return fmt.Sprintf("control wires and control values must have the same length: %d != %d", e.Wires, e.Values)
}

// ErrDimensionMismatch indicates a matrix whose size does not match
// (2^wires)^2.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("matrix size mismatch: expected %d entries, got %d", e.Expected, e.Actual)
}

var (
	// ErrDuplicateWires is returned when a wire list repeats an index.
	ErrDuplicateWires = errors.New("wires must be distinct")

	// ErrControlOverlap is returned when control wires intersect target
	// wires.
	ErrControlOverlap = errors.New("control wires must be disjoint from target wires")

	// ErrNoWires is returned when an operation is given an empty wire list.
	ErrNoWires = errors.New("number of wires must be larger than 0")
)
