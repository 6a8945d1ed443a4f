// Package quantgo provides a dense state-vector simulator core for quantum
// circuits.
//
// A StateVector owns 2^n complex amplitudes and applies gates, controlled
// gates, generators and raw unitary matrices in place. Kernel selection is
// resolved once at construction: every operation identifier is mapped to the
// best admissible numeric kernel for the configured qubit count, threading
// mode and memory model, and the maps never change afterwards.
//
// # Quick Start
//
//	sv, _ := quantgo.New(2, quantgo.WithSeed(42))
//	_ = sv.ApplyOperation("Hadamard", []int{0}, false)
//	_ = sv.ApplyOperation("CNOT", []int{0, 1}, false)
//
//	sample, _ := sv.Measure(0, quantgo.PostselectIgnore, false)
//	fmt.Println(sample) // 0 or 1, each with probability 1/2
//
// # Wire Ordering
//
// Wires are big-endian: wire 0 is the most significant bit of the basis
// state index. On two qubits the amplitude at index 2 (binary 10) is the
// |10> component, with wire 0 in state |1>.
//
// # Kernels
//
// Two kernels back every operation: a strided kernel with specialized
// bit-stride loops for single- and two-qubit operations, and a generic
// gather-scatter kernel covering any wire count. The QUANTGO_KERNEL
// environment variable forces one kernel for every operation that admits it.
package quantgo
