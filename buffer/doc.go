// Package buffer provides the amplitude storage backing a state vector.
//
// A Buffer owns a contiguous complex128 slice of length 2^n for n qubits.
// Depending on the memory model it is allocated either through the Go runtime
// or on a 64-byte boundary so SIMD-friendly kernels can assume alignment.
package buffer
