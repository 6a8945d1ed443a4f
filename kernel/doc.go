// Package kernel implements the numeric engine of the simulator: the static
// registry of kernel implementations per operation, the selection policy that
// resolves one kernel per operation identifier for a given configuration, and
// the dispatcher that validates arguments and invokes the chosen kernel
// against the raw amplitude buffer.
//
// Two kernel implementations exist. Strided walks the buffer in bit-stride
// blocks with loops specialized per gate; it covers single- and two-qubit
// operations and all generators. GatherScatter gathers the 2^q amplitudes of
// each subspace, multiplies by the operation matrix and scatters the result
// back; it covers every operation including multi-qubit matrices and
// arbitrary control sets.
//
// Kernel functions mutate the buffer in place. Under MultiThread they fan the
// outer loop out across an errgroup bounded by GOMAXPROCS and return only
// after all workers complete; no other allocation happens on the hot path
// beyond per-call scratch for the gather path.
package kernel
