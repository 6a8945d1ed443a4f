package kernel

import "strings"

// Kernel identifies a numeric kernel implementation.
type Kernel uint8

const (
	// Strided walks the buffer in bit-stride blocks with per-gate
	// specialized loops. Single- and two-qubit operations only.
	Strided Kernel = iota
	// GatherScatter gathers subspace amplitudes, multiplies by the
	// operation matrix and scatters back. Covers every operation.
	GatherScatter

	numKernels
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Strided:
		return "strided"
	case GatherScatter:
		return "gather-scatter"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strided":
		return Strided, true
	case "gather-scatter", "gatherscatter":
		return GatherScatter, true
	default:
		return Strided, false
	}
}

// Threading selects how kernels use worker goroutines. It is fixed at
// state-vector construction and drives kernel selection and in-kernel
// fan-out only; it is never consulted per call site beyond that.
type Threading uint8

const (
	// SingleThread runs every kernel on the calling goroutine.
	SingleThread Threading = iota
	// MultiThread lets kernels fan out across GOMAXPROCS workers when the
	// buffer is large enough to amortize the goroutine overhead.
	MultiThread

	numThreadings
)

// String returns the string representation of a Threading mode.
func (t Threading) String() string {
	switch t {
	case SingleThread:
		return "single"
	case MultiThread:
		return "multi"
	default:
		return "unknown"
	}
}

// MemoryModel describes how the amplitude buffer is allocated. Like
// Threading it is fixed at construction and only drives kernel selection.
type MemoryModel uint8

const (
	// MemoryDefault is a plain Go allocation.
	MemoryDefault MemoryModel = iota
	// MemoryAligned places the buffer on a 64-byte boundary.
	MemoryAligned

	numMemoryModels
)

// String returns the string representation of a MemoryModel.
func (m MemoryModel) String() string {
	switch m {
	case MemoryDefault:
		return "default"
	case MemoryAligned:
		return "aligned"
	default:
		return "unknown"
	}
}
