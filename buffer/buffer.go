package buffer

import (
	"fmt"
	"math"

	"github.com/hupe1980/quantgo/internal/mem"
	"github.com/hupe1980/quantgo/kernel"
)

// ErrIndexOutOfRange is returned when a basis-state index does not fit the
// buffer.
type ErrIndexOutOfRange struct {
	Index uint64
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("buffer: basis state index %d out of range for %d amplitudes", e.Index, e.Len)
}

// Buffer holds the amplitudes of an n-qubit state vector.
type Buffer struct {
	numQubits int
	data      []complex128
}

// New allocates a buffer for numQubits qubits under the given memory model,
// initialized to the zero basis state.
func New(numQubits int, mm kernel.MemoryModel) *Buffer {
	size := 1 << numQubits

	var data []complex128
	if mm == kernel.MemoryAligned {
		data = mem.AllocAlignedComplex128(size)
	} else {
		data = make([]complex128, size)
	}
	data[0] = 1

	return &Buffer{numQubits: numQubits, data: data}
}

// NewFromSlice wraps an existing amplitude slice. The slice length must be a
// power of two; ownership transfers to the buffer.
func NewFromSlice(data []complex128) (*Buffer, error) {
	n := len(data)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("buffer: length %d is not a power of two", n)
	}

	numQubits := 0
	for 1<<numQubits < n {
		numQubits++
	}
	return &Buffer{numQubits: numQubits, data: data}, nil
}

// Data returns the backing amplitude slice. Mutations are visible to the
// buffer.
func (b *Buffer) Data() []complex128 { return b.data }

// NumQubits returns the number of qubits the buffer represents.
func (b *Buffer) NumQubits() int { return b.numQubits }

// Len returns the number of amplitudes, 2^NumQubits.
func (b *Buffer) Len() int { return len(b.data) }

// Aligned reports whether the backing array sits on a 64-byte boundary.
func (b *Buffer) Aligned() bool { return mem.IsAligned(b.data) }

// SetBasisState overwrites the buffer with the computational basis state of
// the given index.
func (b *Buffer) SetBasisState(index uint64) error {
	if index >= uint64(len(b.data)) {
		return &ErrIndexOutOfRange{Index: index, Len: len(b.data)}
	}
	clear(b.data)
	b.data[index] = 1
	return nil
}

// Reset returns the buffer to the zero basis state.
func (b *Buffer) Reset() {
	clear(b.data)
	b.data[0] = 1
}

// Norm returns the Euclidean norm of the amplitudes. A normalized state has
// norm 1.
func (b *Buffer) Norm() float64 {
	var sum float64
	for _, a := range b.data {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return math.Sqrt(sum)
}
