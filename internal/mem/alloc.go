package mem

import (
	"unsafe"
)

// Alignment is the byte alignment used for amplitude buffers (64 bytes,
// one cache line, also the AVX-512 register width).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure
// alignment. The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment so an aligned offset always exists within
	// the backing array.
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocAlignedComplex128 allocates a complex128 slice of the given length with
// 64-byte alignment. The returned slice is zeroed.
func AllocAlignedComplex128(size int) []complex128 {
	if size <= 0 {
		return nil
	}

	byteSize := size * 16
	byteSlice := AllocAligned(byteSize)

	// Safe: AllocAligned guarantees 64-byte alignment, which satisfies the
	// 8-byte alignment complex128 requires.
	ptr := unsafe.Pointer(&byteSlice[0])          //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*complex128)(ptr), size) //nolint:gosec // unsafe is required for memory alignment
}

// IsAligned reports whether the first element of the slice sits on an
// Alignment byte boundary. Empty slices are considered aligned.
func IsAligned(data []complex128) bool {
	if len(data) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&data[0]))%Alignment == 0 //nolint:gosec // address inspection only
}
