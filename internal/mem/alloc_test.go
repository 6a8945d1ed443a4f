package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestAllocAlignedComplex128(t *testing.T) {
	sizes := []int{1, 2, 4, 7, 16, 1024}

	for _, size := range sizes {
		buf := AllocAlignedComplex128(size)
		assert.Len(t, buf, size)
		assert.True(t, IsAligned(buf), "buffer of size %d should be aligned", size)

		// Freshly allocated amplitudes must be zero.
		for _, a := range buf {
			assert.Equal(t, complex128(0), a)
		}

		// Writes must stick (the slice is a real, usable view).
		buf[0] = complex(1, -1)
		assert.Equal(t, complex(1, -1), buf[0])
	}

	assert.Nil(t, AllocAlignedComplex128(0))
}
