package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/quantgo/kernel"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		mm   kernel.MemoryModel
	}{
		{"default", kernel.MemoryDefault},
		{"aligned", kernel.MemoryAligned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(3, tt.mm)

			assert.Equal(t, 3, b.NumQubits())
			assert.Equal(t, 8, b.Len())
			assert.Equal(t, complex(1, 0), b.Data()[0])
			assert.InDelta(t, 1, b.Norm(), 1e-12)

			if tt.mm == kernel.MemoryAligned {
				assert.True(t, b.Aligned())
			}
		})
	}
}

func TestNewFromSlice(t *testing.T) {
	t.Run("accepts powers of two", func(t *testing.T) {
		b, err := NewFromSlice(make([]complex128, 4))
		require.NoError(t, err)
		assert.Equal(t, 2, b.NumQubits())
	})

	t.Run("rejects other lengths", func(t *testing.T) {
		_, err := NewFromSlice(make([]complex128, 6))
		assert.Error(t, err)

		_, err = NewFromSlice(nil)
		assert.Error(t, err)
	})
}

func TestSetBasisState(t *testing.T) {
	b := New(2, kernel.MemoryDefault)

	require.NoError(t, b.SetBasisState(3))
	assert.Equal(t, []complex128{0, 0, 0, 1}, b.Data())

	require.NoError(t, b.SetBasisState(1))
	assert.Equal(t, []complex128{0, 1, 0, 0}, b.Data())

	err := b.SetBasisState(4)
	var oor *ErrIndexOutOfRange
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, uint64(4), oor.Index)

	// A failed set leaves the state untouched.
	assert.Equal(t, []complex128{0, 1, 0, 0}, b.Data())
}

func TestReset(t *testing.T) {
	b := New(2, kernel.MemoryDefault)
	require.NoError(t, b.SetBasisState(2))

	b.Reset()
	assert.Equal(t, []complex128{1, 0, 0, 0}, b.Data())
}
