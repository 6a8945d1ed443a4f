package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/quantgo/gate"
)

func TestSelect(t *testing.T) {
	t.Run("covers every registered operation", func(t *testing.T) {
		maps, err := Select(DefaultRegistry(), 4, SingleThread, MemoryDefault)
		require.NoError(t, err)

		assert.Len(t, maps.Gates, len(gate.Gates()))
		assert.Len(t, maps.Generators, len(gate.Generators()))
		assert.Len(t, maps.Matrices, len(gate.MatrixOps()))
		assert.Len(t, maps.ControlledGates, len(gate.ControlledGates()))
		assert.Len(t, maps.ControlledGenerators, len(gate.ControlledGenerators()))
		assert.Len(t, maps.ControlledMatrices, len(gate.ControlledMatrixOps()))
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := Select(DefaultRegistry(), 6, MultiThread, MemoryAligned)
		require.NoError(t, err)

		b, err := Select(DefaultRegistry(), 6, MultiThread, MemoryAligned)
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})

	t.Run("prefers strided where admissible", func(t *testing.T) {
		maps, err := Select(DefaultRegistry(), 4, SingleThread, MemoryDefault)
		require.NoError(t, err)

		assert.Equal(t, Strided, maps.Gates[gate.PauliX])
		assert.Equal(t, Strided, maps.Gates[gate.CNOT])
		assert.Equal(t, GatherScatter, maps.Gates[gate.Toffoli])
		assert.Equal(t, GatherScatter, maps.Matrices[gate.MultiQubitOp])
	})

	t.Run("falls back below the strided minimum", func(t *testing.T) {
		maps, err := Select(DefaultRegistry(), 1, SingleThread, MemoryDefault)
		require.NoError(t, err)

		// Two-wire gates cannot run on one qubit with the strided
		// kernel, but the gather kernel still admits them.
		assert.Equal(t, Strided, maps.Gates[gate.Hadamard])
		assert.Equal(t, GatherScatter, maps.Gates[gate.CNOT])
	})

	t.Run("fails when nothing admits", func(t *testing.T) {
		r := NewRegistry()
		r.RegisterGate(gate.PauliX, Implementation{
			Kernel:     Strided,
			Constraint: Constraint{MinQubits: 8},
			Priority:   stridedPriority,
		})

		_, err := Select(r, 2, SingleThread, MemoryDefault)
		require.Error(t, err)

		var nak *ErrNoAdmissibleKernel
		require.ErrorAs(t, err, &nak)
		assert.Equal(t, "PauliX", nak.Op)
		assert.Equal(t, 2, nak.NumQubits)
	})

	t.Run("respects alignment constraints", func(t *testing.T) {
		r := NewRegistry()
		r.RegisterGate(gate.PauliX, Implementation{
			Kernel:     Strided,
			Constraint: Constraint{MinQubits: 1, NeedsAligned: true},
			Priority:   stridedPriority,
		})
		r.RegisterGate(gate.PauliX, Implementation{
			Kernel:     GatherScatter,
			Constraint: Constraint{MinQubits: 1},
			Priority:   gatherPriority,
		})

		maps, err := Select(r, 2, SingleThread, MemoryDefault)
		require.NoError(t, err)
		assert.Equal(t, GatherScatter, maps.Gates[gate.PauliX])

		maps, err = Select(r, 2, SingleThread, MemoryAligned)
		require.NoError(t, err)
		assert.Equal(t, Strided, maps.Gates[gate.PauliX])
	})

	t.Run("ties go to registration order", func(t *testing.T) {
		flat := [numThreadings][numMemoryModels]int{
			SingleThread: {MemoryDefault: 5, MemoryAligned: 5},
			MultiThread:  {MemoryDefault: 5, MemoryAligned: 5},
		}

		r := NewRegistry()
		r.RegisterGate(gate.PauliX, Implementation{
			Kernel:     GatherScatter,
			Constraint: Constraint{MinQubits: 1},
			Priority:   flat,
		})
		r.RegisterGate(gate.PauliX, Implementation{
			Kernel:     Strided,
			Constraint: Constraint{MinQubits: 1},
			Priority:   flat,
		})

		maps, err := Select(r, 2, SingleThread, MemoryDefault)
		require.NoError(t, err)
		assert.Equal(t, GatherScatter, maps.Gates[gate.PauliX])
	})
}

func TestMapsClone(t *testing.T) {
	maps, err := Select(DefaultRegistry(), 3, SingleThread, MemoryDefault)
	require.NoError(t, err)

	clone := maps.Clone()
	require.Equal(t, maps, clone)

	clone.Gates[gate.PauliX] = GatherScatter
	assert.Equal(t, Strided, maps.Gates[gate.PauliX])
}

func TestParseKernel(t *testing.T) {
	tests := []struct {
		name string
		want Kernel
		ok   bool
	}{
		{"strided", Strided, true},
		{"gather-scatter", GatherScatter, true},
		{"bogus", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseKernel(tt.name)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.name, got.String())
			}
		})
	}
}
