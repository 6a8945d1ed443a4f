package kernel

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/quantgo/gate"
)

const testEps = 1e-10

// randomState returns a normalized pseudo-random amplitude vector.
func randomState(numQubits int, seed uint64) []complex128 {
	rng := rand.New(rand.NewPCG(seed, 0))
	data := make([]complex128, 1<<numQubits)

	var norm float64
	for i := range data {
		data[i] = complex(rng.Float64()-0.5, rng.Float64()-0.5)
		norm += real(data[i])*real(data[i]) + imag(data[i])*imag(data[i])
	}
	scale := complex(1/math.Sqrt(norm), 0)
	for i := range data {
		data[i] *= scale
	}
	return data
}

func assertStatesEqual(t *testing.T, want, got []complex128) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDeltaf(t, real(want[i]), real(got[i]), testEps, "re amplitude %d", i)
		assert.InDeltaf(t, imag(want[i]), imag(got[i]), testEps, "im amplitude %d", i)
	}
}

func testWires(numWires int) []int {
	switch numWires {
	case 1:
		return []int{2}
	case 2:
		return []int{1, 3}
	default:
		return []int{0, 2, 3}
	}
}

func testParams(numParams int) []float64 {
	angles := []float64{0.312, -0.744, 1.183}
	return angles[:numParams]
}

func TestApplyGateKernelAgreement(t *testing.T) {
	const numQubits = 4
	d := NewDispatcher(SingleThread)

	for _, op := range gate.Gates() {
		t.Run(op.String(), func(t *testing.T) {
			wires := testWires(op.NumWires())
			params := testParams(op.NumParams())

			gathered := randomState(numQubits, 42)
			require.NoError(t, d.ApplyGate(GatherScatter, gathered, numQubits, op, wires, false, params))

			// The explicit matrix path must agree with the named path.
			m, err := gate.Matrix(op, params)
			require.NoError(t, err)

			viaMatrix := randomState(numQubits, 42)
			require.NoError(t, d.ApplyMatrix(GatherScatter, viaMatrix, numQubits, m, wires, false))
			assertStatesEqual(t, gathered, viaMatrix)

			// The strided kernel, where it exists, must agree too.
			if _, ok := stridedGateFns[op]; ok {
				strided := randomState(numQubits, 42)
				require.NoError(t, d.ApplyGate(Strided, strided, numQubits, op, wires, false, params))
				assertStatesEqual(t, gathered, strided)
			}
		})
	}
}

func TestApplyGateInverseRoundTrip(t *testing.T) {
	const numQubits = 4
	d := NewDispatcher(SingleThread)

	for _, op := range gate.Gates() {
		t.Run(op.String(), func(t *testing.T) {
			wires := testWires(op.NumWires())
			params := testParams(op.NumParams())

			for _, k := range []Kernel{Strided, GatherScatter} {
				if k == Strided {
					if _, ok := stridedGateFns[op]; !ok {
						continue
					}
				}

				initial := randomState(numQubits, 7)
				data := randomState(numQubits, 7)

				require.NoError(t, d.ApplyGate(k, data, numQubits, op, wires, false, params))
				require.NoError(t, d.ApplyGate(k, data, numQubits, op, wires, true, params))
				assertStatesEqual(t, initial, data)
			}
		})
	}
}

func TestApplyGateByName(t *testing.T) {
	const numQubits = 2
	d := NewDispatcher(SingleThread)

	t.Run("resolves known names", func(t *testing.T) {
		byName := randomState(numQubits, 3)
		require.NoError(t, d.ApplyGateByName(Strided, byName, numQubits, "Hadamard", []int{0}, false, nil))

		byOp := randomState(numQubits, 3)
		require.NoError(t, d.ApplyGate(Strided, byOp, numQubits, gate.Hadamard, []int{0}, false, nil))
		assertStatesEqual(t, byOp, byName)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		data := randomState(numQubits, 3)
		err := d.ApplyGateByName(Strided, data, numQubits, "Nope", []int{0}, false, nil)

		var unknown *gate.ErrUnknownOperation
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "Nope", unknown.Name)
	})
}

func TestApplyGateValidation(t *testing.T) {
	const numQubits = 3
	d := NewDispatcher(SingleThread)

	tests := []struct {
		name   string
		op     gate.GateOp
		wires  []int
		params []float64
		check  func(t *testing.T, err error)
	}{
		{"wire count", gate.CNOT, []int{0}, nil, func(t *testing.T, err error) {
			var e *ErrWireCount
			require.ErrorAs(t, err, &e)
			assert.Equal(t, 2, e.Expected)
			assert.Equal(t, 1, e.Actual)
		}},
		{"wire out of range", gate.PauliX, []int{3}, nil, func(t *testing.T, err error) {
			var e *ErrWireOutOfRange
			require.ErrorAs(t, err, &e)
			assert.Equal(t, 3, e.Wire)
		}},
		{"negative wire", gate.PauliX, []int{-1}, nil, func(t *testing.T, err error) {
			var e *ErrWireOutOfRange
			require.ErrorAs(t, err, &e)
		}},
		{"duplicate wires", gate.CNOT, []int{1, 1}, nil, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrDuplicateWires)
		}},
		{"missing params", gate.RX, []int{0}, nil, func(t *testing.T, err error) {
			var e *gate.ErrParamCount
			require.ErrorAs(t, err, &e)
		}},
		{"excess params", gate.PauliZ, []int{0}, []float64{0.1}, func(t *testing.T, err error) {
			var e *gate.ErrParamCount
			require.ErrorAs(t, err, &e)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := randomState(numQubits, 1)
			before := make([]complex128, len(data))
			copy(before, data)

			err := d.ApplyGate(Strided, data, numQubits, tt.op, tt.wires, false, tt.params)
			require.Error(t, err)
			tt.check(t, err)

			// A failed dispatch must leave the buffer untouched.
			assert.Equal(t, before, data)
		})
	}
}

func TestApplyMatrixValidation(t *testing.T) {
	const numQubits = 3
	d := NewDispatcher(SingleThread)
	data := randomState(numQubits, 1)

	t.Run("no wires", func(t *testing.T) {
		err := d.ApplyMatrix(GatherScatter, data, numQubits, []complex128{1}, nil, false)
		assert.ErrorIs(t, err, ErrNoWires)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		err := d.ApplyMatrix(GatherScatter, data, numQubits, make([]complex128, 4), []int{0, 1}, false)

		var dim *ErrDimensionMismatch
		require.ErrorAs(t, err, &dim)
		assert.Equal(t, 16, dim.Expected)
		assert.Equal(t, 4, dim.Actual)
	})

	t.Run("strided rejects wide matrices", func(t *testing.T) {
		err := d.ApplyMatrix(Strided, data, numQubits, make([]complex128, 64), []int{0, 1, 2}, false)

		var unavailable *ErrKernelUnavailable
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, Strided, unavailable.Kernel)
	})
}

func TestApplyControlledGate(t *testing.T) {
	const numQubits = 4
	d := NewDispatcher(SingleThread)

	for _, op := range gate.ControlledGates() {
		t.Run(op.String(), func(t *testing.T) {
			wires := testWires(op.NumWires())
			params := testParams(op.NumParams())
			controlWires := []int{0}
			controlValues := []bool{true}

			gathered := randomState(numQubits, 11)
			require.NoError(t, d.ApplyControlledGate(GatherScatter, gathered, numQubits, op, controlWires, controlValues, wires, false, params))

			// Controlled application must agree with the explicit
			// controlled matrix of the target block.
			m, err := gate.TargetMatrix(op, params)
			require.NoError(t, err)

			viaMatrix := randomState(numQubits, 11)
			require.NoError(t, d.ApplyControlledMatrix(GatherScatter, viaMatrix, numQubits, m, controlWires, controlValues, wires, false))
			assertStatesEqual(t, gathered, viaMatrix)

			if op.NumWires() == 1 {
				strided := randomState(numQubits, 11)
				require.NoError(t, d.ApplyControlledGate(Strided, strided, numQubits, op, controlWires, controlValues, wires, false, params))
				assertStatesEqual(t, gathered, strided)
			}

			// Round trip through the inverse.
			initial := randomState(numQubits, 12)
			data := randomState(numQubits, 12)
			require.NoError(t, d.ApplyControlledGate(GatherScatter, data, numQubits, op, controlWires, controlValues, wires, false, params))
			require.NoError(t, d.ApplyControlledGate(GatherScatter, data, numQubits, op, controlWires, controlValues, wires, true, params))
			assertStatesEqual(t, initial, data)
		})
	}
}

func TestControlledGateMatchesPlainGate(t *testing.T) {
	// A controlled PauliX on wires (0 -> 1) is exactly a CNOT.
	const numQubits = 3
	d := NewDispatcher(SingleThread)

	viaControl := randomState(numQubits, 21)
	require.NoError(t, d.ApplyControlledGate(GatherScatter, viaControl, numQubits, gate.NCPauliX, []int{0}, []bool{true}, []int{1}, false, nil))

	viaCNOT := randomState(numQubits, 21)
	require.NoError(t, d.ApplyGate(Strided, viaCNOT, numQubits, gate.CNOT, []int{0, 1}, false, nil))

	assertStatesEqual(t, viaCNOT, viaControl)
}

func TestControlValueZero(t *testing.T) {
	// With the control on |0>, the target flips only in the half where
	// the control wire is clear.
	const numQubits = 2
	d := NewDispatcher(SingleThread)

	data := make([]complex128, 4)
	data[0] = 1 // |00>

	require.NoError(t, d.ApplyControlledGate(GatherScatter, data, numQubits, gate.NCPauliX, []int{0}, []bool{false}, []int{1}, false, nil))

	assert.InDelta(t, 1, cmplx.Abs(data[1]), testEps) // |01>
	assert.InDelta(t, 0, cmplx.Abs(data[0]), testEps)
}

func TestApplyControlledValidation(t *testing.T) {
	const numQubits = 3
	d := NewDispatcher(SingleThread)
	data := randomState(numQubits, 1)

	t.Run("length mismatch", func(t *testing.T) {
		err := d.ApplyControlledGate(GatherScatter, data, numQubits, gate.NCPauliX, []int{0, 1}, []bool{true}, []int{2}, false, nil)

		var mismatch *ErrControlLengthMismatch
		require.ErrorAs(t, err, &mismatch)
	})

	t.Run("control overlaps target", func(t *testing.T) {
		err := d.ApplyControlledGate(GatherScatter, data, numQubits, gate.NCPauliX, []int{2}, []bool{true}, []int{2}, false, nil)
		assert.ErrorIs(t, err, ErrControlOverlap)
	})

	t.Run("duplicate controls", func(t *testing.T) {
		err := d.ApplyControlledGate(GatherScatter, data, numQubits, gate.NCPauliX, []int{0, 0}, []bool{true, true}, []int{2}, false, nil)
		assert.ErrorIs(t, err, ErrDuplicateWires)
	})

	t.Run("control out of range", func(t *testing.T) {
		err := d.ApplyControlledGate(GatherScatter, data, numQubits, gate.NCPauliX, []int{5}, []bool{true}, []int{2}, false, nil)

		var oor *ErrWireOutOfRange
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, 5, oor.Wire)
	})
}

func TestApplyGenerator(t *testing.T) {
	const numQubits = 3
	d := NewDispatcher(SingleThread)

	t.Run("pauli generators act as their pauli", func(t *testing.T) {
		pairs := []struct {
			gen   gate.GeneratorOp
			pauli gate.GateOp
		}{
			{gate.GenRX, gate.PauliX},
			{gate.GenRY, gate.PauliY},
			{gate.GenRZ, gate.PauliZ},
		}

		for _, p := range pairs {
			viaGen := randomState(numQubits, 31)
			coeff, err := d.ApplyGenerator(Strided, viaGen, numQubits, p.gen, []int{1}, false)
			require.NoError(t, err)
			assert.Equal(t, -0.5, coeff)

			viaPauli := randomState(numQubits, 31)
			require.NoError(t, d.ApplyGate(Strided, viaPauli, numQubits, p.pauli, []int{1}, false, nil))
			assertStatesEqual(t, viaPauli, viaGen)
		}
	})

	t.Run("phase shift generator projects", func(t *testing.T) {
		// |1><1| keeps only amplitudes with the wire bit set.
		data := randomState(numQubits, 32)
		want := make([]complex128, len(data))
		st := wireStride(numQubits, 0)
		for i := range data {
			if i&st != 0 {
				want[i] = data[i]
			}
		}

		coeff, err := d.ApplyGenerator(Strided, data, numQubits, gate.GenPhaseShift, []int{0}, false)
		require.NoError(t, err)
		assert.Equal(t, 1.0, coeff)
		assertStatesEqual(t, want, data)
	})

	t.Run("gather kernel is unavailable", func(t *testing.T) {
		data := randomState(numQubits, 33)
		_, err := d.ApplyGenerator(GatherScatter, data, numQubits, gate.GenRX, []int{0}, false)

		var unavailable *ErrKernelUnavailable
		require.ErrorAs(t, err, &unavailable)
	})
}

func TestApplyControlledGenerator(t *testing.T) {
	const numQubits = 3
	d := NewDispatcher(SingleThread)

	// The controlled RZ generator acts as |1><1| (x) PauliZ.
	data := randomState(numQubits, 41)
	want := make([]complex128, len(data))
	sc := wireStride(numQubits, 0)
	st := wireStride(numQubits, 2)
	for i := range data {
		if i&sc == 0 {
			continue
		}
		if i&st == 0 {
			want[i] = data[i]
		} else {
			want[i] = -data[i]
		}
	}

	coeff, err := d.ApplyControlledGenerator(Strided, data, numQubits, gate.NCGenRZ, []int{0}, []bool{true}, []int{2}, false)
	require.NoError(t, err)
	assert.Equal(t, -0.5, coeff)
	assertStatesEqual(t, want, data)
}

func TestMultiThreadAgreesWithSingleThread(t *testing.T) {
	// Large enough that parallelFor actually fans work out over the
	// errgroup instead of running inline.
	const numQubits = 13
	require.Greater(t, 1<<numQubits, parallelThreshold)

	single := NewDispatcher(SingleThread)
	multi := NewDispatcher(MultiThread)

	for _, k := range []Kernel{Strided, GatherScatter} {
		for _, op := range []gate.GateOp{gate.Hadamard, gate.RX, gate.CNOT, gate.IsingYY, gate.Toffoli} {
			if k == Strided {
				if _, ok := stridedGateFns[op]; !ok {
					continue
				}
			}
			t.Run(k.String()+"/"+op.String(), func(t *testing.T) {
				wires := testWires(op.NumWires())
				params := testParams(op.NumParams())

				a := randomState(numQubits, 51)
				require.NoError(t, single.ApplyGate(k, a, numQubits, op, wires, false, params))

				b := randomState(numQubits, 51)
				require.NoError(t, multi.ApplyGate(k, b, numQubits, op, wires, false, params))

				assertStatesEqual(t, a, b)
			})
		}
	}
}
