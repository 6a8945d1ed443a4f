package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGateRoundTrip(t *testing.T) {
	for _, op := range Gates() {
		got, ok := ParseGate(op.String())
		require.True(t, ok, "gate %s must resolve", op)
		assert.Equal(t, op, got)
	}

	_, ok := ParseGate("NotAGate")
	assert.False(t, ok)
}

func TestGateArities(t *testing.T) {
	tests := []struct {
		op     GateOp
		wires  int
		params int
	}{
		{PauliX, 1, 0},
		{PhaseShift, 1, 1},
		{Rot, 1, 3},
		{CNOT, 2, 0},
		{ControlledPhaseShift, 2, 1},
		{IsingZZ, 2, 1},
		{Toffoli, 3, 0},
		{CSWAP, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.wires, tt.op.NumWires())
			assert.Equal(t, tt.params, tt.op.NumParams())
		})
	}
}

func TestParseGeneratorCoefficients(t *testing.T) {
	tests := []struct {
		name  string
		coeff float64
	}{
		{"RX", -0.5},
		{"RY", -0.5},
		{"RZ", -0.5},
		{"PhaseShift", 1.0},
		{"ControlledPhaseShift", 1.0},
		{"CRX", -0.5},
		{"IsingXX", -0.5},
		{"IsingZZ", -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := ParseGenerator(tt.name)
			require.True(t, ok)
			// Coefficients feed gradient formulas and must be exact.
			assert.Equal(t, tt.coeff, op.Coefficient())
		})
	}

	_, ok := ParseGenerator("Hadamard")
	assert.False(t, ok, "Hadamard is not parametric and has no generator")
}

func TestParseControlledGate(t *testing.T) {
	op, ok := ParseControlledGate("PauliX")
	require.True(t, ok)
	assert.Equal(t, NCPauliX, op)
	assert.Equal(t, PauliX, op.Base())
	assert.Equal(t, 1, op.NumWires())

	swap, ok := ParseControlledGate("SWAP")
	require.True(t, ok)
	assert.Equal(t, 2, swap.NumWires())

	_, ok = ParseControlledGate("CNOT")
	assert.False(t, ok, "CNOT carries its controls in the gate itself")
}

func TestMatrixOpSizing(t *testing.T) {
	assert.Equal(t, SingleQubitOp, MatrixOpFor(1))
	assert.Equal(t, TwoQubitOp, MatrixOpFor(2))
	assert.Equal(t, MultiQubitOp, MatrixOpFor(3))
	assert.Equal(t, MultiQubitOp, MatrixOpFor(7))

	assert.Equal(t, NCSingleQubitOp, ControlledMatrixOpFor(1))
	assert.Equal(t, NCTwoQubitOp, ControlledMatrixOpFor(2))
	assert.Equal(t, NCMultiQubitOp, ControlledMatrixOpFor(5))
}
