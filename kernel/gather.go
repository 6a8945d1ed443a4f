package kernel

import (
	"github.com/hupe1980/quantgo/gate"
)

// gatherApply applies a row-major 2^q x 2^q matrix to the subspace spanned
// by the target wires, restricted to the control pattern when cmask is
// non-zero. It enumerates every base index (target bits zero, control bits
// equal to the pattern), gathers the 2^q amplitudes, multiplies and scatters
// the result back.
//
// The matrix must already account for inversion (adjoint taken by the
// caller). Scratch is one 2^q amplitude vector per worker.
func gatherApply(e *exec, data []complex128, numQubits int, m []complex128, wires []int, cmask, cpattern int) {
	q := len(wires)
	dim := 1 << q

	strides := make([]int, q)
	for k, w := range wires {
		strides[k] = wireStride(numQubits, w)
	}

	// offsets[r] positions subspace row r in the full index space; the
	// first wire is the most significant bit of r.
	offsets := make([]int, dim)
	for r := 0; r < dim; r++ {
		off := 0
		for k := 0; k < q; k++ {
			if r>>(q-1-k)&1 == 1 {
				off |= strides[k]
			}
		}
		offsets[r] = off
	}

	// Free bit positions: neither target nor control.
	usedMask := cmask
	for _, s := range strides {
		usedMask |= s
	}
	freeBits := make([]int, 0, numQubits-q)
	for b := 1; b < len(data); b <<= 1 {
		if usedMask&b == 0 {
			freeBits = append(freeBits, b)
		}
	}

	numBases := 1 << len(freeBits)
	e.parallelFor(numBases, func(lo, hi int) {
		amps := make([]complex128, dim)
		for x := lo; x < hi; x++ {
			base := cpattern
			for k, bit := range freeBits {
				if x>>k&1 == 1 {
					base |= bit
				}
			}
			for r := 0; r < dim; r++ {
				amps[r] = data[base|offsets[r]]
			}
			for r := 0; r < dim; r++ {
				row := m[r*dim : (r+1)*dim]
				var acc complex128
				for c := 0; c < dim; c++ {
					acc += row[c] * amps[c]
				}
				data[base|offsets[r]] = acc
			}
		}
	})
}

// gatherGate applies a named gate through the generic matrix path.
func gatherGate(e *exec, data []complex128, numQubits int, op gate.GateOp, wires []int, inverse bool, params []float64) {
	m, _ := gate.Matrix(op, params)
	if inverse {
		m = gate.Adjoint(m, 1<<len(wires))
	}
	gatherApply(e, data, numQubits, m, wires, 0, 0)
}

// gatherControlledGate applies a named gate under an arbitrary control set.
func gatherControlledGate(e *exec, data []complex128, numQubits int, op gate.ControlledGateOp, cmask, cpattern int, wires []int, inverse bool, params []float64) {
	m, _ := gate.TargetMatrix(op, params)
	if inverse {
		m = gate.Adjoint(m, 1<<len(wires))
	}
	gatherApply(e, data, numQubits, m, wires, cmask, cpattern)
}

// gatherMatrix applies a caller-supplied matrix, taking the adjoint for the
// inverse variant.
func gatherMatrix(e *exec, data []complex128, numQubits int, m []complex128, wires []int, inverse bool, cmask, cpattern int) {
	if inverse {
		m = gate.Adjoint(m, 1<<len(wires))
	}
	gatherApply(e, data, numQubits, m, wires, cmask, cpattern)
}
