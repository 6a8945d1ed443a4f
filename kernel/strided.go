package kernel

import (
	"math"
	"math/cmplx"

	"github.com/hupe1980/quantgo/gate"
)

// stridedGateFn mutates the buffer in place. Wires and params are validated
// by the dispatcher before the call.
type stridedGateFn func(e *exec, data []complex128, numQubits int, wires []int, inverse bool, params []float64)

// stridedGateFns lists the gates the strided kernel implements. Three-wire
// gates are left to the gather-scatter kernel.
var stridedGateFns = map[gate.GateOp]stridedGateFn{
	gate.Identity:             stridedIdentity,
	gate.PauliX:               stridedPauliX,
	gate.PauliY:               stridedPauliY,
	gate.PauliZ:               stridedPauliZ,
	gate.Hadamard:             stridedHadamard,
	gate.S:                    stridedS,
	gate.T:                    stridedT,
	gate.PhaseShift:           stridedPhaseShift,
	gate.RX:                   stridedRX,
	gate.RY:                   stridedRY,
	gate.RZ:                   stridedRZ,
	gate.Rot:                  stridedRot,
	gate.CNOT:                 stridedCNOT,
	gate.CY:                   stridedCY,
	gate.CZ:                   stridedCZ,
	gate.SWAP:                 stridedSWAP,
	gate.ControlledPhaseShift: stridedControlledPhaseShift,
	gate.CRX:                  stridedCRX,
	gate.CRY:                  stridedCRY,
	gate.CRZ:                  stridedCRZ,
	gate.IsingXX:              stridedIsingXX,
	gate.IsingYY:              stridedIsingYY,
	gate.IsingZZ:              stridedIsingZZ,
}

// wireStride returns the index stride of a wire: indices whose bit for the
// wire differs are exactly stride apart. The first wire is the most
// significant bit.
func wireStride(numQubits, wire int) int {
	return 1 << (numQubits - 1 - wire)
}

// apply2x2 applies a 2x2 matrix to every amplitude pair split by the wire.
// For stride s the pairs alternate in runs of s: *_*_ for s=1, **__ for s=2.
func apply2x2(e *exec, data []complex128, numQubits, wire int, m00, m01, m10, m11 complex128) {
	s := wireStride(numQubits, wire)
	blocks := len(data) / (2 * s)
	e.parallelFor(blocks, func(lo, hi int) {
		for b := lo; b < hi; b++ {
			base := b * 2 * s
			for i := base; i < base+s; i++ {
				a0, a1 := data[i], data[i+s]
				data[i] = m00*a0 + m01*a1
				data[i+s] = m10*a0 + m11*a1
			}
		}
	})
}

// applyDiag multiplies the bit-0 half of every pair by d0 and the bit-1 half
// by d1.
func applyDiag(e *exec, data []complex128, numQubits, wire int, d0, d1 complex128) {
	s := wireStride(numQubits, wire)
	blocks := len(data) / (2 * s)
	e.parallelFor(blocks, func(lo, hi int) {
		for b := lo; b < hi; b++ {
			base := b * 2 * s
			for i := base; i < base+s; i++ {
				data[i] *= d0
				data[i+s] *= d1
			}
		}
	})
}

// apply2x2Controlled applies a 2x2 matrix on the target wire inside the
// subspace where the control bits match the pattern.
func apply2x2Controlled(e *exec, data []complex128, cmask, cpattern, st int, m00, m01, m10, m11 complex128) {
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&cmask != cpattern || i&st != 0 {
				continue
			}
			a0, a1 := data[i], data[i+st]
			data[i] = m00*a0 + m01*a1
			data[i+st] = m10*a0 + m11*a1
		}
	})
}

// apply4x4 applies a 4x4 row-major matrix to the subspace of two wires. The
// first wire selects bit 1 of the subspace index, the second wire bit 0.
func apply4x4(e *exec, data []complex128, numQubits, w0, w1 int, m []complex128) {
	s0, s1 := wireStride(numQubits, w0), wireStride(numQubits, w1)
	mask := s0 | s1
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&mask != 0 {
				continue
			}
			a00, a01, a10, a11 := data[i], data[i|s1], data[i|s0], data[i|s0|s1]
			data[i] = m[0]*a00 + m[1]*a01 + m[2]*a10 + m[3]*a11
			data[i|s1] = m[4]*a00 + m[5]*a01 + m[6]*a10 + m[7]*a11
			data[i|s0] = m[8]*a00 + m[9]*a01 + m[10]*a10 + m[11]*a11
			data[i|s0|s1] = m[12]*a00 + m[13]*a01 + m[14]*a10 + m[15]*a11
		}
	})
}

func stridedIdentity(*exec, []complex128, int, []int, bool, []float64) {}

func stridedPauliX(e *exec, data []complex128, numQubits int, wires []int, _ bool, _ []float64) {
	s := wireStride(numQubits, wires[0])
	blocks := len(data) / (2 * s)
	e.parallelFor(blocks, func(lo, hi int) {
		for b := lo; b < hi; b++ {
			base := b * 2 * s
			for i := base; i < base+s; i++ {
				data[i], data[i+s] = data[i+s], data[i]
			}
		}
	})
}

func stridedPauliY(e *exec, data []complex128, numQubits int, wires []int, _ bool, _ []float64) {
	apply2x2(e, data, numQubits, wires[0], 0, -1i, 1i, 0)
}

func stridedPauliZ(e *exec, data []complex128, numQubits int, wires []int, _ bool, _ []float64) {
	s := wireStride(numQubits, wires[0])
	blocks := len(data) / (2 * s)
	e.parallelFor(blocks, func(lo, hi int) {
		for b := lo; b < hi; b++ {
			base := b*2*s + s
			for i := base; i < base+s; i++ {
				data[i] = -data[i]
			}
		}
	})
}

func stridedHadamard(e *exec, data []complex128, numQubits int, wires []int, _ bool, _ []float64) {
	h := complex(math.Sqrt2/2, 0)
	apply2x2(e, data, numQubits, wires[0], h, h, h, -h)
}

func stridedS(e *exec, data []complex128, numQubits int, wires []int, inverse bool, _ []float64) {
	p := complex128(1i)
	if inverse {
		p = -1i
	}
	applyDiag(e, data, numQubits, wires[0], 1, p)
}

func stridedT(e *exec, data []complex128, numQubits int, wires []int, inverse bool, _ []float64) {
	phi := math.Pi / 4
	if inverse {
		phi = -phi
	}
	applyDiag(e, data, numQubits, wires[0], 1, cmplx.Exp(complex(0, phi)))
}

func stridedPhaseShift(e *exec, data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	phi := params[0]
	if inverse {
		phi = -phi
	}
	applyDiag(e, data, numQubits, wires[0], 1, cmplx.Exp(complex(0, phi)))
}

func stridedRX(e *exec, data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	theta := params[0]
	if inverse {
		theta = -theta
	}
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, math.Sin(theta/2))
	apply2x2(e, data, numQubits, wires[0], c, -js, -js, c)
}

func stridedRY(e *exec, data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	theta := params[0]
	if inverse {
		theta = -theta
	}
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	apply2x2(e, data, numQubits, wires[0], c, -s, s, c)
}

func stridedRZ(e *exec, data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	theta := params[0]
	if inverse {
		theta = -theta
	}
	p := cmplx.Exp(complex(0, theta/2))
	applyDiag(e, data, numQubits, wires[0], cmplx.Conj(p), p)
}

func stridedRot(e *exec, data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	m, _ := gate.Matrix(gate.Rot, params)
	if inverse {
		m = gate.Adjoint(m, 2)
	}
	apply2x2(e, data, numQubits, wires[0], m[0], m[1], m[2], m[3])
}

func stridedCNOT(e *exec, data []complex128, numQubits int, wires []int, _ bool, _ []float64) {
	sc, st := wireStride(numQubits, wires[0]), wireStride(numQubits, wires[1])
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&sc == 0 || i&st != 0 {
				continue
			}
			data[i], data[i+st] = data[i+st], data[i]
		}
	})
}

func stridedCY(e *exec, data []complex128, numQubits int, wires []int, _ bool, _ []float64) {
	sc, st := wireStride(numQubits, wires[0]), wireStride(numQubits, wires[1])
	apply2x2Controlled(e, data, sc, sc, st, 0, -1i, 1i, 0)
}

func stridedCZ(e *exec, data []complex128, numQubits int, wires []int, _ bool, _ []float64) {
	sc, st := wireStride(numQubits, wires[0]), wireStride(numQubits, wires[1])
	mask := sc | st
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&mask == mask {
				data[i] = -data[i]
			}
		}
	})
}

func stridedSWAP(e *exec, data []complex128, numQubits int, wires []int, _ bool, _ []float64) {
	s0, s1 := wireStride(numQubits, wires[0]), wireStride(numQubits, wires[1])
	mask := s0 | s1
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&mask != 0 {
				continue
			}
			data[i|s1], data[i|s0] = data[i|s0], data[i|s1]
		}
	})
}

func stridedControlledPhaseShift(e *exec, data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	phi := params[0]
	if inverse {
		phi = -phi
	}
	p := cmplx.Exp(complex(0, phi))
	sc, st := wireStride(numQubits, wires[0]), wireStride(numQubits, wires[1])
	mask := sc | st
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&mask == mask {
				data[i] *= p
			}
		}
	})
}

func stridedCRX(e *exec, data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	stridedControlledRotation(e, data, numQubits, wires, gate.RX, inverse, params)
}

func stridedCRY(e *exec, data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	stridedControlledRotation(e, data, numQubits, wires, gate.RY, inverse, params)
}

func stridedCRZ(e *exec, data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	stridedControlledRotation(e, data, numQubits, wires, gate.RZ, inverse, params)
}

func stridedControlledRotation(e *exec, data []complex128, numQubits int, wires []int, base gate.GateOp, inverse bool, params []float64) {
	theta := params[0]
	if inverse {
		theta = -theta
	}
	m, _ := gate.Matrix(base, []float64{theta})
	sc, st := wireStride(numQubits, wires[0]), wireStride(numQubits, wires[1])
	apply2x2Controlled(e, data, sc, sc, st, m[0], m[1], m[2], m[3])
}

func stridedIsingXX(e *exec, data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	theta := params[0]
	if inverse {
		theta = -theta
	}
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, math.Sin(theta/2))
	s0, s1 := wireStride(numQubits, wires[0]), wireStride(numQubits, wires[1])
	mask := s0 | s1
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&mask != 0 {
				continue
			}
			a00, a01, a10, a11 := data[i], data[i|s1], data[i|s0], data[i|s0|s1]
			data[i] = c*a00 - js*a11
			data[i|s1] = c*a01 - js*a10
			data[i|s0] = c*a10 - js*a01
			data[i|s0|s1] = c*a11 - js*a00
		}
	})
}

func stridedIsingYY(e *exec, data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	theta := params[0]
	if inverse {
		theta = -theta
	}
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, math.Sin(theta/2))
	s0, s1 := wireStride(numQubits, wires[0]), wireStride(numQubits, wires[1])
	mask := s0 | s1
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&mask != 0 {
				continue
			}
			a00, a01, a10, a11 := data[i], data[i|s1], data[i|s0], data[i|s0|s1]
			data[i] = c*a00 + js*a11
			data[i|s1] = c*a01 - js*a10
			data[i|s0] = c*a10 - js*a01
			data[i|s0|s1] = c*a11 + js*a00
		}
	})
}

func stridedIsingZZ(e *exec, data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	theta := params[0]
	if inverse {
		theta = -theta
	}
	p := cmplx.Exp(complex(0, theta/2))
	m := cmplx.Conj(p)
	s0, s1 := wireStride(numQubits, wires[0]), wireStride(numQubits, wires[1])
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if (i&s0 != 0) != (i&s1 != 0) {
				data[i] *= p
			} else {
				data[i] *= m
			}
		}
	})
}

// stridedMatrixSingle applies a caller-supplied 2x2 matrix.
func stridedMatrixSingle(e *exec, data []complex128, numQubits int, m []complex128, wires []int, inverse bool) {
	if inverse {
		m = gate.Adjoint(m, 2)
	}
	apply2x2(e, data, numQubits, wires[0], m[0], m[1], m[2], m[3])
}

// stridedMatrixTwo applies a caller-supplied 4x4 matrix.
func stridedMatrixTwo(e *exec, data []complex128, numQubits int, m []complex128, wires []int, inverse bool) {
	if inverse {
		m = gate.Adjoint(m, 4)
	}
	apply4x4(e, data, numQubits, wires[0], wires[1], m)
}

// stridedControlledGate applies a single-target controlled gate under an
// arbitrary control set.
func stridedControlledGate(e *exec, data []complex128, numQubits int, op gate.ControlledGateOp, cmask, cpattern int, wires []int, inverse bool, params []float64) {
	m, _ := gate.TargetMatrix(op, params)
	if inverse {
		m = gate.Adjoint(m, 2)
	}
	st := wireStride(numQubits, wires[0])
	apply2x2Controlled(e, data, cmask, cpattern, st, m[0], m[1], m[2], m[3])
}

// stridedControlledMatrixSingle applies a caller-supplied 2x2 matrix under an
// arbitrary control set.
func stridedControlledMatrixSingle(e *exec, data []complex128, numQubits int, m []complex128, cmask, cpattern int, wires []int, inverse bool) {
	if inverse {
		m = gate.Adjoint(m, 2)
	}
	st := wireStride(numQubits, wires[0])
	apply2x2Controlled(e, data, cmask, cpattern, st, m[0], m[1], m[2], m[3])
}
