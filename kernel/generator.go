package kernel

import (
	"github.com/hupe1980/quantgo/gate"
)

// Generators apply the Hermitian operator of a parametric gate in place and
// return the generator's defining scalar coefficient. The adjoint flag is
// accepted for API symmetry; every generator here is Hermitian, so the
// adjoint acts identically.
type stridedGeneratorFn func(e *exec, data []complex128, numQubits int, wires []int, adjoint bool) float64

var stridedGeneratorFns = map[gate.GeneratorOp]stridedGeneratorFn{
	gate.GenRX:                   genRX,
	gate.GenRY:                   genRY,
	gate.GenRZ:                   genRZ,
	gate.GenPhaseShift:           genPhaseShift,
	gate.GenControlledPhaseShift: genControlledPhaseShift,
	gate.GenCRX:                  genCRX,
	gate.GenCRY:                  genCRY,
	gate.GenCRZ:                  genCRZ,
	gate.GenIsingXX:              genIsingXX,
	gate.GenIsingYY:              genIsingYY,
	gate.GenIsingZZ:              genIsingZZ,
}

func genRX(e *exec, data []complex128, numQubits int, wires []int, _ bool) float64 {
	stridedPauliX(e, data, numQubits, wires, false, nil)
	return gate.GenRX.Coefficient()
}

func genRY(e *exec, data []complex128, numQubits int, wires []int, _ bool) float64 {
	stridedPauliY(e, data, numQubits, wires, false, nil)
	return gate.GenRY.Coefficient()
}

func genRZ(e *exec, data []complex128, numQubits int, wires []int, _ bool) float64 {
	stridedPauliZ(e, data, numQubits, wires, false, nil)
	return gate.GenRZ.Coefficient()
}

// genPhaseShift projects onto the |1> branch of the wire.
func genPhaseShift(e *exec, data []complex128, numQubits int, wires []int, _ bool) float64 {
	s := wireStride(numQubits, wires[0])
	blocks := len(data) / (2 * s)
	e.parallelFor(blocks, func(lo, hi int) {
		for b := lo; b < hi; b++ {
			base := b * 2 * s
			for i := base; i < base+s; i++ {
				data[i] = 0
			}
		}
	})
	return gate.GenPhaseShift.Coefficient()
}

// genControlledPhaseShift projects onto the |11> branch of the wire pair.
func genControlledPhaseShift(e *exec, data []complex128, numQubits int, wires []int, _ bool) float64 {
	sc, st := wireStride(numQubits, wires[0]), wireStride(numQubits, wires[1])
	mask := sc | st
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&mask != mask {
				data[i] = 0
			}
		}
	})
	return gate.GenControlledPhaseShift.Coefficient()
}

// genCRX zeroes the control-0 block and applies PauliX on the target inside
// the control-1 block.
func genCRX(e *exec, data []complex128, numQubits int, wires []int, _ bool) float64 {
	sc, st := wireStride(numQubits, wires[0]), wireStride(numQubits, wires[1])
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&sc == 0 {
				data[i] = 0
				continue
			}
			if i&st == 0 {
				data[i], data[i+st] = data[i+st], data[i]
			}
		}
	})
	return gate.GenCRX.Coefficient()
}

func genCRY(e *exec, data []complex128, numQubits int, wires []int, _ bool) float64 {
	sc, st := wireStride(numQubits, wires[0]), wireStride(numQubits, wires[1])
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&sc == 0 {
				data[i] = 0
				continue
			}
			if i&st == 0 {
				a0, a1 := data[i], data[i+st]
				data[i] = -1i * a1
				data[i+st] = 1i * a0
			}
		}
	})
	return gate.GenCRY.Coefficient()
}

func genCRZ(e *exec, data []complex128, numQubits int, wires []int, _ bool) float64 {
	sc, st := wireStride(numQubits, wires[0]), wireStride(numQubits, wires[1])
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&sc == 0 {
				data[i] = 0
			} else if i&st != 0 {
				data[i] = -data[i]
			}
		}
	})
	return gate.GenCRZ.Coefficient()
}

// genIsingXX applies X⊗X: a full swap across the two-wire subspace.
func genIsingXX(e *exec, data []complex128, numQubits int, wires []int, _ bool) float64 {
	s0, s1 := wireStride(numQubits, wires[0]), wireStride(numQubits, wires[1])
	mask := s0 | s1
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&mask != 0 {
				continue
			}
			data[i], data[i|mask] = data[i|mask], data[i]
			data[i|s1], data[i|s0] = data[i|s0], data[i|s1]
		}
	})
	return gate.GenIsingXX.Coefficient()
}

// genIsingYY applies Y⊗Y.
func genIsingYY(e *exec, data []complex128, numQubits int, wires []int, _ bool) float64 {
	s0, s1 := wireStride(numQubits, wires[0]), wireStride(numQubits, wires[1])
	mask := s0 | s1
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&mask != 0 {
				continue
			}
			a00, a01, a10, a11 := data[i], data[i|s1], data[i|s0], data[i|mask]
			data[i] = -a11
			data[i|s1] = a10
			data[i|s0] = a01
			data[i|mask] = -a00
		}
	})
	return gate.GenIsingYY.Coefficient()
}

// genIsingZZ applies Z⊗Z: a sign flip on odd-parity basis states.
func genIsingZZ(e *exec, data []complex128, numQubits int, wires []int, _ bool) float64 {
	s0, s1 := wireStride(numQubits, wires[0]), wireStride(numQubits, wires[1])
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if (i&s0 != 0) != (i&s1 != 0) {
				data[i] = -data[i]
			}
		}
	})
	return gate.GenIsingZZ.Coefficient()
}

// Controlled generators zero every amplitude outside the control pattern and
// apply the base generator inside it.
type stridedControlledGeneratorFn func(e *exec, data []complex128, numQubits int, cmask, cpattern int, wires []int, adjoint bool) float64

var stridedControlledGeneratorFns = map[gate.ControlledGeneratorOp]stridedControlledGeneratorFn{
	gate.NCGenRX:         ncGenRX,
	gate.NCGenRY:         ncGenRY,
	gate.NCGenRZ:         ncGenRZ,
	gate.NCGenPhaseShift: ncGenPhaseShift,
}

func ncGenRX(e *exec, data []complex128, numQubits int, cmask, cpattern int, wires []int, _ bool) float64 {
	st := wireStride(numQubits, wires[0])
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&cmask != cpattern {
				data[i] = 0
				continue
			}
			if i&st == 0 {
				data[i], data[i+st] = data[i+st], data[i]
			}
		}
	})
	return gate.NCGenRX.Coefficient()
}

func ncGenRY(e *exec, data []complex128, numQubits int, cmask, cpattern int, wires []int, _ bool) float64 {
	st := wireStride(numQubits, wires[0])
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&cmask != cpattern {
				data[i] = 0
				continue
			}
			if i&st == 0 {
				a0, a1 := data[i], data[i+st]
				data[i] = -1i * a1
				data[i+st] = 1i * a0
			}
		}
	})
	return gate.NCGenRY.Coefficient()
}

func ncGenRZ(e *exec, data []complex128, numQubits int, cmask, cpattern int, wires []int, _ bool) float64 {
	st := wireStride(numQubits, wires[0])
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&cmask != cpattern {
				data[i] = 0
			} else if i&st != 0 {
				data[i] = -data[i]
			}
		}
	})
	return gate.NCGenRZ.Coefficient()
}

func ncGenPhaseShift(e *exec, data []complex128, numQubits int, cmask, cpattern int, wires []int, _ bool) float64 {
	st := wireStride(numQubits, wires[0])
	e.parallelFor(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&cmask != cpattern || i&st == 0 {
				data[i] = 0
			}
		}
	})
	return gate.NCGenPhaseShift.Coefficient()
}
