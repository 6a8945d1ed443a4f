package gate

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ErrParamCount indicates a parameter list whose length does not match the
// operation's fixed parameter count.
type ErrParamCount struct {
	Op       string
	Expected int
	Actual   int
}

func (e *ErrParamCount) Error() string {
	return fmt.Sprintf("%s expects %d parameter(s), got %d", e.Op, e.Expected, e.Actual)
}

const invSqrt2 = math.Sqrt2 / 2

// Matrix returns the row-major unitary matrix of the gate, side 2^NumWires.
// The first wire maps to the most significant bit of the row/column index.
func Matrix(op GateOp, params []float64) ([]complex128, error) {
	if op >= numGateOps {
		return nil, &ErrUnknownOperation{Name: op.String()}
	}
	if len(params) != op.NumParams() {
		return nil, &ErrParamCount{Op: op.String(), Expected: op.NumParams(), Actual: len(params)}
	}

	switch op {
	case Identity:
		return []complex128{1, 0, 0, 1}, nil
	case PauliX:
		return []complex128{0, 1, 1, 0}, nil
	case PauliY:
		return []complex128{0, -1i, 1i, 0}, nil
	case PauliZ:
		return []complex128{1, 0, 0, -1}, nil
	case Hadamard:
		h := complex(invSqrt2, 0)
		return []complex128{h, h, h, -h}, nil
	case S:
		return []complex128{1, 0, 0, 1i}, nil
	case T:
		return []complex128{1, 0, 0, phase(math.Pi / 4)}, nil
	case PhaseShift:
		return []complex128{1, 0, 0, phase(params[0])}, nil
	case RX:
		c, s := halfAngle(params[0])
		return []complex128{c, -1i * s, -1i * s, c}, nil
	case RY:
		c, s := halfAngle(params[0])
		return []complex128{c, -s, s, c}, nil
	case RZ:
		return []complex128{phase(-params[0] / 2), 0, 0, phase(params[0] / 2)}, nil
	case Rot:
		return rotMatrix(params[0], params[1], params[2]), nil
	case CNOT:
		return []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
			0, 0, 1, 0,
		}, nil
	case CY:
		return []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, -1i,
			0, 0, 1i, 0,
		}, nil
	case CZ:
		return []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, -1,
		}, nil
	case SWAP:
		return []complex128{
			1, 0, 0, 0,
			0, 0, 1, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
		}, nil
	case ControlledPhaseShift:
		return []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, phase(params[0]),
		}, nil
	case CRX, CRY, CRZ:
		target, err := Matrix(crBase(op), params)
		if err != nil {
			return nil, err
		}
		return controlledBlock(target), nil
	case IsingXX:
		c, s := halfAngle(params[0])
		is := 1i * s
		return []complex128{
			c, 0, 0, -is,
			0, c, -is, 0,
			0, -is, c, 0,
			-is, 0, 0, c,
		}, nil
	case IsingYY:
		c, s := halfAngle(params[0])
		is := 1i * s
		return []complex128{
			c, 0, 0, is,
			0, c, -is, 0,
			0, -is, c, 0,
			is, 0, 0, c,
		}, nil
	case IsingZZ:
		p, m := phase(params[0]/2), phase(-params[0]/2)
		return []complex128{
			m, 0, 0, 0,
			0, p, 0, 0,
			0, 0, p, 0,
			0, 0, 0, m,
		}, nil
	case Toffoli:
		mat := identityMatrix(8)
		// |110> <-> |111>
		mat[6*8+6], mat[6*8+7] = 0, 1
		mat[7*8+6], mat[7*8+7] = 1, 0
		return mat, nil
	case CSWAP:
		mat := identityMatrix(8)
		// |101> <-> |110>
		mat[5*8+5], mat[5*8+6] = 0, 1
		mat[6*8+5], mat[6*8+6] = 1, 0
		return mat, nil
	default:
		return nil, &ErrUnknownOperation{Name: op.String()}
	}
}

func crBase(op GateOp) GateOp {
	switch op {
	case CRX:
		return RX
	case CRY:
		return RY
	default:
		return RZ
	}
}

// TargetMatrix returns the matrix applied to the target wires of a
// controlled gate, side 2^NumWires (controls excluded).
func TargetMatrix(op ControlledGateOp, params []float64) ([]complex128, error) {
	if op >= numControlledGateOps {
		return nil, &ErrUnknownOperation{Name: op.String()}
	}
	return Matrix(op.Base(), params)
}

// Adjoint returns the conjugate transpose of the row-major square matrix m
// of the given side. The input is left untouched.
func Adjoint(m []complex128, dim int) []complex128 {
	out := make([]complex128, len(m))
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			out[c*dim+r] = cmplx.Conj(m[r*dim+c])
		}
	}
	return out
}

func phase(phi float64) complex128 {
	return cmplx.Exp(complex(0, phi))
}

func halfAngle(theta float64) (complex128, complex128) {
	return complex(math.Cos(theta/2), 0), complex(math.Sin(theta/2), 0)
}

// rotMatrix builds Rot(phi, theta, omega) = RZ(omega) RY(theta) RZ(phi).
func rotMatrix(phi, theta, omega float64) []complex128 {
	c, s := halfAngle(theta)
	return []complex128{
		phase(-(phi + omega) / 2) * c, -phase((phi - omega) / 2) * s,
		phase(-(phi - omega) / 2) * s, phase((phi + omega) / 2) * c,
	}
}

// controlledBlock embeds a 2x2 target matrix in the lower-right block of a
// 4x4 identity (single control wire, control value 1).
func controlledBlock(target []complex128) []complex128 {
	return []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, target[0], target[1],
		0, 0, target[2], target[3],
	}
}

func identityMatrix(dim int) []complex128 {
	m := make([]complex128, dim*dim)
	for i := 0; i < dim; i++ {
		m[i*dim+i] = 1
	}
	return m
}
