package gate

import "fmt"

// ErrUnknownOperation indicates that an operation name has no entry in the
// static name table of the requested family.
type ErrUnknownOperation struct {
	Name string
}

func (e *ErrUnknownOperation) Error() string {
	return fmt.Sprintf("unknown operation: %q", e.Name)
}

// GateOp identifies a named gate operation.
type GateOp uint8

const (
	Identity GateOp = iota
	PauliX
	PauliY
	PauliZ
	Hadamard
	S
	T
	PhaseShift
	RX
	RY
	RZ
	Rot
	CNOT
	CY
	CZ
	SWAP
	ControlledPhaseShift
	CRX
	CRY
	CRZ
	IsingXX
	IsingYY
	IsingZZ
	Toffoli
	CSWAP

	numGateOps // sentinel, keep last
)

type opInfo struct {
	name   string
	wires  int
	params int
}

var gateInfo = [numGateOps]opInfo{
	Identity:             {"Identity", 1, 0},
	PauliX:               {"PauliX", 1, 0},
	PauliY:               {"PauliY", 1, 0},
	PauliZ:               {"PauliZ", 1, 0},
	Hadamard:             {"Hadamard", 1, 0},
	S:                    {"S", 1, 0},
	T:                    {"T", 1, 0},
	PhaseShift:           {"PhaseShift", 1, 1},
	RX:                   {"RX", 1, 1},
	RY:                   {"RY", 1, 1},
	RZ:                   {"RZ", 1, 1},
	Rot:                  {"Rot", 1, 3},
	CNOT:                 {"CNOT", 2, 0},
	CY:                   {"CY", 2, 0},
	CZ:                   {"CZ", 2, 0},
	SWAP:                 {"SWAP", 2, 0},
	ControlledPhaseShift: {"ControlledPhaseShift", 2, 1},
	CRX:                  {"CRX", 2, 1},
	CRY:                  {"CRY", 2, 1},
	CRZ:                  {"CRZ", 2, 1},
	IsingXX:              {"IsingXX", 2, 1},
	IsingYY:              {"IsingYY", 2, 1},
	IsingZZ:              {"IsingZZ", 2, 1},
	Toffoli:              {"Toffoli", 3, 0},
	CSWAP:                {"CSWAP", 3, 0},
}

var gateByName = func() map[string]GateOp {
	m := make(map[string]GateOp, numGateOps)
	for op := GateOp(0); op < numGateOps; op++ {
		m[gateInfo[op].name] = op
	}
	return m
}()

// String returns the canonical operation name.
func (g GateOp) String() string {
	if g >= numGateOps {
		return fmt.Sprintf("GateOp(%d)", uint8(g))
	}
	return gateInfo[g].name
}

// NumWires returns the fixed wire arity of the gate.
func (g GateOp) NumWires() int { return gateInfo[g].wires }

// NumParams returns the fixed parameter count of the gate.
func (g GateOp) NumParams() int { return gateInfo[g].params }

// ParseGate resolves an operation name to its gate identifier.
func ParseGate(name string) (GateOp, bool) {
	op, ok := gateByName[name]
	return op, ok
}

// Gates returns all gate identifiers in registration order.
func Gates() []GateOp {
	ops := make([]GateOp, 0, numGateOps)
	for op := GateOp(0); op < numGateOps; op++ {
		ops = append(ops, op)
	}
	return ops
}

// GeneratorOp identifies the generator of a parametric gate. Generators are
// named after the gate they differentiate, so the name table overlaps with
// the gate table on purpose.
type GeneratorOp uint8

const (
	GenRX GeneratorOp = iota
	GenRY
	GenRZ
	GenPhaseShift
	GenControlledPhaseShift
	GenCRX
	GenCRY
	GenCRZ
	GenIsingXX
	GenIsingYY
	GenIsingZZ

	numGeneratorOps
)

type generatorInfo struct {
	name  string
	wires int
	coeff float64
}

var genInfo = [numGeneratorOps]generatorInfo{
	GenRX:                   {"RX", 1, -0.5},
	GenRY:                   {"RY", 1, -0.5},
	GenRZ:                   {"RZ", 1, -0.5},
	GenPhaseShift:           {"PhaseShift", 1, 1.0},
	GenControlledPhaseShift: {"ControlledPhaseShift", 2, 1.0},
	GenCRX:                  {"CRX", 2, -0.5},
	GenCRY:                  {"CRY", 2, -0.5},
	GenCRZ:                  {"CRZ", 2, -0.5},
	GenIsingXX:              {"IsingXX", 2, -0.5},
	GenIsingYY:              {"IsingYY", 2, -0.5},
	GenIsingZZ:              {"IsingZZ", 2, -0.5},
}

var generatorByName = func() map[string]GeneratorOp {
	m := make(map[string]GeneratorOp, numGeneratorOps)
	for op := GeneratorOp(0); op < numGeneratorOps; op++ {
		m[genInfo[op].name] = op
	}
	return m
}()

// String returns the name of the gate this generator belongs to.
func (g GeneratorOp) String() string {
	if g >= numGeneratorOps {
		return fmt.Sprintf("GeneratorOp(%d)", uint8(g))
	}
	return genInfo[g].name
}

// NumWires returns the fixed wire arity of the generator.
func (g GeneratorOp) NumWires() int { return genInfo[g].wires }

// Coefficient returns the defining scalar coefficient of the generator.
// The value is an exact constant, independent of the state; it feeds
// analytic-gradient formulas downstream.
func (g GeneratorOp) Coefficient() float64 { return genInfo[g].coeff }

// ParseGenerator resolves a gate name to its generator identifier.
func ParseGenerator(name string) (GeneratorOp, bool) {
	op, ok := generatorByName[name]
	return op, ok
}

// Generators returns all generator identifiers in registration order.
func Generators() []GeneratorOp {
	ops := make([]GeneratorOp, 0, numGeneratorOps)
	for op := GeneratorOp(0); op < numGeneratorOps; op++ {
		ops = append(ops, op)
	}
	return ops
}

// ControlledGateOp identifies a gate applied under an arbitrary set of
// control wires and control values. The name table reuses the base gate
// names: "PauliX" with controls resolves to NCPauliX.
type ControlledGateOp uint8

const (
	NCPauliX ControlledGateOp = iota
	NCPauliY
	NCPauliZ
	NCHadamard
	NCS
	NCT
	NCPhaseShift
	NCRX
	NCRY
	NCRZ
	NCRot
	NCSWAP

	numControlledGateOps
)

// controlledBase maps every controlled gate to the base gate whose target
// matrix it applies.
var controlledBase = [numControlledGateOps]GateOp{
	NCPauliX:     PauliX,
	NCPauliY:     PauliY,
	NCPauliZ:     PauliZ,
	NCHadamard:   Hadamard,
	NCS:          S,
	NCT:          T,
	NCPhaseShift: PhaseShift,
	NCRX:         RX,
	NCRY:         RY,
	NCRZ:         RZ,
	NCRot:        Rot,
	NCSWAP:       SWAP,
}

var controlledGateByName = func() map[string]ControlledGateOp {
	m := make(map[string]ControlledGateOp, numControlledGateOps)
	for op := ControlledGateOp(0); op < numControlledGateOps; op++ {
		m[gateInfo[controlledBase[op]].name] = op
	}
	return m
}()

// String returns the base gate name of the controlled operation.
func (c ControlledGateOp) String() string {
	if c >= numControlledGateOps {
		return fmt.Sprintf("ControlledGateOp(%d)", uint8(c))
	}
	return gateInfo[controlledBase[c]].name
}

// Base returns the base gate whose target matrix the controlled operation
// applies.
func (c ControlledGateOp) Base() GateOp { return controlledBase[c] }

// NumWires returns the target wire arity (controls excluded).
func (c ControlledGateOp) NumWires() int { return gateInfo[controlledBase[c]].wires }

// NumParams returns the fixed parameter count.
func (c ControlledGateOp) NumParams() int { return gateInfo[controlledBase[c]].params }

// ParseControlledGate resolves a gate name to its controlled identifier.
func ParseControlledGate(name string) (ControlledGateOp, bool) {
	op, ok := controlledGateByName[name]
	return op, ok
}

// ControlledGates returns all controlled gate identifiers.
func ControlledGates() []ControlledGateOp {
	ops := make([]ControlledGateOp, 0, numControlledGateOps)
	for op := ControlledGateOp(0); op < numControlledGateOps; op++ {
		ops = append(ops, op)
	}
	return ops
}

// ControlledGeneratorOp identifies the generator of a parametric gate applied
// under an arbitrary control set.
type ControlledGeneratorOp uint8

const (
	NCGenRX ControlledGeneratorOp = iota
	NCGenRY
	NCGenRZ
	NCGenPhaseShift

	numControlledGeneratorOps
)

var cgenInfo = [numControlledGeneratorOps]generatorInfo{
	NCGenRX:         {"RX", 1, -0.5},
	NCGenRY:         {"RY", 1, -0.5},
	NCGenRZ:         {"RZ", 1, -0.5},
	NCGenPhaseShift: {"PhaseShift", 1, 1.0},
}

var controlledGeneratorByName = func() map[string]ControlledGeneratorOp {
	m := make(map[string]ControlledGeneratorOp, numControlledGeneratorOps)
	for op := ControlledGeneratorOp(0); op < numControlledGeneratorOps; op++ {
		m[cgenInfo[op].name] = op
	}
	return m
}()

// String returns the name of the gate this generator belongs to.
func (g ControlledGeneratorOp) String() string {
	if g >= numControlledGeneratorOps {
		return fmt.Sprintf("ControlledGeneratorOp(%d)", uint8(g))
	}
	return cgenInfo[g].name
}

// NumWires returns the target wire arity (controls excluded).
func (g ControlledGeneratorOp) NumWires() int { return cgenInfo[g].wires }

// Coefficient returns the defining scalar coefficient of the generator.
func (g ControlledGeneratorOp) Coefficient() float64 { return cgenInfo[g].coeff }

// ParseControlledGenerator resolves a gate name to its controlled generator
// identifier.
func ParseControlledGenerator(name string) (ControlledGeneratorOp, bool) {
	op, ok := controlledGeneratorByName[name]
	return op, ok
}

// ControlledGenerators returns all controlled generator identifiers.
func ControlledGenerators() []ControlledGeneratorOp {
	ops := make([]ControlledGeneratorOp, 0, numControlledGeneratorOps)
	for op := ControlledGeneratorOp(0); op < numControlledGeneratorOps; op++ {
		ops = append(ops, op)
	}
	return ops
}

// MatrixOp identifies the raw-matrix fallback path, sized by target wire
// count.
type MatrixOp uint8

const (
	SingleQubitOp MatrixOp = iota
	TwoQubitOp
	MultiQubitOp

	numMatrixOps
)

var matrixNames = [numMatrixOps]string{"SingleQubitOp", "TwoQubitOp", "MultiQubitOp"}

// String returns the matrix operation name.
func (m MatrixOp) String() string {
	if m >= numMatrixOps {
		return fmt.Sprintf("MatrixOp(%d)", uint8(m))
	}
	return matrixNames[m]
}

// MatrixOpFor returns the matrix operation for the given target wire count:
// one wire takes the single-qubit path, two wires the two-qubit path, three
// or more the generic multi-qubit path.
func MatrixOpFor(numWires int) MatrixOp {
	switch numWires {
	case 1:
		return SingleQubitOp
	case 2:
		return TwoQubitOp
	default:
		return MultiQubitOp
	}
}

// MatrixOps returns all matrix operation identifiers.
func MatrixOps() []MatrixOp {
	return []MatrixOp{SingleQubitOp, TwoQubitOp, MultiQubitOp}
}

// ControlledMatrixOp identifies the raw-matrix fallback path under a control
// set, sized by target wire count.
type ControlledMatrixOp uint8

const (
	NCSingleQubitOp ControlledMatrixOp = iota
	NCTwoQubitOp
	NCMultiQubitOp

	numControlledMatrixOps
)

var controlledMatrixNames = [numControlledMatrixOps]string{"NCSingleQubitOp", "NCTwoQubitOp", "NCMultiQubitOp"}

// String returns the controlled matrix operation name.
func (m ControlledMatrixOp) String() string {
	if m >= numControlledMatrixOps {
		return fmt.Sprintf("ControlledMatrixOp(%d)", uint8(m))
	}
	return controlledMatrixNames[m]
}

// ControlledMatrixOpFor returns the controlled matrix operation for the given
// target wire count, using the same sizing rule as MatrixOpFor.
func ControlledMatrixOpFor(numWires int) ControlledMatrixOp {
	switch numWires {
	case 1:
		return NCSingleQubitOp
	case 2:
		return NCTwoQubitOp
	default:
		return NCMultiQubitOp
	}
}

// ControlledMatrixOps returns all controlled matrix operation identifiers.
func ControlledMatrixOps() []ControlledMatrixOp {
	return []ControlledMatrixOp{NCSingleQubitOp, NCTwoQubitOp, NCMultiQubitOp}
}
