package quantgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/quantgo/buffer"
	"github.com/hupe1980/quantgo/gate"
	"github.com/hupe1980/quantgo/kernel"
)

var (
	// ErrUnknownOperation is returned when an operation name resolves to
	// nothing in the gate tables.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrInvalidArgument is returned when an operation is called with
	// arguments that fail precondition validation. The state is never
	// mutated in that case.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConfiguration is returned from construction when the requested
	// configuration cannot be satisfied, e.g. an operation with no
	// admissible kernel.
	ErrConfiguration = errors.New("invalid configuration")
)

// translateError normalizes errors from the kernel, gate and buffer packages
// into the public taxonomy.
//
// The original underlying error can be accessed via errors.Unwrap.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var unknown *gate.ErrUnknownOperation
	if errors.As(err, &unknown) {
		return fmt.Errorf("%w: %w", ErrUnknownOperation, err)
	}

	var nak *kernel.ErrNoAdmissibleKernel
	if errors.As(err, &nak) {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	// Everything else the lower layers report is an argument problem:
	// wire counts, ranges, duplicates, control mismatches, parameter
	// counts, matrix dimensions, explicit-kernel misuse.
	var (
		unavailable *kernel.ErrKernelUnavailable
		wireRange   *kernel.ErrWireOutOfRange
		wireCount   *kernel.ErrWireCount
		ctrlLen     *kernel.ErrControlLengthMismatch
		dimension   *kernel.ErrDimensionMismatch
		paramCount  *gate.ErrParamCount
		indexRange  *buffer.ErrIndexOutOfRange
	)
	switch {
	case errors.As(err, &unavailable),
		errors.As(err, &wireRange),
		errors.As(err, &wireCount),
		errors.As(err, &ctrlLen),
		errors.As(err, &dimension),
		errors.As(err, &paramCount),
		errors.As(err, &indexRange),
		errors.Is(err, kernel.ErrDuplicateWires),
		errors.Is(err, kernel.ErrControlOverlap),
		errors.Is(err, kernel.ErrNoWires):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
