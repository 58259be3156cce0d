package grid

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every transform package in this module. Operators
// wrap these sentinels with the specific violated condition, so callers can
// branch with errors.Is while still seeing the precise message.
var (
	// ErrInvalidParameter reports a scalar precondition violation, such as
	// a zero continuation height or a zero density contrast.
	ErrInvalidParameter = errors.New("potfield: invalid parameter")

	// ErrInvalidShape reports grid arguments that do not share a common
	// shape, or a malformed grid dimension.
	ErrInvalidShape = errors.New("potfield: invalid grid shape")

	// ErrNonFinite reports inf or NaN samples in an operator output. It is
	// only returned by transforms running in strict mode; the default is to
	// propagate non-finite values silently.
	ErrNonFinite = errors.New("potfield: non-finite values in result")
)

func validateDims(nx, ny int) error {
	if nx <= 0 || ny <= 0 {
		return fmt.Errorf("grid dims must be > 0: %dx%d: %w", nx, ny, ErrInvalidShape)
	}
	return nil
}

// CheckSameShape returns an error wrapping ErrInvalidShape unless every grid
// is non-nil and shares the shape of the first. Transforms call this before
// any computation proceeds.
func CheckSameShape(grids ...*Grid) error {
	if len(grids) == 0 {
		return nil
	}
	for _, g := range grids {
		if g == nil {
			return fmt.Errorf("grid must not be nil: %w", ErrInvalidShape)
		}
	}
	ref := grids[0]
	for _, g := range grids[1:] {
		if g.nx != ref.nx || g.ny != ref.ny {
			return fmt.Errorf("got %dx%d, want %dx%d: %w", g.nx, g.ny, ref.nx, ref.ny, ErrInvalidShape)
		}
	}
	return nil
}
