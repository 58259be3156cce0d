package enhance

import "github.com/cwbudde/algo-potfield/potfield/grid"

// HyperbolicTilt returns the tilt angle of gridded potential-field data.
//
// Despite the name, no hyperbolic function is applied: the classic routine
// computes exactly the Tilt formula and keeps only the real part of the
// result. That behavior is kept unchanged rather than "fixed" to match the
// name. Since the gradient operators already return real grids,
// HyperbolicTilt and Tilt produce identical output.
func HyperbolicTilt(x, y, data *grid.Grid, opts ...Option) (*grid.Grid, error) {
	return tiltAngle(x, y, data, ApplyOptions(opts...))
}
