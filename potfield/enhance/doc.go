// Package enhance implements the gradient-ratio enhancement transforms:
// tilt angle, theta map, and hyperbolic tilt. They combine horizontal and
// vertical gradient magnitudes into bounded, amplitude-normalized maps that
// emphasize source edges regardless of anomaly strength.
package enhance
