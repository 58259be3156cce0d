// Package grid provides the real- and complex-valued 2D grid types shared
// by all potential-field transforms, together with shape validation, the
// common error taxonomy, and single-pass grid statistics.
//
// Grids are rectangular arrays sampled uniformly along two orthogonal
// horizontal axes. Storage is row-major: the x axis runs along columns, the
// y axis along rows, so the flat index of sample (ix, iy) is iy*nx+ix. All
// transform packages in this module keep that layout, which also places the
// zero-wavenumber (DC) term of a transformed grid at flat index 0.
//
// Operators never mutate their input grids; every transform allocates and
// returns fresh grids.
package grid
