// Package grid resamples beam maps onto regular meshes.
//
// [IDW] interpolates scattered (u, v, value) samples onto a mesh by
// inverse-distance weighting, the step that turns raw observation
// samples into a gridded map. [RegridCubic] resamples an already
// gridded map onto new axes with separable cubic splines.
package grid
