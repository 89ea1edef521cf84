// Package beam estimates the signal-to-noise ratio of antenna beam
// maps within a circular region of interest in angular sky coordinates.
//
// A beam map is a set of amplitude samples with matching (u, v)
// coordinates. The map may be scattered raw-observation samples or a
// regular grid produced by an interpolation step; the masking logic is
// identical and [SNR] and [SNRGrid] give the same result for the same
// underlying samples.
//
// The estimation policy: the signal is the maximum amplitude among
// samples whose distance from the centre is at most the radius, and the
// noise is the RMS of all finite samples outside that disk. NaN samples
// (typical outside the convex hull of an interpolated map) are ignored.
package beam
