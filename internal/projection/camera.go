// Package projection implements the geometric pipeline that maps output
// pixels of a virtual pinhole camera onto an equirectangular panorama:
// camera intrinsics, per-pixel view rays, orientation composition,
// spherical projection and the longitude/latitude → source-pixel
// mapping. All functions are pure; the resampling step lives in
// internal/render.
package projection

import (
	"math"

	"equirec-perspective/internal/mathutil"
)

// Intrinsics holds the pinhole camera matrix K and its inverse for a
// given field of view and output resolution.
type Intrinsics struct {
	K    mathutil.Mat3
	KInv mathutil.Mat3
}

// NewIntrinsics builds K for a pinhole camera whose horizontal field of
// view spans fovDeg degrees across width pixels. The principal point is
// the center of the pixel grid, so K is always invertible for any
// in-range FOV.
func NewIntrinsics(fovDeg float64, width, height int) Intrinsics {
	f := 0.5 * float64(width) / math.Tan(0.5*mathutil.Deg2Rad(fovDeg))
	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	k := mathutil.Mat3{
		f, 0, cx,
		0, f, cy,
		0, 0, 1,
	}
	return Intrinsics{K: k, KInv: k.Inverse()}
}
