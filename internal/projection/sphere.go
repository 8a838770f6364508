package projection

import (
	"math"

	"equirec-perspective/internal/mathutil"
)

// LonLat is a point on the unit sphere in radians.
// Lon ∈ [-π, π], Lat ∈ [-π/2, π/2].
type LonLat struct {
	Lon, Lat float64
}

// Coord addresses the source pixel grid with sub-pixel precision.
// Values may fall outside the grid; the resampler owns the boundary
// policy.
type Coord struct {
	X, Y float64
}

// ToSphere rotates every ray by r and converts it to longitude and
// latitude on the unit sphere. Rays are normalized here, not by the
// generator: a degenerate zero-length ray divides to NaN and the NaN
// coordinates flow through to the resampler, which must render them as
// its defined sentinel rather than crash.
func ToSphere(rays []mathutil.Vec3, r mathutil.Mat3) []LonLat {
	out := make([]LonLat, len(rays))
	for i, ray := range rays {
		v := r.MulVec3(ray)
		n := v.Len()
		x, y, z := v[0]/n, v[1]/n, v[2]/n
		out[i] = LonLat{Lon: math.Atan2(x, z), Lat: math.Asin(y)}
	}
	return out
}

// ToPixels maps spherical coordinates onto the source image's pixel
// grid: longitude [-π, π] spans [0, srcWidth-1] and latitude
// [-π/2, π/2] spans [0, srcHeight-1]. No wrapping or clamping is
// applied here.
func ToPixels(sphere []LonLat, srcWidth, srcHeight int) []Coord {
	out := make([]Coord, len(sphere))
	for i, ll := range sphere {
		out[i] = Coord{
			X: (ll.Lon/(2*math.Pi) + 0.5) * float64(srcWidth-1),
			Y: (ll.Lat/math.Pi + 0.5) * float64(srcHeight-1),
		}
	}
	return out
}
