package projection

import "equirec-perspective/internal/mathutil"

// Rays returns one un-normalized camera-space view direction per output
// pixel, row-major. Pixel (x, y) maps to KInv · (x, y, 1). Pixels are
// independent of each other; the field depends only on the resolution
// and the inverse intrinsics.
func Rays(width, height int, kInv mathutil.Mat3) []mathutil.Vec3 {
	rays := make([]mathutil.Vec3, width*height)
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rays[i] = kInv.MulVec3(mathutil.Vec3{float64(x), float64(y), 1})
			i++
		}
	}
	return rays
}
