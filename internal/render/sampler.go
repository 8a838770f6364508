package render

import (
	"math"

	"equirec-perspective/internal/panorama"
)

// Sample reads one RGB value from src at the sub-pixel coordinate
// (x, y) using kernel k. Out-of-range indices wrap on both axes (the
// equirectangular seam is continuous horizontally; the vertical edge
// follows the same rule, see Remap). NaN coordinates produce the black
// sentinel pixel — converting NaN to an int index is not well defined,
// so it is rejected before any index math.
func Sample(src *panorama.Image, x, y float64, k Kernel) (r, g, b uint8) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, 0
	}
	switch k {
	case Nearest:
		return sampleNearest(src, x, y)
	case Bilinear:
		return sampleBilinear(src, x, y)
	case Bicubic:
		return sampleTaps(src, x, y, 2, cubicWeight)
	default:
		return sampleTaps(src, x, y, 4, lanczosWeight)
	}
}

// wrapIndex folds any integer index into [0, n).
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func sampleNearest(src *panorama.Image, x, y float64) (uint8, uint8, uint8) {
	xi := wrapIndex(int(math.Round(x)), src.Width)
	yi := wrapIndex(int(math.Round(y)), src.Height)
	i := src.PixOffset(xi, yi)
	return src.Pix[i], src.Pix[i+1], src.Pix[i+2]
}

// sampleBilinear blends the four surrounding texels. Accesses src.Pix
// directly for performance.
func sampleBilinear(src *panorama.Image, x, y float64) (uint8, uint8, uint8) {
	xf := math.Floor(x)
	yf := math.Floor(y)
	dx := x - xf
	dy := y - yf

	x0 := wrapIndex(int(xf), src.Width)
	x1 := wrapIndex(int(xf)+1, src.Width)
	y0 := wrapIndex(int(yf), src.Height)
	y1 := wrapIndex(int(yf)+1, src.Height)

	i00 := src.PixOffset(x0, y0)
	i10 := src.PixOffset(x1, y0)
	i01 := src.PixOffset(x0, y1)
	i11 := src.PixOffset(x1, y1)

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	pix := src.Pix
	fr := float64(pix[i00])*w00 + float64(pix[i10])*w10 + float64(pix[i01])*w01 + float64(pix[i11])*w11
	fg := float64(pix[i00+1])*w00 + float64(pix[i10+1])*w10 + float64(pix[i01+1])*w01 + float64(pix[i11+1])*w11
	fb := float64(pix[i00+2])*w00 + float64(pix[i10+2])*w10 + float64(pix[i01+2])*w01 + float64(pix[i11+2])*w11

	return uint8(fr + 0.5), uint8(fg + 0.5), uint8(fb + 0.5)
}

// sampleTaps evaluates a separable kernel over a (2·radius)² tap
// window centered on (x, y). Every tap index goes through the wrap
// rule, so multi-tap kernels stay continuous across the seam. Weights
// are renormalized by their sum; Keys cubic sums to 1 exactly, Lanczos
// does not.
func sampleTaps(src *panorama.Image, x, y float64, radius int, weight func(float64) float64) (uint8, uint8, uint8) {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))

	var fr, fg, fb, wsum float64
	for ty := y0 - radius + 1; ty <= y0+radius; ty++ {
		wy := weight(y - float64(ty))
		if wy == 0 {
			continue
		}
		row := wrapIndex(ty, src.Height)
		for tx := x0 - radius + 1; tx <= x0+radius; tx++ {
			w := wy * weight(x-float64(tx))
			if w == 0 {
				continue
			}
			i := src.PixOffset(wrapIndex(tx, src.Width), row)
			fr += float64(src.Pix[i]) * w
			fg += float64(src.Pix[i+1]) * w
			fb += float64(src.Pix[i+2]) * w
			wsum += w
		}
	}
	if wsum == 0 {
		return 0, 0, 0
	}
	return clamp8(fr / wsum), clamp8(fg / wsum), clamp8(fb / wsum)
}

// cubicWeight is the Keys cubic kernel with a = -0.75.
func cubicWeight(d float64) float64 {
	const a = -0.75
	d = math.Abs(d)
	switch {
	case d <= 1:
		return ((a+2)*d-(a+3))*d*d + 1
	case d < 2:
		return ((((d - 5) * d) + 8) * d * a) - 4*a
	}
	return 0
}

// lanczosWeight is the 4-lobe Lanczos kernel.
func lanczosWeight(d float64) float64 {
	const a = 4
	d = math.Abs(d)
	if d < 1e-8 {
		return 1
	}
	if d >= a {
		return 0
	}
	pd := math.Pi * d
	return a * math.Sin(pd) * math.Sin(pd/a) / (pd * pd)
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
