package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equirec-perspective/internal/panorama"
	"equirec-perspective/internal/projection"
)

var allKernels = []Kernel{Nearest, Bilinear, Bicubic, Lanczos}

func uniformImage(w, h int, r, g, b uint8) *panorama.Image {
	img := panorama.NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, r, g, b)
		}
	}
	return img
}

func TestSampleUniformImageAllKernels(t *testing.T) {
	// Every kernel's weights sum to one after normalization, so a
	// uniform image samples to its own color anywhere.
	img := uniformImage(8, 4, 10, 20, 30)
	coords := []struct{ x, y float64 }{
		{0, 0}, {2.3, 1.7}, {7.9, 3.5}, {-1.2, -0.6}, {100.25, 50.75},
	}
	for _, k := range allKernels {
		for _, c := range coords {
			r, g, b := Sample(img, c.x, c.y, k)
			assert.Equal(t, uint8(10), r, "%s at (%v,%v)", k, c.x, c.y)
			assert.Equal(t, uint8(20), g, "%s at (%v,%v)", k, c.x, c.y)
			assert.Equal(t, uint8(30), b, "%s at (%v,%v)", k, c.x, c.y)
		}
	}
}

func TestSampleNearestInteger(t *testing.T) {
	img := panorama.NewImage(4, 4)
	img.Set(2, 1, 200, 100, 50)

	r, g, b := Sample(img, 2, 1, Nearest)
	assert.Equal(t, [3]uint8{200, 100, 50}, [3]uint8{r, g, b})
}

func TestSampleBilinearMidpoint(t *testing.T) {
	img := panorama.NewImage(4, 1)
	img.Set(0, 0, 100, 0, 0)
	img.Set(1, 0, 200, 0, 0)

	r, _, _ := Sample(img, 0.5, 0, Bilinear)
	assert.Equal(t, uint8(150), r)
}

func TestSampleHorizontalWrap(t *testing.T) {
	// The seam is continuous: x = -1 reads the last column.
	img := panorama.NewImage(5, 2)
	img.Set(4, 0, 99, 0, 0)

	r, _, _ := Sample(img, -1, 0, Nearest)
	assert.Equal(t, uint8(99), r)

	// x just past the right edge reads back into column 0.
	img.Set(0, 0, 77, 0, 0)
	r, _, _ = Sample(img, 5, 0, Nearest)
	assert.Equal(t, uint8(77), r)
}

func TestSampleBilinearAcrossSeam(t *testing.T) {
	img := panorama.NewImage(6, 1)
	img.Set(5, 0, 100, 0, 0)
	img.Set(0, 0, 200, 0, 0)

	// x = 5.5 blends the last and first columns equally.
	r, _, _ := Sample(img, 5.5, 0, Bilinear)
	assert.Equal(t, uint8(150), r)
}

func TestSampleMultiTapWrapAcrossSeam(t *testing.T) {
	// A uniform image stays uniform even when the bicubic/lanczos tap
	// windows span the seam on both axes.
	img := uniformImage(6, 4, 42, 42, 42)
	for _, k := range []Kernel{Bicubic, Lanczos} {
		for _, c := range []struct{ x, y float64 }{{0.1, 0.1}, {5.9, 3.9}, {-0.4, -0.4}} {
			r, g, b := Sample(img, c.x, c.y, k)
			assert.Equal(t, uint8(42), r, "%s at (%v,%v)", k, c.x, c.y)
			assert.Equal(t, uint8(42), g)
			assert.Equal(t, uint8(42), b)
		}
	}
}

func TestSampleNaNSentinel(t *testing.T) {
	img := uniformImage(4, 4, 255, 255, 255)
	for _, k := range allKernels {
		r, g, b := Sample(img, math.NaN(), 1, k)
		assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b}, "%s NaN x", k)

		r, g, b = Sample(img, 1, math.NaN(), k)
		assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b}, "%s NaN y", k)
	}
}

// Vertical out-of-range indices wrap exactly like horizontal ones.
// This is not a true pole traversal, but it is the pinned behavior of
// the remap boundary policy; see DESIGN.md.
func TestRemapVerticalWrapMatchesHorizontal(t *testing.T) {
	img := panorama.NewImage(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, uint8(y*40), uint8(x*40), 0)
		}
	}

	above := Remap(img, []projection.Coord{{X: 1, Y: -1}}, 1, 1, Nearest)
	last := Remap(img, []projection.Coord{{X: 1, Y: 3}}, 1, 1, Nearest)
	require.Equal(t, last.Pix, above.Pix)

	below := Remap(img, []projection.Coord{{X: 1, Y: 4}}, 1, 1, Nearest)
	first := Remap(img, []projection.Coord{{X: 1, Y: 0}}, 1, 1, Nearest)
	require.Equal(t, first.Pix, below.Pix)
}

func TestWrapIndex(t *testing.T) {
	cases := []struct{ i, n, want int }{
		{0, 5, 0}, {4, 5, 4}, {5, 5, 0}, {7, 5, 2},
		{-1, 5, 4}, {-5, 5, 0}, {-6, 5, 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, wrapIndex(c.i, c.n), "wrapIndex(%d, %d)", c.i, c.n)
	}
}

func TestCubicWeight(t *testing.T) {
	assert.InDelta(t, 1, cubicWeight(0), 1e-12)
	assert.InDelta(t, 0, cubicWeight(1), 1e-12)
	assert.InDelta(t, 0, cubicWeight(-1), 1e-12)
	assert.InDelta(t, 0, cubicWeight(2), 1e-12)
	assert.Equal(t, 0.0, cubicWeight(2.5))
	// Keys cubic with a = -0.75 undershoots between 1 and 2.
	assert.Less(t, cubicWeight(1.5), 0.0)
}

func TestLanczosWeight(t *testing.T) {
	assert.InDelta(t, 1, lanczosWeight(0), 1e-12)
	assert.InDelta(t, 0, lanczosWeight(1), 1e-9)
	assert.InDelta(t, 0, lanczosWeight(3), 1e-9)
	assert.Equal(t, 0.0, lanczosWeight(4))
	assert.Equal(t, 0.0, lanczosWeight(5))
}

func TestParseKernel(t *testing.T) {
	for _, name := range []string{"nearest", "bilinear", "bicubic", "lanczos"} {
		k, err := ParseKernel(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
	}

	_, err := ParseKernel("area")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported interpolation method")
}
