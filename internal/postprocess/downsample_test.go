package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equirec-perspective/internal/panorama"
)

func TestDownscaleUniform(t *testing.T) {
	src := panorama.NewImage(64, 64)
	for i := 0; i < len(src.Pix); i += 3 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2] = 50, 100, 150
	}

	out := Downscale(src, 32, 32)
	require.Equal(t, 32, out.Width)
	require.Equal(t, 32, out.Height)

	// A uniform image stays uniform under any interpolating filter.
	for i := 0; i < len(out.Pix); i += 3 {
		assert.Equal(t, uint8(50), out.Pix[i])
		assert.Equal(t, uint8(100), out.Pix[i+1])
		assert.Equal(t, uint8(150), out.Pix[i+2])
	}
}

func TestDownscaleNoopWhenSmallEnough(t *testing.T) {
	src := panorama.NewImage(16, 16)
	assert.Same(t, src, Downscale(src, 16, 16))
	assert.Same(t, src, Downscale(src, 32, 32))
}

func TestDownscaleNonSquare(t *testing.T) {
	src := panorama.NewImage(40, 20)
	out := Downscale(src, 10, 5)
	require.Equal(t, 10, out.Width)
	require.Equal(t, 5, out.Height)
	require.Len(t, out.Pix, 10*5*3)
}
