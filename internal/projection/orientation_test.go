package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equirec-perspective/internal/mathutil"
)

func TestOrientationIdentityAtZero(t *testing.T) {
	r := Orientation(0, 0)
	for i, want := range mathutil.Mat3Identity() {
		assert.InDelta(t, want, r[i], 1e-15)
	}
}

func TestOrientationYawOnly(t *testing.T) {
	// With phi = 0 the pitch rotation is the identity and R reduces to
	// the yaw rotation: 90° yaw carries the optical axis ẑ to x̂.
	r := Orientation(90, 0)
	v := r.MulVec3(mathutil.Vec3{0, 0, 1})
	assert.InDelta(t, 1, v[0], 1e-12)
	assert.InDelta(t, 0, v[1], 1e-12)
	assert.InDelta(t, 0, v[2], 1e-12)
}

func TestOrientationPitchAxisFollowsYaw(t *testing.T) {
	// Rotating about the yaw-rotated X axis is algebraically
	// R1·Rx(phi)·R1ᵗ·R1 = R1·Rx(phi), so the composition must equal
	// RotY(theta)·RotX(phi) — not the fixed-axis RotX(phi)·RotY(theta).
	cases := []struct{ theta, phi float64 }{
		{0, 30}, {45, 45}, {90, -30}, {-120, 60}, {180, -90},
	}
	for _, c := range cases {
		got := Orientation(c.theta, c.phi)
		want := mathutil.Mat3Mul(
			mathutil.RotY(mathutil.Deg2Rad(c.theta)),
			mathutil.RotX(mathutil.Deg2Rad(c.phi)),
		)
		for i := 0; i < 9; i++ {
			require.InDelta(t, want[i], got[i], 1e-12, "theta=%v phi=%v", c.theta, c.phi)
		}
	}
}

func TestOrientationOrthonormal(t *testing.T) {
	thetas := []float64{-180, -90, -45, 0, 30, 90, 180}
	phis := []float64{-90, -45, 0, 45, 90}
	for _, theta := range thetas {
		for _, phi := range phis {
			r := Orientation(theta, phi)

			prod := mathutil.Mat3Mul(r, r.Transpose())
			for i, want := range mathutil.Mat3Identity() {
				require.InDelta(t, want, prod[i], 1e-12, "theta=%v phi=%v", theta, phi)
			}
			require.InDelta(t, 1.0, r.Det(), 1e-12, "theta=%v phi=%v", theta, phi)
		}
	}
}
