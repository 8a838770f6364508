package projection

import "equirec-perspective/internal/mathutil"

// Orientation composes the view rotation from yaw (theta) and pitch
// (phi), both in degrees. Yaw rotates about the world Y axis; pitch
// rotates about the yaw-rotated X axis, so the pitch axis follows the
// look direction. This is intentionally not a fixed-axis Euler
// composition. The result R = R2·R1 is orthonormal with det +1 and is
// the identity at theta = phi = 0.
func Orientation(thetaDeg, phiDeg float64) mathutil.Mat3 {
	r1 := mathutil.AxisAngle(mathutil.Vec3{0, 1, 0}, mathutil.Deg2Rad(thetaDeg))
	pitchAxis := r1.MulVec3(mathutil.Vec3{1, 0, 0})
	r2 := mathutil.AxisAngle(pitchAxis, mathutil.Deg2Rad(phiDeg))
	return mathutil.Mat3Mul(r2, r1)
}
