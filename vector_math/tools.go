package vector_math

import "math"

// ToRad is a helper function to turn degree to radians
func ToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDeg is a helper function to turn radians to degree
func ToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Apply multiplies v by m using the given homogeneous coordinate, 1 for
// points and 0 for directions, and drops the resulting w.
func Apply(v Vec3, w float64, m Mat4) Vec3 {
	r := m.MulVec4(Vec4FromVec3(v, w))
	return Vec3{X: r.X, Y: r.Y, Z: r.Z}
}
