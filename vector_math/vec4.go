package vector_math

import (
	"fmt"
	"math"
)

// Vec4 is a homogeneous coordinate or a 4D vector.
type Vec4 struct {
	X, Y, Z, W float64
}

func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Vec4FromVec3 extends v with the given w, 1 for points and 0 for directions.
func Vec4FromVec3(v Vec3, w float64) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

func Vec4FromArray(a [4]float64) Vec4 {
	return Vec4{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// Vec4FromSlice panics unless s holds exactly 4 values.
func Vec4FromSlice(s []float64) Vec4 {
	if len(s) != 4 {
		panic("Vec4 must have 4 elements")
	}
	return Vec4{X: s[0], Y: s[1], Z: s[2], W: s[3]}
}

// At returns component i, where 0 is x, 1 is y, 2 is z and 3 is w.
func (v Vec4) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		panic("Vec4 index out of range")
	}
}

func (v *Vec4) Set(i int, f float64) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	case 3:
		v.W = f
	default:
		panic("Vec4 index out of range")
	}
}

// ToVec3 performs the perspective divide. The result is undefined for w == 0.
func (v Vec4) ToVec3() Vec3 {
	return Vec3{
		X: v.X / v.W,
		Y: v.Y / v.W,
		Z: v.Z / v.W,
	}
}

func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{
		X: v.X + w.X,
		Y: v.Y + w.Y,
		Z: v.Z + w.Z,
		W: v.W + w.W,
	}
}

func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{
		X: v.X - w.X,
		Y: v.Y - w.Y,
		Z: v.Z - w.Z,
		W: v.W - w.W,
	}
}

func (v *Vec4) AddAssign(w Vec4) {
	*v = v.Add(w)
}

func (v *Vec4) SubAssign(w Vec4) {
	*v = v.Sub(w)
}

func (v Vec4) Dot(w Vec4) float64 {
	return (v.X * w.X) + (v.Y * w.Y) + (v.Z * w.Z) + (v.W * w.W)
}

func (v Vec4) Scale(factor float64) Vec4 {
	return Vec4{
		X: v.X * factor,
		Y: v.Y * factor,
		Z: v.Z * factor,
		W: v.W * factor,
	}
}

func (v Vec4) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns v divided by its length, w included.
func (v Vec4) Normalized() Vec4 {
	l := v.Len()
	return Vec4{
		X: v.X / l,
		Y: v.Y / l,
		Z: v.Z / l,
		W: v.W / l,
	}
}

// Normalize scales v to length 1 in place. It divides every component,
// w included, so it always agrees with Normalized.
func (v *Vec4) Normalize() {
	*v = v.Normalized()
}

func (v Vec4) Array() [4]float64 {
	return [4]float64{v.X, v.Y, v.Z, v.W}
}

func (v Vec4) String() string {
	return fmt.Sprintf("[%.3f, %.3f, %.3f, %.3f]", v.X, v.Y, v.Z, v.W)
}
