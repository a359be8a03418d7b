package vector_math

import (
	"github.com/xlab/linmath"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Conversions to the vector and matrix types of neighbouring libraries.
// x/image and gonum are row-major like Mat4, linmath is column-major.

func (v Vec3) F64() f64.Vec3 {
	return f64.Vec3(v.Array())
}

func (v Vec4) F64() f64.Vec4 {
	return f64.Vec4(v.Array())
}

// F64 flattens m into x/image's row-major layout, m[4*r + c].
func (m Mat4) F64() f64.Mat4 {
	var out f64.Mat4
	for r := range m {
		for c := 0; c < 4; c++ {
			out[4*r+c] = m[r].At(c)
		}
	}
	return out
}

func Mat4FromF64(a f64.Mat4) Mat4 {
	var m Mat4
	for r := range m {
		m[r] = Vec4{a[4*r], a[4*r+1], a[4*r+2], a[4*r+3]}
	}
	return m
}

func (v Vec3) F32() f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (m Mat4) F32() f32.Mat4 {
	var out f32.Mat4
	for i, f := range m.F64() {
		out[i] = float32(f)
	}
	return out
}

func (v Vec3) Linmath() linmath.Vec3 {
	return linmath.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (v Vec4) Linmath() linmath.Vec4 {
	return linmath.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// Linmath converts m to float32 in linmath's column-major layout, which is
// also what GLSL expects for a mat4 uniform: out[c][r] == m[r][c].
func (m Mat4) Linmath() linmath.Mat4x4 {
	var out linmath.Mat4x4
	for c := 0; c < 4; c++ {
		out[c] = m.Col(c).Linmath()
	}
	return out
}

func Mat4FromLinmath(l linmath.Mat4x4) Mat4 {
	var m Mat4
	for r := range m {
		m[r] = Vec4{float64(l[0][r]), float64(l[1][r]), float64(l[2][r]), float64(l[3][r])}
	}
	return m
}

func (v Vec3) R3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func Vec3FromR3(v r3.Vec) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

func (m Mat4) Dense() *mat.Dense {
	f := m.F64()
	return mat.NewDense(4, 4, f[:])
}

// Mat4FromMatrix copies a 4x4 gonum matrix and panics on any other shape.
func Mat4FromMatrix(a mat.Matrix) Mat4 {
	if r, c := a.Dims(); r != 4 || c != 4 {
		panic("Mat4 must have 4 Vec4 elements")
	}
	var m Mat4
	for r := range m {
		m[r] = Vec4{a.At(r, 0), a.At(r, 1), a.At(r, 2), a.At(r, 3)}
	}
	return m
}
