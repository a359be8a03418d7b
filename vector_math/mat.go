package vector_math

import (
	"fmt"
	"math"
	"strings"
)

// Mat4 is a 4x4 matrix stored as four row vectors. m[r] is row r and
// m.At(r, c) the element in row r, column c.
type Mat4 [4]Vec4

func NewMat4(row0, row1, row2, row3 Vec4) Mat4 {
	return Mat4{row0, row1, row2, row3}
}

// Mat4FromSlice panics unless rows holds exactly 4 rows.
func Mat4FromSlice(rows []Vec4) Mat4 {
	if len(rows) != 4 {
		panic("Mat4 must have 4 Vec4 elements")
	}
	return Mat4{rows[0], rows[1], rows[2], rows[3]}
}

func checkRow(i int) {
	if i < 0 || i > 3 {
		panic("Mat4 index out of range")
	}
}

func (m Mat4) Row(i int) Vec4 {
	checkRow(i)
	return m[i]
}

func (m *Mat4) SetRow(i int, v Vec4) {
	checkRow(i)
	m[i] = v
}

// Col gathers the i'th component of every row.
func (m Mat4) Col(i int) Vec4 {
	checkRow(i)
	return Vec4{m[0].At(i), m[1].At(i), m[2].At(i), m[3].At(i)}
}

func (m Mat4) At(r, c int) float64 {
	return m.Row(r).At(c)
}

func (m *Mat4) Set(r, c int, f float64) {
	checkRow(r)
	m[r].Set(c, f)
}

// MulVec4 returns m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0].Dot(v),
		Y: m[1].Dot(v),
		Z: m[2].Dot(v),
		W: m[3].Dot(v),
	}
}

// MulVec3 multiplies v as a point, i.e. with an implicit w of 1. Call
// ToVec3 on the result to apply the perspective divide.
func (m Mat4) MulVec3(v Vec3) Vec4 {
	return m.MulVec4(Vec4FromVec3(v, 1))
}

// Mul returns the matrix product m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	cols := [4]Vec4{n.Col(0), n.Col(1), n.Col(2), n.Col(3)}
	var res Mat4
	for i := range m {
		res[i] = Vec4{
			X: m[i].Dot(cols[0]),
			Y: m[i].Dot(cols[1]),
			Z: m[i].Dot(cols[2]),
			W: m[i].Dot(cols[3]),
		}
	}
	return res
}

// MulAssign sets m to m * n.
func (m *Mat4) MulAssign(n Mat4) {
	*m = m.Mul(n)
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{m.Col(0), m.Col(1), m.Col(2), m.Col(3)}
}

// ApproxEqual reports whether every element of m is within eps of the
// matching element of n.
func (m Mat4) ApproxEqual(n Mat4, eps float64) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(m.At(r, c)-n.At(r, c)) > eps {
				return false
			}
		}
	}
	return true
}

func (m Mat4) String() string {
	mStr := strings.Builder{}
	for i := range m {
		if i == 0 {
			mStr.WriteString("[ ")
		} else {
			mStr.WriteString("\n  ")
		}
		mStr.WriteString(m[i].String())
	}
	mStr.WriteString(" ]")
	return mStr.String()
}

func (m Mat4) Describe() string {
	return fmt.Sprintf("4x4 Matrix:\n%s", m.String())
}
