package vector_math

import "math"

func NewIdentity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func NewZero() Mat4 {
	return Mat4{}
}

// NewScale scales x, y and z by sx, sy and sz.
func NewScale(sx, sy, sz float64) Mat4 {
	sm := NewIdentity()
	sm[0].X = sx
	sm[1].Y = sy
	sm[2].Z = sz
	return sm
}

// NewTranslation moves points by (tx, ty, tz).
func NewTranslation(tx, ty, tz float64) Mat4 {
	tm := NewIdentity()
	tm[0].W = tx
	tm[1].W = ty
	tm[2].W = tz
	return tm
}

func NewRotX(rad float64) Mat4 {
	c := math.Cos(rad)
	s := math.Sin(rad)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

func NewRotY(rad float64) Mat4 {
	c := math.Cos(rad)
	s := math.Sin(rad)
	return Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func NewRotZ(rad float64) Mat4 {
	c := math.Cos(rad)
	s := math.Sin(rad)
	return Mat4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func NewRotXDeg(deg float64) Mat4 {
	return NewRotX(ToRad(deg))
}

func NewRotYDeg(deg float64) Mat4 {
	return NewRotY(ToRad(deg))
}

func NewRotZDeg(deg float64) Mat4 {
	return NewRotZ(ToRad(deg))
}

// NewRotation rotates by rad around an arbitrary axis. The axis is
// normalized first unless it already has unit length.
func NewRotation(rad float64, axis Vec3) Mat4 {
	if axis.Dot(axis) != 1 {
		axis = axis.Normalized()
	}
	ux, uy, uz := axis.X, axis.Y, axis.Z
	cosT := math.Cos(rad)
	sinT := math.Sin(rad)
	rm := NewIdentity()
	rm[0].X = cosT + (ux*ux)*(1-cosT)
	rm[0].Y = (ux*uy)*(1-cosT) - (uz * sinT)
	rm[0].Z = (ux*uz)*(1-cosT) + (uy * sinT)

	rm[1].X = (uy*ux)*(1-cosT) + (uz * sinT)
	rm[1].Y = cosT + (uy*uy)*(1-cosT)
	rm[1].Z = (uy*uz)*(1-cosT) - (ux * sinT)

	rm[2].X = (uz*ux)*(1-cosT) - (uy * sinT)
	rm[2].Y = (uz*uy)*(1-cosT) + (ux * sinT)
	rm[2].Z = cosT + (uz*uz)*(1-cosT)

	return rm
}

// NewLookAt is NewLookAtUp with +Y as the up direction.
func NewLookAt(eye Vec3, coi Vec3) Mat4 {
	return NewLookAtUp(eye, coi, Vec3{Y: 1})
}

// NewLookAtUp implemented after http://www.opengl.org/sdk/docs/man2/xhtml/gluLookAt.xml
//
// The camera sits at eye and looks down its -w axis towards coi. The result
// is NaN when up is parallel to the viewing direction.
func NewLookAtUp(eye Vec3, coi Vec3, up Vec3) Mat4 {
	// reversed subtraction, the camera looks down -w
	w := eye.Sub(coi).Normalized()
	u := up.Cross(w).Normalized()
	v := w.Cross(u).Normalized()

	r := Mat4{
		{u.X, u.Y, u.Z, 0},
		{v.X, v.Y, v.Z, 0},
		{w.X, w.Y, w.Z, 0},
		{0, 0, 0, 1},
	}
	return r.Mul(NewTranslation(-eye.X, -eye.Y, -eye.Z))
}

// NewPerspective implemented after: https://registry.khronos.org/OpenGL-Refpages/gl2.1/xhtml/gluPerspective.xml
//
// fovY is the vertical field of view in degrees. Points between zNear and
// zFar end up with a clip space z in [-1, 1] after the perspective divide.
func NewPerspective(fovY float64, aspect float64, zNear float64, zFar float64) Mat4 {
	top := math.Tan(0.5*ToRad(fovY)) * zNear
	right := top * aspect
	denom := zFar - zNear
	return Mat4{
		{zNear / right, 0, 0, 0},
		{0, zNear / top, 0, 0},
		{0, 0, -(zFar + zNear) / denom, -2 * zFar * zNear / denom},
		{0, 0, -1, 0},
	}
}

// NewOrthographic implemented after https://registry.khronos.org/OpenGL-Refpages/gl2.1/xhtml/glOrtho.xml
//
// The box spanned by left/right, bottom/top and the near and far planes is
// mapped onto the [-1, 1] cube.
func NewOrthographic(left, right, bottom, top, zNear, zFar float64) Mat4 {
	mScale := NewScale(
		2/(right-left),
		2/(top-bottom),
		-2/(zFar-zNear),
	)
	mTrans := NewTranslation(
		-(right+left)/2,
		-(top+bottom)/2,
		(zFar+zNear)/2,
	)
	return mScale.Mul(mTrans)
}
