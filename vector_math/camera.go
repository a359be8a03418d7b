package vector_math

import "log"

type ProjectionType int

const (
	PerspectiveProjection ProjectionType = iota
	OrthographicProjection
)

type Camera struct {
	Projection ProjectionType

	// Projection matrix precursors, Fov in degrees
	Fov    float64
	Aspect float64
	Near   float64
	Far    float64

	Eye Vec3
	Coi Vec3
	Up  Vec3
}

// NewCamera returns a camera at the origin looking down -Z with +Y up.
func NewCamera(fov float64, near float64, far float64) *Camera {
	return &Camera{
		Fov:    fov,
		Aspect: 1,
		Near:   near,
		Far:    far,
		Coi:    Vec3{Z: -1},
		Up:     Vec3{Y: 1},
	}
}

// Move translates eye and center of interest together.
func (c *Camera) Move(v Vec3) {
	c.Eye.AddAssign(v)
	c.Coi.AddAssign(v)
}

func (c *Camera) SetTarget(v Vec3) {
	c.Coi = v
}

// Turn rotates the viewing direction by deg around axis, keeping the eye fixed.
func (c *Camera) Turn(deg float64, axis Vec3) {
	rm := NewRotation(ToRad(deg), axis)
	dir := Apply(c.Coi.Sub(c.Eye), 0, rm)
	c.Coi = c.Eye.Add(dir)
}

func (c *Camera) View() Mat4 {
	if c.Eye == c.Coi {
		log.Printf("Failed to calculate view direction, eye == coi = %s. Looking down -Z.", c.Eye)
		return NewLookAtUp(c.Eye, c.Eye.Add(Vec3{Z: -1}), c.Up)
	}
	return NewLookAtUp(c.Eye, c.Coi, c.Up)
}

func (c *Camera) GetProjection() Mat4 {
	switch c.Projection {
	case PerspectiveProjection:
		return NewPerspective(c.Fov, c.Aspect, c.Near, c.Far)
	case OrthographicProjection:
		return NewOrthographic(-c.Aspect, c.Aspect, -1, 1, c.Near, c.Far)
	default:
		log.Printf("Failed to select projection type %d, returning identity.", c.Projection)
		return NewIdentity()
	}
}

// ViewProjection maps world space points to clip space.
func (c *Camera) ViewProjection() Mat4 {
	return c.GetProjection().Mul(c.View())
}
