package vector_math

import (
	"math"
	"testing"
)

func TestCameraDefaults(t *testing.T) {
	c := NewCamera(90, 1, 50)
	if !c.View().ApproxEqual(NewIdentity(), eps) {
		t.Errorf("default camera at the origin looking down -Z should have an identity view:\n%s", c.View())
	}
	if c.GetProjection() != NewPerspective(90, 1, 1, 50) {
		t.Errorf("default projection should be perspective:\n%s", c.GetProjection())
	}
}

func TestCameraViewProjection(t *testing.T) {
	c := NewCamera(90, 1, 50)
	c.Move(Vec3{Z: 10})
	c.SetTarget(Vec3{})

	vp := c.ViewProjection()
	want := NewPerspective(90, 1, 1, 50).Mul(NewLookAt(Vec3{0, 0, 10}, Vec3{}))
	if !vp.ApproxEqual(want, eps) {
		t.Errorf("view projection should be\n%s\nbut was\n%s", want, vp)
	}
	r := vp.MulVec3(Vec3{0, 0, 9}).ToVec3()
	if math.Abs(r.Z+1) > 0.001 {
		t.Errorf("near plane should map to z=-1, got %s", r)
	}
}

func TestCameraTurn(t *testing.T) {
	c := NewCamera(60, 0.1, 100)
	c.Turn(90, Vec3{Y: 1})
	// -Z turned 90 degrees around +Y looks down -X
	if !vec3Near(c.Coi, Vec3{X: -1}, 1e-9) {
		t.Errorf("turned coi should be (-1, 0, 0), got %s", c.Coi)
	}
	if c.Eye != (Vec3{}) {
		t.Errorf("turning must not move the eye, got %s", c.Eye)
	}
}

func TestCameraEyeOnTarget(t *testing.T) {
	c := NewCamera(60, 0.1, 100)
	c.SetTarget(c.Eye)
	v := c.View()
	for r := 0; r < 4; r++ {
		for col := 0; col < 4; col++ {
			if math.IsNaN(v.At(r, col)) {
				t.Fatalf("view should fall back to looking down -Z instead of NaN:\n%s", v)
			}
		}
	}
}

func TestCameraOrthographic(t *testing.T) {
	c := NewCamera(0, 1, 11)
	c.Aspect = 2
	c.Projection = OrthographicProjection
	p := c.GetProjection()
	r := p.MulVec3(Vec3{2, 1, -1}).ToVec3()
	if !vec3Near(r, Vec3{1, 1, -1}, eps) {
		t.Errorf("orthographic corner should map to (1, 1, -1), got %s", r)
	}

	c.Projection = ProjectionType(7)
	if c.GetProjection() != NewIdentity() {
		t.Errorf("unknown projection type should fall back to identity")
	}
}
