package gpu

import (
	"math"
	"testing"

	vm "matrix/vector_math"
)

func TestCubeMesh(t *testing.T) {
	c := NewCubeMesh()
	if len(c.Vertices) != 8 || len(c.VIndices) != 36 {
		t.Fatalf("cube should have 8 vertices and 36 indices, got %d and %d", len(c.Vertices), len(c.VIndices))
	}
	for _, i := range c.VIndices {
		if int(i) >= len(c.Vertices) {
			t.Errorf("index %d out of range", i)
		}
	}
}

func TestCubeInsideFrustum(t *testing.T) {
	c := NewCubeMesh()
	c.Transform(vm.NewRotYDeg(45))
	c.Transform(vm.NewTranslation(0, 0, -3))

	cam := vm.NewCamera(90, 1, 50)
	ubo := NewUniformBufferObject(c.ModelMat, cam)
	for _, v := range c.Vertices {
		p := vm.Vec3{X: float64(v.Pos[0]), Y: float64(v.Pos[1]), Z: float64(v.Pos[2])}
		r := ubo.MVP().MulVec3(p).ToVec3()
		if math.Abs(r.X) > 1 || math.Abs(r.Y) > 1 || math.Abs(r.Z) > 1 {
			t.Errorf("corner %v should be inside the clip volume, got %s", v.Pos, r)
		}
	}
}
