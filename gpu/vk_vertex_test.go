package gpu

import (
	"testing"

	vk "github.com/goki/vulkan"

	vm "matrix/vector_math"
)

func TestVertexLayout(t *testing.T) {
	bd := GetVertexBindingDescription()
	if bd.Stride != 24 || bd.InputRate != vk.VertexInputRateVertex {
		t.Errorf("unexpected binding description %+v", bd)
	}
	ad := GetVertexAttributeDescriptions()
	if len(ad) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(ad))
	}
	if ad[0].Offset != 0 || ad[1].Offset != 12 {
		t.Errorf("unexpected offsets %d, %d", ad[0].Offset, ad[1].Offset)
	}
	for _, a := range ad {
		if a.Format != vk.FormatR32g32b32Sfloat {
			t.Errorf("attribute %d should be a float vec3", a.Location)
		}
	}
}

func TestMeshTransform(t *testing.T) {
	m := NewMesh([]Vertex{
		NewVertex(vm.Vec3{X: 11, Y: 12, Z: 13}, vm.Vec3{X: 1}),
		NewVertex(vm.Vec3{}, vm.Vec3{Y: 1}),
	}, []uint32{0, 1})

	m.Transform(vm.NewScale(2, 3, 4))
	m.Transform(vm.NewTranslation(5, 6, 7))

	p := m.WorldPositions()
	if p[0] != (vm.Vec3{X: 27, Y: 42, Z: 59}) {
		t.Errorf("scale then translate should give (27, 42, 59), got %s", p[0])
	}
	if p[1] != (vm.Vec3{X: 5, Y: 6, Z: 7}) {
		t.Errorf("origin should move to the translation, got %s", p[1])
	}
	if len(m.VBufferBytes()) != 2*24 || len(m.IdxBufferBytes()) != 2*4 {
		t.Errorf("unexpected buffer sizes %d, %d", len(m.VBufferBytes()), len(m.IdxBufferBytes()))
	}
}
