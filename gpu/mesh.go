package gpu

import (
	vm "matrix/vector_math"
)

type Mesh struct {
	Vertices []Vertex
	VIndices []uint32
	ModelMat vm.Mat4
}

func NewMesh(v []Vertex, id []uint32) *Mesh {
	return &Mesh{
		Vertices: v,
		VIndices: id,
		ModelMat: vm.NewIdentity(),
	}
}

// Transform applies m on top of the current model matrix.
func (m *Mesh) Transform(t vm.Mat4) {
	t.MulAssign(m.ModelMat)
	m.ModelMat = t
}

// WorldPositions returns every vertex position after the model matrix,
// including the perspective divide.
func (m *Mesh) WorldPositions() []vm.Vec3 {
	out := make([]vm.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		p := vm.Vec3{X: float64(v.Pos[0]), Y: float64(v.Pos[1]), Z: float64(v.Pos[2])}
		out[i] = m.ModelMat.MulVec3(p).ToVec3()
	}
	return out
}

// VBufferBytes returns the raw vertex data for a vertex buffer upload.
func (m *Mesh) VBufferBytes() []byte {
	return RawBytes(m.Vertices)
}

func (m *Mesh) IdxBufferBytes() []byte {
	return RawBytes(m.VIndices)
}
