package gpu

import vm "matrix/vector_math"

// NewCubeMesh returns a unit cube centred on the origin with one color per corner.
func NewCubeMesh() *Mesh {
	corner := func(x, y, z, r, g, b float64) Vertex {
		return NewVertex(vm.NewVec3(x, y, z), vm.NewVec3(r, g, b))
	}
	v := []Vertex{
		corner(-0.5, -0.5, -0.5, 1, 0, 0), // [0]
		corner(0.5, -0.5, -0.5, 0, 1, 0),
		corner(0.5, 0.5, -0.5, 0, 0, 1),
		corner(-0.5, 0.5, -0.5, 1, 0.5, 1),
		corner(-0.5, -0.5, 0.5, 1, 0.5, 0.5), // [4]
		corner(0.5, -0.5, 0.5, 0.5, 1, 0.5),
		corner(0.5, 0.5, 0.5, 0.5, 0.5, 1),
		corner(-0.5, 0.5, 0.5, 0, 0.5, 0),
	}

	id := []uint32{
		2, 1, 0, 0, 3, 2, // front
		5, 1, 6, 1, 2, 6, // right
		4, 5, 6, 7, 4, 6, // back
		4, 7, 0, 0, 7, 3, // left
		0, 1, 5, 5, 4, 0, // top
		3, 7, 6, 2, 3, 6, // bottom
	}

	return NewMesh(v, id)
}
