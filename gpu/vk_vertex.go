package gpu

import (
	"unsafe"

	vk "github.com/goki/vulkan"
	"github.com/xlab/linmath"

	vm "matrix/vector_math"
)

// Vertex is the float32 layout consumed by the vertex shader.
type Vertex struct {
	Pos   linmath.Vec3
	Color linmath.Vec3
}

func NewVertex(pos vm.Vec3, color vm.Vec3) Vertex {
	return Vertex{
		Pos:   pos.Linmath(),
		Color: color.Linmath(),
	}
}

func GetVertexBindingDescription() vk.VertexInputBindingDescription {
	return vk.VertexInputBindingDescription{
		Binding:   0,
		Stride:    uint32(unsafe.Sizeof(Vertex{})),
		InputRate: vk.VertexInputRateVertex,
	}
}

func GetVertexAttributeDescriptions() []vk.VertexInputAttributeDescription {
	return []vk.VertexInputAttributeDescription{
		{
			Location: 0,
			Binding:  0,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Pos)),
		},
		{
			Location: 1,
			Binding:  0,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Color)),
		},
	}
}
