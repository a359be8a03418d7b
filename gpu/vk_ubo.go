package gpu

import (
	"unsafe"

	vk "github.com/goki/vulkan"
	"github.com/xlab/linmath"

	vm "matrix/vector_math"
)

// UniformBufferObject holds the transforms of one draw call. Matrices are
// uploaded column-major as float32, which is the default mat4 layout in GLSL.
type UniformBufferObject struct {
	Model      vm.Mat4
	View       vm.Mat4
	Projection vm.Mat4
}

func NewUniformBufferObject(model vm.Mat4, cam *vm.Camera) *UniformBufferObject {
	return &UniformBufferObject{
		Model:      model,
		View:       cam.View(),
		Projection: cam.GetProjection(),
	}
}

// SizeOfUbo returns the size of the packed UniformBufferObject, three 4x4 float32 matrices.
func SizeOfUbo() vk.DeviceSize {
	return vk.DeviceSize(3 * unsafe.Sizeof(linmath.Mat4x4{}))
}

func (u *UniformBufferObject) Bytes() []byte {
	return RawBytes([3]linmath.Mat4x4{
		u.Model.Linmath(),
		u.View.Linmath(),
		u.Projection.Linmath(),
	})
}

// MVP is the combined Projection * View * Model transform, for pipelines
// that take a single matrix as push constant.
func (u *UniformBufferObject) MVP() vm.Mat4 {
	return u.Projection.Mul(u.View).Mul(u.Model)
}
