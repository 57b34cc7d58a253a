package light

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUPointLightSource is the canonical WGSL definition of the PointLight struct.
// Matches GPUPointLight layout exactly (16 bytes, std140/WGSL aligned).
//
//go:embed assets/point_light.wgsl
var GPUPointLightSource string

// GPUPointLight is the GPU-aligned representation of the point light consumed
// by the lit fragment shader. The ambient term rides in the vec3's padding
// lane, so the struct stays a single 16-byte slot.
// Matches the WGSL PointLight struct layout exactly (see GPUPointLightSource).
// Size: 16 bytes (vec3<f32> + f32).
type GPUPointLight struct {
	Position [3]float32 // offset  0: world-space light position
	Ambient  float32    // offset 12: ambient floor term
}

// Size returns the size of the GPUPointLight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (g *GPUPointLight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUPointLight struct into a byte buffer suitable for
// GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload
func (g *GPUPointLight) Marshal() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Ambient))
	return buf
}

// ToGPUPointLight converts a Light interface value into the GPU-aligned
// GPUPointLight struct suitable for writing into the light uniform buffer.
// The enabled flag is a host-side concern; hosts skip the uniform write for
// disabled lights.
//
// Parameters:
//   - l: the Light to convert
//
// Returns:
//   - GPUPointLight: the GPU-aligned representation
func ToGPUPointLight(l Light) GPUPointLight {
	return GPUPointLight{
		Position: l.Position(),
		Ambient:  l.Ambient(),
	}
}
