package model

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct for lit mesh pipelines.
// Matches GPUVertex layout exactly (44 bytes, tightly packed).
//
//go:embed assets/vertex_input.wgsl
var GPUVertexSource string

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
// Size: 44 bytes (tightly packed, no padding required).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	UV       [2]float32 // offset 24: UV texture coordinate (8 bytes)
	Color    [3]float32 // offset 32: per-vertex RGB color (12 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 44-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 44)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Normal[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Normal[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Normal[2]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.UV[0]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.UV[1]))
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[40:44], math.Float32bits(g.Color[2]))
	return buf
}

// VertexBufferLayout returns the wgpu vertex buffer layout for GPUVertex.
// Attribute locations follow the lit pipeline contract: 0=position, 1=normal,
// 2=uv, 3=color, all tightly packed.
//
// Returns:
//   - wgpu.VertexBufferLayout: the vertex buffer layout for lit mesh pipelines.
func VertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 44,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 32, ShaderLocation: 3},
		},
	}
}

// GPUDebugVertexSource is the canonical WGSL definition of the DebugVertexInput struct for
// pass-through pipelines. Matches GPUDebugVertex layout exactly (24 bytes, tightly packed).
//
//go:embed assets/debug_vertex_input.wgsl
var GPUDebugVertexSource string

// GPUDebugVertex is the GPU-aligned representation of a single pass-through vertex.
// It carries only position and color, for pipelines that skip lighting entirely.
// Matches the WGSL DebugVertexInput struct layout exactly (see GPUDebugVertexSource).
// Size: 24 bytes (tightly packed, no padding required).
type GPUDebugVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Color    [3]float32 // offset 12: per-vertex RGB color (12 bytes)
}

// Size returns the size of the GPUDebugVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUDebugVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUDebugVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 24-byte buffer ready for GPU upload.
func (g *GPUDebugVertex) Marshal() []byte {
	buf := make([]byte, 24)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[2]))
	return buf
}

// DebugVertexBufferLayout returns the wgpu vertex buffer layout for GPUDebugVertex.
// Attribute locations follow the pass-through pipeline contract: 0=position, 1=color.
//
// Returns:
//   - wgpu.VertexBufferLayout: the vertex buffer layout for pass-through pipelines.
func DebugVertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 24,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
		},
	}
}

// ComputeBoundingRadius calculates the bounding sphere radius from a slice of
// GPUVertex positions. The radius is the maximum distance from the origin
// across all vertices in the slice.
//
// Parameters:
//   - vertices: the vertex data to compute the bounding radius from
//
// Returns:
//   - float32: the maximum distance from the origin
func ComputeBoundingRadius(vertices []GPUVertex) float32 {
	var maxDistSq float32
	for _, v := range vertices {
		p := v.Position
		distSq := p[0]*p[0] + p[1]*p[1] + p[2]*p[2]
		if distSq > maxDistSq {
			maxDistSq = distSq
		}
	}
	return float32(math.Sqrt(float64(maxDistSq)))
}
