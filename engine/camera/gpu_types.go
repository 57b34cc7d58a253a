package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (192 bytes, std140/WGSL aligned).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned camera uniform block for the single-view
// transform stage: one model matrix and one view/projection pair, bound at
// slot 0 and rewritten once per frame by the host.
// Matches the WGSL CameraUniform struct layout exactly (see GPUCameraUniformSource).
// Size: 192 bytes (3 x mat4x4<f32>).
type GPUCameraUniform struct {
	Model [16]float32 // offset   0: model-to-world matrix (mat4x4<f32>)
	View  [16]float32 // offset  64: world-to-view matrix (mat4x4<f32>)
	Proj  [16]float32 // offset 128: view-to-clip matrix (mat4x4<f32>)
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (192)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 192-byte buffer ready for GPU upload
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Model[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.View[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[128+i*4:], math.Float32bits(g.Proj[i]))
	}
	return buf
}

// GPUStereoCameraUniformSource is the canonical WGSL definition of the StereoCameraUniform struct.
// Matches GPUStereoCameraUniform layout exactly (320 bytes, std140/WGSL aligned).
//
//go:embed assets/stereo_camera_uniform.wgsl
var GPUStereoCameraUniformSource string

// GPUStereoCameraUniform is the GPU-aligned camera uniform block for the
// multiview transform stage: one shared model matrix plus a separate
// view/projection pair per eye. The view index chooses the pair per
// invocation; the shared model matrix is what guarantees both eyes see the
// same world-space geometry.
// Matches the WGSL StereoCameraUniform struct layout exactly (see GPUStereoCameraUniformSource).
// Size: 320 bytes (5 x mat4x4<f32>).
type GPUStereoCameraUniform struct {
	Model     [16]float32 // offset   0: model-to-world matrix shared by both eyes
	ViewLeft  [16]float32 // offset  64: left eye world-to-view matrix
	ViewRight [16]float32 // offset 128: right eye world-to-view matrix
	ProjLeft  [16]float32 // offset 192: left eye view-to-clip matrix
	ProjRight [16]float32 // offset 256: right eye view-to-clip matrix
}

// Size returns the size of the GPUStereoCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (320)
func (g *GPUStereoCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUStereoCameraUniform struct into a byte buffer
// suitable for GPU upload.
//
// Returns:
//   - []byte: 320-byte buffer ready for GPU upload
func (g *GPUStereoCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	matrices := [5]*[16]float32{&g.Model, &g.ViewLeft, &g.ViewRight, &g.ProjLeft, &g.ProjRight}
	for m, mat := range matrices {
		base := m * 64
		for i := range 16 {
			binary.LittleEndian.PutUint32(buf[base+i*4:], math.Float32bits(mat[i]))
		}
	}
	return buf
}

// View returns the view matrix for a view index: ViewLeft for 0, ViewRight
// otherwise.
//
// Parameters:
//   - index: the view index (0 = left eye, 1 = right eye)
//
// Returns:
//   - [16]float32: the selected view matrix
func (g *GPUStereoCameraUniform) View(index int) [16]float32 {
	if index == 0 {
		return g.ViewLeft
	}
	return g.ViewRight
}

// Projection returns the projection matrix for a view index: ProjLeft for 0,
// ProjRight otherwise.
//
// Parameters:
//   - index: the view index (0 = left eye, 1 = right eye)
//
// Returns:
//   - [16]float32: the selected projection matrix
func (g *GPUStereoCameraUniform) Projection(index int) [16]float32 {
	if index == 0 {
		return g.ProjLeft
	}
	return g.ProjRight
}
