package model

import (
	"github.com/Carmen-Shannon/stereo-go/common"
)

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name           string
	vertices       []GPUVertex
	indices        []uint32
	boundingRadius float32
	radiusOverride bool
}

// Mesh defines the interface for a renderable triangle mesh.
// A Mesh is a CPU-side container holding vertex and index data, ready to be
// marshalled into GPU buffers or fed through the transform stages directly.
// Hosts fill one from their own asset importer or construct it in code for
// procedural and debug geometry.
type Mesh interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Vertices retrieves the vertex data for this mesh.
	//
	// Returns:
	//   - []GPUVertex: the vertices
	Vertices() []GPUVertex

	// Indices retrieves the triangle indices for this mesh.
	//
	// Returns:
	//   - []uint32: the indices
	Indices() []uint32

	// VertexCount returns the number of vertices in the mesh.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// IndexCount returns the number of indices in the mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// VertexData marshals the vertices into a byte buffer for lit pipelines,
	// 44 bytes per vertex in the VertexBufferLayout order. The buffer is
	// freshly allocated on each call.
	//
	// Returns:
	//   - []byte: the marshalled vertex data
	VertexData() []byte

	// DebugVertexData marshals a position+color projection of the vertices into
	// a byte buffer for pass-through pipelines, 24 bytes per vertex in the
	// DebugVertexBufferLayout order. The buffer is freshly allocated on each call.
	//
	// Returns:
	//   - []byte: the marshalled pass-through vertex data
	DebugVertexData() []byte

	// IndexData returns the indices reinterpreted as a byte slice for GPU upload.
	// The returned slice aliases the index storage; it is not a copy.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// BoundingRadius returns the bounding sphere radius for this mesh, measured as
	// the maximum vertex distance from the origin. Used by frustum culling.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// SetVertices replaces the vertex data for this mesh. Unless a manual bounding
	// radius was configured, the bounding radius is recomputed from the new vertices.
	//
	// Parameters:
	//   - vertices: the vertices to set
	SetVertices(vertices []GPUVertex)

	// SetIndices replaces the triangle indices for this mesh.
	//
	// Parameters:
	//   - indices: the indices to set
	SetIndices(indices []uint32)
}

var _ Mesh = &mesh{}

// NewMesh creates a new Mesh instance with the specified options applied.
// Unless WithBoundingRadius is supplied, the bounding radius is computed
// from the configured vertices.
//
// Parameters:
//   - options: a variadic list of MeshBuilderOption functions to configure the Mesh
//
// Returns:
//   - Mesh: a new instance of Mesh configured with the provided options
func NewMesh(options ...MeshBuilderOption) Mesh {
	m := &mesh{}
	for _, opt := range options {
		opt(m)
	}
	if !m.radiusOverride {
		m.boundingRadius = ComputeBoundingRadius(m.vertices)
	}
	return m
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Vertices() []GPUVertex {
	return m.vertices
}

func (m *mesh) Indices() []uint32 {
	return m.indices
}

func (m *mesh) VertexCount() int {
	return len(m.vertices)
}

func (m *mesh) IndexCount() int {
	return len(m.indices)
}

func (m *mesh) VertexData() []byte {
	buf := make([]byte, 0, len(m.vertices)*44)
	for i := range m.vertices {
		buf = append(buf, m.vertices[i].Marshal()...)
	}
	return buf
}

func (m *mesh) DebugVertexData() []byte {
	buf := make([]byte, 0, len(m.vertices)*24)
	for i := range m.vertices {
		dv := GPUDebugVertex{Position: m.vertices[i].Position, Color: m.vertices[i].Color}
		buf = append(buf, dv.Marshal()...)
	}
	return buf
}

func (m *mesh) IndexData() []byte {
	return common.SliceToBytes(m.indices)
}

func (m *mesh) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *mesh) SetVertices(vertices []GPUVertex) {
	m.vertices = vertices
	if !m.radiusOverride {
		m.boundingRadius = ComputeBoundingRadius(m.vertices)
	}
}

func (m *mesh) SetIndices(indices []uint32) {
	m.indices = indices
}
