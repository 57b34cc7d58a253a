package model

// MeshBuilderOption is a functional option for configuring a Mesh via NewMesh.
type MeshBuilderOption func(*mesh)

// WithName is an option builder that sets the name of the Mesh.
//
// Parameters:
//   - name: the mesh identifier
//
// Returns:
//   - MeshBuilderOption: a function that applies the name option to a mesh
func WithName(name string) MeshBuilderOption {
	return func(m *mesh) {
		m.name = name
	}
}

// WithVertices is an option builder that sets the vertex data of the Mesh.
//
// Parameters:
//   - vertices: the vertices to set
//
// Returns:
//   - MeshBuilderOption: a function that applies the vertices option to a mesh
func WithVertices(vertices []GPUVertex) MeshBuilderOption {
	return func(m *mesh) {
		m.vertices = vertices
	}
}

// WithIndices is an option builder that sets the triangle indices of the Mesh.
//
// Parameters:
//   - indices: the indices to set
//
// Returns:
//   - MeshBuilderOption: a function that applies the indices option to a mesh
func WithIndices(indices []uint32) MeshBuilderOption {
	return func(m *mesh) {
		m.indices = indices
	}
}

// WithBoundingRadius is an option builder that manually sets the bounding sphere radius.
// Use this to override the auto-computed value from ComputeBoundingRadius when a manually
// tuned conservative bound is preferred.
//
// Parameters:
//   - radius: the bounding radius to set
//
// Returns:
//   - MeshBuilderOption: a function that applies the bounding radius option to a mesh
func WithBoundingRadius(radius float32) MeshBuilderOption {
	return func(m *mesh) {
		m.boundingRadius = radius
		m.radiusOverride = true
	}
}
