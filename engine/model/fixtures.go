package model

// DebugTriangle builds the canonical single-triangle test mesh.
// The triangle spans the unit square on the XY plane with all normals facing +Z,
// one red, one green, and one blue corner, and UVs mirroring the XY positions.
// It renders correctly through every pipeline variant, which makes it the
// standard smoke-test geometry when bringing up a new target.
//
// Returns:
//   - Mesh: the debug triangle mesh
func DebugTriangle() Mesh {
	return NewMesh(
		WithName("debug_triangle"),
		WithVertices([]GPUVertex{
			{
				Position: [3]float32{0.0, -0.5, 0.0},
				Normal:   [3]float32{0.0, 0.0, 1.0},
				UV:       [2]float32{0.0, -0.5},
				Color:    [3]float32{1.0, 0.0, 0.0},
			},
			{
				Position: [3]float32{0.5, 0.5, 0.0},
				Normal:   [3]float32{0.0, 0.0, 1.0},
				UV:       [2]float32{0.5, 0.5},
				Color:    [3]float32{0.0, 1.0, 0.0},
			},
			{
				Position: [3]float32{-0.5, 0.5, 0.0},
				Normal:   [3]float32{0.0, 0.0, 1.0},
				UV:       [2]float32{-0.5, 0.5},
				Color:    [3]float32{0.0, 0.0, 1.0},
			},
		}),
		WithIndices([]uint32{0, 1, 2}),
	)
}
