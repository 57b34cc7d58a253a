// programs.go embeds the WGSL shader programs shipped with the engine and exposes
// constructors for each pipeline stage. The scene programs implement the lit-textured
// shading path over full vertices; the debug programs implement flat color passthrough
// over position-and-color vertices. Each vertex program exists in a single-view and a
// multiview (stereo) variant, while the fragment stage is shared between the two since
// shading does not depend on the eye.
package shader

import _ "embed"

//go:embed assets/scene-vert.wgsl
var sceneVertSource string

//go:embed assets/scene-stereo-vert.wgsl
var sceneStereoVertSource string

//go:embed assets/scene-frag.wgsl
var sceneFragSource string

//go:embed assets/debug-vert.wgsl
var debugVertSource string

//go:embed assets/debug-stereo-vert.wgsl
var debugStereoVertSource string

//go:embed assets/debug-frag.wgsl
var debugFragSource string

// SceneVertexShader returns the single-view scene vertex shader. It transforms positions
// to world and clip space with the CameraUniform matrices and forwards world position,
// world normal, uv, and color to the fragment stage.
//
// Returns:
//   - Shader: the parsed scene vertex shader
func SceneVertexShader() Shader {
	return NewShader("scene_vert", ShaderTypeVertex, sceneVertSource)
}

// SceneStereoVertexShader returns the multiview scene vertex shader. It performs the
// same transform as SceneVertexShader but selects the per-eye view and projection
// matrices from the StereoCameraUniform by view_index.
//
// Returns:
//   - Shader: the parsed stereo scene vertex shader
func SceneStereoVertexShader() Shader {
	return NewShader("scene_stereo_vert", ShaderTypeVertex, sceneStereoVertSource)
}

// SceneFragmentShader returns the lit-textured fragment shader shared by the single-view
// and stereo scene pipelines. It samples the diffuse texture and scales it by the
// ambient-plus-diffuse point light term.
//
// Returns:
//   - Shader: the parsed scene fragment shader
func SceneFragmentShader() Shader {
	return NewShader("scene_frag", ShaderTypeFragment, sceneFragSource)
}

// DebugVertexShader returns the single-view debug vertex shader, which composes the
// full model-view-projection product directly and forwards the vertex color.
//
// Returns:
//   - Shader: the parsed debug vertex shader
func DebugVertexShader() Shader {
	return NewShader("debug_vert", ShaderTypeVertex, debugVertSource)
}

// DebugStereoVertexShader returns the multiview debug vertex shader. It selects the
// per-eye matrices from the StereoCameraUniform by view_index.
//
// Returns:
//   - Shader: the parsed stereo debug vertex shader
func DebugStereoVertexShader() Shader {
	return NewShader("debug_stereo_vert", ShaderTypeVertex, debugStereoVertSource)
}

// DebugFragmentShader returns the passthrough fragment shader shared by the debug
// pipelines. The interpolated color is emitted with an opaque alpha.
//
// Returns:
//   - Shader: the parsed debug fragment shader
func DebugFragmentShader() Shader {
	return NewShader("debug_frag", ShaderTypeFragment, debugFragSource)
}
