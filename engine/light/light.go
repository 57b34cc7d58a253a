package light

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	position [3]float32
	ambient  float32
	enabled  bool
}

// Light defines the interface for the point light the lit shading stage
// evaluates. The light holds a world-space position and the ambient floor term
// added to the diffuse contribution before clamping; keeping both here rather
// than baked into the shading formula lets tests and hosts move the light
// without rebuilding a stage.
type Light interface {
	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Ambient returns the ambient floor term added to the diffuse
	// contribution. With a non-zero ambient no lit surface renders fully
	// black.
	//
	// Returns:
	//   - float32: the ambient term
	Ambient() float32

	// Enabled returns whether this light contributes to shading. A disabled
	// light shades with its ambient term only.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetAmbient sets the ambient floor term.
	//
	// Parameters:
	//   - ambient: the ambient term, typically in [0, 1]
	SetAmbient(ambient float32)

	// SetEnabled enables or disables the light.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new point light with the default placement ten units up
// each axis and a 0.3 ambient floor, with any provided options applied.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		position: [3]float32{10, 10, 10},
		ambient:  0.3,
		enabled:  true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Position() [3]float32 {
	return l.position
}

func (l *lightImpl) Ambient() float32 {
	return l.ambient
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position = [3]float32{x, y, z}
}

func (l *lightImpl) SetAmbient(ambient float32) {
	l.ambient = ambient
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
