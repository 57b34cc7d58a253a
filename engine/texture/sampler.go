package texture

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/stereo-go/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// sampler is the implementation of the Sampler interface.
type sampler struct {
	pixels   []byte
	width    int
	height   int
	addressU wgpu.AddressMode
	addressV wgpu.AddressMode
	filter   wgpu.FilterMode
}

// Sampler defines the interface for reading texels from a decoded texture.
// It mirrors GPU sampler semantics on the CPU: UV coordinates outside [0, 1]
// are resolved by the configured address modes, and the configured filter mode
// selects nearest-texel or bilinear reads. Implementations must be safe for
// concurrent Sample calls, since the shading stages fan out across goroutines.
type Sampler interface {
	// Sample reads the texture at the given UV coordinate.
	//
	// Parameters:
	//   - u: the horizontal texture coordinate (0 = left edge, 1 = right edge)
	//   - v: the vertical texture coordinate (0 = top edge, 1 = bottom edge)
	//
	// Returns:
	//   - [4]float32: the RGBA texel value, each channel normalized to [0, 1]
	Sample(u, v float32) [4]float32

	// Width returns the texture width in pixels.
	//
	// Returns:
	//   - int: the width in pixels
	Width() int

	// Height returns the texture height in pixels.
	//
	// Returns:
	//   - int: the height in pixels
	Height() int
}

var _ Sampler = &sampler{}

// NewSampler creates a new Sampler over decoded RGBA texture data.
// Address modes and the filter mode start from common.DefaultSamplerStagingData
// when no option overrides them, matching the hardware sampler defaults used
// for GPU uploads.
//
// Parameters:
//   - data: the decoded RGBA pixel data with dimensions
//   - options: a variadic list of SamplerBuilderOption functions to configure the Sampler
//
// Returns:
//   - Sampler: a new Sampler instance over the provided texture data
func NewSampler(data common.TextureStagingData, options ...SamplerBuilderOption) Sampler {
	if data.Width == 0 || data.Height == 0 {
		panic("sampler: texture dimensions must be non-zero")
	}
	if len(data.Pixels) < int(data.Width)*int(data.Height)*4 {
		panic(fmt.Sprintf("sampler: pixel data too short for %dx%d RGBA texture", data.Width, data.Height))
	}
	def := common.DefaultSamplerStagingData()
	s := &sampler{
		pixels:   data.Pixels,
		width:    int(data.Width),
		height:   int(data.Height),
		addressU: def.AddressModeU,
		addressV: def.AddressModeV,
		filter:   def.MagFilter,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// NewSolidSampler creates a 1x1 Sampler that returns the same color for every
// UV coordinate. Hosts bind it when a draw has no texture of its own, and tests
// use it to make the lit shading output directly predictable.
//
// Parameters:
//   - rgba: the constant color, each channel in [0, 1]
//
// Returns:
//   - Sampler: a new single-texel Sampler
func NewSolidSampler(rgba [4]float32) Sampler {
	pix := make([]byte, 4)
	for i, c := range rgba {
		pix[i] = uint8(common.Clamp(c, 0, 1)*255 + 0.5)
	}
	return NewSampler(common.TextureStagingData{Pixels: pix, Width: 1, Height: 1})
}

func (s *sampler) Sample(u, v float32) [4]float32 {
	if s.filter == wgpu.FilterModeNearest {
		x := resolveCoord(floorInt(u*float32(s.width)), s.width, s.addressU)
		y := resolveCoord(floorInt(v*float32(s.height)), s.height, s.addressV)
		return s.texel(x, y)
	}

	// Bilinear: sample centers sit at texel midpoints, so shift by half a texel
	// before splitting into integer texels and fractional weights.
	fx := u*float32(s.width) - 0.5
	fy := v*float32(s.height) - 0.5
	x0 := floorInt(fx)
	y0 := floorInt(fy)
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := s.texel(resolveCoord(x0, s.width, s.addressU), resolveCoord(y0, s.height, s.addressV))
	c10 := s.texel(resolveCoord(x0+1, s.width, s.addressU), resolveCoord(y0, s.height, s.addressV))
	c01 := s.texel(resolveCoord(x0, s.width, s.addressU), resolveCoord(y0+1, s.height, s.addressV))
	c11 := s.texel(resolveCoord(x0+1, s.width, s.addressU), resolveCoord(y0+1, s.height, s.addressV))

	var out [4]float32
	for i := range out {
		top := c00[i] + (c10[i]-c00[i])*tx
		bottom := c01[i] + (c11[i]-c01[i])*tx
		out[i] = top + (bottom-top)*ty
	}
	return out
}

func (s *sampler) Width() int {
	return s.width
}

func (s *sampler) Height() int {
	return s.height
}

// texel reads one RGBA pixel at an already-resolved coordinate.
func (s *sampler) texel(x, y int) [4]float32 {
	idx := (y*s.width + x) * 4
	return [4]float32{
		float32(s.pixels[idx]) / 255.0,
		float32(s.pixels[idx+1]) / 255.0,
		float32(s.pixels[idx+2]) / 255.0,
		float32(s.pixels[idx+3]) / 255.0,
	}
}

// resolveCoord maps an unbounded texel coordinate into [0, n) according to the
// address mode. Unknown modes fall back to clamp-to-edge.
func resolveCoord(i, n int, mode wgpu.AddressMode) int {
	switch mode {
	case wgpu.AddressModeRepeat:
		m := i % n
		if m < 0 {
			m += n
		}
		return m
	case wgpu.AddressModeMirrorRepeat:
		period := 2 * n
		m := i % period
		if m < 0 {
			m += period
		}
		if m >= n {
			m = period - 1 - m
		}
		return m
	default:
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}

// floorInt converts to the largest integer not greater than f. A plain int
// conversion truncates toward zero, which is wrong for negative coordinates.
func floorInt(f float32) int {
	return int(math.Floor(float64(f)))
}
