package texture

import (
	"github.com/Carmen-Shannon/stereo-go/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// SamplerBuilderOption is a functional option for configuring a Sampler via NewSampler.
type SamplerBuilderOption func(*sampler)

// WithSamplerState is an option builder that applies the address modes and
// filter mode from a staging configuration. Unset fields fall back to
// common.DefaultSamplerStagingData, mirroring how the GPU sampler descriptor
// is filled.
//
// Parameters:
//   - state: the sampler staging configuration to apply
//
// Returns:
//   - SamplerBuilderOption: a function that applies the staging configuration to a sampler
func WithSamplerState(state common.SamplerStagingData) SamplerBuilderOption {
	return func(s *sampler) {
		def := common.DefaultSamplerStagingData()
		s.addressU = common.Coalesce(state.AddressModeU, def.AddressModeU)
		s.addressV = common.Coalesce(state.AddressModeV, def.AddressModeV)
		s.filter = common.Coalesce(state.MagFilter, def.MagFilter)
	}
}

// WithAddressModes is an option builder that sets the U and V address modes directly.
//
// Parameters:
//   - u: the address mode for the horizontal texture coordinate
//   - v: the address mode for the vertical texture coordinate
//
// Returns:
//   - SamplerBuilderOption: a function that applies the address modes to a sampler
func WithAddressModes(u, v wgpu.AddressMode) SamplerBuilderOption {
	return func(s *sampler) {
		s.addressU = u
		s.addressV = v
	}
}

// WithFilterMode is an option builder that sets the filter mode directly.
//
// Parameters:
//   - mode: nearest for point sampling, linear for bilinear sampling
//
// Returns:
//   - SamplerBuilderOption: a function that applies the filter mode to a sampler
func WithFilterMode(mode wgpu.FilterMode) SamplerBuilderOption {
	return func(s *sampler) {
		s.filter = mode
	}
}
