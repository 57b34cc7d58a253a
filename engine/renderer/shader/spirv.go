package shader

import (
	"fmt"

	"github.com/gogpu/naga"
)

// CompileToSPIRV compiles pre-processed WGSL source into a SPIR-V module for backends
// that create shader modules from binary words rather than WGSL text. SPIR-V is a
// stream of little-endian 32-bit words, so the compiler's byte output is repacked.
//
// Parameters:
//   - source: the pre-processed WGSL source text, free of @stereo: annotations
//
// Returns:
//   - []uint32: the SPIR-V module words, starting with the SPIR-V magic number
//   - error: an error if the WGSL fails to compile
func CompileToSPIRV(source string) ([]uint32, error) {
	data, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("wgsl compile: %w", err)
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = uint32(data[i*4]) |
			uint32(data[i*4+1])<<8 |
			uint32(data[i*4+2])<<16 |
			uint32(data[i*4+3])<<24
	}
	return words, nil
}
