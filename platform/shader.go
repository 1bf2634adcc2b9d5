//go:build !nogpu

package platform

import (
	"fmt"

	"github.com/gogpu/naga"
)

// externalTextureWGSL is the fragment shader a downstream renderer samples
// through: it applies the 4x4 sampling transform this module computes
// before sampling the bound image.
const externalTextureWGSL = `
@group(0) @binding(0) var tex: texture_2d<f32>;
@group(0) @binding(1) var samp: sampler;
@group(0) @binding(2) var<uniform> uv_transform: mat4x4<f32>;

@fragment
fn fs_main(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
    let transformed = uv_transform * vec4<f32>(uv, 0.0, 1.0);
    return textureSample(tex, samp, transformed.xy);
}
`

// ExternalTextureShaderSource returns the WGSL fragment shader source
// documented above, for callers assembling the downstream sampling
// pipeline.
func ExternalTextureShaderSource() string { return externalTextureWGSL }

// ValidateExternalTextureShader compiles ExternalTextureShaderSource with
// naga, catching a malformed shader at platform setup time rather than at
// first frame.
func ValidateExternalTextureShader() error {
	if _, err := naga.Compile(externalTextureWGSL); err != nil {
		return fmt.Errorf("platform: invalid external-texture shader: %w", err)
	}
	return nil
}
