//go:build !nogpu

package platform

import "testing"

func TestExternalTextureShaderSourceIsNonEmpty(t *testing.T) {
	if src := ExternalTextureShaderSource(); src == "" {
		t.Fatalf("ExternalTextureShaderSource() returned empty string")
	}
}

func TestValidateExternalTextureShader(t *testing.T) {
	if err := ValidateExternalTextureShader(); err != nil {
		t.Fatalf("ValidateExternalTextureShader() = %v, want nil", err)
	}
}
