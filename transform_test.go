package surfacetexture

import (
	"testing"

	"github.com/gogpu/surfacetexture/buffer"
)

func TestComputeTransformMatrixEmptyCropIsIdentityScale(t *testing.T) {
	m := computeTransformMatrix(buffer.Rect{}, 0, 256, 256)

	var expected Matrix4
	identityCrop := Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	MulMatrix4(&expected, &FlipV4, &identityCrop)

	if !matrixApproxEqual(m, expected) {
		t.Errorf("empty crop transform = %v, want %v", m, expected)
	}
}

func TestComputeTransformMatrixFullCropMatchesEmptyCrop(t *testing.T) {
	full := buffer.Rect{Left: 0, Top: 0, Right: 256, Bottom: 256}
	got := computeTransformMatrix(full, 0, 256, 256)
	want := computeTransformMatrix(buffer.Rect{}, 0, 256, 256)
	if !matrixApproxEqual(got, want) {
		t.Errorf("full-size crop = %v, want %v (same as empty crop)", got, want)
	}
}

func TestComputeTransformMatrixInsetCrop(t *testing.T) {
	crop := buffer.Rect{Left: 1, Top: 1, Right: 255, Bottom: 255}
	m := computeTransformMatrix(crop, 0, 256, 256)

	const w = 256.0
	wantTx := float32(2) / w
	wantTy := float32(2) / w
	wantScale := float32(254-2) / w

	cropMtx := Matrix4{
		wantScale, 0, 0, 0,
		0, wantScale, 0, 0,
		0, 0, 1, 0,
		wantTx, wantTy, 0, 1,
	}
	var want Matrix4
	MulMatrix4(&want, &FlipV4, &cropMtx)

	if !matrixApproxEqual(m, want) {
		t.Errorf("inset crop transform = %v, want %v", m, want)
	}
}

func TestComputeTransformMatrixFlipHApplied(t *testing.T) {
	identity := computeTransformMatrix(buffer.Rect{}, 0, 256, 256)
	flipped := computeTransformMatrix(buffer.Rect{}, buffer.FlipH, 256, 256)
	if matrixApproxEqual(identity, flipped) {
		t.Errorf("FlipH transform should differ from identity")
	}
}

func TestComputeTransformMatrixZeroDimensionsDoesNotDivideByZero(t *testing.T) {
	m := computeTransformMatrix(buffer.Rect{Left: 0, Top: 0, Right: 4, Bottom: 4}, 0, 0, 0)
	for i, v := range m {
		if v != v { // NaN check
			t.Fatalf("m[%d] is NaN", i)
		}
	}
}
