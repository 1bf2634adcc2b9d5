package buffer

import "testing"

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"zero value", Rect{}, true},
		{"left equals right", Rect{Left: 10, Top: 0, Right: 10, Bottom: 10}, true},
		{"top equals bottom", Rect{Left: 0, Top: 10, Right: 10, Bottom: 10}, true},
		{"positive area", Rect{Left: 0, Top: 0, Right: 256, Bottom: 256}, false},
		{"inverted", Rect{Left: 10, Top: 0, Right: 0, Bottom: 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectDimensions(t *testing.T) {
	r := Rect{Left: 1, Top: 2, Right: 11, Bottom: 22}
	if w := r.Width(); w != 10 {
		t.Errorf("Width() = %d, want 10", w)
	}
	if h := r.Height(); h != 20 {
		t.Errorf("Height() = %d, want 20", h)
	}
}

func TestTransformFlagCombinations(t *testing.T) {
	if Rot180 != FlipH|FlipV {
		t.Errorf("Rot180 = %x, want FlipH|FlipV", Rot180)
	}
	if Rot270 != FlipH|FlipV|Rot90 {
		t.Errorf("Rot270 = %x, want FlipH|FlipV|Rot90", Rot270)
	}
}
