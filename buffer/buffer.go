// Package buffer defines the producer-facing data types a graphics buffer
// queue and its consumer exchange: the opaque native buffer handle, the
// crop rectangle, and the transform/scaling flags attached to each queued
// frame. It has no dependencies on the queue or platform packages so both
// can depend on it without a cycle.
package buffer

// NativeBuffer is an opaque producer-allocated pixel buffer. Implementations
// are provided by the producer side of a queue.Queue; this package places no
// requirements on them beyond reporting their own dimensions and backing
// handle.
type NativeBuffer interface {
	Width() int
	Height() int

	// Handle returns the producer-specific resource backing this buffer
	// (e.g. a *image.RGBA, a DMA-BUF fd, a platform allocation handle). Its
	// concrete type is a contract between the producer and whichever
	// platform.Platform implementation maps it to a GPU image.
	Handle() any
}

// TransformFlags is a bitset describing orientation transforms attached to
// a queued buffer, matching the flag values carried by a native buffer
// queue item (e.g. android.hardware.graphics.common.Transform).
type TransformFlags uint32

const (
	FlipH TransformFlags = 1 << 0
	FlipV TransformFlags = 1 << 1
	Rot90 TransformFlags = 1 << 2

	// Rot180 and Rot270 are not independent bits; they are the documented
	// combinations of the three above, kept as named constants because
	// callers compare against them directly.
	Rot180 TransformFlags = FlipH | FlipV
	Rot270 TransformFlags = FlipH | FlipV | Rot90
)

// ScalingMode controls how a buffer whose size doesn't match the crop
// aspect ratio is sampled.
type ScalingMode int

const (
	ScaleToWindow ScalingMode = iota
	ScaleCrop
	ScaleFit
	NoScale
)

// Rect is an axis-aligned integer crop rectangle in buffer texel space,
// right/bottom-exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Empty reports whether the rectangle covers no area, which callers treat
// as "use the whole buffer, no cropping".
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Width returns the rectangle's width in texels.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the rectangle's height in texels.
func (r Rect) Height() int { return r.Bottom - r.Top }
