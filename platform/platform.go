// Package platform abstracts the GPU operations a graphics buffer consumer
// needs: binding a native buffer to a texture unit, and fencing GPU reads
// of that texture so a producer doesn't reuse the buffer too soon. Platform
// has two implementations: Fake, a deterministic in-process test double,
// and GPU, which drives a real github.com/gogpu/wgpu HAL device.
package platform

import "time"

// DisplayID, ContextID, ImageID, FenceID, and TextureName are opaque handles;
// the zero value of each is never valid and is reserved as a sentinel.
type (
	DisplayID   uint64
	ContextID   uint64
	ImageID     uint64
	FenceID     uint64
	TextureName uint64
)

// NoImage and NoFence are the sentinel "absent" values for ImageID and
// FenceID respectively.
const (
	NoImage ImageID = 0
	NoFence FenceID = 0
)

// TextureTarget identifies which texture binding point a bound image
// occupies, mirroring GL_TEXTURE_EXTERNAL_OES vs GL_TEXTURE_2D.
type TextureTarget int

const (
	TextureTarget2D TextureTarget = iota
	TextureTargetExternal
)

// Platform is the capability interface a surfacetexture.Consumer uses for
// every GPU-facing operation. Implementations must be safe for concurrent
// use; the consumer itself never calls more than one method at a time, but
// a Platform may be shared across multiple consumers.
type Platform interface {
	// CurrentDisplay returns an identity for the calling goroutine's current
	// GPU display/connection. A Consumer pins itself to the first display
	// it observes and rejects calls made against a different one.
	CurrentDisplay() DisplayID

	// CurrentContext returns an identity for the calling goroutine's current
	// GPU context, analogous to CurrentDisplay.
	CurrentContext() ContextID

	// CreateImage maps a native buffer into a GPU-sampleable image scoped to
	// display. The returned ImageID is later passed to AttachImage and
	// DestroyImage.
	CreateImage(display DisplayID, nb NativeBuffer) (ImageID, error)

	// DestroyImage releases a previously created image. Errors are not
	// returned; a failure is logged by the implementation and otherwise
	// discarded, since by the time an image is destroyed there is no
	// meaningful recovery action left for the caller to take.
	DestroyImage(display DisplayID, image ImageID)

	// BindTexture makes name the active texture at target for the calling
	// context.
	BindTexture(target TextureTarget, name TextureName) error

	// AttachImage associates image with the texture currently bound at
	// target.
	AttachImage(target TextureTarget, image ImageID) error

	// DrainErrors returns and clears any GPU errors accumulated since the
	// last call, oldest first.
	DrainErrors() []error

	// CreateFence creates a fence that will signal once all GPU work
	// submitted so far against display has completed.
	CreateFence(display DisplayID) (FenceID, error)

	// Flush ensures work needed for a just-created fence to eventually
	// signal has actually been submitted.
	Flush()

	// WaitFence blocks until fence signals or timeout elapses, returning
	// whether it signaled.
	WaitFence(fence FenceID, timeout time.Duration) (bool, error)

	// DestroyFence releases a fence. Like DestroyImage, failures are
	// logged internally rather than surfaced.
	DestroyFence(fence FenceID)
}

// NativeBuffer is the subset of buffer.NativeBuffer a Platform needs; it is
// redeclared here (rather than importing the buffer package) so platform
// has no dependency on buffer, keeping it usable standalone. buffer.NativeBuffer
// satisfies this interface structurally.
type NativeBuffer interface {
	Width() int
	Height() int
	Handle() any
}
