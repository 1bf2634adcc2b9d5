package surfacetexture

import (
	"github.com/gogpu/surfacetexture/buffer"
	"github.com/gogpu/surfacetexture/platform"
)

// GetTransformMatrix returns the 4x4 sampling transform computed by the
// most recent successful UpdateTexImage, or the identity-scaled matrix if
// UpdateTexImage has never acquired a buffer.
func (c *Consumer) GetTransformMatrix() Matrix4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentMatrix
}

// GetTimestamp returns the producer-supplied timestamp of the buffer
// currently bound, in producer-defined units (typically nanoseconds).
func (c *Consumer) GetTimestamp() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTimestamp
}

// GetCurrentBuffer returns the native buffer currently bound to the
// texture. It remains the last acquired buffer even after
// OnBuffersReleased frees the owning slot and destroys that slot's GPU
// image; it changes only on the next successful UpdateTexImage. It returns
// nil only before the first successful UpdateTexImage or after Abandon.
func (c *Consumer) GetCurrentBuffer() buffer.NativeBuffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentBuffer
}

// GetCurrentCrop returns the crop rectangle of the currently bound buffer.
func (c *Consumer) GetCurrentCrop() buffer.Rect {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentCrop
}

// GetCurrentTransform returns the orientation flags of the currently
// bound buffer.
func (c *Consumer) GetCurrentTransform() buffer.TransformFlags {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTransformFlags
}

// GetCurrentScalingMode returns the scaling mode of the currently bound
// buffer.
func (c *Consumer) GetCurrentScalingMode() buffer.ScalingMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentScalingMode
}

// GetCurrentTextureTarget returns the texture target the Consumer binds
// images to.
func (c *Consumer) GetCurrentTextureTarget() platform.TextureTarget {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.textureTarget
}

// IsSynchronousMode reports whether the connected queue keeps every queued
// frame until it is consumed (true) rather than replacing a still-pending
// frame with a newer one (false). Returns false once the Consumer has been
// abandoned.
func (c *Consumer) IsSynchronousMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.abandoned || c.q == nil {
		return false
	}
	return c.q.IsSynchronousMode()
}
