//go:build !nogpu

package platform

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// formattedBuffer is implemented by native buffers that know their own GPU
// texture format. Buffers that don't implement it are treated as RGBA8.
type formattedBuffer interface {
	TextureFormat() gputypes.TextureFormat
}

// halDeviceProvider is implemented by gpucontext.DeviceProvider values that
// also expose the HAL device and queue backing them directly, the same
// optional-capability-interface pattern used elsewhere for
// textureDestroyer/gpucontext.TextureUpdater type assertions.
type halDeviceProvider interface {
	HALDevice() hal.Device
	HALQueue() hal.Queue
}

// GPU is a production Platform backed directly by a github.com/gogpu/wgpu
// HAL device, the same layer backend/native.HALAdapter drives.
type GPU struct {
	mu     sync.RWMutex
	device hal.Device
	queue  hal.Queue

	display DisplayID
	context ContextID

	nextImage atomic.Uint64
	nextFence atomic.Uint64

	images map[ImageID]hal.Texture
	fences map[FenceID]hal.Fence
}

// NewGPU wraps a HAL device/queue pair as a Platform. device and queue must
// be non-nil and already initialized (created via a Backend.Init sequence
// or equivalent).
func NewGPU(device hal.Device, queue hal.Queue) (*GPU, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if err := ValidateExternalTextureShader(); err != nil {
		return nil, err
	}
	return &GPU{
		device:  device,
		queue:   queue,
		display: 1,
		context: 1,
		images:  make(map[ImageID]hal.Texture),
		fences:  make(map[FenceID]hal.Fence),
	}, nil
}

// NewGPUFromProvider adapts a gpucontext.DeviceProvider to a Platform for
// callers that already hold one (e.g. from a gogpu.App). The provider must
// also implement halDeviceProvider.
func NewGPUFromProvider(provider gpucontext.DeviceProvider) (*GPU, error) {
	if provider == nil {
		return nil, ErrNilDevice
	}
	hp, ok := provider.(halDeviceProvider)
	if !ok {
		return nil, fmt.Errorf("platform: provider %T does not expose a HAL device", provider)
	}
	return NewGPU(hp.HALDevice(), hp.HALQueue())
}

func (g *GPU) CurrentDisplay() DisplayID { return g.display }
func (g *GPU) CurrentContext() ContextID { return g.context }

func convertTextureFormat(format gputypes.TextureFormat) gputypes.TextureFormat {
	switch format {
	case gputypes.TextureFormatRGBA8Unorm:
		return gputypes.TextureFormatRGBA8Unorm
	case gputypes.TextureFormatBGRA8Unorm:
		return gputypes.TextureFormatBGRA8Unorm
	case gputypes.TextureFormatR8Unorm:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatRGBA8Unorm
	}
}

// CreateImage implements Platform.
func (g *GPU) CreateImage(_ DisplayID, nb NativeBuffer) (ImageID, error) {
	if nb == nil {
		return NoImage, ErrNilBuffer
	}

	format := gputypes.TextureFormatRGBA8Unorm
	if fb, ok := nb.(formattedBuffer); ok {
		format = fb.TextureFormat()
	}

	desc := &hal.TextureDescriptor{
		Label: "surfacetexture-image",
		Size: hal.Extent3D{
			Width:              uint32(nb.Width()),
			Height:             uint32(nb.Height()),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        convertTextureFormat(format),
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}

	tex, err := g.device.CreateTexture(desc)
	if err != nil {
		return NoImage, fmt.Errorf("platform: create texture: %w", err)
	}

	id := ImageID(g.nextImage.Add(1))
	g.mu.Lock()
	g.images[id] = tex
	g.mu.Unlock()
	return id, nil
}

// DestroyImage implements Platform.
func (g *GPU) DestroyImage(_ DisplayID, image ImageID) {
	g.mu.Lock()
	tex, ok := g.images[image]
	if ok {
		delete(g.images, image)
	}
	g.mu.Unlock()
	if ok {
		g.device.DestroyTexture(tex)
	}
}

// BindTexture implements Platform. WebGPU-style HAL devices bind images
// through bind groups rather than a legacy texture-unit slot, so this is a
// no-op that always returns nil; it issues no device call and records
// nothing.
func (g *GPU) BindTexture(_ TextureTarget, _ TextureName) error {
	return nil
}

// AttachImage implements Platform.
func (g *GPU) AttachImage(_ TextureTarget, image ImageID) error {
	g.mu.RLock()
	_, ok := g.images[image]
	g.mu.RUnlock()
	if !ok && image != NoImage {
		return ErrUnknownImage
	}
	return nil
}

// DrainErrors implements Platform. HAL devices surface failures
// synchronously as returned errors rather than through a pollable error
// queue, so there is never anything to drain here.
func (g *GPU) DrainErrors() []error { return nil }

// CreateFence implements Platform.
func (g *GPU) CreateFence(_ DisplayID) (FenceID, error) {
	fence, err := g.device.CreateFence()
	if err != nil {
		return NoFence, fmt.Errorf("platform: create fence: %w", err)
	}
	id := FenceID(g.nextFence.Add(1))
	g.mu.Lock()
	g.fences[id] = fence
	g.mu.Unlock()
	return id, nil
}

// Flush implements Platform.
func (g *GPU) Flush() {}

// WaitFence implements Platform.
func (g *GPU) WaitFence(fence FenceID, timeout time.Duration) (bool, error) {
	g.mu.RLock()
	hf, ok := g.fences[fence]
	g.mu.RUnlock()
	if !ok {
		return false, ErrUnknownFence
	}
	return g.device.Wait(hf, 1, timeout)
}

// DestroyFence implements Platform.
func (g *GPU) DestroyFence(fence FenceID) {
	g.mu.Lock()
	hf, ok := g.fences[fence]
	if ok {
		delete(g.fences, fence)
	}
	g.mu.Unlock()
	if ok {
		g.device.DestroyFence(hf)
	}
}
