package surfacetexture

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/surfacetexture/buffer"
	"github.com/gogpu/surfacetexture/platform"
	"github.com/gogpu/surfacetexture/queue"
)

// FrameAvailableListener receives notification that a new frame became
// available for acquisition. OnFrameAvailable must not call back into the
// Consumer that registered it while holding external locks the Consumer's
// own operations might need.
type FrameAvailableListener interface {
	OnFrameAvailable()
}

// Consumer is the texture-consumer state machine: it owns a sole
// connection to a queue.Queue, binds acquired buffers to a GPU texture via
// a platform.Platform, and exposes the resulting sampling transform and
// frame metadata.
//
// A Consumer is safe for concurrent use.
type Consumer struct {
	mu sync.Mutex

	textureName   platform.TextureName
	textureTarget platform.TextureTarget

	q   queue.Queue
	gpu platform.Platform

	slots *slotTable

	currentSlot           int
	currentBuffer         buffer.NativeBuffer
	currentCrop           buffer.Rect
	currentTransformFlags buffer.TransformFlags
	currentScalingMode    buffer.ScalingMode
	currentTimestamp      int64
	currentMatrix         Matrix4

	gpuDisplay  platform.DisplayID
	gpuContext  platform.ContextID
	haveDisplay bool
	haveContext bool

	abandoned bool

	useFenceSync        bool
	allowDequeueCurrent bool

	frameAvailableListener FrameAvailableListener

	name string
}

// New creates a Consumer bound to name/target on gpu, connecting to q as
// its sole consumer. Returns ErrIncompatibleOptions if both UseFenceSync
// and AllowDequeueCurrentBuffer are enabled.
func New(name platform.TextureName, target platform.TextureTarget, gpu platform.Platform, q queue.Queue, opts ...Option) (*Consumer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.useFenceSync && cfg.allowDequeueCurrent {
		return nil, ErrIncompatibleOptions
	}

	c := &Consumer{
		textureName:         name,
		textureTarget:       target,
		q:                   q,
		gpu:                 gpu,
		slots:               newSlotTable(gpu),
		currentSlot:         InvalidSlot,
		currentMatrix:       Identity4,
		useFenceSync:        cfg.useFenceSync,
		allowDequeueCurrent: cfg.allowDequeueCurrent,
		name:                newDiagnosticName(),
	}

	if q != nil {
		if err := q.ConsumerConnect(c); err != nil {
			Logger().Warn("consumer connect failed", "name", c.name, "err", err)
		} else {
			q.SetConsumerName(c.name)
		}
	}

	Logger().Info("surfacetexture: created", "name", c.name)
	return c, nil
}

// UpdateTexImage acquires the next pending buffer the queue hands out (if
// any), maps it to a GPU image, binds that image to the consumer's texture,
// and recomputes the sampling transform. If no buffer is pending, it
// re-binds the existing texture and returns nil without changing any
// current-frame state. Any other AcquireBuffer error is returned unchanged.
func (c *Consumer) UpdateTexImage() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.abandoned {
		return ErrNotInitialized
	}

	dpy := c.gpu.CurrentDisplay()
	ctx := c.gpu.CurrentContext()
	if c.haveDisplay && c.gpuDisplay != dpy {
		return ErrInvalidDisplay
	}
	if c.haveContext && c.gpuContext != ctx {
		return ErrInvalidContext
	}
	c.gpuDisplay, c.haveDisplay = dpy, true
	c.gpuContext, c.haveContext = ctx, true

	item, err := c.q.AcquireBuffer()
	if errors.Is(err, queue.ErrNoBufferAvailable) {
		if bindErr := c.gpu.BindTexture(c.textureTarget, c.textureName); bindErr != nil {
			Logger().Warn("bind with no pending frame failed", "name", c.name, "err", bindErr)
		}
		return nil
	}
	if err != nil {
		return err
	}

	slot := item.Slot
	if item.NativeBuffer != nil {
		c.slots.install(dpy, slot, item.NativeBuffer)
	}
	rec := &c.slots.slots[slot]

	releaseAcquired := func(fence platform.FenceID) {
		if relErr := c.q.ReleaseBuffer(slot, dpy, fence); relErr != nil {
			Logger().Warn("release of newly-acquired slot failed", "name", c.name, "slot", slot, "err", relErr)
		}
	}

	if rec.gpuImage == platform.NoImage {
		if rec.nativeBuffer == nil {
			releaseAcquired(rec.readFence)
			return ErrNoCachedImage
		}
		img, imgErr := c.gpu.CreateImage(dpy, rec.nativeBuffer)
		if imgErr != nil {
			Logger().Warn("image creation failed", "name", c.name, "slot", slot, "err", imgErr)
			releaseAcquired(rec.readFence)
			return fmt.Errorf("%w: %w", ErrImageCreationFailed, imgErr)
		}
		rec.gpuImage = img
	}

	for _, gerr := range c.gpu.DrainErrors() {
		Logger().Warn("clearing stale GPU error before bind", "name", c.name, "err", gerr)
	}

	bindErr := c.gpu.BindTexture(c.textureTarget, c.textureName)
	if bindErr == nil {
		bindErr = c.gpu.AttachImage(c.textureTarget, rec.gpuImage)
	}
	if residual := c.gpu.DrainErrors(); len(residual) > 0 {
		for _, rerr := range residual {
			Logger().Error("bind left residual GPU error", "name", c.name, "slot", slot, "err", rerr)
		}
		if bindErr == nil {
			bindErr = residual[0]
		}
	}
	if bindErr != nil {
		releaseAcquired(rec.readFence)
		return fmt.Errorf("%w: %w", ErrBindFailed, bindErr)
	}

	if c.currentSlot != InvalidSlot && c.useFenceSync {
		fence, fenceErr := c.gpu.CreateFence(dpy)
		if fenceErr != nil {
			Logger().Warn("fence creation failed", "name", c.name, "err", fenceErr)
			releaseAcquired(rec.readFence)
			return fmt.Errorf("%w: %w", ErrFenceCreationFailed, fenceErr)
		}
		c.gpu.Flush()
		c.slots.slots[c.currentSlot].readFence = fence
	}

	if c.currentSlot != InvalidSlot {
		prevFence := c.slots.slots[c.currentSlot].readFence
		if relErr := c.q.ReleaseBuffer(c.currentSlot, dpy, prevFence); relErr != nil {
			Logger().Warn("release of previous slot failed", "name", c.name, "slot", c.currentSlot, "err", relErr)
		}
	}

	c.currentSlot = slot
	c.currentBuffer = rec.nativeBuffer
	c.currentCrop = item.Crop
	c.currentTransformFlags = item.TransformFlags
	c.currentScalingMode = item.ScalingMode
	c.currentTimestamp = item.Timestamp
	c.currentMatrix = computeTransformMatrix(c.currentCrop, c.currentTransformFlags, rec.nativeBuffer.Width(), rec.nativeBuffer.Height())

	return nil
}

// Abandon disconnects from the queue and frees every slot's GPU image.
// Idempotent; safe to call multiple times and from Abandon-adjacent
// goroutines.
func (c *Consumer) Abandon() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.abandoned {
		return
	}
	c.abandoned = true
	c.currentBuffer = nil
	c.slots.freeAll(c.gpuDisplay)

	if c.q != nil {
		if err := c.q.ConsumerDisconnect(); err != nil {
			Logger().Warn("consumer disconnect failed", "name", c.name, "err", err)
		}
		c.q = nil
	}

	Logger().Info("surfacetexture: abandoned", "name", c.name)
}

// OnFrameAvailable implements queue.ConsumerListener. It copies the
// registered listener under lock and invokes it outside the lock, so the
// listener is free to call back into the Consumer (e.g. UpdateTexImage)
// without deadlocking.
func (c *Consumer) OnFrameAvailable() {
	c.mu.Lock()
	listener := c.frameAvailableListener
	c.mu.Unlock()
	if listener != nil {
		listener.OnFrameAvailable()
	}
}

// OnBuffersReleased implements queue.ConsumerListener. It frees the slots
// reported by the queue and resets currentSlot to InvalidSlot; per spec,
// currentBuffer/currentCrop/etc. are intentionally left untouched until
// the next successful UpdateTexImage or an explicit Abandon (see
// GetCurrentBuffer).
func (c *Consumer) OnBuffersReleased() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.abandoned {
		return
	}
	mask := c.q.GetReleasedBuffers()
	for i := 0; i < MaxSlots; i++ {
		if mask&(1<<uint(i)) != 0 {
			c.slots.free(c.gpuDisplay, i)
		}
	}
	c.currentSlot = InvalidSlot
}

// SetFrameAvailableListener registers the listener notified from
// OnFrameAvailable. Pass nil to unregister.
func (c *Consumer) SetFrameAvailableListener(l FrameAvailableListener) {
	c.mu.Lock()
	c.frameAvailableListener = l
	c.mu.Unlock()
}

// SetName sets the diagnostic name reported by Dump and passed to the
// queue via SetConsumerName.
func (c *Consumer) SetName(name string) {
	c.mu.Lock()
	c.name = name
	q := c.q
	c.mu.Unlock()
	if q != nil {
		q.SetConsumerName(name)
	}
}

// SetDefaultBufferSize forwards to the connected queue.
func (c *Consumer) SetDefaultBufferSize(width, height uint32) error {
	c.mu.Lock()
	q, abandoned := c.q, c.abandoned
	c.mu.Unlock()
	if abandoned {
		return ErrNotInitialized
	}
	return q.SetDefaultBufferSize(width, height)
}

// SetDefaultBufferFormat forwards to the connected queue.
func (c *Consumer) SetDefaultBufferFormat(format uint32) error {
	c.mu.Lock()
	q, abandoned := c.q, c.abandoned
	c.mu.Unlock()
	if abandoned {
		return ErrNotInitialized
	}
	return q.SetDefaultBufferFormat(format)
}

// SetConsumerUsageBits forwards to the connected queue.
func (c *Consumer) SetConsumerUsageBits(usage uint32) error {
	c.mu.Lock()
	q, abandoned := c.q, c.abandoned
	c.mu.Unlock()
	if abandoned {
		return ErrNotInitialized
	}
	return q.SetConsumerUsageBits(usage)
}

// SetTransformHint forwards to the connected queue.
func (c *Consumer) SetTransformHint(hint buffer.TransformFlags) {
	c.mu.Lock()
	q, abandoned := c.q, c.abandoned
	c.mu.Unlock()
	if abandoned || q == nil {
		return
	}
	q.SetTransformHint(hint)
}

// Dump returns a single-line diagnostic summary of the consumer's state.
func (c *Consumer) Dump() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fmt.Sprintf("name=%s abandoned=%v texName=%d current={slot=%d crop=%+v transform=%#x timestamp=%d}",
		c.name, c.abandoned, c.textureName, c.currentSlot, c.currentCrop, c.currentTransformFlags, c.currentTimestamp)
}
