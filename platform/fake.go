package platform

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Fake is a deterministic in-process Platform for tests, grounded on the
// mockAdapter/mockRenderer test doubles used elsewhere for GPU-integration
// testing. Its Create* methods can each be made to fail exactly once via
// the FailNext* methods, mirroring their one-shot failNext field.
type Fake struct {
	mu sync.Mutex

	display DisplayID
	context ContextID

	images        map[ImageID]NativeBuffer
	fences        map[FenceID]bool
	pendingErrors []error

	nextImage atomic.Uint64
	nextFence atomic.Uint64

	failCreateImage bool
	failBind        bool
	failAttach      bool
	failCreateFence bool

	boundName     TextureName
	attachedImage ImageID
}

// NewFake returns a Fake pinned to a fixed display/context identity.
func NewFake() *Fake {
	return &Fake{
		display: 1,
		context: 1,
		images:  make(map[ImageID]NativeBuffer),
		fences:  make(map[FenceID]bool),
	}
}

func (f *Fake) CurrentDisplay() DisplayID { f.mu.Lock(); defer f.mu.Unlock(); return f.display }
func (f *Fake) CurrentContext() ContextID { f.mu.Lock(); defer f.mu.Unlock(); return f.context }

// CreateImage implements Platform.
func (f *Fake) CreateImage(_ DisplayID, nb NativeBuffer) (ImageID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreateImage {
		f.failCreateImage = false
		return NoImage, fmt.Errorf("fake: forced CreateImage failure")
	}
	if nb == nil {
		return NoImage, ErrNilBuffer
	}
	id := ImageID(f.nextImage.Add(1))
	f.images[id] = nb
	return id, nil
}

// DestroyImage implements Platform.
func (f *Fake) DestroyImage(_ DisplayID, image ImageID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.images, image)
}

// BindTexture implements Platform.
func (f *Fake) BindTexture(_ TextureTarget, name TextureName) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failBind {
		f.failBind = false
		return fmt.Errorf("fake: forced BindTexture failure")
	}
	f.boundName = name
	return nil
}

// AttachImage implements Platform.
func (f *Fake) AttachImage(_ TextureTarget, image ImageID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAttach {
		f.failAttach = false
		return fmt.Errorf("fake: forced AttachImage failure")
	}
	if image != NoImage {
		if _, ok := f.images[image]; !ok {
			return ErrUnknownImage
		}
	}
	f.attachedImage = image
	return nil
}

// DrainErrors implements Platform.
func (f *Fake) DrainErrors() []error {
	f.mu.Lock()
	defer f.mu.Unlock()
	errs := f.pendingErrors
	f.pendingErrors = nil
	return errs
}

// CreateFence implements Platform. Fake fences signal immediately.
func (f *Fake) CreateFence(_ DisplayID) (FenceID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreateFence {
		f.failCreateFence = false
		return NoFence, fmt.Errorf("fake: forced CreateFence failure")
	}
	id := FenceID(f.nextFence.Add(1))
	f.fences[id] = true
	return id, nil
}

// Flush implements Platform.
func (f *Fake) Flush() {}

// WaitFence implements Platform.
func (f *Fake) WaitFence(fence FenceID, _ time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	signaled, ok := f.fences[fence]
	if !ok {
		return false, ErrUnknownFence
	}
	return signaled, nil
}

// DestroyFence implements Platform.
func (f *Fake) DestroyFence(fence FenceID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.fences, fence)
}

// FailNextCreateImage makes the next CreateImage call return an error.
func (f *Fake) FailNextCreateImage() { f.mu.Lock(); f.failCreateImage = true; f.mu.Unlock() }

// FailNextBindTexture makes the next BindTexture call return an error.
func (f *Fake) FailNextBindTexture() { f.mu.Lock(); f.failBind = true; f.mu.Unlock() }

// FailNextAttachImage makes the next AttachImage call return an error.
func (f *Fake) FailNextAttachImage() { f.mu.Lock(); f.failAttach = true; f.mu.Unlock() }

// FailNextCreateFence makes the next CreateFence call return an error.
func (f *Fake) FailNextCreateFence() { f.mu.Lock(); f.failCreateFence = true; f.mu.Unlock() }

// PushError queues a GPU error returned by the next DrainErrors call.
func (f *Fake) PushError(err error) {
	f.mu.Lock()
	f.pendingErrors = append(f.pendingErrors, err)
	f.mu.Unlock()
}

// SetDisplay simulates a display change, for exercising Consumer's
// cross-display rejection.
func (f *Fake) SetDisplay(d DisplayID) { f.mu.Lock(); f.display = d; f.mu.Unlock() }

// SetContext simulates a context change, for exercising Consumer's
// cross-context rejection.
func (f *Fake) SetContext(c ContextID) { f.mu.Lock(); f.context = c; f.mu.Unlock() }

// ImageCount returns the number of live images, for test assertions.
func (f *Fake) ImageCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.images)
}
