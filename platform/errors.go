package platform

import "errors"

var (
	// ErrUnknownFence is returned by WaitFence for a FenceID not produced by
	// CreateFence on this Platform (or already destroyed).
	ErrUnknownFence = errors.New("platform: unknown fence")

	// ErrUnknownImage is returned by AttachImage for an ImageID not
	// produced by CreateImage on this Platform (or already destroyed).
	ErrUnknownImage = errors.New("platform: unknown image")

	// ErrNilDevice is returned by NewGPU when constructed without a device.
	ErrNilDevice = errors.New("platform: nil device")

	// ErrNilBuffer is returned by CreateImage when nb is nil.
	ErrNilBuffer = errors.New("platform: nil native buffer")
)
