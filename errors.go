package surfacetexture

import "errors"

var (
	// ErrNotInitialized is returned by operations attempted on an abandoned
	// Consumer.
	ErrNotInitialized = errors.New("surfacetexture: not initialized")

	// ErrInvalidDisplay is returned by UpdateTexImage when called from a
	// GPU display different from the one the Consumer first observed.
	ErrInvalidDisplay = errors.New("surfacetexture: invalid display")

	// ErrInvalidContext is returned by UpdateTexImage when called from a
	// GPU context different from the one the Consumer first observed.
	ErrInvalidContext = errors.New("surfacetexture: invalid context")

	// ErrNoCachedImage is returned when an acquired slot has neither a
	// native buffer to create an image from nor a previously cached image
	// — a queue-invariant violation.
	ErrNoCachedImage = errors.New("surfacetexture: no cached image for slot")

	// ErrImageCreationFailed wraps a platform.Platform.CreateImage failure.
	ErrImageCreationFailed = errors.New("surfacetexture: image creation failed")

	// ErrBindFailed wraps a texture bind/attach failure, including any
	// residual GPU error observed after binding.
	ErrBindFailed = errors.New("surfacetexture: texture bind failed")

	// ErrFenceCreationFailed wraps a platform.Platform.CreateFence failure.
	ErrFenceCreationFailed = errors.New("surfacetexture: fence creation failed")

	// ErrIncompatibleOptions is returned by New when UseFenceSync and
	// AllowDequeueCurrentBuffer are both enabled.
	ErrIncompatibleOptions = errors.New("surfacetexture: fence sync and dequeue-current-buffer are mutually exclusive")
)
