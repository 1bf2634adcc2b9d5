// Package queue defines the bounded slot-based buffer queue contract
// consumed by a surfacetexture.Consumer, and a reference in-memory
// implementation for tests and standalone demos.
package queue

import (
	"github.com/gogpu/surfacetexture/buffer"
	"github.com/gogpu/surfacetexture/platform"
)

// MaxSlots is the fixed upper bound on buffer-queue slots.
const MaxSlots = 32

// InvalidSlot is the sentinel slot index meaning "no slot".
const InvalidSlot = -1

// BufferItem is a single dequeued frame: the slot it occupies, the native
// buffer newly installed into that slot (nil if the slot's buffer hasn't
// changed since it was last acquired), and the per-frame metadata attached
// by the producer at queue time.
type BufferItem struct {
	Slot           int
	NativeBuffer   buffer.NativeBuffer
	Crop           buffer.Rect
	TransformFlags buffer.TransformFlags
	ScalingMode    buffer.ScalingMode
	Timestamp      int64
}

// ConsumerListener receives asynchronous notifications from a Queue. Both
// methods must be safe to call from any goroutine, and implementations must
// not hold the queue's internal lock while invoking them.
type ConsumerListener interface {
	// OnFrameAvailable is called after a buffer has been queued and is
	// available for acquisition.
	OnFrameAvailable()

	// OnBuffersReleased is called after one or more slots have been freed
	// by the queue (e.g. on disconnect or resize). The listener should call
	// GetReleasedBuffers to find out which.
	OnBuffersReleased()
}

// Queue is the consumer-facing half of a bounded slot-based buffer queue.
// A single consumer connects via ConsumerConnect and drives the protocol
// with AcquireBuffer/ReleaseBuffer.
type Queue interface {
	// ConsumerConnect registers the sole consumer listener. Returns an error
	// if a consumer is already connected.
	ConsumerConnect(listener ConsumerListener) error

	// ConsumerDisconnect unregisters the consumer and frees all slots.
	ConsumerDisconnect() error

	// AcquireBuffer dequeues the oldest pending buffer for the consumer. It
	// returns ErrNoBufferAvailable if no buffer is currently pending.
	AcquireBuffer() (BufferItem, error)

	// ReleaseBuffer returns a previously acquired slot to the free pool.
	// fence, if not platform.NoFence, must be waited on by the producer
	// before reusing the slot's native buffer.
	ReleaseBuffer(slot int, display platform.DisplayID, fence platform.FenceID) error

	// GetReleasedBuffers returns a bitmask of slot indices freed since the
	// last call, for use from OnBuffersReleased.
	GetReleasedBuffers() uint32

	// IsSynchronousMode reports whether the queue keeps every queued frame
	// until it is consumed (true) rather than replacing a still-pending
	// frame on the next QueueBuffer call (false).
	IsSynchronousMode() bool

	// SetConsumerName attaches a diagnostic name, echoed by dump output.
	SetConsumerName(name string)

	// SetDefaultBufferSize establishes the size new producer allocations
	// should use when the producer doesn't specify one explicitly.
	SetDefaultBufferSize(width, height uint32) error

	// SetDefaultBufferFormat establishes the pixel format new producer
	// allocations should use by default.
	SetDefaultBufferFormat(format uint32) error

	// SetConsumerUsageBits ORs additional consumer usage flags into the
	// buffer allocation usage mask presented to the producer.
	SetConsumerUsageBits(usage uint32) error

	// SetTransformHint records a transform the consumer expects the
	// producer to pre-apply, as an optimization hint only.
	SetTransformHint(hint buffer.TransformFlags)
}
