package queue

import "errors"

var (
	// ErrNoFreeSlots is returned by a producer-side enqueue when every slot
	// is either pending, acquired, or otherwise unavailable for reuse.
	ErrNoFreeSlots = errors.New("queue: no free slot available")

	// ErrNoBufferAvailable is returned by AcquireBuffer when nothing is
	// pending.
	ErrNoBufferAvailable = errors.New("queue: no buffer pending")

	// ErrInvalidSlot is returned when a slot index is out of range.
	ErrInvalidSlot = errors.New("queue: invalid slot index")

	// ErrSlotNotAcquired is returned by ReleaseBuffer for a slot the
	// consumer doesn't currently hold.
	ErrSlotNotAcquired = errors.New("queue: slot is not acquired")

	// ErrConsumerAlreadyConnected is returned by ConsumerConnect when a
	// listener is already registered.
	ErrConsumerAlreadyConnected = errors.New("queue: consumer already connected")

	// ErrNoConsumerConnected is returned by ConsumerDisconnect when no
	// listener is registered.
	ErrNoConsumerConnected = errors.New("queue: no consumer connected")
)
