package queue

import (
	"sync"

	"github.com/gogpu/surfacetexture/buffer"
	"github.com/gogpu/surfacetexture/platform"
)

type memSlot struct {
	buffer          buffer.NativeBuffer
	crop            buffer.Rect
	transform       buffer.TransformFlags
	scaling         buffer.ScalingMode
	timestamp       int64
	acquired        bool
	knownToConsumer bool
}

// MemQueue is a bounded in-memory Queue, suitable for tests and standalone
// demos that don't have a real cross-process producer. The producer side is
// driven directly through QueueBuffer and Reclaim rather than a separate
// interface.
type MemQueue struct {
	mu          sync.Mutex
	capacity    int
	synchronous bool

	slots   [MaxSlots]memSlot
	pending []int

	listener          ConsumerListener
	consumerConnected bool
	consumerName      string
	releasedMask      uint32

	defaultWidth, defaultHeight uint32
	defaultFormat               uint32
	consumerUsage               uint32
	transformHint               buffer.TransformFlags
}

// NewMemQueue creates a MemQueue with the fixed MaxSlots capacity.
// synchronous selects blocking semantics: when true, QueueBuffer never
// drops a pending frame; when false, a newly queued frame replaces any
// still-pending frame, approximating the producer never blocking.
func NewMemQueue(synchronous bool) *MemQueue {
	return &MemQueue{capacity: MaxSlots, synchronous: synchronous}
}

func (q *MemQueue) inPendingLocked(slot int) bool {
	for _, p := range q.pending {
		if p == slot {
			return true
		}
	}
	return false
}

func (q *MemQueue) allocateSlotLocked(nb buffer.NativeBuffer) (int, error) {
	for i := 0; i < q.capacity; i++ {
		if !q.slots[i].acquired && q.slots[i].buffer == nb && !q.inPendingLocked(i) {
			return i, nil
		}
	}
	for i := 0; i < q.capacity; i++ {
		if !q.slots[i].acquired && !q.inPendingLocked(i) {
			return i, nil
		}
	}
	return InvalidSlot, ErrNoFreeSlots
}

// QueueBuffer enqueues a producer-filled buffer for the consumer to
// acquire, returning the slot it landed in.
func (q *MemQueue) QueueBuffer(nb buffer.NativeBuffer, crop buffer.Rect, transform buffer.TransformFlags, scaling buffer.ScalingMode, timestamp int64) (int, error) {
	q.mu.Lock()
	slot, err := q.allocateSlotLocked(nb)
	if err != nil {
		q.mu.Unlock()
		return InvalidSlot, err
	}

	rec := &q.slots[slot]
	if rec.buffer != nb {
		rec.buffer = nb
		rec.knownToConsumer = false
	}
	rec.crop = crop
	rec.transform = transform
	rec.scaling = scaling
	rec.timestamp = timestamp

	if !q.synchronous && len(q.pending) > 0 {
		q.pending = q.pending[1:]
	}
	q.pending = append(q.pending, slot)

	listener := q.listener
	q.mu.Unlock()

	if listener != nil {
		listener.OnFrameAvailable()
	}
	return slot, nil
}

// AcquireBuffer implements Queue.
func (q *MemQueue) AcquireBuffer() (BufferItem, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return BufferItem{}, ErrNoBufferAvailable
	}
	slot := q.pending[0]
	q.pending = q.pending[1:]

	rec := &q.slots[slot]
	rec.acquired = true

	item := BufferItem{
		Slot:           slot,
		Crop:           rec.crop,
		TransformFlags: rec.transform,
		ScalingMode:    rec.scaling,
		Timestamp:      rec.timestamp,
	}
	if !rec.knownToConsumer {
		item.NativeBuffer = rec.buffer
		rec.knownToConsumer = true
	}
	return item, nil
}

// ReleaseBuffer implements Queue.
func (q *MemQueue) ReleaseBuffer(slot int, display platform.DisplayID, fence platform.FenceID) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if slot < 0 || slot >= q.capacity {
		return ErrInvalidSlot
	}
	rec := &q.slots[slot]
	if !rec.acquired {
		return ErrSlotNotAcquired
	}
	rec.acquired = false
	// A real producer would wait on fence (scoped to display) before
	// reusing the slot's buffer; this in-memory queue has no producer-side
	// wait path so both are accepted and discarded.
	_ = display
	_ = fence
	return nil
}

// GetReleasedBuffers implements Queue.
func (q *MemQueue) GetReleasedBuffers() uint32 {
	q.mu.Lock()
	defer q.mu.Unlock()
	mask := q.releasedMask
	q.releasedMask = 0
	return mask
}

// Reclaim frees every occupied slot, as a producer disconnect would, and
// notifies the consumer.
func (q *MemQueue) Reclaim() {
	q.mu.Lock()
	var mask uint32
	for i := 0; i < q.capacity; i++ {
		if q.slots[i].buffer != nil {
			q.slots[i] = memSlot{}
			mask |= 1 << uint(i)
		}
	}
	q.pending = nil
	q.releasedMask |= mask
	listener := q.listener
	q.mu.Unlock()

	if listener != nil && mask != 0 {
		listener.OnBuffersReleased()
	}
}

// ConsumerConnect implements Queue.
func (q *MemQueue) ConsumerConnect(listener ConsumerListener) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.consumerConnected {
		return ErrConsumerAlreadyConnected
	}
	q.consumerConnected = true
	q.listener = listener
	return nil
}

// ConsumerDisconnect implements Queue.
func (q *MemQueue) ConsumerDisconnect() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.consumerConnected {
		return ErrNoConsumerConnected
	}
	q.consumerConnected = false
	q.listener = nil
	for i := range q.slots {
		q.slots[i] = memSlot{}
	}
	q.pending = nil
	return nil
}

// IsSynchronousMode implements Queue.
func (q *MemQueue) IsSynchronousMode() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.synchronous
}

// SetConsumerName implements Queue.
func (q *MemQueue) SetConsumerName(name string) {
	q.mu.Lock()
	q.consumerName = name
	q.mu.Unlock()
}

// SetDefaultBufferSize implements Queue.
func (q *MemQueue) SetDefaultBufferSize(width, height uint32) error {
	q.mu.Lock()
	q.defaultWidth, q.defaultHeight = width, height
	q.mu.Unlock()
	return nil
}

// SetDefaultBufferFormat implements Queue.
func (q *MemQueue) SetDefaultBufferFormat(format uint32) error {
	q.mu.Lock()
	q.defaultFormat = format
	q.mu.Unlock()
	return nil
}

// SetConsumerUsageBits implements Queue.
func (q *MemQueue) SetConsumerUsageBits(usage uint32) error {
	q.mu.Lock()
	q.consumerUsage |= usage
	q.mu.Unlock()
	return nil
}

// SetTransformHint implements Queue.
func (q *MemQueue) SetTransformHint(hint buffer.TransformFlags) {
	q.mu.Lock()
	q.transformHint = hint
	q.mu.Unlock()
}
