package surfacetexture

import (
	"github.com/gogpu/surfacetexture/buffer"
	"github.com/gogpu/surfacetexture/platform"
)

// MaxSlots is the fixed upper bound on buffer-queue slots a Consumer can
// track, matching queue.MaxSlots.
const MaxSlots = 32

// InvalidSlot is the sentinel slot index meaning "no current slot".
const InvalidSlot = -1

// slotRecord holds the per-slot resources a Consumer maintains alongside
// the queue's own bookkeeping: the last-installed native buffer, its mapped
// GPU image (if any), and the read-completion fence handed to the queue on
// the slot's most recent release.
type slotRecord struct {
	nativeBuffer buffer.NativeBuffer
	gpuImage     platform.ImageID
	readFence    platform.FenceID
}

// slotTable is the fixed-size array of slotRecords and its lifecycle
// primitives. It is not safe for concurrent use; callers serialize access
// (Consumer does so via its own mutex).
type slotTable struct {
	slots [MaxSlots]slotRecord
	gpu   platform.Platform
}

func newSlotTable(gpu platform.Platform) *slotTable {
	return &slotTable{gpu: gpu}
}

// install replaces slot's native buffer, destroying any GPU image mapped
// from the buffer it's replacing.
func (t *slotTable) install(display platform.DisplayID, slot int, buf buffer.NativeBuffer) {
	t.destroyImage(display, slot)
	t.slots[slot].nativeBuffer = buf
}

func (t *slotTable) destroyImage(display platform.DisplayID, slot int) {
	if t.slots[slot].gpuImage != platform.NoImage {
		t.gpu.DestroyImage(display, t.slots[slot].gpuImage)
		t.slots[slot].gpuImage = platform.NoImage
	}
}

// free destroys slot's GPU image if any and clears its native buffer.
// Idempotent.
func (t *slotTable) free(display platform.DisplayID, slot int) {
	t.destroyImage(display, slot)
	t.slots[slot].nativeBuffer = nil
	t.slots[slot].readFence = platform.NoFence
}

// freeAll frees every slot.
func (t *slotTable) freeAll(display platform.DisplayID) {
	for i := range t.slots {
		t.free(display, i)
	}
}
