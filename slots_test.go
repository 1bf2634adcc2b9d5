package surfacetexture

import (
	"testing"

	"github.com/gogpu/surfacetexture/platform"
)

type slotTestBuffer struct{ w, h int }

func (b *slotTestBuffer) Width() int  { return b.w }
func (b *slotTestBuffer) Height() int { return b.h }
func (b *slotTestBuffer) Handle() any { return b }

func TestSlotTableInstallAndFree(t *testing.T) {
	gpu := platform.NewFake()
	st := newSlotTable(gpu)

	buf := &slotTestBuffer{w: 16, h: 16}
	st.install(gpu.CurrentDisplay(), 0, buf)

	if st.slots[0].nativeBuffer != buf {
		t.Fatalf("install did not set nativeBuffer")
	}

	img, err := gpu.CreateImage(gpu.CurrentDisplay(), buf)
	if err != nil {
		t.Fatalf("CreateImage() = %v", err)
	}
	st.slots[0].gpuImage = img

	st.free(gpu.CurrentDisplay(), 0)

	if st.slots[0].nativeBuffer != nil {
		t.Errorf("free did not clear nativeBuffer")
	}
	if st.slots[0].gpuImage != platform.NoImage {
		t.Errorf("free did not clear gpuImage")
	}
	if gpu.ImageCount() != 0 {
		t.Errorf("free did not destroy GPU image, ImageCount() = %d", gpu.ImageCount())
	}
}

func TestSlotTableInstallReplacesImage(t *testing.T) {
	gpu := platform.NewFake()
	st := newSlotTable(gpu)

	buf1 := &slotTestBuffer{w: 16, h: 16}
	img1, _ := gpu.CreateImage(gpu.CurrentDisplay(), buf1)
	st.slots[0].nativeBuffer = buf1
	st.slots[0].gpuImage = img1

	buf2 := &slotTestBuffer{w: 32, h: 32}
	st.install(gpu.CurrentDisplay(), 0, buf2)

	if st.slots[0].nativeBuffer != buf2 {
		t.Errorf("install did not replace nativeBuffer")
	}
	if st.slots[0].gpuImage != platform.NoImage {
		t.Errorf("install did not clear old gpuImage")
	}
	if gpu.ImageCount() != 0 {
		t.Errorf("install did not destroy replaced GPU image")
	}
}

func TestSlotTableFreeAll(t *testing.T) {
	gpu := platform.NewFake()
	st := newSlotTable(gpu)

	for i := 0; i < 3; i++ {
		buf := &slotTestBuffer{w: 8, h: 8}
		img, _ := gpu.CreateImage(gpu.CurrentDisplay(), buf)
		st.slots[i].nativeBuffer = buf
		st.slots[i].gpuImage = img
	}

	st.freeAll(gpu.CurrentDisplay())

	if gpu.ImageCount() != 0 {
		t.Errorf("freeAll left %d images live, want 0", gpu.ImageCount())
	}
	for i := 0; i < 3; i++ {
		if st.slots[i].nativeBuffer != nil {
			t.Errorf("slot %d nativeBuffer not cleared", i)
		}
	}
}
