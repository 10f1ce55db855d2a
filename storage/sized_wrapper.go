package storage

import (
	"unsafe"

	"github.com/vkngwrapper/stowage/alloc"
	"github.com/vkngwrapper/stowage/memutils"
)

// SizedWrapper turns a storage that is only ever used for one allocation at a time into a Sliced
// storage by remembering the usable size of that allocation
type SizedWrapper[H comparable] struct {
	storage Storage[H]
	size    int
}

var _ Sliced[unsafe.Pointer] = &SizedWrapper[unsafe.Pointer]{}

func NewSizedWrapper[H comparable](storage Storage[H]) *SizedWrapper[H] {
	return &SizedWrapper[H]{storage: storage}
}

// Unwrap returns the wrapped storage
func (w *SizedWrapper[H]) Unwrap() Storage[H] {
	return w.storage
}

func (w *SizedWrapper[H]) record(handle H, size int, err error) (H, int, error) {
	if err == nil {
		w.size = size
	}
	return handle, size, err
}

func (w *SizedWrapper[H]) AddressStable() bool {
	return IsAddressStable(w.storage)
}

func (w *SizedWrapper[H]) Dangling(alignment uint) (H, error) {
	return w.storage.Dangling(alignment)
}

func (w *SizedWrapper[H]) Epoch() uint64 {
	return w.storage.Epoch()
}

func (w *SizedWrapper[H]) Resolve(handle H) unsafe.Pointer {
	return w.storage.Resolve(handle)
}

func (w *SizedWrapper[H]) ResolveMut(handle H) unsafe.Pointer {
	return w.storage.ResolveMut(handle)
}

func (w *SizedWrapper[H]) ResolveSize(handle H) int {
	return w.size
}

func (w *SizedWrapper[H]) ResolveSliced(handle H) (unsafe.Pointer, int) {
	return w.storage.Resolve(handle), w.size
}

func (w *SizedWrapper[H]) Allocate(layout alloc.Layout) (H, int, error) {
	memutils.DebugAssert(w.size == 0, "sized wrapper already holds an allocation")
	return w.record(w.storage.Allocate(layout))
}

func (w *SizedWrapper[H]) AllocateZeroed(layout alloc.Layout) (H, int, error) {
	memutils.DebugAssert(w.size == 0, "sized wrapper already holds an allocation")
	return w.record(w.storage.AllocateZeroed(layout))
}

func (w *SizedWrapper[H]) Deallocate(handle H, layout alloc.Layout) {
	w.storage.Deallocate(handle, layout)
	w.size = 0
}

func (w *SizedWrapper[H]) Grow(handle H, oldLayout, newLayout alloc.Layout) (H, int, error) {
	return w.record(w.storage.Grow(handle, oldLayout, newLayout))
}

func (w *SizedWrapper[H]) GrowZeroed(handle H, oldLayout, newLayout alloc.Layout) (H, int, error) {
	return w.record(w.storage.GrowZeroed(handle, oldLayout, newLayout))
}

func (w *SizedWrapper[H]) GrowRegion(handle H, oldLayout, newLayout alloc.Layout, region CopyRegion) (H, int, error) {
	return w.record(w.storage.GrowRegion(handle, oldLayout, newLayout, region))
}

func (w *SizedWrapper[H]) GrowRegionZeroed(handle H, oldLayout, newLayout alloc.Layout, region CopyRegion) (H, int, error) {
	return w.record(w.storage.GrowRegionZeroed(handle, oldLayout, newLayout, region))
}

func (w *SizedWrapper[H]) Shrink(handle H, oldLayout, newLayout alloc.Layout) (H, int, error) {
	return w.record(w.storage.Shrink(handle, oldLayout, newLayout))
}

func (w *SizedWrapper[H]) ShrinkZeroed(handle H, oldLayout, newLayout alloc.Layout) (H, int, error) {
	return w.record(w.storage.ShrinkZeroed(handle, oldLayout, newLayout))
}

func (w *SizedWrapper[H]) ShrinkRegion(handle H, oldLayout, newLayout alloc.Layout, region CopyRegion) (H, int, error) {
	return w.record(w.storage.ShrinkRegion(handle, oldLayout, newLayout, region))
}

func (w *SizedWrapper[H]) ShrinkRegionZeroed(handle H, oldLayout, newLayout alloc.Layout, region CopyRegion) (H, int, error) {
	return w.record(w.storage.ShrinkRegionZeroed(handle, oldLayout, newLayout, region))
}
