package handle

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/stowage/alloc"
	"github.com/vkngwrapper/stowage/storage"
)

// Sliced is a handle to a run of T that carries no element count. The count is recovered from the
// storage on every call, as the byte size the storage reports for the handle divided by the size of T.
// It is the natural shape over storages that already track the size of each allocation, like
// storage.BlockStorage.
type Sliced[T any, H comparable] struct {
	handle H
}

func TryDanglingSliced[T any, H comparable](s storage.Base[H]) (Sliced[T, H], error) {
	handle, err := s.Dangling(alloc.LayoutOf[T]().Alignment)
	if err != nil {
		return Sliced[T, H]{}, err
	}

	return Sliced[T, H]{handle: handle}, nil
}

func DanglingSliced[T any, H comparable](s storage.Base[H]) Sliced[T, H] {
	h, err := TryDanglingSliced[T, H](s)
	if err != nil {
		alloc.HandleAllocError(alloc.LayoutOf[T]())
	}
	return h
}

func tryAllocateSliced[T any, H comparable](s storage.Sliced[H], count int, zeroed bool) (Sliced[T, H], error) {
	layout, err := alloc.ArrayLayout[T](count)
	if err != nil {
		return Sliced[T, H]{}, err
	}

	if zeroSized[T]() {
		return TryDanglingSliced[T, H](s)
	}

	var handle H
	if zeroed {
		handle, _, err = s.AllocateZeroed(layout)
	} else {
		handle, _, err = s.Allocate(layout)
	}
	if err != nil {
		return Sliced[T, H]{}, err
	}

	return Sliced[T, H]{handle: handle}, nil
}

// TryAllocateSliced allocates room for at least count T and leaves it uninitialized
func TryAllocateSliced[T any, H comparable](s storage.Sliced[H], count int) (Sliced[T, H], error) {
	return tryAllocateSliced[T, H](s, count, false)
}

func AllocateSliced[T any, H comparable](s storage.Sliced[H], count int) Sliced[T, H] {
	h, err := TryAllocateSliced[T, H](s, count)
	if err != nil {
		alloc.HandleAllocError(failureLayout[T](count))
	}
	return h
}

func TryAllocateZeroedSliced[T any, H comparable](s storage.Sliced[H], count int) (Sliced[T, H], error) {
	return tryAllocateSliced[T, H](s, count, true)
}

func AllocateZeroedSliced[T any, H comparable](s storage.Sliced[H], count int) Sliced[T, H] {
	h, err := TryAllocateZeroedSliced[T, H](s, count)
	if err != nil {
		alloc.HandleAllocError(failureLayout[T](count))
	}
	return h
}

func SlicedFromRawParts[T any, H comparable](handle H) Sliced[T, H] {
	return Sliced[T, H]{handle: handle}
}

func (h Sliced[T, H]) ToRawParts() H {
	return h.handle
}

// Len is the number of T the storage holds for h. Zero-sized T never reach the storage, so nothing
// records how many were requested and Len reports 0, allocated or dangling.
func (h Sliced[T, H]) Len(s storage.Sliced[H]) int {
	elemSize := elementSize[T]()
	if elemSize == 0 {
		return 0
	}
	return s.ResolveSize(h.handle) / elemSize
}

func (h Sliced[T, H]) IsEmpty(s storage.Sliced[H]) bool {
	return h.Len(s) == 0
}

func (h Sliced[T, H]) Deallocate(s storage.Sliced[H]) {
	if zeroSized[T]() {
		return
	}

	s.Deallocate(h.handle, alloc.Layout{
		Size:      s.ResolveSize(h.handle),
		Alignment: alloc.LayoutOf[T]().Alignment,
	})
}

// ResolveRaw returns the address of the first element and the element count
func (h Sliced[T, H]) ResolveRaw(s storage.Sliced[H]) (unsafe.Pointer, int) {
	if zeroSized[T]() {
		return zeroSizedPointer[T](), 0
	}

	ptr, size := s.ResolveSliced(h.handle)
	return ptr, size / elementSize[T]()
}

func (h Sliced[T, H]) ResolveRawMut(s storage.Sliced[H]) (unsafe.Pointer, int) {
	if zeroSized[T]() {
		return zeroSizedPointer[T](), 0
	}

	ptr := s.ResolveMut(h.handle)
	return ptr, s.ResolveSize(h.handle) / elementSize[T]()
}

func (h Sliced[T, H]) Resolve(s storage.Sliced[H]) []T {
	ptr, length := h.ResolveRaw(s)
	return unsafe.Slice((*T)(ptr), length)
}

func (h Sliced[T, H]) ResolveMut(s storage.Sliced[H]) []T {
	ptr, length := h.ResolveRawMut(s)
	return unsafe.Slice((*T)(ptr), length)
}

func (h Sliced[T, H]) Ref(s storage.Sliced[H]) Ref[[]T] {
	return NewRef(h.ResolveMut(s), s)
}

func (h *Sliced[T, H]) resize(s storage.Sliced[H], newLen int, request resizeRequest) error {
	handle, _, err := resizeSlice[T, H](s, h.handle, h.Len(s), newLen, request)
	if err != nil {
		return err
	}

	h.handle = handle
	return nil
}

func (h *Sliced[T, H]) TryGrow(s storage.Sliced[H], newLen int) error {
	return h.resize(s, newLen, resizeRequest{kind: resizeGrow})
}

func (h *Sliced[T, H]) Grow(s storage.Sliced[H], newLen int) {
	if err := h.TryGrow(s, newLen); err != nil {
		alloc.HandleAllocError(failureLayout[T](newLen))
	}
}

func (h *Sliced[T, H]) TryGrowZeroed(s storage.Sliced[H], newLen int) error {
	return h.resize(s, newLen, resizeRequest{kind: resizeGrow, zeroed: true})
}

func (h *Sliced[T, H]) GrowZeroed(s storage.Sliced[H], newLen int) {
	if err := h.TryGrowZeroed(s, newLen); err != nil {
		alloc.HandleAllocError(failureLayout[T](newLen))
	}
}

func (h *Sliced[T, H]) TryGrowRegion(s storage.Sliced[H], newLen int, region storage.CopyRegion) error {
	return h.resize(s, newLen, resizeRequest{kind: resizeGrow, region: &region})
}

func (h *Sliced[T, H]) GrowRegion(s storage.Sliced[H], newLen int, region storage.CopyRegion) {
	if err := h.TryGrowRegion(s, newLen, region); err != nil {
		alloc.HandleAllocError(failureLayout[T](newLen))
	}
}

func (h *Sliced[T, H]) TryGrowRegionZeroed(s storage.Sliced[H], newLen int, region storage.CopyRegion) error {
	return h.resize(s, newLen, resizeRequest{kind: resizeGrow, zeroed: true, region: &region})
}

func (h *Sliced[T, H]) GrowRegionZeroed(s storage.Sliced[H], newLen int, region storage.CopyRegion) {
	if err := h.TryGrowRegionZeroed(s, newLen, region); err != nil {
		alloc.HandleAllocError(failureLayout[T](newLen))
	}
}

func (h *Sliced[T, H]) TryShrink(s storage.Sliced[H], newLen int) error {
	return h.resize(s, newLen, resizeRequest{kind: resizeShrink})
}

func (h *Sliced[T, H]) Shrink(s storage.Sliced[H], newLen int) {
	if err := h.TryShrink(s, newLen); err != nil {
		alloc.HandleAllocError(failureLayout[T](newLen))
	}
}

func (h *Sliced[T, H]) TryShrinkZeroed(s storage.Sliced[H], newLen int) error {
	return h.resize(s, newLen, resizeRequest{kind: resizeShrink, zeroed: true})
}

func (h *Sliced[T, H]) ShrinkZeroed(s storage.Sliced[H], newLen int) {
	if err := h.TryShrinkZeroed(s, newLen); err != nil {
		alloc.HandleAllocError(failureLayout[T](newLen))
	}
}

func (h *Sliced[T, H]) TryShrinkRegion(s storage.Sliced[H], newLen int, region storage.CopyRegion) error {
	return h.resize(s, newLen, resizeRequest{kind: resizeShrink, region: &region})
}

func (h *Sliced[T, H]) ShrinkRegion(s storage.Sliced[H], newLen int, region storage.CopyRegion) {
	if err := h.TryShrinkRegion(s, newLen, region); err != nil {
		alloc.HandleAllocError(failureLayout[T](newLen))
	}
}

func (h *Sliced[T, H]) TryShrinkRegionZeroed(s storage.Sliced[H], newLen int, region storage.CopyRegion) error {
	return h.resize(s, newLen, resizeRequest{kind: resizeShrink, zeroed: true, region: &region})
}

func (h *Sliced[T, H]) ShrinkRegionZeroed(s storage.Sliced[H], newLen int, region storage.CopyRegion) {
	if err := h.TryShrinkRegionZeroed(s, newLen, region); err != nil {
		alloc.HandleAllocError(failureLayout[T](newLen))
	}
}

// Cast views the elements behind h as U. Storage is not touched, and the element count is recomputed
// from the allocation's byte size. U may not be more strictly aligned than T, and U is zero-sized only
// if T is.
func Cast[U, T any, H comparable](h Sliced[T, H]) (Sliced[U, H], error) {
	from := alloc.LayoutOf[T]()
	to := alloc.LayoutOf[U]()

	if (from.Size == 0) != (to.Size == 0) {
		return Sliced[U, H]{}, errors.Newf("cannot cast elements of size %d to elements of size %d", from.Size, to.Size)
	}
	if to.Alignment > from.Alignment {
		return Sliced[U, H]{}, errors.Newf("cannot cast elements aligned to %d to elements aligned to %d", from.Alignment, to.Alignment)
	}

	return Sliced[U, H]{handle: h.handle}, nil
}
