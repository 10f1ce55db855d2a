package handle

import (
	"math"
	"unsafe"

	"github.com/vkngwrapper/stowage/alloc"
	"github.com/vkngwrapper/stowage/storage"
)

// TypedSlice is a handle to a run of T that carries its own element count. The count is whatever the
// storage actually provided, which may be more than was asked for.
//
// Slices of a zero-sized T never reach the storage: they are dangling, report math.MaxInt elements
// once allocated, and resize without doing anything.
type TypedSlice[T any, H comparable] struct {
	handle H
	length int
}

// TryDanglingSlice returns an empty slice handle that refers to no memory
func TryDanglingSlice[T any, H comparable](s storage.Base[H]) (TypedSlice[T, H], error) {
	handle, err := s.Dangling(alloc.LayoutOf[T]().Alignment)
	if err != nil {
		return TypedSlice[T, H]{}, err
	}

	return TypedSlice[T, H]{handle: handle}, nil
}

func DanglingSlice[T any, H comparable](s storage.Base[H]) TypedSlice[T, H] {
	h, err := TryDanglingSlice[T, H](s)
	if err != nil {
		alloc.HandleAllocError(alloc.LayoutOf[T]())
	}
	return h
}

func tryAllocateSlice[T any, H comparable](s storage.Storage[H], count int, zeroed bool) (TypedSlice[T, H], error) {
	layout, err := alloc.ArrayLayout[T](count)
	if err != nil {
		return TypedSlice[T, H]{}, err
	}

	if zeroSized[T]() {
		h, err := TryDanglingSlice[T, H](s)
		if err != nil {
			return h, err
		}
		h.length = math.MaxInt
		return h, nil
	}

	var handle H
	var size int
	if zeroed {
		handle, size, err = s.AllocateZeroed(layout)
	} else {
		handle, size, err = s.Allocate(layout)
	}
	if err != nil {
		return TypedSlice[T, H]{}, err
	}

	return TypedSlice[T, H]{handle: handle, length: size / elementSize[T]()}, nil
}

// TryAllocateSlice allocates room for at least count T and leaves it uninitialized. It fails with
// memutils.AllocError if count T cannot be represented in bytes.
func TryAllocateSlice[T any, H comparable](s storage.Storage[H], count int) (TypedSlice[T, H], error) {
	return tryAllocateSlice[T, H](s, count, false)
}

func AllocateSlice[T any, H comparable](s storage.Storage[H], count int) TypedSlice[T, H] {
	h, err := TryAllocateSlice[T, H](s, count)
	if err != nil {
		alloc.HandleAllocError(failureLayout[T](count))
	}
	return h
}

// TryAllocateZeroedSlice allocates room for at least count T with every byte set to zero
func TryAllocateZeroedSlice[T any, H comparable](s storage.Storage[H], count int) (TypedSlice[T, H], error) {
	return tryAllocateSlice[T, H](s, count, true)
}

func AllocateZeroedSlice[T any, H comparable](s storage.Storage[H], count int) TypedSlice[T, H] {
	h, err := TryAllocateZeroedSlice[T, H](s, count)
	if err != nil {
		alloc.HandleAllocError(failureLayout[T](count))
	}
	return h
}

// SliceFromRawParts wraps a storage handle holding length T
func SliceFromRawParts[T any, H comparable](handle H, length int) TypedSlice[T, H] {
	return TypedSlice[T, H]{handle: handle, length: length}
}

func (h TypedSlice[T, H]) ToRawParts() (H, int) {
	return h.handle, h.length
}

func (h TypedSlice[T, H]) Len() int {
	return h.length
}

func (h TypedSlice[T, H]) IsEmpty() bool {
	return h.length == 0
}

// Deallocate frees the memory behind h. Every copy of h is invalid afterward.
func (h TypedSlice[T, H]) Deallocate(s storage.Storage[H]) {
	if zeroSized[T]() {
		return
	}

	s.Deallocate(h.handle, alloc.Layout{
		Size:      h.length * elementSize[T](),
		Alignment: alloc.LayoutOf[T]().Alignment,
	})
}

func (h TypedSlice[T, H]) ResolveRaw(s storage.Storage[H]) unsafe.Pointer {
	if zeroSized[T]() {
		return zeroSizedPointer[T]()
	}
	return s.Resolve(h.handle)
}

func (h TypedSlice[T, H]) ResolveRawMut(s storage.Storage[H]) unsafe.Pointer {
	if zeroSized[T]() {
		return zeroSizedPointer[T]()
	}
	return s.ResolveMut(h.handle)
}

// Resolve returns the elements behind h. The slice is only good until the next call into s.
func (h TypedSlice[T, H]) Resolve(s storage.Storage[H]) []T {
	return unsafe.Slice((*T)(h.ResolveRaw(s)), h.length)
}

func (h TypedSlice[T, H]) ResolveMut(s storage.Storage[H]) []T {
	return unsafe.Slice((*T)(h.ResolveRawMut(s)), h.length)
}

func (h TypedSlice[T, H]) Ref(s storage.Storage[H]) Ref[[]T] {
	return NewRef(h.ResolveMut(s), s)
}

func (h *TypedSlice[T, H]) resize(s storage.Storage[H], newLen int, request resizeRequest) error {
	handle, length, err := resizeSlice[T](s, h.handle, h.length, newLen, request)
	if err != nil {
		return err
	}

	h.handle = handle
	h.length = length
	return nil
}

// TryGrow moves h to room for at least newLen elements, keeping the existing elements. The new
// elements are uninitialized. On success every other copy of h is invalid; on failure h is unchanged.
func (h *TypedSlice[T, H]) TryGrow(s storage.Storage[H], newLen int) error {
	return h.resize(s, newLen, resizeRequest{kind: resizeGrow})
}

func (h *TypedSlice[T, H]) Grow(s storage.Storage[H], newLen int) {
	if err := h.TryGrow(s, newLen); err != nil {
		alloc.HandleAllocError(failureLayout[T](newLen))
	}
}

// TryGrowZeroed is TryGrow with the new elements set to zero
func (h *TypedSlice[T, H]) TryGrowZeroed(s storage.Storage[H], newLen int) error {
	return h.resize(s, newLen, resizeRequest{kind: resizeGrow, zeroed: true})
}

func (h *TypedSlice[T, H]) GrowZeroed(s storage.Storage[H], newLen int) {
	if err := h.TryGrowZeroed(s, newLen); err != nil {
		alloc.HandleAllocError(failureLayout[T](newLen))
	}
}

// TryGrowRegion is TryGrow, except only the elements described by region are carried over. region is
// measured in elements.
func (h *TypedSlice[T, H]) TryGrowRegion(s storage.Storage[H], newLen int, region storage.CopyRegion) error {
	return h.resize(s, newLen, resizeRequest{kind: resizeGrow, region: &region})
}

func (h *TypedSlice[T, H]) GrowRegion(s storage.Storage[H], newLen int, region storage.CopyRegion) {
	if err := h.TryGrowRegion(s, newLen, region); err != nil {
		alloc.HandleAllocError(failureLayout[T](newLen))
	}
}

// TryGrowRegionZeroed is TryGrowRegion with everything outside the destination of region set to zero
func (h *TypedSlice[T, H]) TryGrowRegionZeroed(s storage.Storage[H], newLen int, region storage.CopyRegion) error {
	return h.resize(s, newLen, resizeRequest{kind: resizeGrow, zeroed: true, region: &region})
}

func (h *TypedSlice[T, H]) GrowRegionZeroed(s storage.Storage[H], newLen int, region storage.CopyRegion) {
	if err := h.TryGrowRegionZeroed(s, newLen, region); err != nil {
		alloc.HandleAllocError(failureLayout[T](newLen))
	}
}

// TryShrink moves h to room for at least newLen elements, keeping the first newLen
func (h *TypedSlice[T, H]) TryShrink(s storage.Storage[H], newLen int) error {
	return h.resize(s, newLen, resizeRequest{kind: resizeShrink})
}

func (h *TypedSlice[T, H]) Shrink(s storage.Storage[H], newLen int) {
	if err := h.TryShrink(s, newLen); err != nil {
		alloc.HandleAllocError(failureLayout[T](newLen))
	}
}

// TryShrinkZeroed is TryShrink with any slack the storage leaves past newLen elements set to zero
func (h *TypedSlice[T, H]) TryShrinkZeroed(s storage.Storage[H], newLen int) error {
	return h.resize(s, newLen, resizeRequest{kind: resizeShrink, zeroed: true})
}

func (h *TypedSlice[T, H]) ShrinkZeroed(s storage.Storage[H], newLen int) {
	if err := h.TryShrinkZeroed(s, newLen); err != nil {
		alloc.HandleAllocError(failureLayout[T](newLen))
	}
}

func (h *TypedSlice[T, H]) TryShrinkRegion(s storage.Storage[H], newLen int, region storage.CopyRegion) error {
	return h.resize(s, newLen, resizeRequest{kind: resizeShrink, region: &region})
}

func (h *TypedSlice[T, H]) ShrinkRegion(s storage.Storage[H], newLen int, region storage.CopyRegion) {
	if err := h.TryShrinkRegion(s, newLen, region); err != nil {
		alloc.HandleAllocError(failureLayout[T](newLen))
	}
}

func (h *TypedSlice[T, H]) TryShrinkRegionZeroed(s storage.Storage[H], newLen int, region storage.CopyRegion) error {
	return h.resize(s, newLen, resizeRequest{kind: resizeShrink, zeroed: true, region: &region})
}

func (h *TypedSlice[T, H]) ShrinkRegionZeroed(s storage.Storage[H], newLen int, region storage.CopyRegion) {
	if err := h.TryShrinkRegionZeroed(s, newLen, region); err != nil {
		alloc.HandleAllocError(failureLayout[T](newLen))
	}
}
