package storage

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/stowage/alloc"
	"github.com/vkngwrapper/stowage/memutils"
)

// InlineHandle is the handle of an InlineStorage. There is only ever one allocation, so the handle
// carries nothing.
type InlineHandle struct{}

// InlineStorage is a Storage holding at most one allocation, backed by a fixed buffer of capacity
// elements of T. Every allocation reports the whole buffer as usable, so grow and shrink never move
// memory; region operations shift data within the buffer.
//
// InlineStorage is not safe for concurrent use.
type InlineStorage[T any] struct {
	epochCounter

	data      []T
	allocated bool
}

var _ Sliced[InlineHandle] = &InlineStorage[uint64]{}

func NewInlineStorage[T any](capacity int) *InlineStorage[T] {
	return &InlineStorage[T]{
		data: make([]T, capacity),
	}
}

func (s *InlineStorage[T]) capacityBytes() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * len(s.data)
}

func (s *InlineStorage[T]) alignment() uint {
	var zero T
	return uint(unsafe.Alignof(zero))
}

func (s *InlineStorage[T]) fits(layout alloc.Layout) error {
	if layout.Size > s.capacityBytes() {
		return errors.Wrapf(memutils.AllocError, "%s does not fit in %d inline bytes", layout, s.capacityBytes())
	}
	if layout.Alignment > s.alignment() {
		return errors.Wrapf(memutils.AllocError, "%s is more strictly aligned than the inline buffer", layout)
	}
	return nil
}

func (s *InlineStorage[T]) buffer() unsafe.Pointer {
	if len(s.data) == 0 {
		return danglingBase
	}
	return unsafe.Pointer(unsafe.SliceData(s.data))
}

func (s *InlineStorage[T]) Dangling(alignment uint) (InlineHandle, error) {
	return InlineHandle{}, nil
}

func (s *InlineStorage[T]) Resolve(handle InlineHandle) unsafe.Pointer {
	return s.buffer()
}

func (s *InlineStorage[T]) ResolveMut(handle InlineHandle) unsafe.Pointer {
	return s.buffer()
}

func (s *InlineStorage[T]) ResolveSize(handle InlineHandle) int {
	return s.capacityBytes()
}

func (s *InlineStorage[T]) ResolveSliced(handle InlineHandle) (unsafe.Pointer, int) {
	return s.buffer(), s.capacityBytes()
}

func (s *InlineStorage[T]) Allocate(layout alloc.Layout) (InlineHandle, int, error) {
	err := s.fits(layout)
	if err != nil {
		return InlineHandle{}, 0, err
	}

	if s.allocated {
		return InlineHandle{}, 0, errors.Wrap(memutils.AllocError, "inline storage already holds an allocation")
	}

	s.allocated = true
	s.bump()
	return InlineHandle{}, s.capacityBytes(), nil
}

func (s *InlineStorage[T]) AllocateZeroed(layout alloc.Layout) (InlineHandle, int, error) {
	return DefaultAllocateZeroed[InlineHandle](s, layout)
}

func (s *InlineStorage[T]) Deallocate(handle InlineHandle, layout alloc.Layout) {
	memutils.DebugAssert(s.allocated, "inline storage has no allocation to release")
	s.allocated = false
	s.bump()
}

func (s *InlineStorage[T]) Grow(handle InlineHandle, oldLayout, newLayout alloc.Layout) (InlineHandle, int, error) {
	return s.GrowRegion(handle, oldLayout, newLayout, CopyRegion{Size: oldLayout.Size})
}

func (s *InlineStorage[T]) GrowZeroed(handle InlineHandle, oldLayout, newLayout alloc.Layout) (InlineHandle, int, error) {
	return DefaultGrowZeroed[InlineHandle](s, handle, oldLayout, newLayout)
}

func (s *InlineStorage[T]) GrowRegion(handle InlineHandle, oldLayout, newLayout alloc.Layout, region CopyRegion) (InlineHandle, int, error) {
	memutils.DebugAssert(newLayout.Size >= oldLayout.Size, "grow must not reduce the allocation size")

	err := s.fits(newLayout)
	if err != nil {
		return handle, 0, err
	}

	return s.moveRegion(oldLayout, newLayout, region)
}

func (s *InlineStorage[T]) GrowRegionZeroed(handle InlineHandle, oldLayout, newLayout alloc.Layout, region CopyRegion) (InlineHandle, int, error) {
	return DefaultGrowRegionZeroed[InlineHandle](s, handle, oldLayout, newLayout, region)
}

func (s *InlineStorage[T]) Shrink(handle InlineHandle, oldLayout, newLayout alloc.Layout) (InlineHandle, int, error) {
	return s.ShrinkRegion(handle, oldLayout, newLayout, CopyRegion{Size: newLayout.Size})
}

func (s *InlineStorage[T]) ShrinkZeroed(handle InlineHandle, oldLayout, newLayout alloc.Layout) (InlineHandle, int, error) {
	return DefaultShrinkZeroed[InlineHandle](s, handle, oldLayout, newLayout)
}

func (s *InlineStorage[T]) ShrinkRegion(handle InlineHandle, oldLayout, newLayout alloc.Layout, region CopyRegion) (InlineHandle, int, error) {
	memutils.DebugAssert(newLayout.Size <= oldLayout.Size, "shrink must not increase the allocation size")

	return s.moveRegion(oldLayout, newLayout, region)
}

func (s *InlineStorage[T]) ShrinkRegionZeroed(handle InlineHandle, oldLayout, newLayout alloc.Layout, region CopyRegion) (InlineHandle, int, error) {
	return DefaultShrinkRegionZeroed[InlineHandle](s, handle, oldLayout, newLayout, region)
}

func (s *InlineStorage[T]) moveRegion(oldLayout, newLayout alloc.Layout, region CopyRegion) (InlineHandle, int, error) {
	debugCheckRegion(region, oldLayout.Size, newLayout.Size)

	if region.SrcOffset != region.DstOffset {
		buffer := s.buffer()
		Move(buffer, region.DstOffset, buffer, region.SrcOffset, region.Size)
	}

	s.bump()
	return InlineHandle{}, s.capacityBytes(), nil
}
