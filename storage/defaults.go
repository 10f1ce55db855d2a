package storage

import (
	"unsafe"

	"github.com/vkngwrapper/stowage/alloc"
)

// Core is the minimum a storage needs to provide for the Default helpers to build the rest of the
// Storage contract on top of it
type Core[H comparable] interface {
	Resolve(handle H) unsafe.Pointer
	Allocate(layout alloc.Layout) (H, int, error)
	Deallocate(handle H, layout alloc.Layout)
}

func bytesAt(ptr unsafe.Pointer, offset, size int) []byte {
	if size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Add(ptr, offset)), size)
}

// Zero fills [from, to) of the memory at ptr with zeroes
func Zero(ptr unsafe.Pointer, from, to int) {
	if to <= from {
		return
	}
	clear(bytesAt(ptr, from, to-from))
}

// Move copies size bytes within or between allocations. The ranges may overlap.
func Move(dst unsafe.Pointer, dstOffset int, src unsafe.Pointer, srcOffset int, size int) {
	copy(bytesAt(dst, dstOffset, size), bytesAt(src, srcOffset, size))
}

// DefaultAllocateZeroed allocates through storage and zeroes every usable byte
func DefaultAllocateZeroed[H comparable](storage Core[H], layout alloc.Layout) (H, int, error) {
	handle, size, err := storage.Allocate(layout)
	if err != nil {
		return handle, 0, err
	}

	Zero(storage.Resolve(handle), 0, size)
	return handle, size, nil
}

// DefaultRelocate makes a new allocation for newLayout, copies region from the old allocation into it,
// and frees the old allocation. If the new allocation fails, the old one is untouched.
func DefaultRelocate[H comparable](storage Core[H], handle H, oldLayout, newLayout alloc.Layout, region CopyRegion) (H, int, error) {
	debugCheckRegion(region, oldLayout.Size, newLayout.Size)

	newHandle, newSize, err := storage.Allocate(newLayout)
	if err != nil {
		return handle, 0, err
	}

	Move(storage.Resolve(newHandle), region.DstOffset, storage.Resolve(handle), region.SrcOffset, region.Size)
	storage.Deallocate(handle, oldLayout)

	return newHandle, newSize, nil
}

// DefaultGrow is Grow implemented as a relocation that preserves the whole old allocation
func DefaultGrow[H comparable](storage Core[H], handle H, oldLayout, newLayout alloc.Layout) (H, int, error) {
	return DefaultRelocate(storage, handle, oldLayout, newLayout, CopyRegion{Size: oldLayout.Size})
}

// DefaultShrink is Shrink implemented as a relocation that preserves the head of the old allocation
func DefaultShrink[H comparable](storage Core[H], handle H, oldLayout, newLayout alloc.Layout) (H, int, error) {
	return DefaultRelocate(storage, handle, oldLayout, newLayout, CopyRegion{Size: newLayout.Size})
}

// DefaultGrowZeroed grows through storage.Grow and zeroes everything past the old contents
func DefaultGrowZeroed[H comparable](storage Storage[H], handle H, oldLayout, newLayout alloc.Layout) (H, int, error) {
	newHandle, newSize, err := storage.Grow(handle, oldLayout, newLayout)
	if err != nil {
		return handle, 0, err
	}

	Zero(storage.ResolveMut(newHandle), oldLayout.Size, newSize)
	return newHandle, newSize, nil
}

// DefaultShrinkZeroed shrinks through storage.Shrink and zeroes any usable bytes past the new size
func DefaultShrinkZeroed[H comparable](storage Storage[H], handle H, oldLayout, newLayout alloc.Layout) (H, int, error) {
	newHandle, newSize, err := storage.Shrink(handle, oldLayout, newLayout)
	if err != nil {
		return handle, 0, err
	}

	Zero(storage.ResolveMut(newHandle), newLayout.Size, newSize)
	return newHandle, newSize, nil
}

// zeroOutsideRegion clears the head [0, DstOffset) and tail [DstOffset+Size, size) around a copied region
func zeroOutsideRegion(ptr unsafe.Pointer, size int, region CopyRegion) {
	Zero(ptr, 0, region.DstOffset)
	Zero(ptr, region.DstOffset+region.Size, size)
}

// DefaultGrowRegionZeroed grows through storage.GrowRegion and zeroes every byte outside the region
func DefaultGrowRegionZeroed[H comparable](storage Storage[H], handle H, oldLayout, newLayout alloc.Layout, region CopyRegion) (H, int, error) {
	newHandle, newSize, err := storage.GrowRegion(handle, oldLayout, newLayout, region)
	if err != nil {
		return handle, 0, err
	}

	zeroOutsideRegion(storage.ResolveMut(newHandle), newSize, region)
	return newHandle, newSize, nil
}

// DefaultShrinkRegionZeroed shrinks through storage.ShrinkRegion and zeroes every byte outside the region
func DefaultShrinkRegionZeroed[H comparable](storage Storage[H], handle H, oldLayout, newLayout alloc.Layout, region CopyRegion) (H, int, error) {
	newHandle, newSize, err := storage.ShrinkRegion(handle, oldLayout, newLayout, region)
	if err != nil {
		return handle, 0, err
	}

	zeroOutsideRegion(storage.ResolveMut(newHandle), newSize, region)
	return newHandle, newSize, nil
}
