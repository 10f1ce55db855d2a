package handle

import (
	"math"
	"unsafe"

	"github.com/vkngwrapper/stowage/alloc"
	"github.com/vkngwrapper/stowage/memutils"
	"github.com/vkngwrapper/stowage/storage"
)

func elementSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func zeroSized[T any]() bool {
	return elementSize[T]() == 0
}

// zeroSizedPointer is the address every zero-sized value resolves to. Storage is never consulted.
func zeroSizedPointer[T any]() unsafe.Pointer {
	ptr, err := storage.DanglingPointer(alloc.LayoutOf[T]().Alignment)
	if err != nil {
		panic(err)
	}
	return ptr
}

// failureLayout is the layout reported to alloc.HandleAllocError when a request for count T fails
func failureLayout[T any](count int) alloc.Layout {
	layout, err := alloc.ArrayLayout[T](count)
	if err != nil {
		return alloc.LayoutOf[T]()
	}
	return layout
}

type resizeKind int

const (
	resizeGrow resizeKind = iota
	resizeShrink
)

type resizeRequest struct {
	kind   resizeKind
	zeroed bool
	// region is in elements. nil preserves the common prefix of the old and new allocation.
	region *storage.CopyRegion
}

// resizeSlice is the one grow/shrink path shared by TypedSlice and Sliced. It returns the replacement
// handle and the element count the storage actually provided, which may exceed newLen. On failure the
// old handle and length are returned unchanged. Zero-sized T never reach the storage.
func resizeSlice[T any, H comparable](s storage.Storage[H], handle H, oldLen, newLen int, request resizeRequest) (H, int, error) {
	elemSize := elementSize[T]()
	if elemSize == 0 {
		return handle, math.MaxInt, nil
	}

	if request.kind == resizeGrow {
		memutils.DebugAssert(newLen >= oldLen, "grow cannot reduce the element count")
	} else {
		memutils.DebugAssert(newLen <= oldLen, "shrink cannot increase the element count")
	}

	oldLayout, err := alloc.ArrayLayout[T](oldLen)
	if err != nil {
		return handle, oldLen, err
	}

	newLayout, err := alloc.ArrayLayout[T](newLen)
	if err != nil {
		return handle, oldLen, err
	}

	var newHandle H
	var size int

	if request.region == nil {
		switch {
		case request.kind == resizeGrow && request.zeroed:
			newHandle, size, err = s.GrowZeroed(handle, oldLayout, newLayout)
		case request.kind == resizeGrow:
			newHandle, size, err = s.Grow(handle, oldLayout, newLayout)
		case request.zeroed:
			newHandle, size, err = s.ShrinkZeroed(handle, oldLayout, newLayout)
		default:
			newHandle, size, err = s.Shrink(handle, oldLayout, newLayout)
		}
	} else {
		region := *request.region
		memutils.DebugValidate(memutils.ValidateFunc(func() error {
			return region.Fits(oldLen, newLen)
		}))
		byteRegion := region.ToBytes(elemSize)

		switch {
		case request.kind == resizeGrow && request.zeroed:
			newHandle, size, err = s.GrowRegionZeroed(handle, oldLayout, newLayout, byteRegion)
		case request.kind == resizeGrow:
			newHandle, size, err = s.GrowRegion(handle, oldLayout, newLayout, byteRegion)
		case request.zeroed:
			newHandle, size, err = s.ShrinkRegionZeroed(handle, oldLayout, newLayout, byteRegion)
		default:
			newHandle, size, err = s.ShrinkRegion(handle, oldLayout, newLayout, byteRegion)
		}
	}

	if err != nil {
		return handle, oldLen, err
	}

	memutils.DebugAssert(size >= newLayout.Size, "storage returned fewer bytes than requested")
	return newHandle, size / elemSize, nil
}
