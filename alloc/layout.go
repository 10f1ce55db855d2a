package alloc

import (
	"fmt"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/stowage/memutils"
)

// Layout describes the size and alignment of a block of memory requested from an Allocator or Storage.
// Size is in bytes and may be 0. Alignment must be a power of two.
type Layout struct {
	Size      int
	Alignment uint
}

var _ memutils.Validatable = Layout{}

// NewLayout builds a Layout and verifies that it is usable: size is non-negative, alignment is a power
// of two, and size rounded up to alignment does not overflow
func NewLayout(size int, alignment uint) (Layout, error) {
	layout := Layout{Size: size, Alignment: alignment}
	return layout, layout.Validate()
}

// LayoutOf returns the Layout of a single T
func LayoutOf[T any]() Layout {
	var zero T
	return Layout{
		Size:      int(unsafe.Sizeof(zero)),
		Alignment: uint(unsafe.Alignof(zero)),
	}
}

// ArrayLayout returns the Layout of count contiguous T values. It fails with memutils.AllocError
// if the byte size cannot be represented.
func ArrayLayout[T any](count int) (Layout, error) {
	elem := LayoutOf[T]()
	if count < 0 || memutils.MulOverflows(elem.Size, count) {
		return Layout{}, errors.Wrapf(memutils.AllocError, "array of %d elements of size %d overflows", count, elem.Size)
	}

	return Layout{Size: elem.Size * count, Alignment: elem.Alignment}, nil
}

func (l Layout) Validate() error {
	if l.Size < 0 {
		return errors.Newf("layout size %d is negative", l.Size)
	}

	err := memutils.CheckPow2(l.Alignment, "layout alignment")
	if err != nil {
		return err
	}

	if l.Size > maxSizeForAlignment(l.Alignment) {
		return errors.Newf("layout size %d overflows when aligned to %d", l.Size, l.Alignment)
	}

	return nil
}

// WithSize returns a copy of this Layout with a different size and the same alignment
func (l Layout) WithSize(size int) Layout {
	return Layout{Size: size, Alignment: l.Alignment}
}

func (l Layout) String() string {
	return fmt.Sprintf("{size: %d, align: %d}", l.Size, l.Alignment)
}

func maxSizeForAlignment(alignment uint) int {
	return int(^uint(0)>>1) - int(alignment-1)
}
