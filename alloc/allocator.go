package alloc

import (
	"unsafe"

	"github.com/vkngwrapper/stowage/memutils"
)

// Allocator hands out raw byte ranges from some arena. Addresses returned by an Allocator never move;
// relocation is a Storage concern.
type Allocator interface {
	// Alloc reserves memory fitting layout. On success it returns the address and the number of usable
	// bytes at that address, which is at least layout.Size. On failure it returns memutils.AllocError.
	Alloc(layout Layout) (unsafe.Pointer, int, error)
	// Dealloc releases memory previously returned by Alloc on this allocator. layout must be the
	// layout that was passed to Alloc, or one whose size lies between that size and the usable size
	// that Alloc reported.
	Dealloc(ptr unsafe.Pointer, layout Layout)
	// Owns reports whether ptr lies within memory managed by this allocator
	Owns(ptr unsafe.Pointer, layout Layout) bool

	// SetAllocID tags this allocator with an identifier for diagnostics
	SetAllocID(id uint16)
	AllocID() uint16
}

// StatisticsAllocator is an Allocator that can report its occupancy
type StatisticsAllocator interface {
	Allocator
	memutils.StatisticsSource
}
