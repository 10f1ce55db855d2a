package storage

import (
	"unsafe"

	"github.com/vkngwrapper/stowage/alloc"
)

//go:generate mockgen -destination mocks/mocks.go -package mock_storage github.com/vkngwrapper/stowage/storage Storage,Sliced

// Base is the part of a storage contract that does not touch memory
type Base[H comparable] interface {
	// Dangling returns a handle that refers to no memory but is suitably aligned for alignment.
	// It may be held and copied freely, but never resolved to live data.
	Dangling(alignment uint) (H, error)
}

// Storage issues opaque handles instead of addresses. A handle only becomes an address through
// Resolve, and that address is only good until the next call into the storage, since any call may
// relocate memory.
//
// Every method that accepts a handle requires it to have been issued by this storage and to still be
// valid. Grow and Shrink, in all forms, invalidate the handle they are given when they succeed; the
// returned handle replaces it. Each method that returns (H, int, error) reports the number of usable
// bytes in the new allocation, which may exceed the requested size. The only failure they return is
// memutils.AllocError.
type Storage[H comparable] interface {
	Base[H]

	Resolve(handle H) unsafe.Pointer
	ResolveMut(handle H) unsafe.Pointer

	Allocate(layout alloc.Layout) (H, int, error)
	AllocateZeroed(layout alloc.Layout) (H, int, error)
	Deallocate(handle H, layout alloc.Layout)

	// Grow moves an allocation to a larger layout, preserving the first oldLayout.Size bytes
	Grow(handle H, oldLayout, newLayout alloc.Layout) (H, int, error)
	GrowZeroed(handle H, oldLayout, newLayout alloc.Layout) (H, int, error)
	// GrowRegion moves an allocation to a larger layout, preserving only the bytes described by region
	GrowRegion(handle H, oldLayout, newLayout alloc.Layout, region CopyRegion) (H, int, error)
	GrowRegionZeroed(handle H, oldLayout, newLayout alloc.Layout, region CopyRegion) (H, int, error)

	// Shrink moves an allocation to a smaller layout, preserving the first newLayout.Size bytes
	Shrink(handle H, oldLayout, newLayout alloc.Layout) (H, int, error)
	ShrinkZeroed(handle H, oldLayout, newLayout alloc.Layout) (H, int, error)
	ShrinkRegion(handle H, oldLayout, newLayout alloc.Layout, region CopyRegion) (H, int, error)
	ShrinkRegionZeroed(handle H, oldLayout, newLayout alloc.Layout, region CopyRegion) (H, int, error)

	// Epoch increases every time the storage may have moved memory or invalidated handles
	Epoch() uint64
}

// Sliced is a Storage that remembers the usable size of every live allocation
type Sliced[H comparable] interface {
	Storage[H]

	ResolveSize(handle H) int
	ResolveSliced(handle H) (unsafe.Pointer, int)
}

// AddressStable is implemented by storages that can promise resolved addresses do not move until the
// allocation is grown, shrunk, or deallocated
type AddressStable interface {
	AddressStable() bool
}

// IsAddressStable reports whether storage promises stable addresses
func IsAddressStable(storage any) bool {
	stable, ok := storage.(AddressStable)
	return ok && stable.AddressStable()
}
