// Package handle provides typed views over the opaque handles a storage issues. A handle never holds
// an address: it is resolved against the storage that issued it each time the data is needed, and the
// result is only good until the next call into that storage.
//
// Every allocating operation comes in two forms. The Try form returns memutils.AllocError on failure.
// The short form calls alloc.HandleAllocError, which does not return.
//
// Values placed in storage must not contain Go pointers. Storage memory is not scanned by the garbage
// collector.
package handle

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/stowage/alloc"
	"github.com/vkngwrapper/stowage/storage"
)

// TypedSingle is a handle to storage sized to hold one T. It carries nothing beyond the storage's own
// handle.
type TypedSingle[T any, H comparable] struct {
	handle H
}

// TryDangling returns a handle that refers to no memory. It may be copied and held but its contents
// must never be read.
func TryDangling[T any, H comparable](s storage.Base[H]) (TypedSingle[T, H], error) {
	handle, err := s.Dangling(alloc.LayoutOf[T]().Alignment)
	if err != nil {
		return TypedSingle[T, H]{}, err
	}

	return TypedSingle[T, H]{handle: handle}, nil
}

func Dangling[T any, H comparable](s storage.Base[H]) TypedSingle[T, H] {
	h, err := TryDangling[T, H](s)
	if err != nil {
		alloc.HandleAllocError(alloc.LayoutOf[T]())
	}
	return h
}

func tryAllocate[T any, H comparable](s storage.Storage[H], zeroed bool) (TypedSingle[T, H], error) {
	if zeroSized[T]() {
		return TryDangling[T, H](s)
	}

	var handle H
	var err error
	if zeroed {
		handle, _, err = s.AllocateZeroed(alloc.LayoutOf[T]())
	} else {
		handle, _, err = s.Allocate(alloc.LayoutOf[T]())
	}
	if err != nil {
		return TypedSingle[T, H]{}, err
	}

	return TypedSingle[T, H]{handle: handle}, nil
}

// TryAllocate allocates room for one T and leaves it uninitialized
func TryAllocate[T any, H comparable](s storage.Storage[H]) (TypedSingle[T, H], error) {
	return tryAllocate[T, H](s, false)
}

func Allocate[T any, H comparable](s storage.Storage[H]) TypedSingle[T, H] {
	h, err := TryAllocate[T, H](s)
	if err != nil {
		alloc.HandleAllocError(alloc.LayoutOf[T]())
	}
	return h
}

// TryAllocateZeroed allocates room for one T with every byte set to zero
func TryAllocateZeroed[T any, H comparable](s storage.Storage[H]) (TypedSingle[T, H], error) {
	return tryAllocate[T, H](s, true)
}

func AllocateZeroed[T any, H comparable](s storage.Storage[H]) TypedSingle[T, H] {
	h, err := TryAllocateZeroed[T, H](s)
	if err != nil {
		alloc.HandleAllocError(alloc.LayoutOf[T]())
	}
	return h
}

// TryNew allocates room for one T and moves value into it
func TryNew[T any, H comparable](value T, s storage.Storage[H]) (TypedSingle[T, H], error) {
	h, err := TryAllocate[T, H](s)
	if err != nil {
		return h, err
	}

	if !zeroSized[T]() {
		*(*T)(s.ResolveMut(h.handle)) = value
	}
	return h, nil
}

func New[T any, H comparable](value T, s storage.Storage[H]) TypedSingle[T, H] {
	h, err := TryNew[T, H](value, s)
	if err != nil {
		alloc.HandleAllocError(alloc.LayoutOf[T]())
	}
	return h
}

// FromRawParts wraps a storage handle that was allocated with the layout of T
func FromRawParts[T any, H comparable](handle H) TypedSingle[T, H] {
	return TypedSingle[T, H]{handle: handle}
}

func (h TypedSingle[T, H]) ToRawParts() H {
	return h.handle
}

// Deallocate frees the memory behind h. Every copy of h is invalid afterward.
func (h TypedSingle[T, H]) Deallocate(s storage.Storage[H]) {
	if zeroSized[T]() {
		return
	}

	s.Deallocate(h.handle, alloc.LayoutOf[T]())
}

func (h TypedSingle[T, H]) ResolveRaw(s storage.Storage[H]) unsafe.Pointer {
	if zeroSized[T]() {
		return zeroSizedPointer[T]()
	}
	return s.Resolve(h.handle)
}

func (h TypedSingle[T, H]) ResolveRawMut(s storage.Storage[H]) unsafe.Pointer {
	if zeroSized[T]() {
		return zeroSizedPointer[T]()
	}
	return s.ResolveMut(h.handle)
}

// Resolve returns the address of the T behind h. It is only good until the next call into s.
func (h TypedSingle[T, H]) Resolve(s storage.Storage[H]) *T {
	return (*T)(h.ResolveRaw(s))
}

func (h TypedSingle[T, H]) ResolveMut(s storage.Storage[H]) *T {
	return (*T)(h.ResolveRawMut(s))
}

// Ref resolves h and tags the result with the storage's epoch, so that reading it after the storage
// has been mutated panics
func (h TypedSingle[T, H]) Ref(s storage.Storage[H]) Ref[*T] {
	return NewRef(h.ResolveMut(s), s)
}

// Coerce views the allocation behind h as a U. Storage is not touched. U must have the same size as T
// and no stricter alignment, so the layout used to deallocate is unchanged.
func Coerce[U, T any, H comparable](h TypedSingle[T, H]) (TypedSingle[U, H], error) {
	from := alloc.LayoutOf[T]()
	to := alloc.LayoutOf[U]()

	if from.Size != to.Size {
		return TypedSingle[U, H]{}, errors.Newf("cannot coerce %T to %T: size %d does not match %d", *new(T), *new(U), from.Size, to.Size)
	}
	if to.Alignment > from.Alignment {
		return TypedSingle[U, H]{}, errors.Newf("cannot coerce %T to %T: alignment %d exceeds %d", *new(T), *new(U), to.Alignment, from.Alignment)
	}

	return TypedSingle[U, H]{handle: h.handle}, nil
}
