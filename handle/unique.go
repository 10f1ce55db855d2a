package handle

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/stowage/storage"
)

// noCopy lets go vet's copylocks check flag code that copies a unique handle by value
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type consumption struct {
	noCopy   noCopy
	consumed bool
}

func (c *consumption) check(op string) {
	if c.consumed {
		panic(errors.Wrapf(ConsumedHandleError, "%s", op))
	}
}

func (c *consumption) consume(op string) {
	c.check(op)
	c.consumed = true
}

// Unique is a TypedSingle with a single owner. It is only handled by pointer. Deallocate and
// IntoTypedSingle consume it, and any later use panics with ConsumedHandleError.
type Unique[T any, H comparable] struct {
	consumption
	inner TypedSingle[T, H]
}

func newUnique[T any, H comparable](inner TypedSingle[T, H]) *Unique[T, H] {
	return &Unique[T, H]{inner: inner}
}

func TryNewUnique[T any, H comparable](value T, s storage.Storage[H]) (*Unique[T, H], error) {
	inner, err := TryNew[T, H](value, s)
	if err != nil {
		return nil, err
	}
	return newUnique(inner), nil
}

func NewUnique[T any, H comparable](value T, s storage.Storage[H]) *Unique[T, H] {
	return newUnique(New[T, H](value, s))
}

func TryAllocateUnique[T any, H comparable](s storage.Storage[H]) (*Unique[T, H], error) {
	inner, err := TryAllocate[T, H](s)
	if err != nil {
		return nil, err
	}
	return newUnique(inner), nil
}

func AllocateUnique[T any, H comparable](s storage.Storage[H]) *Unique[T, H] {
	return newUnique(Allocate[T, H](s))
}

func TryAllocateZeroedUnique[T any, H comparable](s storage.Storage[H]) (*Unique[T, H], error) {
	inner, err := TryAllocateZeroed[T, H](s)
	if err != nil {
		return nil, err
	}
	return newUnique(inner), nil
}

func AllocateZeroedUnique[T any, H comparable](s storage.Storage[H]) *Unique[T, H] {
	return newUnique(AllocateZeroed[T, H](s))
}

// UniqueFromTypedSingle takes ownership of h. No other copy of h may be used afterward.
func UniqueFromTypedSingle[T any, H comparable](h TypedSingle[T, H]) *Unique[T, H] {
	return newUnique(h)
}

// IntoTypedSingle gives up ownership and returns the plain handle
func (u *Unique[T, H]) IntoTypedSingle() TypedSingle[T, H] {
	u.consume("Unique::IntoTypedSingle")
	return u.inner
}

func (u *Unique[T, H]) Deallocate(s storage.Storage[H]) {
	u.consume("Unique::Deallocate")
	u.inner.Deallocate(s)
}

func (u *Unique[T, H]) ResolveRaw(s storage.Storage[H]) unsafe.Pointer {
	u.check("Unique::ResolveRaw")
	return u.inner.ResolveRaw(s)
}

func (u *Unique[T, H]) ResolveRawMut(s storage.Storage[H]) unsafe.Pointer {
	u.check("Unique::ResolveRawMut")
	return u.inner.ResolveRawMut(s)
}

func (u *Unique[T, H]) Resolve(s storage.Storage[H]) *T {
	u.check("Unique::Resolve")
	return u.inner.Resolve(s)
}

func (u *Unique[T, H]) ResolveMut(s storage.Storage[H]) *T {
	u.check("Unique::ResolveMut")
	return u.inner.ResolveMut(s)
}

func (u *Unique[T, H]) Ref(s storage.Storage[H]) Ref[*T] {
	u.check("Unique::Ref")
	return u.inner.Ref(s)
}

// UniqueSlice is a TypedSlice with a single owner. Grow, Shrink and their variants consume the receiver
// and return its replacement. When a Try form fails, the receiver is left unconsumed.
type UniqueSlice[T any, H comparable] struct {
	consumption
	inner TypedSlice[T, H]
}

func newUniqueSlice[T any, H comparable](inner TypedSlice[T, H]) *UniqueSlice[T, H] {
	return &UniqueSlice[T, H]{inner: inner}
}

func TryAllocateUniqueSlice[T any, H comparable](s storage.Storage[H], count int) (*UniqueSlice[T, H], error) {
	inner, err := TryAllocateSlice[T, H](s, count)
	if err != nil {
		return nil, err
	}
	return newUniqueSlice(inner), nil
}

func AllocateUniqueSlice[T any, H comparable](s storage.Storage[H], count int) *UniqueSlice[T, H] {
	return newUniqueSlice(AllocateSlice[T, H](s, count))
}

func TryAllocateZeroedUniqueSlice[T any, H comparable](s storage.Storage[H], count int) (*UniqueSlice[T, H], error) {
	inner, err := TryAllocateZeroedSlice[T, H](s, count)
	if err != nil {
		return nil, err
	}
	return newUniqueSlice(inner), nil
}

func AllocateZeroedUniqueSlice[T any, H comparable](s storage.Storage[H], count int) *UniqueSlice[T, H] {
	return newUniqueSlice(AllocateZeroedSlice[T, H](s, count))
}

func UniqueFromTypedSlice[T any, H comparable](h TypedSlice[T, H]) *UniqueSlice[T, H] {
	return newUniqueSlice(h)
}

func (u *UniqueSlice[T, H]) IntoTypedSlice() TypedSlice[T, H] {
	u.consume("UniqueSlice::IntoTypedSlice")
	return u.inner
}

func (u *UniqueSlice[T, H]) Len() int {
	u.check("UniqueSlice::Len")
	return u.inner.Len()
}

func (u *UniqueSlice[T, H]) IsEmpty() bool {
	u.check("UniqueSlice::IsEmpty")
	return u.inner.IsEmpty()
}

func (u *UniqueSlice[T, H]) Deallocate(s storage.Storage[H]) {
	u.consume("UniqueSlice::Deallocate")
	u.inner.Deallocate(s)
}

func (u *UniqueSlice[T, H]) Resolve(s storage.Storage[H]) []T {
	u.check("UniqueSlice::Resolve")
	return u.inner.Resolve(s)
}

func (u *UniqueSlice[T, H]) ResolveMut(s storage.Storage[H]) []T {
	u.check("UniqueSlice::ResolveMut")
	return u.inner.ResolveMut(s)
}

func (u *UniqueSlice[T, H]) Ref(s storage.Storage[H]) Ref[[]T] {
	u.check("UniqueSlice::Ref")
	return u.inner.Ref(s)
}

// transform runs a resize on a copy of the inner handle. The receiver is consumed only if it succeeds.
func (u *UniqueSlice[T, H]) transform(op string, resize func(inner *TypedSlice[T, H]) error) (*UniqueSlice[T, H], error) {
	u.check(op)

	inner := u.inner
	err := resize(&inner)
	if err != nil {
		return nil, err
	}

	u.consumed = true
	return newUniqueSlice(inner), nil
}

// mustTransform is transform for the short forms, whose resize aborts instead of failing
func (u *UniqueSlice[T, H]) mustTransform(op string, resize func(inner *TypedSlice[T, H])) *UniqueSlice[T, H] {
	next, _ := u.transform(op, func(inner *TypedSlice[T, H]) error {
		resize(inner)
		return nil
	})
	return next
}

func (u *UniqueSlice[T, H]) TryGrow(s storage.Storage[H], newLen int) (*UniqueSlice[T, H], error) {
	return u.transform("UniqueSlice::TryGrow", func(inner *TypedSlice[T, H]) error {
		return inner.TryGrow(s, newLen)
	})
}

func (u *UniqueSlice[T, H]) Grow(s storage.Storage[H], newLen int) *UniqueSlice[T, H] {
	return u.mustTransform("UniqueSlice::Grow", func(inner *TypedSlice[T, H]) {
		inner.Grow(s, newLen)
	})
}

func (u *UniqueSlice[T, H]) TryGrowZeroed(s storage.Storage[H], newLen int) (*UniqueSlice[T, H], error) {
	return u.transform("UniqueSlice::TryGrowZeroed", func(inner *TypedSlice[T, H]) error {
		return inner.TryGrowZeroed(s, newLen)
	})
}

func (u *UniqueSlice[T, H]) GrowZeroed(s storage.Storage[H], newLen int) *UniqueSlice[T, H] {
	return u.mustTransform("UniqueSlice::GrowZeroed", func(inner *TypedSlice[T, H]) {
		inner.GrowZeroed(s, newLen)
	})
}

func (u *UniqueSlice[T, H]) TryGrowRegion(s storage.Storage[H], newLen int, region storage.CopyRegion) (*UniqueSlice[T, H], error) {
	return u.transform("UniqueSlice::TryGrowRegion", func(inner *TypedSlice[T, H]) error {
		return inner.TryGrowRegion(s, newLen, region)
	})
}

func (u *UniqueSlice[T, H]) GrowRegion(s storage.Storage[H], newLen int, region storage.CopyRegion) *UniqueSlice[T, H] {
	return u.mustTransform("UniqueSlice::GrowRegion", func(inner *TypedSlice[T, H]) {
		inner.GrowRegion(s, newLen, region)
	})
}

func (u *UniqueSlice[T, H]) TryGrowRegionZeroed(s storage.Storage[H], newLen int, region storage.CopyRegion) (*UniqueSlice[T, H], error) {
	return u.transform("UniqueSlice::TryGrowRegionZeroed", func(inner *TypedSlice[T, H]) error {
		return inner.TryGrowRegionZeroed(s, newLen, region)
	})
}

func (u *UniqueSlice[T, H]) GrowRegionZeroed(s storage.Storage[H], newLen int, region storage.CopyRegion) *UniqueSlice[T, H] {
	return u.mustTransform("UniqueSlice::GrowRegionZeroed", func(inner *TypedSlice[T, H]) {
		inner.GrowRegionZeroed(s, newLen, region)
	})
}

func (u *UniqueSlice[T, H]) TryShrink(s storage.Storage[H], newLen int) (*UniqueSlice[T, H], error) {
	return u.transform("UniqueSlice::TryShrink", func(inner *TypedSlice[T, H]) error {
		return inner.TryShrink(s, newLen)
	})
}

func (u *UniqueSlice[T, H]) Shrink(s storage.Storage[H], newLen int) *UniqueSlice[T, H] {
	return u.mustTransform("UniqueSlice::Shrink", func(inner *TypedSlice[T, H]) {
		inner.Shrink(s, newLen)
	})
}

func (u *UniqueSlice[T, H]) TryShrinkZeroed(s storage.Storage[H], newLen int) (*UniqueSlice[T, H], error) {
	return u.transform("UniqueSlice::TryShrinkZeroed", func(inner *TypedSlice[T, H]) error {
		return inner.TryShrinkZeroed(s, newLen)
	})
}

func (u *UniqueSlice[T, H]) ShrinkZeroed(s storage.Storage[H], newLen int) *UniqueSlice[T, H] {
	return u.mustTransform("UniqueSlice::ShrinkZeroed", func(inner *TypedSlice[T, H]) {
		inner.ShrinkZeroed(s, newLen)
	})
}

func (u *UniqueSlice[T, H]) TryShrinkRegion(s storage.Storage[H], newLen int, region storage.CopyRegion) (*UniqueSlice[T, H], error) {
	return u.transform("UniqueSlice::TryShrinkRegion", func(inner *TypedSlice[T, H]) error {
		return inner.TryShrinkRegion(s, newLen, region)
	})
}

func (u *UniqueSlice[T, H]) ShrinkRegion(s storage.Storage[H], newLen int, region storage.CopyRegion) *UniqueSlice[T, H] {
	return u.mustTransform("UniqueSlice::ShrinkRegion", func(inner *TypedSlice[T, H]) {
		inner.ShrinkRegion(s, newLen, region)
	})
}

func (u *UniqueSlice[T, H]) TryShrinkRegionZeroed(s storage.Storage[H], newLen int, region storage.CopyRegion) (*UniqueSlice[T, H], error) {
	return u.transform("UniqueSlice::TryShrinkRegionZeroed", func(inner *TypedSlice[T, H]) error {
		return inner.TryShrinkRegionZeroed(s, newLen, region)
	})
}

func (u *UniqueSlice[T, H]) ShrinkRegionZeroed(s storage.Storage[H], newLen int, region storage.CopyRegion) *UniqueSlice[T, H] {
	return u.mustTransform("UniqueSlice::ShrinkRegionZeroed", func(inner *TypedSlice[T, H]) {
		inner.ShrinkRegionZeroed(s, newLen, region)
	})
}
