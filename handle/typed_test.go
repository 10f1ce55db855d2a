package handle_test

import (
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/stowage/alloc"
	"github.com/vkngwrapper/stowage/handle"
	"github.com/vkngwrapper/stowage/memutils"
	"github.com/vkngwrapper/stowage/storage"
)

func roundTrip[H comparable](t *testing.T, s storage.Storage[H]) {
	h := handle.New[point, H](point{X: 3, Y: -7}, s)
	require.Equal(t, point{X: 3, Y: -7}, *h.Resolve(s))

	h.ResolveMut(s).Y = 11
	require.Equal(t, point{X: 3, Y: 11}, *h.Resolve(s))
	require.Equal(t, unsafe.Pointer(h.Resolve(s)), h.ResolveRaw(s))
	require.Equal(t, h.ResolveRaw(s), h.ResolveRawMut(s))

	copied := handle.FromRawParts[point, H](h.ToRawParts())
	require.Equal(t, point{X: 3, Y: 11}, *copied.Resolve(s))

	h.Deallocate(s)
}

func TestTypedSingleRoundTrip(t *testing.T) {
	t.Run("Heap", func(t *testing.T) {
		roundTrip[unsafe.Pointer](t, newHeapStorage())
	})

	t.Run("Bitmap", func(t *testing.T) {
		arena, err := alloc.NewComposableBitmapAllocator(8, 32, alloc.BitmapAllocatorCreateOptions{})
		require.NoError(t, err)

		s := storage.NewAllocStorage(arena, storage.AllocStorageCreateOptions{})
		roundTrip[unsafe.Pointer](t, s)
		require.True(t, arena.IsEmpty())
		require.NoError(t, arena.Release())
	})

	t.Run("Block", func(t *testing.T) {
		s := newBlockStorage(t, 16, 16)
		roundTrip[storage.BlockHandle](t, s)
		require.Equal(t, 0, s.Len())
		require.NoError(t, s.Release())
	})

	t.Run("Inline", func(t *testing.T) {
		roundTrip[storage.InlineHandle](t, storage.NewInlineStorage[point](1))
	})
}

func TestTypedSingleAllocateZeroed(t *testing.T) {
	s := newBlockStorage(t, 8, 16)

	dirty := handle.New[uint64, storage.BlockHandle](0xDEADBEEFDEADBEEF, s)
	dirty.Deallocate(s)

	h := handle.AllocateZeroed[uint64, storage.BlockHandle](s)
	require.Zero(t, *h.Resolve(s))

	h.Deallocate(s)
	require.NoError(t, s.Release())
}

func TestTypedSingleDangling(t *testing.T) {
	s := newHeapStorage()

	h := handle.Dangling[point, unsafe.Pointer](s)
	require.True(t, storage.IsDanglingPointer(h.ToRawParts()))
	require.Zero(t, uintptr(h.ToRawParts())%unsafe.Alignof(point{}))
}

func TestTypedSingleAllocationFailure(t *testing.T) {
	type large struct {
		Data [256]byte
	}

	s := newBlockStorage(t, 8, 16)

	_, err := handle.TryAllocate[large, storage.BlockHandle](s)
	require.True(t, errors.Is(err, memutils.AllocError))

	_, err = handle.TryNew[large, storage.BlockHandle](large{}, s)
	require.True(t, errors.Is(err, memutils.AllocError))

	requireAborts(t, alloc.LayoutOf[large](), func() {
		handle.Allocate[large, storage.BlockHandle](s)
	})

	requireAborts(t, alloc.LayoutOf[large](), func() {
		handle.New[large, storage.BlockHandle](large{}, s)
	})

	require.Equal(t, 0, s.Len())
}

func TestCoerce(t *testing.T) {
	s := newHeapStorage()

	h := handle.New[uint64, unsafe.Pointer](0x0000000200000001, s)

	asWords, err := handle.Coerce[[2]uint32](h)
	require.NoError(t, err)
	require.Equal(t, h.ToRawParts(), asWords.ToRawParts())
	require.ElementsMatch(t, []uint32{1, 2}, asWords.Resolve(s)[:])

	asBytes, err := handle.Coerce[[8]byte](h)
	require.NoError(t, err)
	require.Len(t, *asBytes.Resolve(s), 8)

	_, err = handle.Coerce[[3]uint32](h)
	require.Error(t, err)

	bytesHandle := handle.New[[8]byte, unsafe.Pointer]([8]byte{}, s)
	_, err = handle.Coerce[uint64](bytesHandle)
	require.Error(t, err)

	asWords.Deallocate(s)
	bytesHandle.Deallocate(s)
}

func TestRefDetectsRelocation(t *testing.T) {
	s := newBlockStorage(t, 16, 16)

	first := handle.New[point, storage.BlockHandle](point{X: 1, Y: 1}, s)
	second := handle.New[point, storage.BlockHandle](point{X: 2, Y: 2}, s)
	first.Deallocate(s)

	ref := second.Ref(s)
	require.True(t, ref.Valid())
	require.Equal(t, point{X: 2, Y: 2}, *ref.Get())
	before := second.ResolveRaw(s)

	stats := s.Compact()
	require.Equal(t, 1, stats.AllocationsMoved)

	require.False(t, ref.Valid())
	requirePanicsWithTarget(t, handle.StaleReferenceError, func() {
		ref.Get()
	})

	// the handle survives compaction even though the address does not
	require.NotEqual(t, before, second.ResolveRaw(s))
	require.Equal(t, point{X: 2, Y: 2}, *second.Resolve(s))

	second.Deallocate(s)
	require.NoError(t, s.Release())
}

func TestRefZeroValue(t *testing.T) {
	var ref handle.Ref[*point]

	require.False(t, ref.Valid())
	requirePanicsWithTarget(t, handle.StaleReferenceError, func() {
		ref.Get()
	})
}
