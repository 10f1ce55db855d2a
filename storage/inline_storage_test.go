package storage_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/stowage/alloc"
	"github.com/vkngwrapper/stowage/memutils"
	"github.com/vkngwrapper/stowage/storage"
)

func TestInlineStorageReportsCapacity(t *testing.T) {
	s := storage.NewInlineStorage[uint32](8)

	handle, size, err := s.Allocate(alloc.Layout{Size: 4, Alignment: 4})
	require.NoError(t, err)
	require.Equal(t, 32, size)
	require.Equal(t, 32, s.ResolveSize(handle))

	ptr, size := s.ResolveSliced(handle)
	require.Equal(t, s.Resolve(handle), ptr)
	require.Equal(t, 32, size)

	s.Deallocate(handle, alloc.Layout{Size: 4, Alignment: 4})
}

func TestInlineStorageLimits(t *testing.T) {
	s := storage.NewInlineStorage[uint32](8)

	_, _, err := s.Allocate(alloc.Layout{Size: 33, Alignment: 4})
	require.ErrorIs(t, err, memutils.AllocError)

	_, _, err = s.Allocate(alloc.Layout{Size: 8, Alignment: 8})
	require.ErrorIs(t, err, memutils.AllocError)

	handle, _, err := s.Allocate(alloc.Layout{Size: 16, Alignment: 4})
	require.NoError(t, err)

	_, _, err = s.Allocate(alloc.Layout{Size: 16, Alignment: 4})
	require.ErrorIs(t, err, memutils.AllocError)

	_, _, err = s.Grow(handle, alloc.Layout{Size: 16, Alignment: 4}, alloc.Layout{Size: 64, Alignment: 4})
	require.ErrorIs(t, err, memutils.AllocError)

	handle, size, err := s.Grow(handle, alloc.Layout{Size: 16, Alignment: 4}, alloc.Layout{Size: 32, Alignment: 4})
	require.NoError(t, err)
	require.Equal(t, 32, size)

	s.Deallocate(handle, alloc.Layout{Size: 32, Alignment: 4})
}

func TestInlineStorageRegionMovesInPlace(t *testing.T) {
	s := storage.NewInlineStorage[byte](16)

	handle, _, err := s.Allocate(alloc.Layout{Size: 8, Alignment: 1})
	require.NoError(t, err)
	fillSequence(s.ResolveMut(handle), 8)
	before := s.Resolve(handle)

	// Overlapping move: [0, 8) to [4, 12)
	handle, _, err = s.GrowRegion(handle, alloc.Layout{Size: 8, Alignment: 1}, alloc.Layout{Size: 12, Alignment: 1}, storage.NewCopyRegion(0, 4, 8))
	require.NoError(t, err)
	require.Equal(t, before, s.Resolve(handle))
	requireSequence(t, s.Resolve(handle), 4, 8, 1)
}
