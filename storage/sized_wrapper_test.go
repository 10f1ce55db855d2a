package storage_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/stowage/alloc"
	"github.com/vkngwrapper/stowage/storage"
)

func TestSizedWrapperTracksSize(t *testing.T) {
	bitmap, err := alloc.NewComposableBitmapAllocator(16, 32, alloc.BitmapAllocatorCreateOptions{})
	require.NoError(t, err)

	inner := storage.NewAllocStorage(bitmap, storage.AllocStorageCreateOptions{})
	s := storage.NewSizedWrapper[unsafe.Pointer](inner)
	require.Same(t, inner, s.Unwrap())

	handle, size, err := s.Allocate(alloc.Layout{Size: 20, Alignment: 8})
	require.NoError(t, err)
	require.Equal(t, 32, size)
	require.Equal(t, 32, s.ResolveSize(handle))

	handle, size, err = s.Grow(handle, alloc.Layout{Size: 20, Alignment: 8}, alloc.Layout{Size: 40, Alignment: 8})
	require.NoError(t, err)
	require.Equal(t, 48, size)

	ptr, size := s.ResolveSliced(handle)
	require.Equal(t, handle, ptr)
	require.Equal(t, 48, size)

	// A failed resize leaves the recorded size alone
	_, _, err = s.Grow(handle, alloc.Layout{Size: 40, Alignment: 8}, alloc.Layout{Size: 4096, Alignment: 8})
	require.Error(t, err)
	require.Equal(t, 48, s.ResolveSize(handle))

	s.Deallocate(handle, alloc.Layout{Size: 40, Alignment: 8})
	require.Equal(t, 0, s.ResolveSize(handle))
	require.NoError(t, bitmap.Release())
}
