package storage_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/stowage/alloc"
	"github.com/vkngwrapper/stowage/storage"
)

func bytesOf(ptr unsafe.Pointer, size int) []byte {
	return unsafe.Slice((*byte)(ptr), size)
}

func fillSequence(ptr unsafe.Pointer, size int) {
	data := bytesOf(ptr, size)
	for i := range data {
		data[i] = byte(i + 1)
	}
}

func fillValue(ptr unsafe.Pointer, size int, value byte) {
	data := bytesOf(ptr, size)
	for i := range data {
		data[i] = value
	}
}

func requireZero(t *testing.T, ptr unsafe.Pointer, from, to int) {
	t.Helper()
	data := bytesOf(ptr, to)
	for i := from; i < to; i++ {
		require.Zerof(t, data[i], "byte %d is not zero", i)
	}
}

func requireSequence(t *testing.T, ptr unsafe.Pointer, offset, size, firstValue int) {
	t.Helper()
	data := bytesOf(ptr, offset+size)
	for i := 0; i < size; i++ {
		require.Equalf(t, byte(firstValue+i), data[offset+i], "byte %d", offset+i)
	}
}

func layout(size int) alloc.Layout {
	return alloc.Layout{Size: size, Alignment: 8}
}

func runContract[H comparable](t *testing.T, create func(t *testing.T) storage.Storage[H]) {
	t.Run("AllocateZeroed", func(t *testing.T) {
		s := create(t)

		handle, size, err := s.Allocate(layout(32))
		require.NoError(t, err)
		fillValue(s.ResolveMut(handle), size, 0xFF)
		s.Deallocate(handle, layout(32))

		handle, size, err = s.AllocateZeroed(layout(32))
		require.NoError(t, err)
		require.GreaterOrEqual(t, size, 32)
		requireZero(t, s.Resolve(handle), 0, size)
		s.Deallocate(handle, layout(32))
	})

	t.Run("GrowPreservesContents", func(t *testing.T) {
		s := create(t)

		handle, _, err := s.Allocate(layout(16))
		require.NoError(t, err)
		fillSequence(s.ResolveMut(handle), 16)

		handle, size, err := s.Grow(handle, layout(16), layout(48))
		require.NoError(t, err)
		require.GreaterOrEqual(t, size, 48)
		requireSequence(t, s.Resolve(handle), 0, 16, 1)

		s.Deallocate(handle, layout(48))
	})

	t.Run("GrowZeroed", func(t *testing.T) {
		s := create(t)

		handle, size, err := s.Allocate(layout(16))
		require.NoError(t, err)
		fillValue(s.ResolveMut(handle), size, 0xFF)
		fillSequence(s.ResolveMut(handle), 16)

		handle, size, err = s.GrowZeroed(handle, layout(16), layout(48))
		require.NoError(t, err)
		requireSequence(t, s.Resolve(handle), 0, 16, 1)
		requireZero(t, s.Resolve(handle), 16, size)

		s.Deallocate(handle, layout(48))
	})

	t.Run("GrowRegion", func(t *testing.T) {
		s := create(t)

		handle, _, err := s.Allocate(layout(32))
		require.NoError(t, err)
		fillSequence(s.ResolveMut(handle), 32)

		region := storage.NewCopyRegion(8, 24, 8)
		handle, size, err := s.GrowRegion(handle, layout(32), layout(64), region)
		require.NoError(t, err)
		require.GreaterOrEqual(t, size, 64)
		requireSequence(t, s.Resolve(handle), 24, 8, 9)

		s.Deallocate(handle, layout(64))
	})

	t.Run("GrowRegionZeroed", func(t *testing.T) {
		s := create(t)

		handle, size, err := s.Allocate(layout(32))
		require.NoError(t, err)
		fillValue(s.ResolveMut(handle), size, 0xFF)
		fillSequence(s.ResolveMut(handle), 32)

		region := storage.NewCopyRegion(8, 16, 8)
		handle, size, err = s.GrowRegionZeroed(handle, layout(32), layout(64), region)
		require.NoError(t, err)
		requireZero(t, s.Resolve(handle), 0, 16)
		requireSequence(t, s.Resolve(handle), 16, 8, 9)
		requireZero(t, s.Resolve(handle), 24, size)

		s.Deallocate(handle, layout(64))
	})

	t.Run("Shrink", func(t *testing.T) {
		s := create(t)

		handle, _, err := s.Allocate(layout(64))
		require.NoError(t, err)
		fillSequence(s.ResolveMut(handle), 64)

		handle, size, err := s.Shrink(handle, layout(64), layout(16))
		require.NoError(t, err)
		require.GreaterOrEqual(t, size, 16)
		requireSequence(t, s.Resolve(handle), 0, 16, 1)

		s.Deallocate(handle, layout(16))
	})

	t.Run("ShrinkZeroed", func(t *testing.T) {
		s := create(t)

		handle, _, err := s.Allocate(layout(64))
		require.NoError(t, err)
		fillSequence(s.ResolveMut(handle), 64)

		handle, size, err := s.ShrinkZeroed(handle, layout(64), layout(16))
		require.NoError(t, err)
		requireSequence(t, s.Resolve(handle), 0, 16, 1)
		requireZero(t, s.Resolve(handle), 16, size)

		s.Deallocate(handle, layout(16))
	})

	t.Run("ShrinkRegion", func(t *testing.T) {
		s := create(t)

		handle, _, err := s.Allocate(layout(64))
		require.NoError(t, err)
		fillSequence(s.ResolveMut(handle), 64)

		region := storage.NewCopyRegion(32, 0, 16)
		handle, _, err = s.ShrinkRegion(handle, layout(64), layout(16), region)
		require.NoError(t, err)
		requireSequence(t, s.Resolve(handle), 0, 16, 33)

		s.Deallocate(handle, layout(16))
	})

	t.Run("ShrinkRegionZeroed", func(t *testing.T) {
		s := create(t)

		handle, _, err := s.Allocate(layout(64))
		require.NoError(t, err)
		fillSequence(s.ResolveMut(handle), 64)

		region := storage.NewCopyRegion(40, 8, 8)
		handle, size, err := s.ShrinkRegionZeroed(handle, layout(64), layout(24), region)
		require.NoError(t, err)
		requireZero(t, s.Resolve(handle), 0, 8)
		requireSequence(t, s.Resolve(handle), 8, 8, 41)
		requireZero(t, s.Resolve(handle), 16, size)

		s.Deallocate(handle, layout(24))
	})

	t.Run("EpochAdvances", func(t *testing.T) {
		s := create(t)

		epoch := s.Epoch()
		handle, _, err := s.Allocate(layout(16))
		require.NoError(t, err)
		require.Greater(t, s.Epoch(), epoch)

		epoch = s.Epoch()
		_ = s.Resolve(handle)
		require.Equal(t, epoch, s.Epoch())

		handle, _, err = s.Grow(handle, layout(16), layout(32))
		require.NoError(t, err)
		require.Greater(t, s.Epoch(), epoch)

		epoch = s.Epoch()
		s.Deallocate(handle, layout(32))
		require.Greater(t, s.Epoch(), epoch)
	})

	t.Run("Dangling", func(t *testing.T) {
		s := create(t)

		_, err := s.Dangling(8)
		require.NoError(t, err)
	})
}

func TestAllocStorageContract(t *testing.T) {
	runContract[unsafe.Pointer](t, func(t *testing.T) storage.Storage[unsafe.Pointer] {
		return storage.NewAllocStorage(alloc.NewHeapAllocator(), storage.AllocStorageCreateOptions{})
	})
}

func TestAllocStorageOverBitmapContract(t *testing.T) {
	runContract[unsafe.Pointer](t, func(t *testing.T) storage.Storage[unsafe.Pointer] {
		bitmap, err := alloc.NewComposableBitmapAllocator(8, 64, alloc.BitmapAllocatorCreateOptions{})
		require.NoError(t, err)
		return storage.NewAllocStorage(bitmap, storage.AllocStorageCreateOptions{})
	})
}

func TestInlineStorageContract(t *testing.T) {
	runContract[storage.InlineHandle](t, func(t *testing.T) storage.Storage[storage.InlineHandle] {
		return storage.NewInlineStorage[uint64](16)
	})
}

func TestSizedWrapperContract(t *testing.T) {
	runContract[unsafe.Pointer](t, func(t *testing.T) storage.Storage[unsafe.Pointer] {
		return storage.NewSizedWrapper[unsafe.Pointer](
			storage.NewAllocStorage(alloc.NewHeapAllocator(), storage.AllocStorageCreateOptions{}),
		)
	})
}

func TestBlockStorageContract(t *testing.T) {
	testCases := map[string]storage.BlockStorageCreateOptions{
		"Default":        {},
		"SmallBlocks":    {BlockSize: 8, BlockCount: 64},
		"Relocating":     {BlockSize: 16, BlockCount: 32, Flags: storage.BlockStorageCreateNoInPlaceResize},
		"Unsynchronized": {Flags: storage.BlockStorageCreateExternallySynchronized},
	}

	for name, options := range testCases {
		t.Run(name, func(t *testing.T) {
			runContract[storage.BlockHandle](t, func(t *testing.T) storage.Storage[storage.BlockHandle] {
				s, err := storage.NewBlockStorage(options)
				require.NoError(t, err)
				return s
			})
		})
	}
}

func TestAllocStorageDangling(t *testing.T) {
	s := storage.NewAllocStorage(alloc.Default(), storage.AllocStorageCreateOptions{})

	for _, alignment := range []uint{1, 8, 64, storage.MaxDanglingAlignment} {
		ptr, err := s.Dangling(alignment)
		require.NoError(t, err)
		require.NotNil(t, ptr)
		require.Zero(t, uintptr(ptr)%uintptr(alignment))
		require.True(t, storage.IsDanglingPointer(ptr))
		require.False(t, alloc.Default().Owns(ptr, alloc.Layout{Size: 1, Alignment: alignment}))
	}

	_, err := s.Dangling(storage.MaxDanglingAlignment * 2)
	require.Error(t, err)

	_, err = s.Dangling(3)
	require.Error(t, err)
}

func TestAddressStability(t *testing.T) {
	allocStorage := storage.NewAllocStorage(alloc.Default(), storage.AllocStorageCreateOptions{})
	blockStorage, err := storage.NewBlockStorage(storage.BlockStorageCreateOptions{})
	require.NoError(t, err)

	require.True(t, storage.IsAddressStable(allocStorage))
	require.True(t, storage.IsAddressStable(storage.NewSizedWrapper[unsafe.Pointer](allocStorage)))
	require.False(t, storage.IsAddressStable(blockStorage))
	require.False(t, storage.IsAddressStable(storage.NewInlineStorage[byte](4)))
}
