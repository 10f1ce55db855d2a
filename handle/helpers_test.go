package handle_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/stowage/alloc"
	"github.com/vkngwrapper/stowage/storage"
)

type point struct {
	X, Y int32
}

func newHeapStorage() *storage.AllocStorage {
	return storage.NewAllocStorage(alloc.NewHeapAllocator(), storage.AllocStorageCreateOptions{})
}

func newBlockStorage(t *testing.T, blockSize, blockCount int) *storage.BlockStorage {
	s, err := storage.NewBlockStorage(storage.BlockStorageCreateOptions{
		BlockSize:  blockSize,
		BlockCount: blockCount,
	})
	require.NoError(t, err)
	return s
}

func requirePanicsWithTarget(t *testing.T, target error, fn func()) {
	t.Helper()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered, "expected a panic")

		err, ok := recovered.(error)
		require.Truef(t, ok, "panic value %v is not an error", recovered)
		require.Truef(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()

	fn()
}

// requireAborts runs fn and verifies that it went through alloc.HandleAllocError with the expected layout
func requireAborts(t *testing.T, expected alloc.Layout, fn func()) {
	t.Helper()

	var reported []alloc.Layout
	previous := alloc.SetAllocErrorHook(func(layout alloc.Layout) {
		reported = append(reported, layout)
	})
	defer alloc.SetAllocErrorHook(previous)

	func() {
		defer func() {
			recovered := recover()
			require.NotNil(t, recovered, "expected an allocation failure")

			failure, ok := recovered.(*alloc.FailureError)
			require.Truef(t, ok, "panic value %v is not an allocation failure", recovered)
			require.Equal(t, expected, failure.Layout)
		}()

		fn()
	}()

	require.Equal(t, []alloc.Layout{expected}, reported)
}

func sequence(values []uint32, first uint32) {
	for i := range values {
		values[i] = first + uint32(i)
	}
}
