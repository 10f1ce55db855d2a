package alloc_test

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/stowage/alloc"
	"github.com/vkngwrapper/stowage/memutils"
)

func TestHeapAlignment(t *testing.T) {
	heap := alloc.NewHeapAllocator()

	for _, alignment := range []uint{1, 2, 4, 8, 16, 64, 256, 4096} {
		layout := alloc.Layout{Size: 24, Alignment: alignment}
		ptr, size, err := heap.Alloc(layout)
		require.NoError(t, err)
		require.Equal(t, 24, size)
		require.Zero(t, uintptr(ptr)%uintptr(alignment))
		require.True(t, heap.Owns(ptr, layout))

		bytes := unsafe.Slice((*byte)(ptr), size)
		for i := range bytes {
			bytes[i] = byte(i)
		}

		heap.Dealloc(ptr, layout)
		require.False(t, heap.Owns(ptr, layout))
	}
}

func TestHeapZeroSize(t *testing.T) {
	heap := alloc.NewHeapAllocator()

	ptr, size, err := heap.Alloc(alloc.Layout{Size: 0, Alignment: 8})
	require.NoError(t, err)
	require.NotNil(t, ptr)
	require.Equal(t, 1, size)
	heap.Dealloc(ptr, alloc.Layout{Size: 0, Alignment: 8})
}

func TestHeapInvalidLayout(t *testing.T) {
	heap := alloc.NewHeapAllocator()

	_, _, err := heap.Alloc(alloc.Layout{Size: 16, Alignment: 3})
	require.ErrorIs(t, err, memutils.AllocError)

	_, _, err = heap.Alloc(alloc.Layout{Size: -1, Alignment: 8})
	require.ErrorIs(t, err, memutils.AllocError)
}

func TestHeapAllocationLimit(t *testing.T) {
	heap := alloc.NewHeapAllocator()

	testCases := []struct {
		name   string
		layout alloc.Layout
	}{
		{name: "AboveLimit", layout: alloc.Layout{Size: alloc.MaxHeapAllocation + 1, Alignment: 1}},
		{name: "PaddingPastLimit", layout: alloc.Layout{Size: alloc.MaxHeapAllocation, Alignment: 64}},
		{name: "Huge", layout: alloc.Layout{Size: math.MaxInt >> 4, Alignment: 8}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, _, err := heap.Alloc(testCase.layout)
			require.ErrorIs(t, err, memutils.AllocError)
		})
	}

	var stats memutils.Statistics
	heap.AddStatistics(&stats)
	require.Zero(t, stats.AllocationCount)
}

func TestHeapStatistics(t *testing.T) {
	heap := alloc.NewHeapAllocator()

	first, _, err := heap.Alloc(alloc.Layout{Size: 100, Alignment: 8})
	require.NoError(t, err)
	second, _, err := heap.Alloc(alloc.Layout{Size: 28, Alignment: 4})
	require.NoError(t, err)

	var stats memutils.Statistics
	heap.AddStatistics(&stats)
	require.Equal(t, memutils.Statistics{
		ArenaCount:      1,
		AllocationCount: 2,
		ArenaBytes:      128,
		AllocationBytes: 128,
	}, stats)

	heap.Dealloc(first, alloc.Layout{Size: 100, Alignment: 8})
	heap.Dealloc(second, alloc.Layout{Size: 28, Alignment: 4})

	stats.Clear()
	heap.AddStatistics(&stats)
	require.Equal(t, 0, stats.AllocationCount)
	require.Equal(t, 0, stats.AllocationBytes)
}

func TestHeapDeallocUnknownPanics(t *testing.T) {
	heap := alloc.NewHeapAllocator()

	var value uint64
	require.Panics(t, func() {
		heap.Dealloc(unsafe.Pointer(&value), alloc.LayoutOf[uint64]())
	})
}

func TestDefaultIsShared(t *testing.T) {
	require.Same(t, alloc.Default(), alloc.Default())
}
