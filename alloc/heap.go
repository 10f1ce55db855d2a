package alloc

import (
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/stowage/internal/utils"
	"github.com/vkngwrapper/stowage/memutils"
)

// MaxHeapAllocation is the largest padded size HeapAllocator will request from the Go runtime.
// Larger requests fail with memutils.AllocError instead of exhausting the process.
const MaxHeapAllocation = min(math.MaxInt>>1, 1<<40)

type heapBuffer struct {
	backing []byte
	size    int
}

// HeapAllocator serves allocations from the Go heap. Each allocation is its own over-sized []byte,
// sliced to the requested alignment and kept alive in a table until Dealloc releases it to the
// garbage collector.
type HeapAllocator struct {
	mutex utils.OptionalLock
	live  *swiss.Map[uintptr, heapBuffer]
	id    atomic.Uint32

	allocationBytes int
}

var _ StatisticsAllocator = &HeapAllocator{}

var defaultHeap = NewHeapAllocator()

// Default returns the process-wide HeapAllocator that composable allocators draw their arenas from
func Default() *HeapAllocator {
	return defaultHeap
}

func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{
		mutex: utils.OptionalLock{Enabled: true},
		live:  swiss.NewMap[uintptr, heapBuffer](42),
	}
}

func (a *HeapAllocator) Alloc(layout Layout) (unsafe.Pointer, int, error) {
	err := layout.Validate()
	if err != nil {
		return nil, 0, errors.Wrapf(memutils.AllocError, "invalid layout: %v", err)
	}

	size := layout.Size
	if size == 0 {
		size = 1
	}

	padding := int(layout.Alignment) - 1
	if size > MaxHeapAllocation-padding {
		return nil, 0, errors.Wrapf(memutils.AllocError, "%s exceeds the heap allocation limit of %d bytes", layout, MaxHeapAllocation)
	}

	backing := make([]byte, size+padding)
	base := unsafe.Pointer(unsafe.SliceData(backing))
	addr := uintptr(base)
	shift := memutils.AlignUp(int(addr), layout.Alignment) - int(addr)
	ptr := unsafe.Add(base, shift)

	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.live.Put(uintptr(ptr), heapBuffer{backing: backing, size: size})
	a.allocationBytes += size

	return ptr, size, nil
}

func (a *HeapAllocator) Dealloc(ptr unsafe.Pointer, layout Layout) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	buffer, ok := a.live.Get(uintptr(ptr))
	if !ok {
		panic("attempted to free memory that was not allocated by this heap allocator")
	}
	memutils.DebugAssert(layout.Size <= buffer.size, "dealloc layout is larger than the allocation")

	a.live.Delete(uintptr(ptr))
	a.allocationBytes -= buffer.size
}

func (a *HeapAllocator) Owns(ptr unsafe.Pointer, layout Layout) bool {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	_, ok := a.live.Get(uintptr(ptr))
	return ok
}

func (a *HeapAllocator) SetAllocID(id uint16) {
	a.id.Store(uint32(id))
}

func (a *HeapAllocator) AllocID() uint16 {
	return uint16(a.id.Load())
}

// AddStatistics reports the heap as a single arena exactly as large as its live allocations
func (a *HeapAllocator) AddStatistics(stats *memutils.Statistics) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	stats.ArenaCount++
	stats.ArenaBytes += a.allocationBytes
	stats.AllocationCount += a.live.Count()
	stats.AllocationBytes += a.allocationBytes
}
