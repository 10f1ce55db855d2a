package storage

import (
	"io"
	"unsafe"

	"github.com/vkngwrapper/stowage/alloc"
	"github.com/vkngwrapper/stowage/memutils"
	"golang.org/x/exp/slog"
)

// AllocStorageCreateOptions configures an AllocStorage
type AllocStorageCreateOptions struct {
	// Logger receives debug output. If nil, output is discarded.
	Logger *slog.Logger
}

// AllocStorage is a Storage whose handles are the addresses its Allocator returns. Since allocators
// never move memory, resolved addresses stay valid until the allocation is resized or freed.
//
// AllocStorage is as safe for concurrent use as its Allocator.
type AllocStorage struct {
	epochCounter

	logger    *slog.Logger
	allocator alloc.Allocator
}

var _ Storage[unsafe.Pointer] = &AllocStorage{}
var _ AddressStable = &AllocStorage{}

func NewAllocStorage(allocator alloc.Allocator, options AllocStorageCreateOptions) *AllocStorage {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard))
	}

	return &AllocStorage{
		logger:    logger,
		allocator: allocator,
	}
}

// Allocator returns the allocator this storage draws from
func (s *AllocStorage) Allocator() alloc.Allocator {
	return s.allocator
}

func (s *AllocStorage) AddressStable() bool {
	return true
}

func (s *AllocStorage) Dangling(alignment uint) (unsafe.Pointer, error) {
	return DanglingPointer(alignment)
}

func (s *AllocStorage) Resolve(handle unsafe.Pointer) unsafe.Pointer {
	return handle
}

func (s *AllocStorage) ResolveMut(handle unsafe.Pointer) unsafe.Pointer {
	return handle
}

func (s *AllocStorage) Allocate(layout alloc.Layout) (unsafe.Pointer, int, error) {
	s.logger.Debug("AllocStorage::Allocate")

	s.bump()
	return s.allocator.Alloc(layout)
}

func (s *AllocStorage) AllocateZeroed(layout alloc.Layout) (unsafe.Pointer, int, error) {
	return DefaultAllocateZeroed[unsafe.Pointer](s, layout)
}

func (s *AllocStorage) Deallocate(handle unsafe.Pointer, layout alloc.Layout) {
	s.logger.Debug("AllocStorage::Deallocate")

	memutils.DebugAssert(!IsDanglingPointer(handle), "attempted to deallocate a dangling handle")
	s.bump()
	s.allocator.Dealloc(handle, layout)
}

func (s *AllocStorage) Grow(handle unsafe.Pointer, oldLayout, newLayout alloc.Layout) (unsafe.Pointer, int, error) {
	s.logger.Debug("AllocStorage::Grow")
	memutils.DebugAssert(newLayout.Size >= oldLayout.Size, "grow must not reduce the allocation size")

	return DefaultGrow[unsafe.Pointer](s, handle, oldLayout, newLayout)
}

func (s *AllocStorage) GrowZeroed(handle unsafe.Pointer, oldLayout, newLayout alloc.Layout) (unsafe.Pointer, int, error) {
	return DefaultGrowZeroed[unsafe.Pointer](s, handle, oldLayout, newLayout)
}

func (s *AllocStorage) GrowRegion(handle unsafe.Pointer, oldLayout, newLayout alloc.Layout, region CopyRegion) (unsafe.Pointer, int, error) {
	s.logger.Debug("AllocStorage::GrowRegion")
	memutils.DebugAssert(newLayout.Size >= oldLayout.Size, "grow must not reduce the allocation size")

	return DefaultRelocate[unsafe.Pointer](s, handle, oldLayout, newLayout, region)
}

func (s *AllocStorage) GrowRegionZeroed(handle unsafe.Pointer, oldLayout, newLayout alloc.Layout, region CopyRegion) (unsafe.Pointer, int, error) {
	return DefaultGrowRegionZeroed[unsafe.Pointer](s, handle, oldLayout, newLayout, region)
}

func (s *AllocStorage) Shrink(handle unsafe.Pointer, oldLayout, newLayout alloc.Layout) (unsafe.Pointer, int, error) {
	s.logger.Debug("AllocStorage::Shrink")
	memutils.DebugAssert(newLayout.Size <= oldLayout.Size, "shrink must not increase the allocation size")

	return DefaultShrink[unsafe.Pointer](s, handle, oldLayout, newLayout)
}

func (s *AllocStorage) ShrinkZeroed(handle unsafe.Pointer, oldLayout, newLayout alloc.Layout) (unsafe.Pointer, int, error) {
	return DefaultShrinkZeroed[unsafe.Pointer](s, handle, oldLayout, newLayout)
}

func (s *AllocStorage) ShrinkRegion(handle unsafe.Pointer, oldLayout, newLayout alloc.Layout, region CopyRegion) (unsafe.Pointer, int, error) {
	s.logger.Debug("AllocStorage::ShrinkRegion")
	memutils.DebugAssert(newLayout.Size <= oldLayout.Size, "shrink must not increase the allocation size")

	return DefaultRelocate[unsafe.Pointer](s, handle, oldLayout, newLayout, region)
}

func (s *AllocStorage) ShrinkRegionZeroed(handle unsafe.Pointer, oldLayout, newLayout alloc.Layout, region CopyRegion) (unsafe.Pointer, int, error) {
	return DefaultShrinkRegionZeroed[unsafe.Pointer](s, handle, oldLayout, newLayout, region)
}

// AddStatistics forwards to the underlying allocator, if it can report statistics
func (s *AllocStorage) AddStatistics(stats *memutils.Statistics) {
	source, ok := s.allocator.(memutils.StatisticsSource)
	if ok {
		source.AddStatistics(stats)
	}
}
