package storage

import (
	"context"
	"io"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/stowage/alloc"
	"github.com/vkngwrapper/stowage/internal/utils"
	"github.com/vkngwrapper/stowage/memutils"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

const (
	defaultBlockSize  = 64
	defaultBlockCount = 1024
)

// BlockHandle identifies an allocation in a BlockStorage. 0 is the dangling handle.
type BlockHandle uint64

// DanglingBlockHandle never refers to an allocation
const DanglingBlockHandle BlockHandle = 0

// BlockStorageCreateOptions configures a BlockStorage. Zero values select defaults.
type BlockStorageCreateOptions struct {
	Flags BlockStorageCreateFlags
	// BlockSize is the allocation granularity in bytes. It must be a power of two. Default 64.
	BlockSize int
	// BlockCount is the number of blocks in the arena. Default 1024.
	BlockCount int
	// Parent provides the arena. Default alloc.Default().
	Parent alloc.Allocator
	// Logger receives debug and leak output. If nil, output is discarded.
	Logger *slog.Logger
}

type blockEntry struct {
	ptr    unsafe.Pointer
	layout alloc.Layout
	size   int
}

// CompactionStats reports the work done by BlockStorage.Compact
type CompactionStats struct {
	BytesMoved       int
	AllocationsMoved int
}

// BlockStorage is a relocatable Sliced storage over a BitmapAllocator arena. Handles are numbers
// looked up in a table, so the storage is free to move allocations: Compact slides every allocation
// toward the front of the arena. Handles survive compaction; resolved addresses do not.
//
// Unlike the raw BitmapAllocator, BlockStorage records the layout of every allocation, so Deallocate
// always releases exactly the blocks that were claimed.
type BlockStorage struct {
	epochCounter

	logger *slog.Logger
	mutex  utils.OptionalLock
	flags  BlockStorageCreateFlags

	arena      *alloc.BitmapAllocator
	entries    *swiss.Map[BlockHandle, blockEntry]
	nextHandle BlockHandle
}

var _ Sliced[BlockHandle] = &BlockStorage{}
var _ AddressStable = &BlockStorage{}

func NewBlockStorage(options BlockStorageCreateOptions) (*BlockStorage, error) {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard))
	}

	blockSize := options.BlockSize
	if blockSize == 0 {
		blockSize = defaultBlockSize
	}

	blockCount := options.BlockCount
	if blockCount == 0 {
		blockCount = defaultBlockCount
	}

	parent := options.Parent
	if parent == nil {
		parent = alloc.Default()
	}

	err := memutils.CheckPow2(blockSize, "BlockSize")
	if err != nil {
		return nil, err
	}

	if blockCount < 0 {
		return nil, errors.Newf("BlockCount must be positive, but was %d", blockCount)
	}

	arenaLayout, err := alloc.NewLayout(alloc.CalcNeededMemorySize(blockSize, blockCount), uint(max(blockSize, 8)))
	if err != nil {
		return nil, errors.Wrapf(err, "%d blocks of %d bytes cannot be addressed", blockCount, blockSize)
	}

	buffer, _, err := parent.Alloc(arenaLayout)
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate the block storage arena")
	}

	var bitmapFlags alloc.BitmapCreateFlags
	if options.Flags&BlockStorageCreateExternallySynchronized != 0 {
		bitmapFlags |= alloc.BitmapCreateExternallySynchronized
	}

	arena, err := alloc.NewBitmapAllocator(buffer, arenaLayout, blockSize, blockCount, alloc.BitmapAllocatorCreateOptions{
		Flags:  bitmapFlags,
		Logger: logger,
		Owner:  parent,
	})
	if err != nil {
		parent.Dealloc(buffer, arenaLayout)
		return nil, err
	}

	return &BlockStorage{
		logger: logger,
		mutex: utils.OptionalLock{
			Enabled: options.Flags&BlockStorageCreateExternallySynchronized == 0,
		},
		flags: options.Flags,

		arena:      arena,
		entries:    swiss.NewMap[BlockHandle, blockEntry](42),
		nextHandle: DanglingBlockHandle + 1,
	}, nil
}

// Arena returns the BitmapAllocator that backs this storage
func (s *BlockStorage) Arena() *alloc.BitmapAllocator {
	return s.arena
}

func (s *BlockStorage) AddressStable() bool {
	return false
}

// Len returns the number of live allocations
func (s *BlockStorage) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.entries.Count()
}

func (s *BlockStorage) Dangling(alignment uint) (BlockHandle, error) {
	err := checkDanglingAlignment(alignment)
	if err != nil {
		return DanglingBlockHandle, err
	}

	return DanglingBlockHandle, nil
}

func (s *BlockStorage) entry(handle BlockHandle) blockEntry {
	entry, ok := s.entries.Get(handle)
	if !ok {
		panic(errors.Newf("block storage handle %d is not live", handle))
	}
	return entry
}

func (s *BlockStorage) Resolve(handle BlockHandle) unsafe.Pointer {
	if handle == DanglingBlockHandle {
		return danglingBase
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.entry(handle).ptr
}

func (s *BlockStorage) ResolveMut(handle BlockHandle) unsafe.Pointer {
	return s.Resolve(handle)
}

func (s *BlockStorage) ResolveSize(handle BlockHandle) int {
	if handle == DanglingBlockHandle {
		return 0
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.entry(handle).size
}

func (s *BlockStorage) ResolveSliced(handle BlockHandle) (unsafe.Pointer, int) {
	if handle == DanglingBlockHandle {
		return danglingBase, 0
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry := s.entry(handle)
	return entry.ptr, entry.size
}

func (s *BlockStorage) Allocate(layout alloc.Layout) (BlockHandle, int, error) {
	s.logger.Debug("BlockStorage::Allocate")

	s.mutex.Lock()
	defer s.mutex.Unlock()

	ptr, size, err := s.arena.Alloc(layout)
	if err != nil {
		return DanglingBlockHandle, 0, err
	}

	handle := s.nextHandle
	s.nextHandle++
	s.entries.Put(handle, blockEntry{ptr: ptr, layout: layout, size: size})
	s.bump()

	return handle, size, nil
}

func (s *BlockStorage) AllocateZeroed(layout alloc.Layout) (BlockHandle, int, error) {
	return DefaultAllocateZeroed[BlockHandle](s, layout)
}

func (s *BlockStorage) Deallocate(handle BlockHandle, layout alloc.Layout) {
	s.logger.Debug("BlockStorage::Deallocate")

	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry := s.entry(handle)
	memutils.DebugAssert(layout.Size <= entry.size, "deallocation layout is larger than the allocation")

	s.arena.Dealloc(entry.ptr, entry.layout)
	s.entries.Delete(handle)
	s.bump()
}

// resize moves handle's allocation to newLayout, keeping region. The allocation is resized where it
// is when the arena allows it; otherwise it is relocated. The handle number is kept in both cases.
func (s *BlockStorage) resize(handle BlockHandle, newLayout alloc.Layout, region CopyRegion) (BlockHandle, int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry := s.entry(handle)
	debugCheckRegion(region, entry.size, newLayout.Size)

	inPlace := s.flags&BlockStorageCreateNoInPlaceResize == 0 && uintptr(entry.ptr)&uintptr(newLayout.Alignment-1) == 0
	if inPlace {
		var newSize int
		var ok bool
		if newLayout.Size > entry.size {
			newSize, ok = s.arena.GrowInPlace(entry.ptr, entry.layout, newLayout)
		} else {
			Move(entry.ptr, region.DstOffset, entry.ptr, region.SrcOffset, region.Size)
			newSize, ok = s.arena.ShrinkInPlace(entry.ptr, entry.layout, newLayout), true
		}

		if ok {
			if newLayout.Size > entry.size {
				Move(entry.ptr, region.DstOffset, entry.ptr, region.SrcOffset, region.Size)
			}

			s.entries.Put(handle, blockEntry{ptr: entry.ptr, layout: newLayout.WithSize(newSize), size: newSize})
			s.bump()
			return handle, newSize, nil
		}
	}

	ptr, newSize, err := s.arena.Alloc(newLayout)
	if err != nil {
		return handle, 0, err
	}

	Move(ptr, region.DstOffset, entry.ptr, region.SrcOffset, region.Size)
	s.arena.Dealloc(entry.ptr, entry.layout)

	s.entries.Put(handle, blockEntry{ptr: ptr, layout: newLayout, size: newSize})
	s.bump()

	return handle, newSize, nil
}

func (s *BlockStorage) Grow(handle BlockHandle, oldLayout, newLayout alloc.Layout) (BlockHandle, int, error) {
	s.logger.Debug("BlockStorage::Grow")
	memutils.DebugAssert(newLayout.Size >= oldLayout.Size, "grow must not reduce the allocation size")

	return s.resize(handle, newLayout, CopyRegion{Size: oldLayout.Size})
}

func (s *BlockStorage) GrowZeroed(handle BlockHandle, oldLayout, newLayout alloc.Layout) (BlockHandle, int, error) {
	return DefaultGrowZeroed[BlockHandle](s, handle, oldLayout, newLayout)
}

func (s *BlockStorage) GrowRegion(handle BlockHandle, oldLayout, newLayout alloc.Layout, region CopyRegion) (BlockHandle, int, error) {
	s.logger.Debug("BlockStorage::GrowRegion")
	memutils.DebugAssert(newLayout.Size >= oldLayout.Size, "grow must not reduce the allocation size")

	return s.resize(handle, newLayout, region)
}

func (s *BlockStorage) GrowRegionZeroed(handle BlockHandle, oldLayout, newLayout alloc.Layout, region CopyRegion) (BlockHandle, int, error) {
	return DefaultGrowRegionZeroed[BlockHandle](s, handle, oldLayout, newLayout, region)
}

func (s *BlockStorage) Shrink(handle BlockHandle, oldLayout, newLayout alloc.Layout) (BlockHandle, int, error) {
	s.logger.Debug("BlockStorage::Shrink")
	memutils.DebugAssert(newLayout.Size <= oldLayout.Size, "shrink must not increase the allocation size")

	return s.resize(handle, newLayout, CopyRegion{Size: newLayout.Size})
}

func (s *BlockStorage) ShrinkZeroed(handle BlockHandle, oldLayout, newLayout alloc.Layout) (BlockHandle, int, error) {
	return DefaultShrinkZeroed[BlockHandle](s, handle, oldLayout, newLayout)
}

func (s *BlockStorage) ShrinkRegion(handle BlockHandle, oldLayout, newLayout alloc.Layout, region CopyRegion) (BlockHandle, int, error) {
	s.logger.Debug("BlockStorage::ShrinkRegion")
	memutils.DebugAssert(newLayout.Size <= oldLayout.Size, "shrink must not increase the allocation size")

	return s.resize(handle, newLayout, region)
}

func (s *BlockStorage) ShrinkRegionZeroed(handle BlockHandle, oldLayout, newLayout alloc.Layout, region CopyRegion) (BlockHandle, int, error) {
	return DefaultShrinkRegionZeroed[BlockHandle](s, handle, oldLayout, newLayout, region)
}

type liveBlock struct {
	handle BlockHandle
	entry  blockEntry
}

func (s *BlockStorage) sortedBlocks() []liveBlock {
	blocks := make([]liveBlock, 0, s.entries.Count())
	s.entries.Iter(func(handle BlockHandle, entry blockEntry) bool {
		blocks = append(blocks, liveBlock{handle: handle, entry: entry})
		return false
	})

	slices.SortFunc(blocks, func(left, right liveBlock) bool {
		return uintptr(left.entry.ptr) < uintptr(right.entry.ptr)
	})

	return blocks
}

// Compact moves every allocation to the lowest run of free blocks that can hold it, in address
// order, so free space collects at the end of the arena. Handles remain valid; every previously
// resolved address is invalidated.
func (s *BlockStorage) Compact() CompactionStats {
	s.logger.Debug("BlockStorage::Compact")

	s.mutex.Lock()
	defer s.mutex.Unlock()

	var stats CompactionStats
	for _, block := range s.sortedBlocks() {
		entry := block.entry

		// The first fit can never lie past the allocation's own run
		ptr, size, err := s.arena.Relocate(entry.ptr, entry.layout)
		if err != nil {
			s.logger.Warn("BlockStorage::Compact left an allocation in place",
				slog.Int("handle", int(block.handle)),
				slog.Any("error", err),
			)
			continue
		}
		memutils.DebugAssert(uintptr(ptr) <= uintptr(entry.ptr), "compaction moved an allocation backward")

		if ptr == entry.ptr {
			continue
		}

		Move(ptr, 0, entry.ptr, 0, min(entry.size, size))
		s.entries.Put(block.handle, blockEntry{ptr: ptr, layout: entry.layout, size: size})

		stats.AllocationsMoved++
		stats.BytesMoved += min(entry.size, size)
	}

	s.bump()
	return stats
}

func (s *BlockStorage) AddStatistics(stats *memutils.Statistics) {
	s.arena.AddStatistics(stats)
}

func (s *BlockStorage) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	s.arena.AddDetailedStatistics(stats)
}

// PrintDetailedMap writes a JSON object listing every live handle in address order, followed by the
// arena map
func (s *BlockStorage) PrintDetailedMap(writer *jwriter.Writer) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	objState := writer.Object()
	defer objState.End()

	handles := objState.Name("Handles").Array()
	for _, block := range s.sortedBlocks() {
		obj := handles.Object()
		obj.Name("Handle").Int(int(block.handle))
		obj.Name("Offset").Int(s.arena.Offset(block.entry.ptr))
		obj.Name("Size").Int(block.entry.size)
		obj.Name("RequestedSize").Int(block.entry.layout.Size)
		obj.End()
	}
	handles.End()

	objState.Name("Arena").Raw([]byte(s.arena.BuildStatsString()))
}

func (s *BlockStorage) BuildStatsString() string {
	writer := jwriter.NewWriter()
	s.PrintDetailedMap(&writer)
	return string(writer.Bytes())
}

// Release frees the arena back to its parent allocator. If any handles are still live they are
// logged, nothing is freed, and an error is returned.
func (s *BlockStorage) Release() error {
	s.logger.Debug("BlockStorage::Release")

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.entries.Count() > 0 {
		for _, block := range s.sortedBlocks() {
			s.logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED MEMORY] unfreed handle",
				slog.Uint64("handle", uint64(block.handle)),
				slog.Int("offset", s.arena.Offset(block.entry.ptr)),
				slog.Int("size", block.entry.size),
			)
		}

		return errors.Newf("%d handles were not freed before the release of this block storage", s.entries.Count())
	}

	return s.arena.Release()
}
