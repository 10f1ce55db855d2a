package alloc

import (
	"context"
	"io"
	"sync/atomic"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/stowage/internal/utils"
	"github.com/vkngwrapper/stowage/memutils"
	"golang.org/x/exp/slog"
)

// searchMasks[n] has the n most significant bits set. Block i of the arena is tracked by bit
// 7-(i%8) of bitmap byte i/8.
var searchMasks = [9]byte{0x00, 0x80, 0xC0, 0xE0, 0xF0, 0xF8, 0xFC, 0xFE, 0xFF}

// BitmapAllocatorCreateOptions configures a BitmapAllocator
type BitmapAllocatorCreateOptions struct {
	Flags BitmapCreateFlags
	// Logger receives debug and leak output. If nil, output is discarded.
	Logger *slog.Logger
	// Owner is the allocator the arena buffer came from. Release returns the buffer to it. If nil,
	// Release leaves the buffer alone.
	Owner Allocator
}

// BitmapAllocator divides a fixed arena into equally sized blocks and tracks their occupancy in a
// bitmap stored at the front of the arena. Allocation is a first-fit scan for a run of free blocks.
//
// The allocator keeps no record of individual allocations: Dealloc recomputes the run length from
// the layout it is given, so that layout must match the one used at allocation time.
type BitmapAllocator struct {
	logger *slog.Logger
	mutex  utils.OptionalLock
	owner  Allocator
	id     atomic.Uint32

	buffer       unsafe.Pointer
	bufferLayout Layout
	bitmap       []byte

	blockSize           int
	numBlocks           int
	numManagementBlocks int

	allocationCount int
	usedBlocks      int
}

var _ StatisticsAllocator = &BitmapAllocator{}

func calcNumManagementBlocks(blockSize, numBlocks int) int {
	numBytes := memutils.DivCeil(numBlocks, 8)
	return memutils.DivCeil(numBytes, blockSize)
}

// CalcNeededMemorySize returns the size of the buffer a BitmapAllocator with numBlocks blocks of
// blockSize bytes needs, including the blocks that hold the bitmap itself
func CalcNeededMemorySize(blockSize, numBlocks int) int {
	return (calcNumManagementBlocks(blockSize, numBlocks) + numBlocks) * blockSize
}

// NewBitmapAllocator creates a BitmapAllocator over buffer, which must be at least
// CalcNeededMemorySize(blockSize, numBlocks) bytes long as described by bufferLayout. blockSize must
// be a power of two.
func NewBitmapAllocator(buffer unsafe.Pointer, bufferLayout Layout, blockSize, numBlocks int, options BitmapAllocatorCreateOptions) (*BitmapAllocator, error) {
	if buffer == nil {
		return nil, errors.New("a bitmap allocator requires a backing buffer")
	}

	err := memutils.CheckPow2(blockSize, "blockSize")
	if err != nil {
		return nil, err
	}

	if numBlocks <= 0 {
		return nil, errors.Newf("numBlocks must be positive, but was %d", numBlocks)
	}

	needed := CalcNeededMemorySize(blockSize, numBlocks)
	if bufferLayout.Size < needed {
		return nil, errors.Newf("provided buffer of %d bytes is not large enough, %d bytes are needed", bufferLayout.Size, needed)
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard))
	}

	numManage := calcNumManagementBlocks(blockSize, numBlocks)
	a := &BitmapAllocator{
		logger: logger,
		mutex: utils.OptionalLock{
			Enabled: options.Flags&BitmapCreateExternallySynchronized == 0,
		},
		owner: options.Owner,

		buffer:       buffer,
		bufferLayout: bufferLayout,
		bitmap:       unsafe.Slice((*byte)(buffer), numManage*blockSize),

		blockSize:           blockSize,
		numBlocks:           numBlocks,
		numManagementBlocks: numManage,
	}

	for i := range a.bitmap {
		a.bitmap[i] = 0
	}

	return a, nil
}

// NewComposableBitmapAllocator creates a BitmapAllocator whose arena is drawn from Default(). Release
// returns the arena to it.
func NewComposableBitmapAllocator(blockSize, numBlocks int, options BitmapAllocatorCreateOptions) (*BitmapAllocator, error) {
	err := memutils.CheckPow2(blockSize, "blockSize")
	if err != nil {
		return nil, err
	}

	if numBlocks <= 0 {
		return nil, errors.Newf("numBlocks must be positive, but was %d", numBlocks)
	}

	layout, err := NewLayout(CalcNeededMemorySize(blockSize, numBlocks), uint(max(blockSize, 8)))
	if err != nil {
		return nil, errors.Wrapf(err, "%d blocks of %d bytes cannot be addressed", numBlocks, blockSize)
	}

	buffer, _, err := Default().Alloc(layout)
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate memory for composable allocator")
	}

	options.Owner = Default()
	return NewBitmapAllocator(buffer, layout, blockSize, numBlocks, options)
}

func (a *BitmapAllocator) BlockSize() int {
	return a.blockSize
}

func (a *BitmapAllocator) BlockCount() int {
	return a.numBlocks
}

// Offset returns the distance in bytes between the start of the arena buffer and ptr
func (a *BitmapAllocator) Offset(ptr unsafe.Pointer) int {
	return int(uintptr(ptr) - uintptr(a.buffer))
}

func (a *BitmapAllocator) blocksFor(size int) int {
	if size == 0 {
		return 1
	}
	return memutils.DivCeil(size, a.blockSize)
}

func (a *BitmapAllocator) blockAddress(block int) unsafe.Pointer {
	return unsafe.Add(a.buffer, (a.numManagementBlocks+block)*a.blockSize)
}

// runIsFree reports whether count blocks starting at first are all unoccupied
func (a *BitmapAllocator) runIsFree(first, count int) bool {
	byteIndex := first >> 3
	bitIndex := first & 0x7

	for count > 0 {
		thisByte := min(count, 8-bitIndex)
		mask := searchMasks[thisByte] >> bitIndex
		if a.bitmap[byteIndex]&mask != 0 {
			return false
		}

		count -= thisByte
		bitIndex = 0
		byteIndex++
	}

	return true
}

// runIsSet reports whether count blocks starting at first are all occupied
func (a *BitmapAllocator) runIsSet(first, count int) bool {
	byteIndex := first >> 3
	bitIndex := first & 0x7

	for count > 0 {
		thisByte := min(count, 8-bitIndex)
		mask := searchMasks[thisByte] >> bitIndex
		if a.bitmap[byteIndex]&mask != mask {
			return false
		}

		count -= thisByte
		bitIndex = 0
		byteIndex++
	}

	return true
}

func (a *BitmapAllocator) markBits(first, count int, set bool) {
	memutils.DebugAssert(count != 0, "can't mark 0 bits")

	byteIndex := first >> 3
	bitIndex := first & 0x7

	for count > 0 {
		thisByte := min(count, 8-bitIndex)
		mask := searchMasks[thisByte] >> bitIndex
		if set {
			a.bitmap[byteIndex] |= mask
		} else {
			a.bitmap[byteIndex] &^= mask
		}

		count -= thisByte
		bitIndex = 0
		byteIndex++
	}
}

func (a *BitmapAllocator) isBlockSet(block int) bool {
	return a.bitmap[block>>3]&(0x80>>(block&0x7)) != 0
}

func (a *BitmapAllocator) Alloc(layout Layout) (unsafe.Pointer, int, error) {
	a.logger.Debug("BitmapAllocator::Alloc")

	err := layout.Validate()
	if err != nil {
		return nil, 0, errors.Wrapf(memutils.AllocError, "invalid layout: %v", err)
	}

	blocksNeeded := a.blocksFor(layout.Size)
	if blocksNeeded >= a.numBlocks {
		return nil, 0, errors.Wrapf(memutils.AllocError, "%s needs %d blocks, but the arena only has %d", layout, blocksNeeded, a.numBlocks)
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	start := a.firstFit(blocksNeeded, layout.Alignment)
	if start < 0 {
		return nil, 0, errors.Wrapf(memutils.AllocError, "no run of %d free blocks for %s", blocksNeeded, layout)
	}

	a.markBits(start, blocksNeeded, true)
	a.allocationCount++
	a.usedBlocks += blocksNeeded

	return a.blockAddress(start), blocksNeeded * a.blockSize, nil
}

// firstFit returns the lowest block that starts a free run of count blocks at the requested
// alignment, or -1
func (a *BitmapAllocator) firstFit(count int, alignment uint) int {
	for start := 0; start+count <= a.numBlocks; start++ {
		if uintptr(a.blockAddress(start))&uintptr(alignment-1) != 0 {
			continue
		}

		if a.runIsFree(start, count) {
			return start
		}
	}

	return -1
}

// Relocate moves the allocation at ptr to the lowest run of free blocks that can hold it, counting
// its own blocks as free. Block contents are not copied. If no such run exists the allocation keeps
// its blocks and memutils.AllocError is returned.
func (a *BitmapAllocator) Relocate(ptr unsafe.Pointer, layout Layout) (unsafe.Pointer, int, error) {
	a.logger.Debug("BitmapAllocator::Relocate")

	if !a.Owns(ptr, layout) {
		panic("cannot relocate an allocation that isn't owned by the allocator")
	}

	block := a.blockIndex(ptr)
	count := a.blocksFor(layout.Size)

	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.markBits(block, count, false)
	start := a.firstFit(count, layout.Alignment)
	if start < 0 {
		a.markBits(block, count, true)
		return nil, 0, errors.Wrapf(memutils.AllocError, "no run of %d free blocks to relocate %s", count, layout)
	}

	a.markBits(start, count, true)
	return a.blockAddress(start), count * a.blockSize, nil
}

func (a *BitmapAllocator) Dealloc(ptr unsafe.Pointer, layout Layout) {
	a.logger.Debug("BitmapAllocator::Dealloc")
	memutils.DebugCheckPow2(layout.Alignment, "layout alignment")

	if !a.Owns(ptr, layout) {
		panic("cannot deallocate an allocation that isn't owned by the allocator")
	}

	offset := a.Offset(ptr)
	block := a.blockIndex(ptr)
	count := a.blocksFor(layout.Size)

	a.mutex.Lock()
	defer a.mutex.Unlock()

	memutils.DebugValidate(memutils.ValidateFunc(func() error {
		if offset%a.blockSize != 0 || block < 0 || block+count > a.numBlocks {
			return errors.Newf("address at offset %d does not start an allocation", offset)
		}
		if !a.runIsSet(block, count) {
			return errors.Newf("dealloc of %s at block %d frees blocks that are not allocated", layout, block)
		}
		return nil
	}))

	a.markBits(block, count, false)
	a.allocationCount--
	a.usedBlocks -= count
}

// GrowInPlace tries to extend the allocation at ptr from oldLayout to newLayout by claiming the blocks
// directly after it. It returns the new usable size and true on success. On failure the allocation
// is unchanged.
func (a *BitmapAllocator) GrowInPlace(ptr unsafe.Pointer, oldLayout, newLayout Layout) (int, bool) {
	a.logger.Debug("BitmapAllocator::GrowInPlace")

	block := a.blockIndex(ptr)
	oldCount := a.blocksFor(oldLayout.Size)
	newCount := a.blocksFor(newLayout.Size)

	if newCount <= oldCount {
		return oldCount * a.blockSize, true
	}

	if newCount >= a.numBlocks || block+newCount > a.numBlocks {
		return 0, false
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	if !a.runIsFree(block+oldCount, newCount-oldCount) {
		return 0, false
	}

	a.markBits(block+oldCount, newCount-oldCount, true)
	a.usedBlocks += newCount - oldCount

	return newCount * a.blockSize, true
}

// ShrinkInPlace releases the blocks of the allocation at ptr that newLayout no longer needs, and returns
// the new usable size
func (a *BitmapAllocator) ShrinkInPlace(ptr unsafe.Pointer, oldLayout, newLayout Layout) int {
	a.logger.Debug("BitmapAllocator::ShrinkInPlace")

	block := a.blockIndex(ptr)
	oldCount := a.blocksFor(oldLayout.Size)
	newCount := a.blocksFor(newLayout.Size)

	if newCount >= oldCount {
		return oldCount * a.blockSize
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.markBits(block+newCount, oldCount-newCount, false)
	a.usedBlocks -= oldCount - newCount

	return newCount * a.blockSize
}

func (a *BitmapAllocator) blockIndex(ptr unsafe.Pointer) int {
	return a.Offset(ptr)/a.blockSize - a.numManagementBlocks
}

func (a *BitmapAllocator) Owns(ptr unsafe.Pointer, layout Layout) bool {
	start := uintptr(a.buffer)
	addr := uintptr(ptr)
	return addr >= start && addr < start+uintptr(a.bufferLayout.Size)
}

func (a *BitmapAllocator) SetAllocID(id uint16) {
	a.id.Store(uint32(id))
}

func (a *BitmapAllocator) AllocID() uint16 {
	return uint16(a.id.Load())
}

// IsEmpty reports whether the arena holds no live allocations
func (a *BitmapAllocator) IsEmpty() bool {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.allocationCount == 0
}

// visitRuns calls visit for every maximal run of blocks with the same occupancy, in address order
func (a *BitmapAllocator) visitRuns(visit func(firstBlock, blockCount int, free bool)) {
	runStart := 0
	for block := 1; block <= a.numBlocks; block++ {
		if block == a.numBlocks || a.isBlockSet(block) != a.isBlockSet(runStart) {
			visit(runStart, block-runStart, !a.isBlockSet(runStart))
			runStart = block
		}
	}
}

func (a *BitmapAllocator) AddStatistics(stats *memutils.Statistics) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.addStatistics(stats)
}

func (a *BitmapAllocator) addStatistics(stats *memutils.Statistics) {
	stats.ArenaCount++
	stats.ArenaBytes += a.numBlocks * a.blockSize
	stats.AllocationCount += a.allocationCount
	stats.AllocationBytes += a.usedBlocks * a.blockSize
}

func (a *BitmapAllocator) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.addStatistics(&stats.Statistics)
	a.visitRuns(func(firstBlock, blockCount int, free bool) {
		if free {
			stats.AddFreeRun(blockCount * a.blockSize)
		}
	})
}

// PrintDetailedMap writes a JSON object describing the arena and every run of occupied or free blocks
func (a *BitmapAllocator) PrintDetailedMap(writer *jwriter.Writer) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	var stats memutils.DetailedStatistics
	stats.Clear()
	a.addStatistics(&stats.Statistics)

	objState := writer.Object()
	defer objState.End()

	objState.Name("AllocID").Int(int(a.AllocID()))
	objState.Name("BlockSize").Int(a.blockSize)
	objState.Name("ManagementBlocks").Int(a.numManagementBlocks)
	objState.Name("TotalBytes").Int(stats.ArenaBytes)
	objState.Name("UnusedBytes").Int(stats.FreeBytes())
	objState.Name("Allocations").Int(stats.AllocationCount)

	runs := objState.Name("Runs").Array()
	defer runs.End()

	a.visitRuns(func(firstBlock, blockCount int, free bool) {
		obj := runs.Object()
		defer obj.End()

		obj.Name("Offset").Int((a.numManagementBlocks + firstBlock) * a.blockSize)
		obj.Name("Size").Int(blockCount * a.blockSize)
		obj.Name("Free").Bool(free)
	})
}

// BuildStatsString renders PrintDetailedMap to a string
func (a *BitmapAllocator) BuildStatsString() string {
	writer := jwriter.NewWriter()
	a.PrintDetailedMap(&writer)
	return string(writer.Bytes())
}

func (a *BitmapAllocator) logUnreleasedRun(firstBlock, blockCount int) {
	a.logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED MEMORY] unfreed blocks",
		slog.Int("offset", (a.numManagementBlocks+firstBlock)*a.blockSize),
		slog.Int("size", blockCount*a.blockSize),
	)
}

// Release returns the arena to the allocator that produced it. The BitmapAllocator must not be used
// afterward. If allocations are still live they are logged, the arena is not returned, and an error
// is returned.
func (a *BitmapAllocator) Release() error {
	a.logger.Debug("BitmapAllocator::Release")

	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.buffer == nil {
		return errors.New("bitmap allocator was already released")
	}

	if a.allocationCount > 0 {
		a.visitRuns(func(firstBlock, blockCount int, free bool) {
			if !free {
				a.logUnreleasedRun(firstBlock, blockCount)
			}
		})

		return errors.Newf("%d allocations were not freed before the release of this bitmap allocator", a.allocationCount)
	}

	if a.owner != nil {
		a.owner.Dealloc(a.buffer, a.bufferLayout)
	}
	a.buffer = nil
	a.bitmap = nil

	return nil
}
