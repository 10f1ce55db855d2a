package memutils

import "math"

// Statistics contains basic occupancy figures for one or more arenas. Allocators and storages
// sum their own figures into a Statistics object via AddStatistics, so a single object can
// describe any number of arenas.
type Statistics struct {
	// ArenaCount is the number of distinct arenas summed into this object
	ArenaCount int
	// AllocationCount is the number of live allocations
	AllocationCount int
	// ArenaBytes is the number of bytes available to clients across all arenas, not counting
	// bookkeeping overhead
	ArenaBytes int
	// AllocationBytes is the number of arena bytes currently claimed by live allocations, including
	// any rounding up to the arena's granularity
	AllocationBytes int
}

func (s *Statistics) Clear() {
	s.ArenaCount = 0
	s.AllocationCount = 0
	s.ArenaBytes = 0
	s.AllocationBytes = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.ArenaCount += other.ArenaCount
	s.AllocationCount += other.AllocationCount
	s.ArenaBytes += other.ArenaBytes
	s.AllocationBytes += other.AllocationBytes
}

// FreeBytes is the number of arena bytes not claimed by any allocation
func (s *Statistics) FreeBytes() int {
	return s.ArenaBytes - s.AllocationBytes
}

// DetailedStatistics extends Statistics with fragmentation figures: how many runs of contiguous free
// space exist, and the smallest and largest of them
type DetailedStatistics struct {
	Statistics
	FreeRunCount    int
	FreeRunBytesMin int
	FreeRunBytesMax int
}

func (s *DetailedStatistics) Clear() {
	*s = DetailedStatistics{FreeRunBytesMin: math.MaxInt}
}

// AddFreeRun records one run of contiguous free space
func (s *DetailedStatistics) AddFreeRun(bytes int) {
	s.FreeRunCount++
	s.FreeRunBytesMin = min(s.FreeRunBytesMin, bytes)
	s.FreeRunBytesMax = max(s.FreeRunBytesMax, bytes)
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.AddStatistics(&other.Statistics)
	s.FreeRunCount += other.FreeRunCount
	s.FreeRunBytesMin = min(s.FreeRunBytesMin, other.FreeRunBytesMin)
	s.FreeRunBytesMax = max(s.FreeRunBytesMax, other.FreeRunBytesMax)
}

// StatisticsSource is implemented by every allocator and storage that can report its occupancy
type StatisticsSource interface {
	AddStatistics(stats *Statistics)
}
