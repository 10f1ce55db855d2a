package memutils_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/stowage/memutils"
)

type fixedSource memutils.Statistics

func (s fixedSource) AddStatistics(stats *memutils.Statistics) {
	other := memutils.Statistics(s)
	stats.AddStatistics(&other)
}

func TestStatisticsCollector(t *testing.T) {
	collector := memutils.NewStatisticsCollector("stowage", "test",
		fixedSource{ArenaCount: 1, ArenaBytes: 1024, AllocationCount: 3, AllocationBytes: 192},
		fixedSource{ArenaCount: 1, ArenaBytes: 512, AllocationCount: 1, AllocationBytes: 64},
	)

	require.Equal(t, 3, testutil.CollectAndCount(collector))

	expected := `
# HELP stowage_allocation_bytes Arena bytes claimed by live allocations.
# TYPE stowage_allocation_bytes gauge
stowage_allocation_bytes{name="test"} 256
# HELP stowage_allocations_live Number of live allocations.
# TYPE stowage_allocations_live gauge
stowage_allocations_live{name="test"} 4
# HELP stowage_arena_bytes Bytes available to clients across all arenas.
# TYPE stowage_arena_bytes gauge
stowage_arena_bytes{name="test"} 1536
`
	require.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected)))
}
