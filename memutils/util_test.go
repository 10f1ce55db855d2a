package memutils_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/stowage/memutils"
)

func TestCheckPow2(t *testing.T) {
	testCases := map[string]struct {
		value int
		valid bool
	}{
		"One":      {value: 1, valid: true},
		"Two":      {value: 2, valid: true},
		"Large":    {value: 1 << 20, valid: true},
		"Zero":     {value: 0, valid: false},
		"Negative": {value: -4, valid: false},
		"Three":    {value: 3, valid: false},
		"Twelve":   {value: 12, valid: false},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			err := memutils.CheckPow2(testCase.value, "value")
			if testCase.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.True(t, errors.Is(err, memutils.PowerOfTwoError))
			}
		})
	}
}

func TestAlign(t *testing.T) {
	require.Equal(t, 0, memutils.AlignUp(0, 8))
	require.Equal(t, 8, memutils.AlignUp(1, 8))
	require.Equal(t, 8, memutils.AlignUp(8, 8))
	require.Equal(t, 16, memutils.AlignUp(9, 8))
	require.Equal(t, 5, memutils.AlignUp(5, 1))
}

func TestDivCeil(t *testing.T) {
	require.Equal(t, 0, memutils.DivCeil(0, 8))
	require.Equal(t, 1, memutils.DivCeil(1, 8))
	require.Equal(t, 1, memutils.DivCeil(8, 8))
	require.Equal(t, 2, memutils.DivCeil(9, 8))
}

func TestMulOverflows(t *testing.T) {
	require.False(t, memutils.MulOverflows(0, math.MaxInt))
	require.False(t, memutils.MulOverflows(1<<20, 1<<20))
	require.True(t, memutils.MulOverflows(math.MaxInt/2+1, 2))
	require.True(t, memutils.MulOverflows(math.MaxInt, math.MaxInt))
}

func TestDetailedStatisticsMerge(t *testing.T) {
	var first memutils.DetailedStatistics
	first.Clear()
	first.ArenaCount = 1
	first.ArenaBytes = 128
	first.AllocationCount = 2
	first.AllocationBytes = 32
	first.AddFreeRun(64)
	first.AddFreeRun(32)

	var second memutils.DetailedStatistics
	second.Clear()
	second.ArenaCount = 1
	second.ArenaBytes = 64
	second.AddFreeRun(64)

	var total memutils.DetailedStatistics
	total.Clear()
	total.AddDetailedStatistics(&first)
	total.AddDetailedStatistics(&second)

	require.Equal(t, memutils.DetailedStatistics{
		Statistics: memutils.Statistics{
			ArenaCount:      2,
			AllocationCount: 2,
			ArenaBytes:      192,
			AllocationBytes: 32,
		},
		FreeRunCount:    3,
		FreeRunBytesMin: 32,
		FreeRunBytesMax: 64,
	}, total)
	require.Equal(t, 160, total.FreeBytes())
}
