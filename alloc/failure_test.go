package alloc_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/stowage/alloc"
	"github.com/vkngwrapper/stowage/memutils"
)

func TestHandleAllocErrorPanics(t *testing.T) {
	var reported []alloc.Layout
	previous := alloc.SetAllocErrorHook(func(layout alloc.Layout) {
		reported = append(reported, layout)
	})
	defer alloc.SetAllocErrorHook(previous)

	layout := alloc.Layout{Size: 3 << 20, Alignment: 16}

	var recovered any
	func() {
		defer func() {
			recovered = recover()
		}()
		alloc.HandleAllocError(layout)
	}()

	require.Equal(t, []alloc.Layout{layout}, reported)

	err, isErr := recovered.(error)
	require.True(t, isErr)
	require.True(t, errors.Is(err, memutils.AllocError))

	var failure *alloc.FailureError
	require.ErrorAs(t, err, &failure)
	require.Equal(t, layout, failure.Layout)
	require.Equal(t, "memory allocation of 3.0 MiB (3145728 bytes, alignment 16) failed", err.Error())
}
