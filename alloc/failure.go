package alloc

import (
	"context"
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/vkngwrapper/stowage/memutils"
	"golang.org/x/exp/slog"
)

// FailureError is the value HandleAllocError panics with. It unwraps to memutils.AllocError.
type FailureError struct {
	Layout Layout
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("memory allocation of %s (%d bytes, alignment %d) failed",
		humanize.IBytes(uint64(e.Layout.Size)), e.Layout.Size, e.Layout.Alignment)
}

func (e *FailureError) Unwrap() error {
	return memutils.AllocError
}

var hookLock sync.RWMutex
var allocErrorHook = defaultAllocErrorHook

func defaultAllocErrorHook(layout Layout) {
	slog.Default().LogAttrs(context.Background(), slog.LevelError, "[ALLOCATION FAILURE] aborting",
		slog.Int("size", layout.Size),
		slog.String("humanSize", humanize.IBytes(uint64(layout.Size))),
		slog.Uint64("alignment", uint64(layout.Alignment)),
	)
}

// SetAllocErrorHook replaces the function HandleAllocError runs before it panics, and returns the
// previous hook. Passing nil restores the default hook, which logs the failed layout to slog.Default().
func SetAllocErrorHook(hook func(layout Layout)) func(layout Layout) {
	hookLock.Lock()
	defer hookLock.Unlock()

	previous := allocErrorHook
	if hook == nil {
		hook = defaultAllocErrorHook
	}
	allocErrorHook = hook

	return previous
}

// HandleAllocError is called by every non-Try entry point when an allocation cannot be satisfied. It
// runs the allocation error hook and then panics with a *FailureError. It never returns.
func HandleAllocError(layout Layout) {
	hookLock.RLock()
	hook := allocErrorHook
	hookLock.RUnlock()

	hook(layout)
	panic(&FailureError{Layout: layout})
}
