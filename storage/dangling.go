package storage

import (
	"sync/atomic"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/stowage/memutils"
)

// MaxDanglingAlignment is the largest alignment a dangling address can be produced for
const MaxDanglingAlignment = 4096

var danglingArena [2 * MaxDanglingAlignment]byte

// danglingBase is an address inside danglingArena aligned to MaxDanglingAlignment. Dangling handles
// point here; nothing is ever read from or written to it.
var danglingBase = func() unsafe.Pointer {
	base := unsafe.Pointer(&danglingArena[0])
	offset := memutils.AlignUp(int(uintptr(base)), MaxDanglingAlignment) - int(uintptr(base))
	return unsafe.Add(base, offset)
}()

func checkDanglingAlignment(alignment uint) error {
	err := memutils.CheckPow2(alignment, "alignment")
	if err != nil {
		return errors.Wrapf(memutils.AllocError, "invalid dangling alignment: %v", err)
	}

	if alignment > MaxDanglingAlignment {
		return errors.Wrapf(memutils.AllocError, "dangling alignment %d exceeds %d", alignment, MaxDanglingAlignment)
	}

	return nil
}

// DanglingPointer returns a non-nil address aligned to alignment that is never handed out by any
// allocator
func DanglingPointer(alignment uint) (unsafe.Pointer, error) {
	err := checkDanglingAlignment(alignment)
	if err != nil {
		return nil, err
	}

	return danglingBase, nil
}

// IsDanglingPointer reports whether ptr was produced by DanglingPointer
func IsDanglingPointer(ptr unsafe.Pointer) bool {
	return ptr == danglingBase
}

type epochCounter struct {
	value atomic.Uint64
}

func (e *epochCounter) bump() {
	e.value.Add(1)
}

func (e *epochCounter) Epoch() uint64 {
	return e.value.Load()
}
