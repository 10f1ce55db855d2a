package handle

import "github.com/cockroachdb/errors"

// EpochSource is anything that reports how many times it has been mutated. Every storage in this module
// is one.
type EpochSource interface {
	Epoch() uint64
}

// Ref is a resolved value that remembers which epoch of its storage it was resolved in. A resolved
// address is only good until the next mutating call into the storage, and Ref turns a violation of
// that rule into a panic instead of a read through a dangling address.
type Ref[V any] struct {
	value  V
	epoch  uint64
	source EpochSource
}

// NewRef captures value along with the current epoch of source
func NewRef[V any](value V, source EpochSource) Ref[V] {
	return Ref[V]{
		value:  value,
		epoch:  source.Epoch(),
		source: source,
	}
}

// Valid reports whether the storage is still in the epoch the value was resolved in
func (r Ref[V]) Valid() bool {
	return r.source != nil && r.source.Epoch() == r.epoch
}

// Get returns the resolved value, and panics if the storage has been mutated since it was resolved
func (r Ref[V]) Get() V {
	if r.source == nil {
		panic(errors.Wrap(StaleReferenceError, "reference was never resolved"))
	}

	current := r.source.Epoch()
	if current != r.epoch {
		panic(errors.Wrapf(StaleReferenceError, "resolved in epoch %d, storage is now in epoch %d", r.epoch, current))
	}

	return r.value
}
