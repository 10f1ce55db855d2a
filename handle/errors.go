package handle

import "github.com/pkg/errors"

// StaleReferenceError is the panic value (wrapped) of Ref.Get when the storage has been mutated since the
// reference was resolved
var StaleReferenceError = errors.New("stale resolved reference")

// ConsumedHandleError is the panic value (wrapped) of any use of a Unique or UniqueSlice after a consuming
// operation
var ConsumedHandleError = errors.New("use of consumed unique handle")
