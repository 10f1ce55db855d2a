package memutils

import "github.com/pkg/errors"

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")

// AllocError is the only recoverable failure surfaced by allocators, storages, and handles. It carries
// no information beyond "this request could not be satisfied"; callers that need to know why should
// look at which operation failed.
var AllocError error = errors.New("allocation failed")
