package utils

import (
	"sync"
)

// OptionalLock is a reader/writer lock that is only taken when Enabled is set. Allocators and storages
// created with an externally synchronized flag leave it disabled.
type OptionalLock struct {
	Enabled bool
	rw      sync.RWMutex
}

func (l *OptionalLock) Lock() {
	if l.Enabled {
		l.rw.Lock()
	}
}

func (l *OptionalLock) Unlock() {
	if l.Enabled {
		l.rw.Unlock()
	}
}

func (l *OptionalLock) RLock() {
	if l.Enabled {
		l.rw.RLock()
	}
}

func (l *OptionalLock) RUnlock() {
	if l.Enabled {
		l.rw.RUnlock()
	}
}
