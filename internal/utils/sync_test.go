package utils_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/stowage/internal/utils"
)

func TestOptionalLockSerializes(t *testing.T) {
	l := utils.OptionalLock{Enabled: true}
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				l.Lock()
				counter++
				l.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 8000, counter)
}

func TestOptionalLockDisabled(t *testing.T) {
	l := utils.OptionalLock{}
	require.NotPanics(t, func() {
		l.Lock()
		l.Lock()
		l.Unlock()
		l.Unlock()
		l.RLock()
		l.RUnlock()
	})
}

func TestOptionalLockReaders(t *testing.T) {
	l := utils.OptionalLock{Enabled: true}
	l.RLock()
	l.RLock()

	acquired := make(chan struct{})
	go func() {
		l.Lock()
		close(acquired)
		l.Unlock()
	}()

	l.RUnlock()
	l.RUnlock()
	<-acquired
}
