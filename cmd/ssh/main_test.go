package main

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)

	w, h, err := s.getSize()
	require.NoError(t, err)
	require.Equal(t, 80, w)
	require.Equal(t, 24, h)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.update(100+i, 40)
			_, _, _ = s.getSize()
		}()
	}
	wg.Wait()

	w, h, _ = s.getSize()
	require.GreaterOrEqual(t, w, 100)
	require.Equal(t, 40, h)
}
