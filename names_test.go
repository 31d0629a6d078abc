package fullrec

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestNamerNext(t *testing.T) {
	n := NewNamer()
	assert.Equal(t, "1z", n.Next("z"))
	assert.Equal(t, "2z", n.Next("z"))
	// A minted name used as a base loses its old counter.
	assert.Equal(t, "3z", n.Next("2z"))
	assert.Equal(t, "4x'", n.Next("x'"))
}

func TestNamerReset(t *testing.T) {
	n := NewNamer()
	n.Next("a")
	n.Next("a")
	assert.Equal(t, "3a", n.Next("a"))
	n.Reset()
	assert.Equal(t, "1a", n.Next("a"))
}

func TestNamersAreIndependent(t *testing.T) {
	a, b := NewNamer(), NewNamer()
	assert.Equal(t, "1x", a.Next("x"))
	assert.Equal(t, "1x", b.Next("x"))
	assert.Equal(t, "2x", a.Next("x"))
}

func TestNamerConcurrent(t *testing.T) {
	const workers, perWorker = 8, 200
	n := NewNamer()
	var (
		mu   sync.Mutex
		seen = make(map[string]bool)
	)
	var eg errgroup.Group
	for i := 0; i < workers; i++ {
		eg.Go(func() error {
			for j := 0; j < perWorker; j++ {
				name := n.Next("v")
				mu.Lock()
				seen[name] = true
				mu.Unlock()
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
	assert.Len(t, seen, workers*perWorker)
}
