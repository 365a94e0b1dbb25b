// FILE: lixenwraith/tlog/queue_test.go
package tlog

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := newMessageQueue()
	for i := 0; i < 10; i++ {
		q.push(fmt.Sprintf("line-%d", i))
	}
	assert.Equal(t, 10, q.len())

	batch := q.drainAll()
	require.Len(t, batch, 10)
	for i, line := range batch {
		assert.Equal(t, fmt.Sprintf("line-%d", i), line)
	}
	assert.Equal(t, 0, q.len())
	assert.Empty(t, q.drainAll())
}

func TestQueueReleaseReuse(t *testing.T) {
	q := newMessageQueue()
	q.push("a")
	q.push("b")

	batch := q.drainAll()
	q.release(batch)
	assert.Equal(t, "", batch[0], "released batch is cleared")

	q.push("c")
	next := q.drainAll()
	assert.Equal(t, []string{"c"}, next)
}

func TestQueueConcurrentPush(t *testing.T) {
	q := newMessageQueue()
	const producers = 8
	const perProducer = 1000

	var wg sync.WaitGroup
	var drained []string
	var drainMu sync.Mutex
	stop := make(chan struct{})
	drainerDone := make(chan struct{})

	// Drain concurrently with producers, as the worker does
	go func() {
		defer close(drainerDone)
		for {
			batch := q.drainAll()
			drainMu.Lock()
			drained = append(drained, batch...)
			drainMu.Unlock()
			q.release(batch)
			select {
			case <-stop:
				return
			default:
			}
		}
	}()

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for k := 0; k < perProducer; k++ {
				q.push(fmt.Sprintf("%d-%d", p, k))
			}
		}(p)
	}
	wg.Wait()
	close(stop)
	<-drainerDone
	drained = append(drained, q.drainAll()...)

	assert.Len(t, drained, producers*perProducer)
	seen := make(map[string]struct{}, len(drained))
	for _, line := range drained {
		seen[line] = struct{}{}
	}
	assert.Len(t, seen, producers*perProducer)
}
