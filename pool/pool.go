// package pool provides the process wide worker pool used for parallel
// proving and validation work.
package pool

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/consensys/gnark/logger"
)

var (
	mu         sync.Mutex
	jobQueue   chan func()
	numWorkers int
)

// Install creates the process wide worker pool and starts its workers.
// The pool cannot be resized or reinstalled once built, so Install must only
// be called once per process; a second call panics rather than silently
// keeping the old pool. Workers are named "zc-rayon-<index>" for
// diagnostics.
func Install() {
	mu.Lock()
	defer mu.Unlock()
	if jobQueue != nil {
		panic("pool: already installed")
	}
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 1
	}
	numWorkers = n
	jobQueue = make(chan func(), n)
	for i := 0; i < n; i++ {
		go worker(fmt.Sprintf("zc-rayon-%d", i))
	}
	log := logger.Logger()
	log.Info().Int("workers", n).Msg("installed worker pool")
}

func worker(name string) {
	log := logger.Logger().With().Str("worker", name).Logger()
	log.Debug().Msg("worker started")
	for job := range jobQueue {
		job()
	}
}

// Submit queues f for execution on the pool and returns as soon as it is
// queued, not when it finishes. It panics if Install has not been called.
func Submit(f func()) {
	queue() <- f
}

// Do splits the range [0, n) in one chunk per worker and blocks until every
// chunk has been processed by the pool. It panics if Install has not been
// called. Do must not be called from a pool worker.
func Do(n int, work func(start, stop int)) {
	q := queue()
	if n <= 0 {
		return
	}
	chunk := (n + numWorkers - 1) / numWorkers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		start := start
		stop := start + chunk
		if stop > n {
			stop = n
		}
		wg.Add(1)
		q <- func() {
			defer wg.Done()
			work(start, stop)
		}
	}
	wg.Wait()
}

// Workers returns the number of workers in the installed pool, or zero if no
// pool is installed.
func Workers() int {
	mu.Lock()
	defer mu.Unlock()
	return numWorkers
}

func queue() chan func() {
	mu.Lock()
	defer mu.Unlock()
	if jobQueue == nil {
		panic("pool: not installed")
	}
	return jobQueue
}
