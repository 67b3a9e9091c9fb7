package pool

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// The pool can only be installed once per process, so the whole lifecycle is
// exercised in a single test with ordered subtests.
func TestPool(t *testing.T) {
	t.Run("use before install panics", func(t *testing.T) {
		require.PanicsWithValue(t, "pool: not installed", func() {
			Submit(func() {})
		})
		require.PanicsWithValue(t, "pool: not installed", func() {
			Do(8, func(start, stop int) {})
		})
		require.Zero(t, Workers())
	})

	Install()

	t.Run("second install panics", func(t *testing.T) {
		require.PanicsWithValue(t, "pool: already installed", func() {
			Install()
		})
	})

	t.Run("workers", func(t *testing.T) {
		require.Equal(t, runtime.GOMAXPROCS(0), Workers())
	})

	t.Run("submit runs the job", func(t *testing.T) {
		done := make(chan struct{})
		Submit(func() { close(done) })
		<-done
	})

	t.Run("do covers the whole range once", func(t *testing.T) {
		const n = 1000
		var hits [n]int32
		Do(n, func(start, stop int) {
			for i := start; i < stop; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i := range hits {
			require.EqualValues(t, 1, hits[i], "index %d", i)
		}
	})

	t.Run("do with empty range", func(t *testing.T) {
		Do(0, func(start, stop int) {
			t.Error("work called for an empty range")
		})
	})
}
