package engine

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ausocean/tlc/tlcerr"
)

var errCancelledForTest = tlcerr.New(tlcerr.Cancelled, "test: cancelled")

func TestCacheMemoizesOnUnchangedKey(t *testing.T) {
	var c cache[int]
	var calls int32

	compute := func() (int, error) {
		atomic.AddInt32(&calls, 1)
		return 42, nil
	}

	v, err := c.query("k1", compute)
	if err != nil || v != 42 {
		t.Fatalf("first query: got (%d, %v)", v, err)
	}
	v, err = c.query("k1", compute)
	if err != nil || v != 42 {
		t.Fatalf("second query: got (%d, %v)", v, err)
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1 (idempotence, spec §8)", calls)
	}
}

func TestCacheRecomputesOnChangedKey(t *testing.T) {
	var c cache[int]
	n := 0
	compute := func() (int, error) {
		n++
		return n, nil
	}

	v1, _ := c.query("k1", compute)
	v2, _ := c.query("k2", compute)
	if v1 == v2 {
		t.Errorf("expected distinct results for distinct keys, got %d and %d", v1, v2)
	}
}

func TestCacheCoalescesConcurrentSameKeyQueries(t *testing.T) {
	var c cache[int]
	var calls int32
	release := make(chan struct{})
	compute := func() (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 7, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, _ := c.query("same-key", compute)
			results[i] = v
		}(i)
	}
	close(release)
	wg.Wait()

	if calls != 1 {
		t.Errorf("compute called %d times for 10 concurrent same-key queries, want 1", calls)
	}
	for i, v := range results {
		if v != 7 {
			t.Errorf("result[%d] = %d, want 7", i, v)
		}
	}
}

func TestCacheDoesNotCacheCancellation(t *testing.T) {
	var c cache[int]
	var calls int32
	compute := func() (int, error) {
		atomic.AddInt32(&calls, 1)
		return 0, cancelledErr()
	}

	c.query("k1", compute)
	c.query("k1", compute)
	if calls != 2 {
		t.Errorf("compute called %d times, want 2: a Cancelled result must never be cached (spec §7)", calls)
	}
}

func cancelledErr() error {
	return errCancelledForTest
}
