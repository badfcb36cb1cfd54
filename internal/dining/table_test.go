package dining

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// acquireWithin fails the test if the fork cannot be acquired before the
// deadline, which is how a lost (never released) fork shows up.
func acquireWithin(t *testing.T, table *Table, index int, timeout time.Duration) *Fork {
	t.Helper()

	got := make(chan *Fork, 1)
	go func() {
		got <- table.Acquire(index)
	}()

	select {
	case f := <-got:
		return f
	case <-time.After(timeout):
		t.Fatalf("fork %d still held after %v", index, timeout)
		return nil
	}
}

func TestAcquireRelease(t *testing.T) {
	table := NewTable(5)
	if table.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", table.Size())
	}

	f := table.Acquire(2)
	if f.Index() != 2 {
		t.Errorf("Index() = %d, want 2", f.Index())
	}
	f.Release()

	// The fork is free again.
	acquireWithin(t, table, 2, time.Second).Release()
}

func TestReleaseOrderDoesNotMatter(t *testing.T) {
	table := NewTable(3)

	// Ascending release.
	a, b := table.Acquire(0), table.Acquire(1)
	a.Release()
	b.Release()
	acquireWithin(t, table, 0, time.Second).Release()
	acquireWithin(t, table, 1, time.Second).Release()

	// Descending release.
	a, b = table.Acquire(0), table.Acquire(1)
	b.Release()
	a.Release()
	acquireWithin(t, table, 0, time.Second).Release()
	acquireWithin(t, table, 1, time.Second).Release()
}

func TestDoubleReleasePanics(t *testing.T) {
	table := NewTable(2)
	f := table.Acquire(0)
	f.Release()

	defer func() {
		if recover() == nil {
			t.Fatal("second Release() did not panic")
		}
	}()
	f.Release()
}

func TestMutualExclusion(t *testing.T) {
	const (
		forks      = 4
		workers    = 16
		iterations = 200
	)

	table := NewTable(forks)
	holders := make([]atomic.Int32, forks)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < iterations; i++ {
				idx := rng.Intn(forks)
				f := table.Acquire(idx)
				if n := holders[idx].Add(1); n != 1 {
					t.Errorf("fork %d held by %d workers at once", idx, n)
				}
				holders[idx].Add(-1)
				f.Release()
			}
		}(int64(w))
	}
	wg.Wait()
}
