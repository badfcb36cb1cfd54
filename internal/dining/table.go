package dining

import (
	"fmt"
	"sync/atomic"

	"symposium/internal/syncutil"
)

// Table is the set of forks shared by the philosophers. Each fork is an
// independently lockable slot identified by its index. A Table is safe for
// concurrent use and should not be copied after creation.
type Table struct {
	forks []syncutil.Mutex
}

// NewTable creates a table with n forks, numbered 0 through n-1.
func NewTable(n int) *Table {
	return &Table{forks: make([]syncutil.Mutex, n)}
}

// Size returns the number of forks.
func (t *Table) Size() int {
	return len(t.forks)
}

// Acquire blocks the calling goroutine until the fork at index is free,
// then returns an ownership token for it. The token is the only way to put
// the fork back.
func (t *Table) Acquire(index int) *Fork {
	t.forks[index].Lock()
	return &Fork{index: index, table: t}
}

// Fork is an ownership token for one held fork, produced by Table.Acquire
// and consumed by Release.
type Fork struct {
	index    int
	table    *Table
	released atomic.Bool
}

// Index returns the fork's slot number on the table.
func (f *Fork) Index() int {
	return f.index
}

// Release puts the fork back on the table. Releasing the same token twice
// is a defect in the calling code and panics.
func (f *Fork) Release() {
	if !f.released.CompareAndSwap(false, true) {
		panic(fmt.Sprintf("dining: fork %d released twice", f.index))
	}
	f.table.forks[f.index].Unlock()
}
