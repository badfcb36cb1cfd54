//go:build !deadlock

// Package syncutil provides the mutual-exclusion primitive the simulations
// lock forks with. Building with -tags=deadlock swaps in a runtime deadlock
// detector, which is useful when experimenting with broken acquisition
// orders.
package syncutil

import "sync"

// DetectorEnabled reports whether the deadlock detector is compiled in.
const DetectorEnabled = false

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	sync.Mutex
}
