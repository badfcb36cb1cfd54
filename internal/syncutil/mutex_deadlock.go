//go:build deadlock

package syncutil

import (
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

// DetectorEnabled reports whether the deadlock detector is compiled in.
const DetectorEnabled = true

func init() {
	// Thinking and eating delays stay well under this; only a genuine
	// acquisition cycle keeps a lock waiting this long.
	deadlock.Opts.DeadlockTimeout = 30 * time.Second
}

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	deadlock.Mutex
}
