package procsim

import (
	"time"

	"github.com/sourcegraph/conc"

	"symposium/internal/logging"
	"symposium/internal/simlog"
)

const defaultUnit = time.Second

// Option configures an Executor.
type Option func(*Executor)

// WithUnit sets the real duration of one burst unit.
func WithUnit(d time.Duration) Option {
	return func(e *Executor) {
		if d >= 0 {
			e.unit = d
		}
	}
}

// WithSleep replaces the blocking wait that simulates a process's burst.
// Tests inject a no-op sleeper.
func WithSleep(sleep func(time.Duration)) Option {
	return func(e *Executor) {
		if sleep != nil {
			e.sleep = sleep
		}
	}
}

// WithDiagnostics routes debug records to the given logger.
func WithDiagnostics(diag *logging.Logger) Option {
	return func(e *Executor) {
		if diag != nil {
			e.diag = diag
		}
	}
}

// Executor runs each loaded process as its own worker and waits for all of
// them. There is no partial execution: Run returns only after every worker
// has finished.
type Executor struct {
	log   *simlog.Log
	diag  *logging.Logger
	unit  time.Duration
	sleep func(time.Duration)
}

// NewExecutor creates an Executor reporting events to log.
func NewExecutor(log *simlog.Log, opts ...Option) *Executor {
	e := &Executor{
		log:   log,
		diag:  logging.Nop(),
		unit:  defaultUnit,
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run fans out one worker per process and joins them all. Each worker logs
// a start event, blocks for its burst, and logs a done event; a panicking
// worker is re-raised at the join.
func (e *Executor) Run(procs []Process) {
	if len(procs) == 0 {
		e.diag.Warn("no processes to run")
		return
	}
	e.diag.Info("process fan-out starting", "count", len(procs))

	var wg conc.WaitGroup
	for _, proc := range procs {
		proc := proc // per-iteration copy; required under the pre-1.22 loop semantics this module builds with
		wg.Go(func() {
			e.log.Printf("Process %d started (burst %d)", proc.PID, proc.Burst)
			e.sleep(time.Duration(proc.Burst) * e.unit)
			e.log.Printf("Process %d finished", proc.PID)
		})
	}
	wg.Wait()

	e.diag.Info("all processes finished", "count", len(procs))
}
