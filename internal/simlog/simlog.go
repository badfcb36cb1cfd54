// Package simlog emits the simulation event stream: one timestamped text
// line per event, safe for concurrent writers. Every line is tagged with
// the elapsed time since the log was created, so interleaved output from
// concurrent workers stays attributable and ordered by arrival.
package simlog

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Option configures a Log.
type Option func(*Log)

// WithNow replaces the wall clock. Tests inject a fake clock to produce
// deterministic elapsed values.
func WithNow(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

// WithStart pins the instant elapsed time is measured from. Defaults to the
// moment New is called.
func WithStart(start time.Time) Option {
	return func(l *Log) {
		l.start = start
	}
}

// Log serializes event lines from many workers onto a single writer.
// It is safe for concurrent use.
type Log struct {
	mu    sync.Mutex
	w     io.Writer
	start time.Time
	now   func() time.Time
}

// New creates a Log writing to w.
func New(w io.Writer, opts ...Option) *Log {
	l := &Log{
		w:   w,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.start.IsZero() {
		l.start = l.now()
	}
	return l
}

// Elapsed returns the time since the log's start instant.
func (l *Log) Elapsed() time.Duration {
	return l.now().Sub(l.start)
}

// Print writes one complete event line of the form "[<elapsed>s] <message>",
// with elapsed seconds formatted to three decimal places. The whole line is
// emitted as a single write under the log's lock, so concurrent callers
// never interleave mid-line.
//
// The sink is the process's own console; a failed write is a defect, not a
// condition the simulations can recover from, and panics.
func (l *Log) Print(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	elapsed := l.now().Sub(l.start).Seconds()
	if _, err := fmt.Fprintf(l.w, "[%.3fs] %s\n", elapsed, message); err != nil {
		panic(fmt.Sprintf("simlog: event sink write failed: %v", err))
	}
}

// Printf formats and writes one event line.
func (l *Log) Printf(format string, args ...any) {
	l.Print(fmt.Sprintf(format, args...))
}
