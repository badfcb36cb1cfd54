package dining

import (
	"time"

	"symposium/internal/logging"
)

// Option configures a Simulation.
type Option func(*Simulation)

// WithPhilosophers sets the number of workers around the table; the table
// gets one fork per philosopher. Values below 2 are ignored: the ring
// degenerates when a philosopher's left and right fork coincide.
func WithPhilosophers(n int) Option {
	return func(s *Simulation) {
		if n >= 2 {
			s.philosophers = n
		}
	}
}

// WithIterations sets how many think/eat cycles each philosopher runs.
func WithIterations(n int) Option {
	return func(s *Simulation) {
		if n > 0 {
			s.iterations = n
		}
	}
}

// WithThinkRange bounds the random thinking interval.
func WithThinkRange(minThink, maxThink time.Duration) Option {
	return func(s *Simulation) {
		s.thinkMin = minThink
		s.thinkMax = maxThink
	}
}

// WithEat sets the fixed duration a philosopher holds both forks.
func WithEat(d time.Duration) Option {
	return func(s *Simulation) {
		s.eat = d
	}
}

// WithSeed seeds the per-philosopher random sources, making think durations
// reproducible across runs.
func WithSeed(seed int64) Option {
	return func(s *Simulation) {
		s.seed = seed
	}
}

// WithSleep replaces the blocking wait used for thinking and eating. Tests
// inject a no-op sleeper to run many cycles without real delays.
func WithSleep(sleep func(time.Duration)) Option {
	return func(s *Simulation) {
		if sleep != nil {
			s.sleep = sleep
		}
	}
}

// WithDiagnostics routes debug records to the given logger. The simulation
// event stream is unaffected.
func WithDiagnostics(diag *logging.Logger) Option {
	return func(s *Simulation) {
		if diag != nil {
			s.diag = diag
		}
	}
}
