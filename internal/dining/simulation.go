package dining

import (
	"math/rand"
	"time"

	"github.com/sourcegraph/conc"

	"symposium/internal/logging"
	"symposium/internal/simlog"
)

// Reference timings for the scenario. Thinking is a bounded random interval
// to create realistic contention; eating is fixed. Neither has a
// correctness role.
const (
	defaultPhilosophers = 5
	defaultIterations   = 3
	defaultThinkMin     = 1 * time.Second
	defaultThinkMax     = 3 * time.Second
	defaultEat          = 2 * time.Second
)

// Simulation owns one dining run: the start-of-run parameters, the shared
// event log, and one worker per philosopher. Construct it with New, run it
// once with Run.
type Simulation struct {
	philosophers int
	iterations   int
	thinkMin     time.Duration
	thinkMax     time.Duration
	eat          time.Duration
	seed         int64
	sleep        func(time.Duration)
	log          *simlog.Log
	diag         *logging.Logger
}

// New creates a Simulation reporting events to log.
func New(log *simlog.Log, opts ...Option) *Simulation {
	s := &Simulation{
		philosophers: defaultPhilosophers,
		iterations:   defaultIterations,
		thinkMin:     defaultThinkMin,
		thinkMax:     defaultThinkMax,
		eat:          defaultEat,
		sleep:        time.Sleep,
		log:          log,
		diag:         logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}
	return s
}

// Run spawns one worker per philosopher, lets every worker finish its
// cycles, and returns only once all of them have terminated. Workers cannot
// fail under normal conditions; a panicking worker is a defect and is
// re-raised here at the join rather than letting the run continue with
// fewer philosophers.
func (s *Simulation) Run() {
	table := NewTable(s.philosophers)
	s.diag.Info("dining simulation starting",
		"philosophers", s.philosophers,
		"iterations", s.iterations,
		"seed", s.seed,
	)

	var wg conc.WaitGroup
	for id := 0; id < s.philosophers; id++ {
		p := &Philosopher{
			id:       id,
			left:     id,
			right:    (id + 1) % s.philosophers,
			table:    table,
			log:      s.log,
			diag:     s.diag.WithWorker(id),
			thinkMin: s.thinkMin,
			thinkMax: s.thinkMax,
			eat:      s.eat,
			sleep:    s.sleep,
			rng:      rand.New(rand.NewSource(s.seed + int64(id)*31)),
		}
		wg.Go(func() {
			p.run(s.iterations)
		})
	}
	wg.Wait()

	s.diag.Info("dining simulation complete", "elapsed", s.log.Elapsed().String())
}
