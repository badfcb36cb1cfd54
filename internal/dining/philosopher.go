package dining

import (
	"math/rand"
	"time"

	"symposium/internal/logging"
	"symposium/internal/simlog"
)

// Philosopher is one worker in the ring. The table and the event log are
// its only shared state; the cycle counter and random source belong to the
// philosopher's own goroutine and are never touched by others.
type Philosopher struct {
	id    int
	left  int
	right int

	table *Table
	log   *simlog.Log
	diag  *logging.Logger

	thinkMin time.Duration
	thinkMax time.Duration
	eat      time.Duration
	sleep    func(time.Duration)
	rng      *rand.Rand
}

// first returns the lower-numbered of the philosopher's two forks. Forks
// are always requested in ascending index order; see the package comment
// for why that rules out deadlock.
func (p *Philosopher) first() int {
	return min(p.left, p.right)
}

// second returns the higher-numbered of the philosopher's two forks.
func (p *Philosopher) second() int {
	return max(p.left, p.right)
}

// run drives the configured number of think/eat cycles, then returns.
// Holding no forks between calls to dine is an invariant: every cycle ends
// with both tokens consumed.
func (p *Philosopher) run(iterations int) {
	for cycle := 1; cycle <= iterations; cycle++ {
		p.dine(cycle)
	}
	p.diag.Debug("philosopher terminated", "cycles", iterations)
}

// dine runs one full cycle: think, pick up both forks in ascending index
// order, eat, put both forks down.
func (p *Philosopher) dine(cycle int) {
	p.log.Printf("Philosopher %d is thinking (cycle %d)", p.id, cycle)
	p.sleep(p.thinkDuration())

	first := p.table.Acquire(p.first())
	p.log.Printf("Philosopher %d picked up fork %d", p.id, first.Index())

	second := p.table.Acquire(p.second())
	p.log.Printf("Philosopher %d picked up fork %d", p.id, second.Index())

	p.log.Printf("Philosopher %d is eating (cycle %d)", p.id, cycle)
	p.sleep(p.eat)

	// Release order is immaterial to correctness; only acquisition order
	// carries the no-deadlock argument.
	second.Release()
	first.Release()
	p.log.Printf("Philosopher %d put down forks %d and %d", p.id, first.Index(), second.Index())
}

// thinkDuration draws a uniform duration from [thinkMin, thinkMax].
func (p *Philosopher) thinkDuration() time.Duration {
	if p.thinkMax <= p.thinkMin {
		return p.thinkMin
	}
	return p.thinkMin + time.Duration(p.rng.Int63n(int64(p.thinkMax-p.thinkMin)+1))
}
