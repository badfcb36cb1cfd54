package dining

import (
	"math/rand"
	"testing"
	"time"
)

func TestForkOrderIsAscending(t *testing.T) {
	for _, n := range []int{2, 3, 5, 7} {
		for id := 0; id < n; id++ {
			p := &Philosopher{id: id, left: id, right: (id + 1) % n}

			if p.first() >= p.second() {
				t.Errorf("n=%d id=%d: first()=%d not below second()=%d",
					n, id, p.first(), p.second())
			}
			if p.first() != min(p.left, p.right) || p.second() != max(p.left, p.right) {
				t.Errorf("n=%d id=%d: pair (%d,%d) is not (min,max) of (%d,%d)",
					n, id, p.first(), p.second(), p.left, p.right)
			}
		}
	}
}

func TestRingWrapUsesLowIndexFirst(t *testing.T) {
	// The last philosopher's right fork wraps to 0, so it must reach across
	// and take fork 0 before its own left fork.
	p := &Philosopher{id: 4, left: 4, right: 0}

	if p.first() != 0 {
		t.Errorf("first() = %d, want 0", p.first())
	}
	if p.second() != 4 {
		t.Errorf("second() = %d, want 4", p.second())
	}
}

func TestThinkDurationBounds(t *testing.T) {
	p := &Philosopher{
		thinkMin: 1 * time.Second,
		thinkMax: 3 * time.Second,
		rng:      rand.New(rand.NewSource(1)),
	}

	for i := 0; i < 1000; i++ {
		d := p.thinkDuration()
		if d < p.thinkMin || d > p.thinkMax {
			t.Fatalf("thinkDuration() = %v, want in [%v, %v]", d, p.thinkMin, p.thinkMax)
		}
	}
}

func TestThinkDurationDegenerateRange(t *testing.T) {
	p := &Philosopher{
		thinkMin: 2 * time.Second,
		thinkMax: 2 * time.Second,
	}

	if d := p.thinkDuration(); d != 2*time.Second {
		t.Errorf("thinkDuration() = %v, want %v", d, 2*time.Second)
	}
}
