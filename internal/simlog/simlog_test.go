package simlog

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"
)

var linePattern = regexp.MustCompile(`^\[\d+\.\d{3}s\] .+$`)

// fixedClock returns a now func that always reports start+offset.
func fixedClock(start time.Time, offset time.Duration) func() time.Time {
	return func() time.Time {
		return start.Add(offset)
	}
}

func TestPrintFormat(t *testing.T) {
	start := time.Unix(100, 0)

	tests := []struct {
		name    string
		offset  time.Duration
		message string
		want    string
	}{
		{"zero elapsed", 0, "hello", "[0.000s] hello\n"},
		{"millisecond precision", 1500 * time.Millisecond, "fork up", "[1.500s] fork up\n"},
		{"sub-millisecond rounds", 1234567 * time.Microsecond, "tick", "[1.235s] tick\n"},
		{"whole minutes", 90 * time.Second, "done", "[90.000s] done\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(&buf, WithStart(start), WithNow(fixedClock(start, tt.offset)))

			l.Print(tt.message)

			if got := buf.String(); got != tt.want {
				t.Errorf("Print() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintf(t *testing.T) {
	start := time.Unix(0, 0)
	var buf bytes.Buffer
	l := New(&buf, WithStart(start), WithNow(fixedClock(start, 2*time.Second)))

	l.Printf("Philosopher %d picked up fork %d", 3, 4)

	want := "[2.000s] Philosopher 3 picked up fork 4\n"
	if got := buf.String(); got != want {
		t.Errorf("Printf() wrote %q, want %q", got, want)
	}
}

func TestElapsed(t *testing.T) {
	start := time.Unix(50, 0)
	l := New(&bytes.Buffer{}, WithStart(start), WithNow(fixedClock(start, 750*time.Millisecond)))

	if got := l.Elapsed(); got != 750*time.Millisecond {
		t.Errorf("Elapsed() = %v, want %v", got, 750*time.Millisecond)
	}
}

func TestConcurrentWritesDoNotInterleave(t *testing.T) {
	const writers = 64

	var buf bytes.Buffer
	l := New(&buf)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			l.Printf("writer %d reporting in", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != writers {
		t.Fatalf("got %d lines, want %d", len(lines), writers)
	}

	seen := make(map[string]bool)
	for _, line := range lines {
		if !linePattern.MatchString(line) {
			t.Errorf("malformed line: %q", line)
		}
		seen[line[strings.Index(line, "] ")+2:]] = true
	}
	for i := 0; i < writers; i++ {
		msg := fmt.Sprintf("writer %d reporting in", i)
		if !seen[msg] {
			t.Errorf("message %q missing from output", msg)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestWriteFailurePanics(t *testing.T) {
	l := New(failingWriter{})

	defer func() {
		if recover() == nil {
			t.Fatal("Print() on a failing writer did not panic")
		}
	}()
	l.Print("doomed")
}
