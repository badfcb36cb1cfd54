// Package procsim runs the process fan-out scenario: a list of independent
// timed tasks loaded from a text file, executed concurrently, and joined to
// completion. Unlike the dining scenario the workers share nothing but the
// event log.
package procsim

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Process is one entry of the task file: an identifier and a burst length
// in scheduler units.
type Process struct {
	PID   int
	Burst int
}

// ParseError reports a rejected task-file line. The whole load fails on the
// first bad line, so nothing ever runs against a partially-valid file.
type ParseError struct {
	Line    int
	Message string
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// LoadFile reads a process list from path.
func LoadFile(path string) ([]Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open process file: %w", err)
	}
	defer f.Close()

	procs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return procs, nil
}

// Parse reads one "pid burst" pair per line. Blank lines are skipped. A
// malformed line, an extra field, or a non-positive value aborts the load
// with the offending line number.
func Parse(r io.Reader) ([]Process, error) {
	var procs []Process

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, &ParseError{
				Line:    line,
				Message: fmt.Sprintf("expected \"pid burst\", got %d fields", len(fields)),
			}
		}

		pid, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &ParseError{
				Line:    line,
				Message: fmt.Sprintf("invalid process id %q", fields[0]),
			}
		}
		if pid <= 0 {
			return nil, &ParseError{
				Line:    line,
				Message: fmt.Sprintf("process id must be positive, got %d", pid),
			}
		}

		burst, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &ParseError{
				Line:    line,
				Message: fmt.Sprintf("invalid burst time %q", fields[1]),
			}
		}
		if burst <= 0 {
			return nil, &ParseError{
				Line:    line,
				Message: fmt.Sprintf("burst time must be positive, got %d", burst),
			}
		}

		procs = append(procs, Process{PID: pid, Burst: burst})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read process file: %w", err)
	}

	return procs, nil
}
