package tui

import "fmt"

// LogRing keeps the most recent diagnostic lines emitted by games through
// their context sink. The platform owns it; games never see more than the
// Logf function.
type LogRing struct {
	lines []string
	max   int
}

// NewLogRing creates a ring that retains at most max lines.
func NewLogRing(max int) *LogRing {
	if max < 1 {
		max = 1
	}
	return &LogRing{max: max}
}

// Append formats and stores a line, evicting the oldest when full.
func (r *LogRing) Append(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
	if len(r.lines) > r.max {
		r.lines = r.lines[len(r.lines)-r.max:]
	}
}

// Lines returns the retained lines, oldest first.
func (r *LogRing) Lines() []string {
	return r.lines
}

// Last returns the most recent line, or "" when empty.
func (r *LogRing) Last() string {
	if len(r.lines) == 0 {
		return ""
	}
	return r.lines[len(r.lines)-1]
}
