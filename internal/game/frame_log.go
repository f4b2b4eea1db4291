package game

import "time"

// frameLog records how long the last N frames took to update and draw, so
// the HUD can show the recent cost of the field.
type frameLog struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
}

func newFrameLog(ringSize int) *frameLog {
	return &frameLog{buffer: make([]time.Duration, ringSize)}
}

func (l *frameLog) record(d time.Duration) {
	l.buffer[l.nextIndex] = d
	l.nextIndex++
	if l.nextIndex >= len(l.buffer) {
		l.nextIndex = 0
	}
	if l.filled < len(l.buffer) {
		l.filled++
	}
}

// snapshot returns up to the last n durations, most recent last.
func (l *frameLog) snapshot(n int) []time.Duration {
	if n > l.filled {
		n = l.filled
	}
	out := make([]time.Duration, 0, n)
	// Walk backwards from nextIndex - 1
	idx := l.nextIndex - 1
	if idx < 0 {
		idx = len(l.buffer) - 1
	}
	for i := 0; i < n; i++ {
		out = append(out, l.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(l.buffer) - 1
		}
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func (l *frameLog) average() time.Duration {
	recent := l.snapshot(l.filled)
	if len(recent) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range recent {
		sum += d
	}
	return sum / time.Duration(len(recent))
}
