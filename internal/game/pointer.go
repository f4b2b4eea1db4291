package game

import "github.com/iburimskiy/particle-field/internal/input"

type point struct{ x, y int }

// inputSample is the raw input state of one tick.
type inputSample struct {
	cursor  point
	focused bool
	touches []point
	width   int
	height  int
}

// pointerTracker turns per-tick polled input into the edge-triggered
// events the renderer listens for.
type pointerTracker struct {
	inside   bool
	last     point
	touching bool
}

func (t *pointerTracker) observe(s inputSample) []input.Event {
	var evs []input.Event

	c := s.cursor
	in := s.focused && c.x >= 0 && c.y >= 0 && c.x < s.width && c.y < s.height
	switch {
	case in && (!t.inside || c != t.last):
		evs = append(evs, input.Event{Kind: input.PointerMove, X: float64(c.x), Y: float64(c.y)})
	case !in && t.inside:
		evs = append(evs, input.Event{Kind: input.PointerLeave})
	}
	t.inside = in
	t.last = c

	if len(s.touches) > 0 {
		p := s.touches[0]
		evs = append(evs, input.Event{Kind: input.TouchMove, X: float64(p.x), Y: float64(p.y)})
		t.touching = true
	} else if t.touching {
		evs = append(evs, input.Event{Kind: input.TouchEnd})
		t.touching = false
	}
	return evs
}
