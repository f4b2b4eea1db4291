package particles

import (
	"github.com/iburimskiy/particle-field/internal/frame"
	"github.com/iburimskiy/particle-field/internal/input"
)

// Scheduler hands out animation-frame callbacks; *frame.Queue satisfies it.
type Scheduler interface {
	Request(fn func()) frame.Handle
	Cancel(h frame.Handle)
}

// Events is a listener registry; *input.Dispatcher satisfies it.
type Events interface {
	Subscribe(kind input.Kind, fn input.Handler) func()
}

// Renderer binds a Field to a surface, a frame scheduler and input signals.
// While mounted it runs one step-and-draw loop, one frame per Tick.
type Renderer struct {
	field  *Field
	frames Scheduler
	events Events

	canvas Canvas
	handle frame.Handle
	off    []func()
	stats  FrameStats
}

func NewRenderer(field *Field, frames Scheduler, events Events) *Renderer {
	return &Renderer{field: field, frames: frames, events: events}
}

func (r *Renderer) Field() *Field { return r.field }

// Active reports whether the renderer is mounted on a surface.
func (r *Renderer) Active() bool { return r.canvas != nil }

// Stats returns the counts of the most recent frame.
func (r *Renderer) Stats() FrameStats { return r.stats }

// Mount seeds the field for a w×h viewport, subscribes to input and
// schedules the first frame. A nil canvas leaves the renderer inert, and
// mounting an already mounted renderer does nothing.
func (r *Renderer) Mount(c Canvas, w, h float64) {
	if c == nil || r.canvas != nil {
		return
	}
	r.canvas = c
	r.field.Resize(w, h)

	r.off = append(r.off,
		r.events.Subscribe(input.Resize, func(ev input.Event) { r.field.Resize(ev.Width, ev.Height) }),
		r.events.Subscribe(input.PointerMove, r.track),
		r.events.Subscribe(input.PointerLeave, r.release),
		r.events.Subscribe(input.TouchMove, r.track),
		r.events.Subscribe(input.TouchEnd, r.release),
	)
	r.handle = r.frames.Request(r.frame)
}

func (r *Renderer) track(ev input.Event) { r.field.SetPointer(ev.X, ev.Y) }

func (r *Renderer) release(input.Event) { r.field.ClearPointer() }

func (r *Renderer) frame() {
	if r.canvas == nil {
		return
	}
	r.field.Step()
	r.stats = r.field.Draw(r.canvas)
	r.handle = r.frames.Request(r.frame)
}

// Teardown removes every listener and cancels the pending frame together.
func (r *Renderer) Teardown() {
	if r.canvas == nil {
		return
	}
	for _, off := range r.off {
		off()
	}
	r.off = nil
	r.frames.Cancel(r.handle)
	r.handle = 0
	r.canvas = nil
}
