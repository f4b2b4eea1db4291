// Package termview runs the particle field inside a terminal.
package termview

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/frame"
	"github.com/iburimskiy/particle-field/internal/input"
	"github.com/iburimskiy/particle-field/internal/particles"
)

type View struct {
	screen   tcell.Screen
	log      *slog.Logger
	frames   *frame.Queue
	events   *input.Dispatcher
	renderer *particles.Renderer
	canvas   *cellCanvas
	interval time.Duration
}

// New wraps an initialised screen. fps at or below zero means 60.
func New(screen tcell.Screen, log *slog.Logger, settings config.Settings, field *particles.Field, fps int) *View {
	if fps <= 0 {
		fps = 60
	}
	frames := frame.NewQueue()
	events := input.NewDispatcher()
	return &View{
		screen:   screen,
		log:      log,
		frames:   frames,
		events:   events,
		renderer: particles.NewRenderer(field, frames, events),
		canvas:   newCellCanvas(screen, settings.BackgroundColor(), settings.Opacity),
		interval: time.Second / time.Duration(fps),
	}
}

func (v *View) mount() {
	cols, rows := v.screen.Size()
	v.renderer.Mount(v.canvas, float64(cols)*cellWidth, float64(rows)*cellHeight)
}

// Run drives frames until ctx is done or the user quits. tcell events are
// read on a separate goroutine and handed to this one, so the field is only
// ever touched here. reload may be nil.
func (v *View) Run(ctx context.Context, reload <-chan config.Settings) error {
	v.screen.EnableMouse(tcell.MouseMotionEvents)
	v.screen.EnableFocus()
	v.mount()
	defer v.renderer.Teardown()

	done := make(chan struct{})
	defer close(done)
	incoming := make(chan tcell.Event)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case incoming <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-incoming:
			if v.handle(ev) {
				return nil
			}
		case s, ok := <-reload:
			if !ok {
				reload = nil
				continue
			}
			v.canvas = newCellCanvas(v.screen, s.BackgroundColor(), s.Opacity)
			v.renderer.Teardown()
			v.renderer.Field().SetParams(s.Params())
			v.mount()
		case <-ticker.C:
			if v.frames.Tick() > 0 {
				v.screen.Show()
			}
		}
	}
}

// handle applies one terminal event and reports whether to quit.
func (v *View) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		cols, rows := ev.Size()
		v.log.Debug("resize", "cols", cols, "rows", rows)
		v.events.Dispatch(input.Event{
			Kind:   input.Resize,
			Width:  float64(cols) * cellWidth,
			Height: float64(rows) * cellHeight,
		})
	case *tcell.EventMouse:
		x, y := ev.Position()
		v.events.Dispatch(input.Event{
			Kind: input.PointerMove,
			X:    (float64(x) + 0.5) * cellWidth,
			Y:    (float64(y) + 0.5) * cellHeight,
		})
	case *tcell.EventFocus:
		if !ev.Focused {
			v.events.Dispatch(input.Event{Kind: input.PointerLeave})
		}
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			v.renderer.Field().Reseed()
		}
	}
	return false
}
