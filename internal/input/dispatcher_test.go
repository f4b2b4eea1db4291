package input

import "testing"

func TestDispatchByKind(t *testing.T) {
	d := NewDispatcher()
	var moves, resizes int
	d.Subscribe(PointerMove, func(ev Event) { moves++ })
	d.Subscribe(Resize, func(ev Event) {
		resizes++
		if ev.Width != 800 || ev.Height != 600 {
			t.Errorf("resize dims = %vx%v", ev.Width, ev.Height)
		}
	})

	if n := d.Dispatch(Event{Kind: PointerMove, X: 1, Y: 2}); n != 1 {
		t.Fatalf("dispatch ran %d handlers, want 1", n)
	}
	d.Dispatch(Event{Kind: Resize, Width: 800, Height: 600})
	d.Dispatch(Event{Kind: TouchEnd})

	if moves != 1 || resizes != 1 {
		t.Fatalf("moves=%d resizes=%d", moves, resizes)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	off := d.Subscribe(TouchMove, func(Event) { calls++ })
	d.Subscribe(TouchMove, func(Event) { calls++ })
	if d.Len() != 2 {
		t.Fatalf("Len = %d", d.Len())
	}

	off()
	off()
	if d.Len() != 1 {
		t.Fatalf("Len after unsubscribe = %d", d.Len())
	}
	d.Dispatch(Event{Kind: TouchMove})
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestRemovalDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var second func()
	ran := 0
	d.Subscribe(PointerLeave, func(Event) {
		ran++
		second()
	})
	second = d.Subscribe(PointerLeave, func(Event) { ran++ })

	if n := d.Dispatch(Event{Kind: PointerLeave}); n != 1 {
		t.Fatalf("dispatch ran %d, want 1", n)
	}
	if ran != 1 {
		t.Fatalf("ran = %d", ran)
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		PointerMove:  "pointer-move",
		PointerLeave: "pointer-leave",
		TouchMove:    "touch-move",
		TouchEnd:     "touch-end",
		Resize:       "resize",
		Kind(42):     "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(k), got, want)
		}
	}
}
