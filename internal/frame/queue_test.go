package frame

import "testing"

func TestRequestRunsOnNextTick(t *testing.T) {
	q := NewQueue()
	ran := 0
	h := q.Request(func() { ran++ })
	if h == 0 {
		t.Fatal("zero handle issued")
	}
	if q.Pending() != 1 {
		t.Fatalf("Pending = %d", q.Pending())
	}
	if n := q.Tick(); n != 1 || ran != 1 {
		t.Fatalf("Tick = %d, ran = %d", n, ran)
	}
	if n := q.Tick(); n != 0 {
		t.Fatalf("second Tick ran %d callbacks", n)
	}
}

func TestSelfRequestingLoop(t *testing.T) {
	q := NewQueue()
	frames := 0
	var loop func()
	loop = func() {
		frames++
		q.Request(loop)
	}
	q.Request(loop)

	for i := 0; i < 5; i++ {
		if n := q.Tick(); n != 1 {
			t.Fatalf("tick %d ran %d callbacks, want 1", i, n)
		}
	}
	if frames != 5 {
		t.Fatalf("frames = %d", frames)
	}
	if q.Pending() != 1 {
		t.Fatalf("Pending = %d", q.Pending())
	}
}

func TestCancel(t *testing.T) {
	q := NewQueue()
	ran := false
	h := q.Request(func() { ran = true })
	q.Cancel(h)
	q.Cancel(h)
	q.Cancel(Handle(999))

	if q.Pending() != 0 {
		t.Fatalf("Pending = %d", q.Pending())
	}
	q.Tick()
	if ran {
		t.Fatal("cancelled callback ran")
	}
}

func TestCancelWithinTick(t *testing.T) {
	q := NewQueue()
	var second Handle
	secondRan := false
	q.Request(func() { q.Cancel(second) })
	second = q.Request(func() { secondRan = true })

	if n := q.Tick(); n != 1 {
		t.Fatalf("Tick = %d, want 1", n)
	}
	if secondRan {
		t.Fatal("callback cancelled mid-tick still ran")
	}
}
