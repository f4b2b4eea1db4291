// Package frame provides a cooperative animation-frame queue. Hosts call
// Tick once per display refresh; callbacks request themselves again to keep
// a loop alive.
package frame

// Handle identifies a requested callback. The zero Handle is never issued.
type Handle uint64

type entry struct {
	h  Handle
	fn func()
}

// Queue is not safe for concurrent use.
type Queue struct {
	next    Handle
	pending []entry
	running []entry // batch of the Tick in progress
}

func NewQueue() *Queue {
	return &Queue{}
}

// Request schedules fn for the next Tick.
func (q *Queue) Request(fn func()) Handle {
	q.next++
	q.pending = append(q.pending, entry{h: q.next, fn: fn})
	return q.next
}

// Cancel drops a callback that has not run yet, including one still waiting
// in the batch of the current Tick. Unknown handles are ignored.
func (q *Queue) Cancel(h Handle) {
	for i, e := range q.running {
		if e.h == h {
			q.running[i].fn = nil
			return
		}
	}
	for i, e := range q.pending {
		if e.h == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Tick runs the callbacks that were pending when it was called and returns
// how many ran. Callbacks requested during the tick wait for the next one.
func (q *Queue) Tick() int {
	q.running = q.pending
	q.pending = nil
	n := 0
	for i := range q.running {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		q.running[i].fn = nil
		fn()
		n++
	}
	q.running = nil
	return n
}

// Pending returns the number of callbacks waiting for the next Tick.
func (q *Queue) Pending() int {
	return len(q.pending)
}
