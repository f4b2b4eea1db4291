package input

// Kind identifies an input signal delivered to the renderer.
type Kind int

const (
	PointerMove Kind = iota
	PointerLeave
	TouchMove
	TouchEnd
	Resize
)

func (k Kind) String() string {
	switch k {
	case PointerMove:
		return "pointer-move"
	case PointerLeave:
		return "pointer-leave"
	case TouchMove:
		return "touch-move"
	case TouchEnd:
		return "touch-end"
	case Resize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event carries coordinates for pointer and touch kinds and dimensions for Resize.
type Event struct {
	Kind          Kind
	X, Y          float64
	Width, Height float64
}

type Handler func(Event)

type listener struct {
	id   uint64
	kind Kind
	fn   Handler
}

// Dispatcher is a listener registry. It is not safe for concurrent use;
// hosts deliver events from the same goroutine that drives frames.
type Dispatcher struct {
	nextID    uint64
	listeners []listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers fn for events of kind. The returned func removes the
// listener; calling it more than once is harmless.
func (d *Dispatcher) Subscribe(kind Kind, fn Handler) func() {
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, listener{id: id, kind: kind, fn: fn})
	return func() { d.remove(id) }
}

func (d *Dispatcher) remove(id uint64) {
	for i, l := range d.listeners {
		if l.id == id {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Dispatch calls the listeners of ev.Kind in subscription order and reports
// how many ran. Listeners removed by an earlier handler in the same dispatch
// are skipped.
func (d *Dispatcher) Dispatch(ev Event) int {
	var ids []uint64
	for _, l := range d.listeners {
		if l.kind == ev.Kind {
			ids = append(ids, l.id)
		}
	}
	n := 0
	for _, id := range ids {
		if fn := d.lookup(id); fn != nil {
			fn(ev)
			n++
		}
	}
	return n
}

func (d *Dispatcher) lookup(id uint64) Handler {
	for _, l := range d.listeners {
		if l.id == id {
			return l.fn
		}
	}
	return nil
}

// Len returns the number of active listeners of every kind.
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}
