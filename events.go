package state

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	eventEntropy     = ulid.Monotonic(rand.Reader, 0)
	eventEntropyLock sync.Mutex
)

func newEventID() ulid.ULID {
	eventEntropyLock.Lock()
	defer eventEntropyLock.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), eventEntropy)
}

// Event is one entry in the Events queue.
type Event struct {
	ID      ulid.ULID
	Kind    string
	Payload any
}

// Events is a FIFO queue of engine events, drained once per frame.
type Events struct {
	queue []Event
}

// Len reports how many events are queued.
func (e *Events) Len() int {
	return len(e.queue)
}

// Push queues a new event and returns its ID.
func (e *Events) Push(kind string, payload any) ulid.ULID {
	ev := Event{ID: newEventID(), Kind: kind, Payload: payload}
	e.queue = append(e.queue, ev)
	return ev.ID
}

// PushEvent queues ev as is, assigning an ID if it has none.
func (e *Events) PushEvent(ev Event) ulid.ULID {
	if ev.ID.IsZero() {
		ev.ID = newEventID()
	}
	e.queue = append(e.queue, ev)
	return ev.ID
}

// Peek returns the oldest queued event without removing it.
func (e *Events) Peek() (Event, bool) {
	if len(e.queue) == 0 {
		return Event{}, false
	}
	return e.queue[0], true
}

// Pop removes and returns the oldest queued event.
func (e *Events) Pop() (Event, bool) {
	if len(e.queue) == 0 {
		return Event{}, false
	}
	ev := e.queue[0]
	e.queue[0] = Event{}
	e.queue = e.queue[1:]
	return ev, true
}

// Drain returns queued events in arrival order and resets the queue.
func (e *Events) Drain() []Event {
	drained := e.queue
	e.queue = nil
	return drained
}

// Snapshot returns the current queue length so callers can restore later.
func (e *Events) Snapshot() int {
	return len(e.queue)
}

// Restore truncates the queue back to the provided snapshot.
func (e *Events) Restore(snapshot int) {
	if snapshot < 0 {
		snapshot = 0
	}
	if snapshot >= len(e.queue) {
		return
	}
	clear(e.queue[snapshot:])
	e.queue = e.queue[:snapshot]
}

// FromRegistry implements FromRegistry.
func (Events) FromRegistry(r *Registry) (Cell[Events], error) {
	return Get[Events](r)
}
