package event

// Listener receives a published event. It must not retain the event.
type Listener func(*Event)

// Subscription is the handle returned by Subscribe; pass it to Unsubscribe.
type Subscription struct {
	id  ID
	seq uint64
}

type listenerEntry struct {
	seq uint64
	fn  Listener
}

// Bus is a synchronous publish/subscribe channel keyed by event ID.
// Single-goroutine access only (game loop).
//
// A listener that publishes re-enters dispatch immediately; cycles are not
// detected.
type Bus struct {
	listeners map[ID][]listenerEntry
	nextSeq   uint64
}

func NewBus() *Bus {
	return &Bus{
		listeners: make(map[ID][]listenerEntry),
	}
}

// Subscribe appends fn to the listeners of id. The same function may be
// subscribed more than once and is then called once per subscription.
func (b *Bus) Subscribe(id ID, fn Listener) Subscription {
	b.nextSeq++
	b.listeners[id] = append(b.listeners[id], listenerEntry{seq: b.nextSeq, fn: fn})
	return Subscription{id: id, seq: b.nextSeq}
}

// Unsubscribe removes the listener behind sub. Returns false if it was
// already removed.
func (b *Bus) Unsubscribe(sub Subscription) bool {
	ls := b.listeners[sub.id]
	for i, l := range ls {
		if l.seq != sub.seq {
			continue
		}
		// Copy instead of shifting in place: a dispatch in progress may be
		// ranging over the old slice.
		next := make([]listenerEntry, 0, len(ls)-1)
		next = append(next, ls[:i]...)
		next = append(next, ls[i+1:]...)
		if len(next) == 0 {
			delete(b.listeners, sub.id)
		} else {
			b.listeners[sub.id] = next
		}
		return true
	}
	return false
}

// Publish calls every listener subscribed to ev's id when dispatch starts, in
// subscription order.
func (b *Bus) Publish(ev *Event) {
	for _, l := range b.listeners[ev.id] {
		l.fn(ev)
	}
}

// PublishID publishes an event with no payload.
func (b *Bus) PublishID(id ID) {
	b.Publish(New(id))
}

// Listeners returns the number of subscriptions for id.
func (b *Bus) Listeners(id ID) int {
	return len(b.listeners[id])
}
