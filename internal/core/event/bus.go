package event

import "reflect"

// Bus is a double-buffered event bus. Events published during tick N are
// dispatched at the start of tick N+1 (EventDispatchSystem swaps the buffers
// in PhasePreUpdate). This guarantees every subscriber observes a consistent
// post-tick snapshot and makes dispatch order deterministic: publication order.
//
// Accessed only from the game loop goroutine, no locks.
type Bus struct {
	current  []any
	next     []any
	handlers map[reflect.Type][]func(any)
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[reflect.Type][]func(any))}
}

// Publish queues an event for dispatch on the next tick.
func (b *Bus) Publish(ev any) {
	b.next = append(b.next, ev)
}

// SwapBuffers moves next-tick events into the current dispatch queue.
func (b *Bus) SwapBuffers() {
	b.current, b.next = b.next, b.current[:0]
}

// DispatchAll delivers every event in the current buffer to its subscribers.
func (b *Bus) DispatchAll() {
	for _, ev := range b.current {
		for _, h := range b.handlers[reflect.TypeOf(ev)] {
			h(ev)
		}
	}
}

// Subscribe registers a typed handler. Handlers for the same event type are
// invoked in subscription order.
func Subscribe[T any](b *Bus, fn func(T)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.handlers[t] = append(b.handlers[t], func(ev any) {
		fn(ev.(T))
	})
}
