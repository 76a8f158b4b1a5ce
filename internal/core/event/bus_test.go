package event

import "testing"

type testEvent struct{ n int }
type otherEvent struct{}

func TestEventsDispatchedNextTickOnly(t *testing.T) {
	b := NewBus()
	var got []int
	Subscribe(b, func(ev testEvent) { got = append(got, ev.n) })

	b.Publish(testEvent{n: 1})
	b.DispatchAll()
	if len(got) != 0 {
		t.Fatal("events must not dispatch in the tick they were published")
	}

	b.SwapBuffers()
	b.DispatchAll()
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("got %v, want [1]", got)
	}

	// The buffer does not replay.
	b.SwapBuffers()
	b.DispatchAll()
	if len(got) != 1 {
		t.Fatal("a dispatched event must not replay on later ticks")
	}
}

func TestDispatchOrderIsPublicationOrder(t *testing.T) {
	b := NewBus()
	var got []int
	Subscribe(b, func(ev testEvent) { got = append(got, ev.n) })

	b.Publish(testEvent{n: 1})
	b.Publish(otherEvent{})
	b.Publish(testEvent{n: 2})
	b.SwapBuffers()
	b.DispatchAll()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("got %v, want [1 2]", got)
	}
}

func TestSubscribersInvokedInSubscriptionOrder(t *testing.T) {
	b := NewBus()
	var order []string
	Subscribe(b, func(testEvent) { order = append(order, "a") })
	Subscribe(b, func(testEvent) { order = append(order, "b") })

	b.Publish(testEvent{})
	b.SwapBuffers()
	b.DispatchAll()
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order = %v, want [a b]", order)
	}
}

func TestUnsubscribedTypeIgnored(t *testing.T) {
	b := NewBus()
	b.Publish(otherEvent{})
	b.SwapBuffers()
	b.DispatchAll() // no handler, no panic
}
