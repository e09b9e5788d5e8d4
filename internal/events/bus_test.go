package events

import (
	"testing"
	"time"
)

func TestPublishDeliversToAllSubscribers(t *testing.T) {
	bus := New()

	a := bus.Subscribe(TopicClientUpdated)
	b := bus.Subscribe(TopicClientUpdated)
	other := bus.Subscribe(TopicLedgerChanged)

	bus.Publish(Event{Topic: TopicClientUpdated, EntityID: 9})

	for name, ch := range map[string]<-chan Event{"a": a, "b": b} {
		select {
		case ev := <-ch:
			if ev.EntityID != 9 {
				t.Fatalf("subscriber %s got entity %d", name, ev.EntityID)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %s got nothing", name)
		}
	}

	select {
	case ev := <-other:
		t.Fatalf("wrong-topic subscriber got %+v", ev)
	default:
	}
}

func TestPublishDropsWhenBufferFull(t *testing.T) {
	bus := New()
	ch := bus.Subscribe(TopicLedgerChanged)

	// Estoura o buffer sem consumidor; Publish não pode bloquear.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			bus.Publish(Event{Topic: TopicLedgerChanged, EntityID: uint(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full subscriber")
	}

	if len(ch) != cap(ch) {
		t.Fatalf("expected full buffer, got %d/%d", len(ch), cap(ch))
	}
}
