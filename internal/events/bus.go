package events

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Tópicos do barramento interno. O contrato é "refetch ao ser
// notificado": entrega ao menos uma vez, nunca transacional.
type Topic string

const (
	TopicClientUpdated Topic = "client.updated"
	TopicLedgerChanged Topic = "ledger.changed"
)

type Event struct {
	Topic    Topic
	EntityID uint
}

// Bus é um pub/sub em processo. Cada assinante recebe em um canal
// com buffer próprio; assinante lento perde eventos em vez de
// travar o publicador.
type Bus struct {
	mu   sync.RWMutex
	subs map[Topic][]chan Event
}

func New() *Bus {
	return &Bus{subs: make(map[Topic][]chan Event)}
}

func (b *Bus) Subscribe(t Topic) <-chan Event {
	ch := make(chan Event, 16)

	b.mu.Lock()
	b.subs[t] = append(b.subs[t], ch)
	b.mu.Unlock()

	return ch
}

func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	subs := b.subs[ev.Topic]
	b.mu.RUnlock()

	for _, ch := range subs {
		select {
		case ch <- ev:
		default:
			logrus.WithField("topic", ev.Topic).
				Warn("event subscriber buffer full, dropping event")
		}
	}
}
