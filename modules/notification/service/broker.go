package service

import (
	"sync"

	"rsvp-manager/modules/notification/entity"
)

const subscriberBuffer = 16

// Broker is the in-process fan-out for live notifications. Each dashboard
// SSE connection holds one subscription; Publish never blocks on a slow
// consumer, it drops the event for that subscriber instead.
type Broker struct {
	mu   sync.Mutex
	next int
	subs map[int]chan *entity.Notification
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[int]chan *entity.Notification),
	}
}

// Subscribe returns a receive channel and its cancel func. Cancel is
// idempotent and closes the channel.
func (b *Broker) Subscribe() (<-chan *entity.Notification, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan *entity.Notification, subscriberBuffer)
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (b *Broker) Publish(notif *entity.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- notif:
		default:
			// subscriber is not keeping up; skip rather than block
		}
	}
}
