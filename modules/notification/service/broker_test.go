package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsvp-manager/modules/notification/entity"
)

func TestBrokerFanOut(t *testing.T) {
	b := NewBroker()

	sub1, cancel1 := b.Subscribe()
	sub2, cancel2 := b.Subscribe()
	defer cancel1()
	defer cancel2()

	notif := &entity.Notification{Title: "RSVP Update"}
	b.Publish(notif)

	assert.Same(t, notif, <-sub1)
	assert.Same(t, notif, <-sub2)
}

func TestBrokerCancelStopsDelivery(t *testing.T) {
	b := NewBroker()

	sub, cancel := b.Subscribe()
	cancel()

	// channel is closed; further publishes must not panic
	b.Publish(&entity.Notification{Title: "after cancel"})

	_, open := <-sub
	assert.False(t, open)
}

func TestBrokerCancelIsIdempotent(t *testing.T) {
	b := NewBroker()

	_, cancel := b.Subscribe()
	cancel()
	assert.NotPanics(t, cancel)
}

func TestBrokerDropsWhenSubscriberFull(t *testing.T) {
	b := NewBroker()

	sub, cancel := b.Subscribe()
	defer cancel()

	for i := 0; i < subscriberBuffer+5; i++ {
		b.Publish(&entity.Notification{Title: "burst"})
	}

	received := 0
	for {
		select {
		case <-sub:
			received++
			continue
		default:
		}
		break
	}
	require.Equal(t, subscriberBuffer, received)
}
