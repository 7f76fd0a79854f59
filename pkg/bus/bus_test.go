package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	b := New[string]()
	var order []string

	b.Subscribe(func(s string) { order = append(order, "first:"+s) })
	b.Subscribe(func(s string) { order = append(order, "second:"+s) })

	b.Publish("evt")

	assert.Equal(t, []string{"first:evt", "second:evt"}, order)
}

func TestUnsubscribeRemovesByHandle(t *testing.T) {
	b := New[int]()
	var got []int

	sub := b.Subscribe(func(n int) { got = append(got, n) })
	b.Publish(1)
	b.Unsubscribe(sub)
	b.Publish(2)

	assert.Equal(t, []int{1}, got)
	assert.Equal(t, 0, b.SubscriberCount())
}

func TestSubscriberUnsubscribingItselfMidFanOut(t *testing.T) {
	b := New[int]()
	var firstCalls, lastCalls int

	b.Subscribe(func(int) { firstCalls++ })

	var self *Subscription[int]
	self = b.Subscribe(func(int) {
		b.Unsubscribe(self)
	})

	b.Subscribe(func(int) { lastCalls++ })

	// Must not panic, and the subscriber after the self-removing one
	// still receives the event.
	b.Publish(1)
	assert.Equal(t, 1, firstCalls)
	assert.Equal(t, 1, lastCalls)
	assert.Equal(t, 2, b.SubscriberCount())

	b.Publish(2)
	assert.Equal(t, 2, firstCalls)
	assert.Equal(t, 2, lastCalls)
}

func TestPanickingSubscriberDoesNotStopDelivery(t *testing.T) {
	b := New[int]()
	var delivered int

	b.Subscribe(func(int) { panic("boom") })
	b.Subscribe(func(int) { delivered++ })

	assert.NotPanics(t, func() { b.Publish(1) })
	assert.Equal(t, 1, delivered)
}

func TestLateSubscriberMissesEarlierEvents(t *testing.T) {
	b := New[int]()
	b.Publish(1)

	var got []int
	b.Subscribe(func(n int) { got = append(got, n) })
	b.Publish(2)

	assert.Equal(t, []int{2}, got)
}
