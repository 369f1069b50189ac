package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, ch <-chan []byte) []byte {
	t.Helper()
	select {
	case payload := <-ch:
		return payload
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestBusDeliversToSubscribers(t *testing.T) {
	bus := NewBus()
	ch1, cancel1 := bus.Subscribe("topic-a")
	defer cancel1()
	ch2, cancel2 := bus.Subscribe("topic-a")
	defer cancel2()
	other, cancelOther := bus.Subscribe("topic-b")
	defer cancelOther()

	bus.Publish("topic-a", []byte("hello"))

	assert.Equal(t, []byte("hello"), recv(t, ch1))
	assert.Equal(t, []byte("hello"), recv(t, ch2))
	select {
	case <-other:
		t.Fatal("topic-b subscriber received a topic-a event")
	default:
	}
}

func TestBusPublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := NewBus()
	bus.Publish("nobody", []byte("dropped"))
}

func TestBusCancelClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe("topic")
	require.Equal(t, 1, bus.SubscriberCount("topic"))

	cancel()
	cancel() // idempotent

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, bus.SubscriberCount("topic"))
}

func TestBusSlowSubscriberDropsOldest(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe("topic")
	defer cancel()

	// Overfill the buffer; publishing must never block.
	for i := 0; i < defaultSubscriberBuffer+10; i++ {
		bus.Publish("topic", []byte{byte(i)})
	}

	// The newest event survives somewhere in the buffer.
	var last []byte
	for {
		select {
		case payload := <-ch:
			last = payload
			continue
		default:
		}
		break
	}
	require.NotNil(t, last)
	assert.Equal(t, byte(defaultSubscriberBuffer+9), last[0], "the newest event is retained")
}

func TestBusOrderPreservedForKeepingUpSubscriber(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe("topic")
	defer cancel()

	for i := 0; i < 10; i++ {
		bus.Publish("topic", []byte{byte(i)})
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, byte(i), recv(t, ch)[0])
	}
}

func TestBusClose(t *testing.T) {
	bus := NewBus()
	ch, _ := bus.Subscribe("topic")

	bus.Close()
	_, open := <-ch
	assert.False(t, open)

	bus.Publish("topic", []byte("after close"))

	late, _ := bus.Subscribe("topic")
	_, open = <-late
	assert.False(t, open, "subscribing to a closed bus yields a closed channel")
}
