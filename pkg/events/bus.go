package events

import "sync"

// defaultSubscriberBuffer is the per-subscriber channel capacity.
const defaultSubscriberBuffer = 64

// Bus is an in-process topic fan-out. Publish never blocks: when a
// subscriber's buffer is full, its oldest undelivered event is dropped to
// make room. Per-publisher order is preserved for a keeping-up subscriber.
type Bus struct {
	mu     sync.RWMutex
	topics map[string]map[int]chan []byte
	nextID int
	closed bool
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{topics: make(map[string]map[int]chan []byte)}
}

// Subscribe registers for a topic. The returned cancel function must be
// called exactly once; the channel is closed by cancel (or by Close).
func (b *Bus) Subscribe(topic string) (<-chan []byte, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan []byte, defaultSubscriberBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	subs, ok := b.topics[topic]
	if !ok {
		subs = make(map[int]chan []byte)
		b.topics[topic] = subs
	}
	subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if subs, ok := b.topics[topic]; ok {
				if sub, ok := subs[id]; ok {
					delete(subs, id)
					close(sub)
					if len(subs) == 0 {
						delete(b.topics, topic)
					}
				}
			}
		})
	}
	return ch, cancel
}

// Publish delivers payload to every subscriber of topic. Dropped silently
// when nobody subscribes or a subscriber lags.
func (b *Bus) Publish(topic string, payload []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.topics[topic] {
		select {
		case ch <- payload:
		default:
			// Subscriber is full: drop its oldest event, then retry once.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- payload:
			default:
			}
		}
	}
}

// SubscriberCount returns the number of subscribers on a topic.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}

// Close shuts the bus down, closing every subscriber channel. Subsequent
// publishes are no-ops.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for topic, subs := range b.topics {
		for id, ch := range subs {
			close(ch)
			delete(subs, id)
		}
		delete(b.topics, topic)
	}
}
