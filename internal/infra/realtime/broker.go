package realtime

import (
	"context"
	"log/slog"
	"sync"
)

// Broker fans room payloads out to every subscriber of that room.
type Broker interface {
	Publish(ctx context.Context, room string, payload []byte) error
	Subscribe(ctx context.Context, room string) (Subscription, error)
}

type Subscription interface {
	C() <-chan []byte
	Close() error
}

const subscriberBuffer = 64

// MemoryBroker is the in-process relay used when Redis is not configured.
// A subscriber that falls a full buffer behind loses events rather than stalling publishers.
type MemoryBroker struct {
	mu    sync.RWMutex
	rooms map[string]map[*memorySubscription]struct{}
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{rooms: make(map[string]map[*memorySubscription]struct{})}
}

func (b *MemoryBroker) Publish(_ context.Context, room string, payload []byte) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for sub := range b.rooms[room] {
		select {
		case sub.ch <- payload:
		default:
			slog.Warn("Dropping realtime event for slow subscriber", "room", room)
		}
	}
	return nil
}

func (b *MemoryBroker) Subscribe(ctx context.Context, room string) (Subscription, error) {
	sub := &memorySubscription{
		broker: b,
		room:   room,
		ch:     make(chan []byte, subscriberBuffer),
	}

	b.mu.Lock()
	if b.rooms[room] == nil {
		b.rooms[room] = make(map[*memorySubscription]struct{})
	}
	b.rooms[room][sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = sub.Close()
	}()
	return sub, nil
}

func (b *MemoryBroker) subscribers(room string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.rooms[room])
}

func (b *MemoryBroker) remove(sub *memorySubscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.rooms[sub.room]
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(b.rooms, sub.room)
	}
	close(sub.ch)
}

type memorySubscription struct {
	broker *MemoryBroker
	room   string
	ch     chan []byte
	once   sync.Once
}

func (s *memorySubscription) C() <-chan []byte {
	return s.ch
}

func (s *memorySubscription) Close() error {
	s.once.Do(func() { s.broker.remove(s) })
	return nil
}
