package notify

import (
	"fmt"
	"sync"
	"time"
)

// Subscriber is a callback invoked once per emitted notification.
type Subscriber func(Notification)

// Bus is a synchronous in-process notification bus. Emissions are dispatched
// inline to every current subscriber; with no subscribers the notification is
// simply dropped. The bus is not a durable queue: nothing is retained for
// subscribers that attach later.
//
// Emit is safe to call from any goroutine. Dispatch happens outside the bus
// lock so subscribers may emit again without deadlocking; consumers that need
// strict ordering under concurrent producers should order by Notification.ID.
type Bus struct {
	mu      sync.Mutex
	lastID  int64
	nextSub int64
	subs    []subscription
}

type subscription struct {
	id int64
	fn Subscriber
}

// NewBus creates an empty notification bus.
func NewBus() *Bus {
	return &Bus{}
}

// Emit assigns the next notification ID, stamps the creation time, and
// dispatches the notification to all current subscribers. It always succeeds
// and returns the assigned ID.
func (b *Bus) Emit(level Level, message string) int64 {
	b.mu.Lock()
	b.lastID++
	n := Notification{
		ID:        b.lastID,
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(n)
	}

	return n.ID
}

// Subscribe registers a callback invoked on every Emit, in emission order.
// The returned function removes the subscription; calling it more than once
// is a no-op.
func (b *Bus) Subscribe(fn Subscriber) func() {
	b.mu.Lock()
	b.nextSub++
	id := b.nextSub
	b.subs = append(b.subs, subscription{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Successf emits a success-level notification.
func (b *Bus) Successf(format string, args ...any) int64 {
	return b.Emit(LevelSuccess, fmt.Sprintf(format, args...))
}

// Errorf emits an error-level notification.
func (b *Bus) Errorf(format string, args ...any) int64 {
	return b.Emit(LevelError, fmt.Sprintf(format, args...))
}

// Infof emits an info-level notification.
func (b *Bus) Infof(format string, args ...any) int64 {
	return b.Emit(LevelInfo, fmt.Sprintf(format, args...))
}
