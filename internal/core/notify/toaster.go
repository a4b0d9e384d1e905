package notify

import (
	"sync"
	"time"
)

// DisplayDuration is how long a toast stays visible before it expires.
const DisplayDuration = 3 * time.Second

// RenderFunc is called with each notification as it becomes visible.
type RenderFunc func(Notification)

// ToasterOption configures a Toaster.
type ToasterOption func(*Toaster)

// WithTTL overrides the display duration. Intended for tests and
// configuration; zero or negative values are ignored.
func WithTTL(d time.Duration) ToasterOption {
	return func(t *Toaster) {
		if d > 0 {
			t.ttl = d
		}
	}
}

// WithRenderFunc sets a callback invoked for each notification when it is
// added to the visible set.
func WithRenderFunc(fn RenderFunc) ToasterOption {
	return func(t *Toaster) {
		t.render = fn
	}
}

// Toaster is the rendering consumer of a Bus. It keeps the ordered set of
// currently visible notifications and expires each one after a fixed display
// duration. Expiry timers are cancelled on Detach; a timer that fires after
// detach (or after the toast was already dismissed) is a no-op.
type Toaster struct {
	ttl    time.Duration
	render RenderFunc

	mu          sync.Mutex
	visible     []Notification
	timers      map[int64]*time.Timer
	unsubscribe func()
	detached    bool
}

// NewToaster subscribes a new toast consumer to the bus.
func NewToaster(bus *Bus, opts ...ToasterOption) *Toaster {
	t := &Toaster{
		ttl:    DisplayDuration,
		timers: map[int64]*time.Timer{},
	}
	for _, opt := range opts {
		opt(t)
	}
	t.unsubscribe = bus.Subscribe(t.push)
	return t
}

func (t *Toaster) push(n Notification) {
	t.mu.Lock()
	if t.detached {
		t.mu.Unlock()
		return
	}
	t.visible = append(t.visible, n)
	t.timers[n.ID] = time.AfterFunc(t.ttl, func() {
		t.Dismiss(n.ID)
	})
	render := t.render
	t.mu.Unlock()

	if render != nil {
		render(n)
	}
}

// Dismiss removes a notification from the visible set and cancels its expiry
// timer. Dismissing an unknown or already-removed ID is a no-op.
func (t *Toaster) Dismiss(id int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.detached {
		return
	}
	if timer, ok := t.timers[id]; ok {
		timer.Stop()
		delete(t.timers, id)
	}
	for i, n := range t.visible {
		if n.ID == id {
			t.visible = append(t.visible[:i:i], t.visible[i+1:]...)
			return
		}
	}
}

// Visible returns a copy of the currently visible notifications in emission
// order.
func (t *Toaster) Visible() []Notification {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Notification, len(t.visible))
	copy(out, t.visible)
	return out
}

// Detach unsubscribes from the bus, cancels all pending expiry timers, and
// clears the visible set. Detach is idempotent; notifications emitted after
// detach are never delivered to this consumer.
func (t *Toaster) Detach() {
	t.mu.Lock()
	if t.detached {
		t.mu.Unlock()
		return
	}
	t.detached = true
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
	t.visible = nil
	unsubscribe := t.unsubscribe
	t.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}
