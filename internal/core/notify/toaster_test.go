package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToaster_receives_in_emission_order(t *testing.T) {
	bus := NewBus()
	toaster := NewToaster(bus)
	t.Cleanup(toaster.Detach)

	bus.Infof("a")
	bus.Errorf("b")
	bus.Successf("c")

	visible := toaster.Visible()
	require.Len(t, visible, 3)
	assert.Equal(t, "a", visible[0].Message)
	assert.Equal(t, "b", visible[1].Message)
	assert.Equal(t, "c", visible[2].Message)
	assert.Less(t, visible[0].ID, visible[1].ID)
	assert.Less(t, visible[1].ID, visible[2].ID)
}

func TestToaster_expires_after_ttl(t *testing.T) {
	bus := NewBus()
	toaster := NewToaster(bus, WithTTL(30*time.Millisecond))
	t.Cleanup(toaster.Detach)

	bus.Infof("short lived")
	require.Len(t, toaster.Visible(), 1)

	assert.Eventually(t, func() bool {
		return len(toaster.Visible()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestToaster_recent_toast_still_visible(t *testing.T) {
	bus := NewBus()
	toaster := NewToaster(bus, WithTTL(time.Minute))
	t.Cleanup(toaster.Detach)

	bus.Infof("fresh")
	time.Sleep(20 * time.Millisecond)

	assert.Len(t, toaster.Visible(), 1)
}

func TestToaster_dismiss_is_double_removal_safe(t *testing.T) {
	bus := NewBus()
	toaster := NewToaster(bus, WithTTL(time.Minute))
	t.Cleanup(toaster.Detach)

	id := bus.Infof("dismiss me")
	toaster.Dismiss(id)
	toaster.Dismiss(id)
	toaster.Dismiss(9999)

	assert.Empty(t, toaster.Visible())
}

func TestToaster_detach_stops_delivery(t *testing.T) {
	bus := NewBus()
	toaster := NewToaster(bus, WithTTL(10*time.Millisecond))

	bus.Infof("before detach")
	toaster.Detach()
	bus.Infof("after detach")

	assert.Empty(t, toaster.Visible())

	// Pending expiry timers were cancelled; give any stray timer a chance
	// to fire and verify nothing blows up against the detached consumer.
	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, toaster.Visible())
}

func TestToaster_detach_is_idempotent(t *testing.T) {
	bus := NewBus()
	toaster := NewToaster(bus)

	toaster.Detach()
	toaster.Detach()

	bus.Infof("nobody home")
	assert.Empty(t, toaster.Visible())
}

func TestToaster_render_func_invoked(t *testing.T) {
	bus := NewBus()

	var rendered []string
	toaster := NewToaster(bus, WithRenderFunc(func(n Notification) {
		rendered = append(rendered, n.Message)
	}))
	t.Cleanup(toaster.Detach)

	bus.Successf("painted")

	require.Len(t, rendered, 1)
	assert.Equal(t, "painted", rendered[0])
}
