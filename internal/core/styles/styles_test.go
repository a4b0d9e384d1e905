package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/issuectl/internal/core/notify"
)

func TestRenderNotification(t *testing.T) {
	tests := []struct {
		name  string
		level notify.Level
		icon  string
	}{
		{name: "success", level: notify.LevelSuccess, icon: "✓"},
		{name: "error", level: notify.LevelError, icon: "✗"},
		{name: "info", level: notify.LevelInfo, icon: "•"},
		{name: "unknown falls back to info", level: notify.Level("weird"), icon: "•"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderNotification(notify.Notification{Level: tt.level, Message: "hello"})
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "hello")
		})
	}
}
