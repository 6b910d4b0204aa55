package system

import (
	"time"

	"github.com/quadgo/engine/internal/core/event"
	coresys "github.com/quadgo/engine/internal/core/system"
	"github.com/quadgo/engine/internal/platform"
)

// KeyEscape is the key code that closes the window.
const KeyEscape = 256

// InputSystem polls the window once per frame so the keyboard snapshot is
// published before any game logic runs. Phase 0 (Input).
//
// It is not an ECS system: it owns no entities.
type InputSystem struct {
	window *platform.Window
	sub    event.Subscription
}

func NewInputSystem(window *platform.Window, bus *event.Bus) *InputSystem {
	s := &InputSystem{window: window}
	s.sub = bus.Subscribe(event.InputKey, s.onKey)
	return s
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(_ time.Duration) {
	s.window.Poll()
}

func (s *InputSystem) onKey(ev *event.Event) {
	key, err := ev.Int(event.InputKeyKey)
	if err != nil {
		return
	}
	action, err := ev.Int(event.InputKeyAction)
	if err != nil {
		return
	}
	if key == KeyEscape && action == event.ActionPress {
		s.window.Close()
	}
}
