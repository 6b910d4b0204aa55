package platform

import (
	"github.com/quadgo/engine/internal/core/event"
	"go.uber.org/zap"
)

// Window is a headless stand-in for the OS window. It owns the keyboard
// state and size, and reports changes only through the event bus.
type Window struct {
	title  string
	width  int
	height int
	keys   event.KeySet
	closed bool
	bus    *event.Bus
	log    *zap.Logger
}

func NewWindow(title string, width, height int, bus *event.Bus, log *zap.Logger) *Window {
	return &Window{
		title:  title,
		width:  width,
		height: height,
		bus:    bus,
		log:    log,
	}
}

func (w *Window) Title() string     { return w.title }
func (w *Window) Size() (int, int)  { return w.width, w.height }
func (w *Window) ShouldClose() bool { return w.closed }
func (w *Window) Close()            { w.closed = true }

// Resize records the new framebuffer size and publishes WindowResize.
func (w *Window) Resize(width, height int) {
	w.width, w.height = width, height
	w.bus.Publish(event.New(event.WindowResize).
		SetInt(event.WindowResizeWidth, int64(width)).
		SetInt(event.WindowResizeHeight, int64(height)))
}

// Key feeds one key transition, as the OS key callback would.
func (w *Window) Key(key, scancode int, action int64, mods int) {
	w.log.Debug("key", zap.Int("key", key), zap.Int64("action", action))
	w.keys.Set(key, action != event.ActionRelease)
	w.bus.Publish(event.New(event.InputKey).
		SetInt(event.InputKeyKey, int64(key)).
		SetInt(event.InputKeyScancode, int64(scancode)).
		SetInt(event.InputKeyAction, action).
		SetInt(event.InputKeyMods, int64(mods)))
}

// Poll publishes the current keyboard snapshot. Called once per frame.
func (w *Window) Poll() {
	w.bus.Publish(event.New(event.InputKeys).SetKeys(event.InputKeysKeys, w.keys))
}
