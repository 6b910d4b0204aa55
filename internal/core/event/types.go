package event

// Events published by the window/input collaborator.

var (
	WindowResize       = Name("Events::Window::Resize::ID")
	WindowResizeWidth  = Param("Events::Window::Resize::WIDTH")
	WindowResizeHeight = Param("Events::Window::Resize::HEIGHT")
)

// InputKey is published from the key callback, once per key transition.
var (
	InputKey         = Name("Events::Input::Async::Key::ID")
	InputKeyKey      = Param("Events::Input::Async::Key::KEY")
	InputKeyScancode = Param("Events::Input::Async::Key::SCANCODE")
	InputKeyAction   = Param("Events::Input::Async::Key::ACTION")
	InputKeyMods     = Param("Events::Input::Async::Key::MODS")
)

// InputKeys carries the full keyboard state, once per frame.
var (
	InputKeys     = Name("Events::Input::Sync::Key::ID")
	InputKeysKeys = Param("Events::Input::Sync::Key::KEYS")
)

// Key actions carried by InputKeyAction.
const (
	ActionRelease int64 = iota
	ActionPress
	ActionRepeat
)
