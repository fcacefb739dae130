package keytrail

type DeviceLister interface {
	ListDevices() ([]DeviceInfo, error)
}

// DeviceOpener opens a device and registers key press delivery for it.
type DeviceOpener interface {
	DeviceLister
	OpenDevice(info DeviceInfo) (DeviceHandle, error)
}

type EventSource interface {
	// NextKeyPress blocks until a bound device reports a key press.
	NextKeyPress() (RawKeyEvent, error)
}

type KeysymResolver interface {
	BaseKeysym(code Keycode) Keysym
}

type PropertyReader interface {
	// ActiveWindow returns NoWindow when nothing has focus.
	ActiveWindow() (Window, error)
	// WindowTitle reports ok=false when the window has no title property.
	WindowTitle(w Window) (title string, ok bool, err error)
}

type LookupStatus int

const (
	LookupNone LookupStatus = iota
	LookupChars
	LookupKeysym
	LookupBoth
	LookupBufferOverflow
)

type InputContext interface {
	// Lookup runs ev through the input method with a text buffer of bufSize bytes.
	Lookup(ev RawKeyEvent, bufSize int) (Keysym, string, LookupStatus)
}

type Emitter interface {
	Emit(ev EnrichedEvent, history *FocusHistory)
}
