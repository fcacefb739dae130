package keytrail

import "time"

type (
	Keycode  uint32
	Keysym   uint32
	Window   uint64
	DeviceID uint64
)

// NoWindow is the null window handle.
const NoWindow Window = 0

// Modifiers mirrors the X11 core modifier state mask.
type Modifiers uint16

const (
	ModShift Modifiers = 1 << iota
	ModLock
	ModControl
	ModAlt
	ModNumLock
	ModMod3
	ModSuper
	ModAltGr
)

func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod != 0
}

type DeviceUse int

const (
	UseUnknown DeviceUse = iota
	UsePointer
	UseKeyboard
	UseExtensionDevice
	UseExtensionKeyboard
	UseExtensionPointer
)

type DeviceInfo struct {
	ID   DeviceID
	Name string
	Use  DeviceUse
}

// DeviceHandle is an opened input device. It is held until process exit.
type DeviceHandle struct {
	ID   DeviceID
	Name string
}

// RawKeyEvent is a single key press as delivered by a bound device.
type RawKeyEvent struct {
	// Time is the local wall clock at retrieval.
	Time time.Time
	// ServerTime is the X server timestamp in milliseconds.
	ServerTime uint32
	Serial     uint64
	Device     DeviceID
	Keycode    Keycode
	// Keysym is the keycode resolved with no modifiers applied.
	Keysym Keysym
	State  Modifiers

	Window     Window
	Root       Window
	Subwindow  Window
	X, Y       int
	XRoot      int
	YRoot      int
	SameScreen bool
}

type CompositionResult struct {
	Composed bool
	Keysym   Keysym
	Text     string
}

type FocusKind int

const (
	FocusTitled FocusKind = iota
	FocusUntitled
	FocusNone
)

const (
	TitleNoActiveWindow = "(no active window)"
	TitleUntitled       = "(no title)"
)

type FocusSnapshot struct {
	Window Window
	Title  string
	Kind   FocusKind
}

func NoFocus() FocusSnapshot {
	return FocusSnapshot{Window: NoWindow, Title: TitleNoActiveWindow, Kind: FocusNone}
}

type EnrichedEvent struct {
	Key         RawKeyEvent
	Composition CompositionResult
	Focus       FocusSnapshot
}
