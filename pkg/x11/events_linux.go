//go:build cgo

package x11

/*
#include <X11/XKBlib.h>
#include "xhelpers.h"
*/
import "C"

import "codeberg.org/miketth/keytrail/pkg/keytrail"

// NextKeyPress blocks in XNextEvent until a bound device delivers a key
// press. Other events, including stray core key events, are dropped.
// A lost connection is handled by Xlib's I/O error handler, which exits
// the process.
func (d *Display) NextKeyPress() (keytrail.RawKeyEvent, error) {
	var raw C.kt_key_event
	for {
		evType := C.kt_next_event(d.dpy, &raw)
		if d.pressTypes[evType] {
			return fromKeyEvent(&raw), nil
		}
	}
}

func fromKeyEvent(raw *C.kt_key_event) keytrail.RawKeyEvent {
	return keytrail.RawKeyEvent{
		ServerTime: uint32(raw.time),
		Serial:     uint64(raw.serial),
		Device:     keytrail.DeviceID(raw.deviceid),
		Keycode:    keytrail.Keycode(raw.keycode),
		State:      keytrail.Modifiers(raw.state),
		Window:     keytrail.Window(raw.window),
		Root:       keytrail.Window(raw.root),
		Subwindow:  keytrail.Window(raw.subwindow),
		X:          int(raw.x),
		Y:          int(raw.y),
		XRoot:      int(raw.x_root),
		YRoot:      int(raw.y_root),
		SameScreen: raw.same_screen != 0,
	}
}

func toKeyEvent(ev keytrail.RawKeyEvent) C.kt_key_event {
	var raw C.kt_key_event
	raw.serial = C.ulong(ev.Serial)
	raw.window = C.Window(ev.Window)
	raw.root = C.Window(ev.Root)
	raw.subwindow = C.Window(ev.Subwindow)
	raw.time = C.Time(ev.ServerTime)
	raw.x = C.int(ev.X)
	raw.y = C.int(ev.Y)
	raw.x_root = C.int(ev.XRoot)
	raw.y_root = C.int(ev.YRoot)
	raw.state = C.uint(ev.State)
	raw.keycode = C.uint(ev.Keycode)
	if ev.SameScreen {
		raw.same_screen = 1
	}
	raw.deviceid = C.XID(ev.Device)
	return raw
}

// BaseKeysym resolves code in group 0, level 0, i.e. with no modifiers.
func (d *Display) BaseKeysym(code keytrail.Keycode) keytrail.Keysym {
	return keytrail.Keysym(C.XkbKeycodeToKeysym(d.dpy, C.KeyCode(code), 0, 0))
}

func (d *Display) KeysymName(sym keytrail.Keysym) string {
	name := C.XKeysymToString(C.KeySym(sym))
	if name == nil {
		return ""
	}
	// XKeysymToString returns static storage.
	return C.GoString(name)
}
