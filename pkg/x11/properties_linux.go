//go:build cgo

package x11

/*
#include <stdlib.h>
#include <X11/Xatom.h>
#include "xhelpers.h"
*/
import "C"

import (
	"fmt"
	"unsafe"

	"codeberg.org/miketth/keytrail/pkg/keytrail"
)

// maxPropertyLength is in 32-bit units, as XGetWindowProperty expects.
const maxPropertyLength = 1024

type property struct {
	data   []byte
	format int
	items  int
}

// getProperty reads prop off w. found is false when the window has no
// such property or it has a different type.
func (d *Display) getProperty(w C.Window, prop, typ C.Atom) (property, bool, error) {
	var (
		actualType   C.Atom
		actualFormat C.int
		nitems       C.ulong
		bytesAfter   C.ulong
		data         *C.uchar
	)

	status := C.XGetWindowProperty(d.dpy, w, prop, 0, maxPropertyLength, C.False, typ,
		&actualType, &actualFormat, &nitems, &bytesAfter, &data)
	if data != nil {
		defer C.XFree(unsafe.Pointer(data))
	}
	if err := takeErr(); err != nil {
		return property{}, false, err
	}
	if status != C.Success {
		return property{}, false, fmt.Errorf("XGetWindowProperty status %d", int(status))
	}
	if actualType == C.None || actualType != typ || nitems == 0 || data == nil {
		return property{}, false, nil
	}

	// Format 32 items are stored as C longs on the client side.
	size := int(nitems)
	switch actualFormat {
	case 16:
		size *= int(unsafe.Sizeof(C.short(0)))
	case 32:
		size *= int(unsafe.Sizeof(C.long(0)))
	}

	return property{
		data:   C.GoBytes(unsafe.Pointer(data), C.int(size)),
		format: int(actualFormat),
		items:  int(nitems),
	}, true, nil
}

func (d *Display) ActiveWindow() (keytrail.Window, error) {
	prop, found, err := d.getProperty(d.root, d.atoms.netActiveWindow, C.XA_WINDOW)
	if err != nil {
		return keytrail.NoWindow, fmt.Errorf("read _NET_ACTIVE_WINDOW: %w", err)
	}
	if !found || prop.format != 32 {
		return keytrail.NoWindow, nil
	}

	win := *(*C.ulong)(unsafe.Pointer(&prop.data[0]))
	return keytrail.Window(win), nil
}

// WindowTitle prefers the UTF-8 _NET_WM_NAME and falls back to WM_NAME.
func (d *Display) WindowTitle(w keytrail.Window) (string, bool, error) {
	prop, found, err := d.getProperty(C.Window(w), d.atoms.netWMName, d.atoms.utf8String)
	if err != nil {
		return "", false, fmt.Errorf("read _NET_WM_NAME: %w", err)
	}
	if found && prop.format == 8 {
		return string(prop.data), true, nil
	}

	var cname *C.char
	ok := C.kt_wm_name_utf8(d.dpy, C.Window(w), &cname)
	if cname != nil {
		defer C.free(unsafe.Pointer(cname))
	}
	if err := takeErr(); err != nil {
		return "", false, fmt.Errorf("read WM_NAME: %w", err)
	}
	if ok == 0 {
		return "", false, nil
	}

	return C.GoString(cname), true, nil
}

// RulesNames returns the raw _XKB_RULES_NAMES property of the root window.
func (d *Display) RulesNames() ([]byte, error) {
	prop, found, err := d.getProperty(d.root, d.atoms.xkbRulesNames, C.XA_STRING)
	if err != nil {
		return nil, fmt.Errorf("read _XKB_RULES_NAMES: %w", err)
	}
	if !found {
		return nil, nil
	}
	return prop.data, nil
}
