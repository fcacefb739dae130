//go:build cgo

package x11

/*
#cgo pkg-config: x11 xi
#include <stdlib.h>
#include "xhelpers.h"
*/
import "C"

import (
	"fmt"
	"unsafe"

	"codeberg.org/miketth/keytrail/pkg/keytrail"
)

type atoms struct {
	netActiveWindow C.Atom
	netWMName       C.Atom
	utf8String      C.Atom
	xkbRulesNames   C.Atom
}

// Display is the process-wide connection to the X server. It is opened
// once and used until the process exits.
type Display struct {
	dpy        *C.Display
	root       C.Window
	pressTypes map[C.int]bool
	devices    map[keytrail.DeviceID]*C.XDevice
	atoms      atoms
}

func Connect() (*Display, error) {
	C.XInitThreads()

	dpy := C.XOpenDisplay(nil)
	if dpy == nil {
		return nil, ErrNoDisplay
	}

	extName := C.CString("XInputExtension")
	defer C.free(unsafe.Pointer(extName))

	var opcode, eventBase, errorBase C.int
	if C.XQueryExtension(dpy, extName, &opcode, &eventBase, &errorBase) == C.False {
		C.XCloseDisplay(dpy)
		return nil, ErrNoXInput
	}

	C.kt_install_error_handler()

	d := &Display{
		dpy:        dpy,
		root:       C.XDefaultRootWindow(dpy),
		pressTypes: make(map[C.int]bool),
		devices:    make(map[keytrail.DeviceID]*C.XDevice),
	}
	d.atoms = atoms{
		netActiveWindow: d.internAtom("_NET_ACTIVE_WINDOW"),
		netWMName:       d.internAtom("_NET_WM_NAME"),
		utf8String:      d.internAtom("UTF8_STRING"),
		xkbRulesNames:   d.internAtom("_XKB_RULES_NAMES"),
	}

	return d, nil
}

func (d *Display) Name() string {
	return C.GoString(C.XDisplayString(d.dpy))
}

func (d *Display) internAtom(name string) C.Atom {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.XInternAtom(d.dpy, cname, C.False)
}

// syncErr flushes pending requests and reports an X error raised by them.
func (d *Display) syncErr() error {
	C.XSync(d.dpy, C.False)
	return takeErr()
}

func takeErr() error {
	if code := C.kt_take_error(); code != 0 {
		return fmt.Errorf("x protocol error %d", int(code))
	}
	return nil
}
