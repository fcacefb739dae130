//go:build cgo

package x11

/*
#include <stdlib.h>
#include "xhelpers.h"
*/
import "C"

import (
	"fmt"
	"unsafe"

	"codeberg.org/miketth/keytrail/pkg/keytrail"
)

// InputContext is an XIC with no pre-edit or status feedback, bound to the
// locale the display was opened under.
type InputContext struct {
	d     *Display
	im    C.XIM
	ic    C.XIC
	style C.ulong
}

// OpenInputContext applies locale to LC_CTYPE (empty means the process
// environment) and opens an input context on the root window.
func (d *Display) OpenInputContext(locale string) (*InputContext, error) {
	clocale := C.CString(locale)
	defer C.free(unsafe.Pointer(clocale))

	switch C.kt_set_locale(clocale) {
	case 0:
	case 1:
		return nil, fmt.Errorf("%w: setlocale(%q) failed", keytrail.ErrContextUnavailable, locale)
	default:
		return nil, fmt.Errorf("%w: locale %q not supported by Xlib", keytrail.ErrContextUnavailable, locale)
	}

	c := &InputContext{d: d}
	switch rc := C.kt_open_ic(d.dpy, d.root, &c.im, &c.ic, &c.style); rc {
	case 0:
		return c, nil
	case 1:
		return nil, fmt.Errorf("%w: XOpenIM failed", keytrail.ErrContextUnavailable)
	case 2:
		return nil, fmt.Errorf("%w: cannot query input styles", keytrail.ErrContextUnavailable)
	case 3:
		return nil, keytrail.ErrContextUnavailable
	default:
		return nil, fmt.Errorf("%w: XCreateIC failed", keytrail.ErrContextUnavailable)
	}
}

func (c *InputContext) Style() string {
	switch c.style {
	case C.XIMPreeditNothing | C.XIMStatusNothing:
		return "PreeditNothing|StatusNothing"
	case C.XIMPreeditNone | C.XIMStatusNone:
		return "PreeditNone|StatusNone"
	}
	return fmt.Sprintf("0x%x", uint64(c.style))
}

func (c *InputContext) Lookup(ev keytrail.RawKeyEvent, bufSize int) (keytrail.Keysym, string, keytrail.LookupStatus) {
	if bufSize <= 0 {
		return keytrail.NoSymbol, "", keytrail.LookupNone
	}

	raw := toKeyEvent(ev)
	buf := make([]byte, bufSize)
	var (
		sym    C.KeySym
		status C.int
	)

	n := C.kt_lookup(c.d.dpy, c.ic, &raw, (*C.char)(unsafe.Pointer(&buf[0])), C.int(bufSize), &sym, &status)

	switch status {
	case C.XLookupBoth:
		return keytrail.Keysym(sym), string(buf[:clampLen(int(n), bufSize)]), keytrail.LookupBoth
	case C.XLookupChars:
		return keytrail.NoSymbol, string(buf[:clampLen(int(n), bufSize)]), keytrail.LookupChars
	case C.XLookupKeySym:
		return keytrail.Keysym(sym), "", keytrail.LookupKeysym
	case C.XBufferOverflow:
		return keytrail.NoSymbol, "", keytrail.LookupBufferOverflow
	}

	return keytrail.NoSymbol, "", keytrail.LookupNone
}

func clampLen(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}
