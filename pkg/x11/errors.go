// Package x11 binds the capture pipeline to Xlib, the XInput extension and
// the X input method framework.
package x11

import "errors"

var (
	ErrNoDisplay   = errors.New("cannot open display")
	ErrNoXInput    = errors.New("XInputExtension not available")
	ErrUnsupported = errors.New("x11 support requires linux and cgo")
)
