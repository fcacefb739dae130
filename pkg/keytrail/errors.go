package keytrail

import "errors"

var (
	ErrNoKeyboardFound    = errors.New("no keyboard devices found")
	ErrNoDeviceOpened     = errors.New("no keyboard device could be opened")
	ErrContextUnavailable = errors.New("no compatible input method style")
	ErrPropertyQuery      = errors.New("window property query failed")
)
