//go:build !linux || !cgo

package x11

import "codeberg.org/miketth/keytrail/pkg/keytrail"

// Display is unavailable without cgo; Connect always fails.
type Display struct{}

func Connect() (*Display, error) {
	return nil, ErrUnsupported
}

func (d *Display) Name() string { return "" }

func (d *Display) ListDevices() ([]keytrail.DeviceInfo, error) {
	return nil, ErrUnsupported
}

func (d *Display) OpenDevice(keytrail.DeviceInfo) (keytrail.DeviceHandle, error) {
	return keytrail.DeviceHandle{}, ErrUnsupported
}

func (d *Display) NextKeyPress() (keytrail.RawKeyEvent, error) {
	return keytrail.RawKeyEvent{}, ErrUnsupported
}

func (d *Display) BaseKeysym(keytrail.Keycode) keytrail.Keysym { return keytrail.NoSymbol }

func (d *Display) KeysymName(keytrail.Keysym) string { return "" }

func (d *Display) ActiveWindow() (keytrail.Window, error) {
	return keytrail.NoWindow, ErrUnsupported
}

func (d *Display) WindowTitle(keytrail.Window) (string, bool, error) {
	return "", false, ErrUnsupported
}

func (d *Display) RulesNames() ([]byte, error) {
	return nil, ErrUnsupported
}

type InputContext struct{}

func (d *Display) OpenInputContext(string) (*InputContext, error) {
	return nil, ErrUnsupported
}

func (c *InputContext) Style() string { return "" }

func (c *InputContext) Lookup(keytrail.RawKeyEvent, int) (keytrail.Keysym, string, keytrail.LookupStatus) {
	return keytrail.NoSymbol, "", keytrail.LookupNone
}
