//go:build cgo

package x11

/*
#include "xhelpers.h"
*/
import "C"

import (
	"fmt"
	"unsafe"

	"codeberg.org/miketth/keytrail/pkg/keytrail"
)

func (d *Display) ListDevices() ([]keytrail.DeviceInfo, error) {
	var n C.int
	list := C.XListInputDevices(d.dpy, &n)
	if list == nil {
		if err := takeErr(); err != nil {
			return nil, fmt.Errorf("XListInputDevices: %w", err)
		}
		return nil, nil
	}
	defer C.XFreeDeviceList(list)

	infos := unsafe.Slice(list, int(n))
	out := make([]keytrail.DeviceInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, keytrail.DeviceInfo{
			ID:   keytrail.DeviceID(info.id),
			Name: C.GoString(info.name),
			Use:  deviceUse(info.use),
		})
	}

	return out, nil
}

func deviceUse(use C.int) keytrail.DeviceUse {
	switch use {
	case C.IsXPointer:
		return keytrail.UsePointer
	case C.IsXKeyboard:
		return keytrail.UseKeyboard
	case C.IsXExtensionDevice:
		return keytrail.UseExtensionDevice
	case C.IsXExtensionKeyboard:
		return keytrail.UseExtensionKeyboard
	case C.IsXExtensionPointer:
		return keytrail.UseExtensionPointer
	}
	return keytrail.UseUnknown
}

// OpenDevice opens the device and selects its key press events on the
// root window.
func (d *Display) OpenDevice(info keytrail.DeviceInfo) (keytrail.DeviceHandle, error) {
	dev := C.XOpenDevice(d.dpy, C.XID(info.ID))
	if dev == nil {
		if err := takeErr(); err != nil {
			return keytrail.DeviceHandle{}, fmt.Errorf("XOpenDevice %d: %w", info.ID, err)
		}
		return keytrail.DeviceHandle{}, fmt.Errorf("XOpenDevice %d failed", info.ID)
	}

	var pressType C.int
	if rc := C.kt_select_key_press(d.dpy, d.root, dev, &pressType); rc != C.Success {
		C.XCloseDevice(d.dpy, dev)
		return keytrail.DeviceHandle{}, fmt.Errorf("select key press on device %d: status %d", info.ID, int(rc))
	}
	if err := d.syncErr(); err != nil {
		C.XCloseDevice(d.dpy, dev)
		return keytrail.DeviceHandle{}, fmt.Errorf("select key press on device %d: %w", info.ID, err)
	}

	d.pressTypes[pressType] = true
	d.devices[info.ID] = dev

	return keytrail.DeviceHandle{ID: info.ID, Name: info.Name}, nil
}
