package keytrail

import (
	"fmt"

	"go.uber.org/zap"
)

type BindPolicy string

const (
	// BindAll binds every device of the extension keyboard class.
	BindAll BindPolicy = "all"
	// BindPhysical additionally skips known virtual keyboards by name.
	BindPhysical BindPolicy = "physical"
)

var DefaultExclude = []string{
	"Virtual core XTEST keyboard",
	"Power Button",
	"Sleep Button",
	"Video Bus",
}

type BindOptions struct {
	Policy  BindPolicy
	Exclude []string
}

func BindKeyboards(devs DeviceOpener, opts BindOptions, log *zap.SugaredLogger) ([]DeviceHandle, error) {
	infos, err := devs.ListDevices()
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}

	candidates := selectKeyboards(infos, opts)
	if len(candidates) == 0 {
		return nil, ErrNoKeyboardFound
	}

	handles := make([]DeviceHandle, 0, len(candidates))
	var lastErr error
	for _, info := range candidates {
		handle, err := devs.OpenDevice(info)
		if err != nil {
			log.Warnw("cannot open keyboard device", "id", info.ID, "name", info.Name, "error", err)
			lastErr = err
			continue
		}

		log.Infow("bound keyboard device", "id", handle.ID, "name", handle.Name)
		handles = append(handles, handle)
	}

	if len(handles) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrNoDeviceOpened, lastErr)
	}

	return handles, nil
}

func selectKeyboards(infos []DeviceInfo, opts BindOptions) []DeviceInfo {
	excluded := make(map[string]bool)
	if opts.Policy == BindPhysical {
		for _, name := range opts.Exclude {
			excluded[name] = true
		}
	}

	var out []DeviceInfo
	for _, info := range infos {
		if info.Use != UseExtensionKeyboard {
			continue
		}
		if excluded[info.Name] {
			continue
		}
		out = append(out, info)
	}

	return out
}
