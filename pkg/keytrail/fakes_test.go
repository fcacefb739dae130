package keytrail

import (
	"errors"
	"fmt"
)

type fakeDevices struct {
	infos   []DeviceInfo
	listErr error
	failing map[DeviceID]bool
	opened  []DeviceID
}

func (f *fakeDevices) ListDevices() ([]DeviceInfo, error) {
	return f.infos, f.listErr
}

func (f *fakeDevices) OpenDevice(info DeviceInfo) (DeviceHandle, error) {
	if f.failing[info.ID] {
		return DeviceHandle{}, fmt.Errorf("BadDevice %d", info.ID)
	}
	f.opened = append(f.opened, info.ID)
	return DeviceHandle{ID: info.ID, Name: info.Name}, nil
}

type fakeProps struct {
	active    Window
	activeErr error
	titles    map[Window]string
	titleErr  error
}

func (f *fakeProps) ActiveWindow() (Window, error) {
	return f.active, f.activeErr
}

func (f *fakeProps) WindowTitle(w Window) (string, bool, error) {
	if f.titleErr != nil {
		return "", false, f.titleErr
	}
	title, ok := f.titles[w]
	return title, ok, nil
}

type lookupResult struct {
	sym    Keysym
	text   string
	status LookupStatus
}

// fakeInputContext composes by keycode, with a one-step dead key: a press
// of deadKey is reported as keysym only and makes the next press return
// the combined text.
type fakeInputContext struct {
	byKeycode map[Keycode]lookupResult
	deadKey   Keycode
	pending   bool
	combined  map[Keycode]string
	sizes     []int
}

func (f *fakeInputContext) Lookup(ev RawKeyEvent, bufSize int) (Keysym, string, LookupStatus) {
	f.sizes = append(f.sizes, bufSize)

	if f.deadKey != 0 && ev.Keycode == f.deadKey {
		f.pending = true
		return 0xfe51, "", LookupKeysym
	}
	if f.pending {
		f.pending = false
		if text, ok := f.combined[ev.Keycode]; ok {
			return 0xe9, text, LookupBoth
		}
	}

	res, ok := f.byKeycode[ev.Keycode]
	if !ok {
		return NoSymbol, "", LookupNone
	}
	return res.sym, res.text, res.status
}

type fakeKeysyms map[Keycode]Keysym

func (f fakeKeysyms) BaseKeysym(code Keycode) Keysym {
	return f[code]
}

var errSourceClosed = errors.New("source closed")

type fakeSource struct {
	events []RawKeyEvent
}

func (f *fakeSource) NextKeyPress() (RawKeyEvent, error) {
	if len(f.events) == 0 {
		return RawKeyEvent{}, errSourceClosed
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, nil
}

type recordingEmitter struct {
	events    []EnrichedEvent
	histories []*FocusHistory
}

func (r *recordingEmitter) Emit(ev EnrichedEvent, history *FocusHistory) {
	r.events = append(r.events, ev)
	r.histories = append(r.histories, history)
}
