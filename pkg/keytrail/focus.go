package keytrail

import (
	"fmt"
	"strings"
)

type FocusTracker struct {
	props PropertyReader
}

func NewFocusTracker(props PropertyReader) *FocusTracker {
	return &FocusTracker{props: props}
}

// Current resolves the focused window and its title. A missing window or
// a missing title is reported through the sentinel kinds, not as an error.
func (t *FocusTracker) Current() (FocusSnapshot, error) {
	win, err := t.props.ActiveWindow()
	if err != nil {
		return FocusSnapshot{}, fmt.Errorf("%w: active window: %w", ErrPropertyQuery, err)
	}
	if win == NoWindow {
		return NoFocus(), nil
	}

	title, ok, err := t.props.WindowTitle(win)
	if err != nil {
		return FocusSnapshot{}, fmt.Errorf("%w: title of window 0x%x: %w", ErrPropertyQuery, uint64(win), err)
	}
	if !ok {
		return FocusSnapshot{Window: win, Title: TitleUntitled, Kind: FocusUntitled}, nil
	}

	// Long titles are cut by the property read and may end mid-rune.
	title = strings.ToValidUTF8(title, "")

	return FocusSnapshot{Window: win, Title: title, Kind: FocusTitled}, nil
}

// FocusHistory remembers the last focus title written to the transcript.
// It is owned by the loop and handed to the emitter on every event.
type FocusHistory struct {
	title string
	seen  bool
}

func NewFocusHistory() *FocusHistory {
	return &FocusHistory{}
}

// Observe records title and reports whether it differs from the last
// recorded one. Titles are compared by value, so two windows with the
// same title count as one context.
func (h *FocusHistory) Observe(title string) bool {
	if h.seen && h.title == title {
		return false
	}
	h.title = title
	h.seen = true
	return true
}

func (h *FocusHistory) Last() (string, bool) {
	return h.title, h.seen
}
