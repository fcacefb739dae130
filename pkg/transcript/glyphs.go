package transcript

import "codeberg.org/miketth/keytrail/pkg/keytrail"

var specialGlyphs = map[keytrail.Keysym]string{
	keytrail.KeysymReturn:     "\n",
	keytrail.KeysymKPEnter:    "\n",
	keytrail.KeysymBackSpace:  "⌫",
	keytrail.KeysymDelete:     "⌦",
	keytrail.KeysymTab:        "⇥",
	keytrail.KeysymISOLeftTab: "⇥",
	keytrail.KeysymLeft:       "←",
	keytrail.KeysymRight:      "→",
	keytrail.KeysymUp:         "↑",
	keytrail.KeysymDown:       "↓",
}

// keypadGlyphs apply only while the keypad is in navigation mode. In
// numeric mode (NumLock xor Shift) the same keys type digits and the
// decimal separator, which come from the composition.
var keypadGlyphs = map[keytrail.Keysym]string{
	keytrail.KeysymKPDelete: "⌦",
	keytrail.KeysymKPLeft:   "←",
	keytrail.KeysymKPRight:  "→",
	keytrail.KeysymKPUp:     "↑",
	keytrail.KeysymKPDown:   "↓",
}

const suppressingMods = keytrail.ModControl | keytrail.ModAlt | keytrail.ModSuper

// VisibleText returns what the readable transcript shows for ev, if anything.
func VisibleText(ev keytrail.EnrichedEvent) (string, bool) {
	if glyph, ok := specialGlyphs[ev.Key.Keysym]; ok {
		return glyph, true
	}
	if ev.Key.State.Has(keytrail.ModNumLock) == ev.Key.State.Has(keytrail.ModShift) {
		if glyph, ok := keypadGlyphs[ev.Key.Keysym]; ok {
			return glyph, true
		}
	}

	switch {
	case !ev.Composition.Composed:
		return "", false
	case ev.Key.State&suppressingMods != 0:
		return "", false
	case ev.Key.Keysym == keytrail.KeysymEscape:
		return "", false
	}

	return ev.Composition.Text, true
}
