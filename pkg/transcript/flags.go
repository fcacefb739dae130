package transcript

import (
	"fmt"

	"codeberg.org/miketth/keytrail/pkg/keytrail"
)

type flagBit struct {
	mod   keytrail.Modifiers
	upper byte
	lower byte
}

// flagOrder is the fixed column order of the diagnostic flags field.
var flagOrder = [...]flagBit{
	{keytrail.ModShift, 'S', 's'},
	{keytrail.ModLock, 'L', 'l'},
	{keytrail.ModControl, 'C', 'c'},
	{keytrail.ModAlt, 'A', 'a'},
	{keytrail.ModNumLock, 'N', 'n'},
	{keytrail.ModSuper, 'W', 'w'},
	{keytrail.ModAltGr, 'G', 'g'},
}

// FlagMask covers the modifier bits represented in the flags field.
const FlagMask = keytrail.ModShift | keytrail.ModLock | keytrail.ModControl |
	keytrail.ModAlt | keytrail.ModNumLock | keytrail.ModSuper | keytrail.ModAltGr

func FormatFlags(m keytrail.Modifiers) string {
	var buf [len(flagOrder)]byte
	for i, f := range flagOrder {
		if m.Has(f.mod) {
			buf[i] = f.upper
		} else {
			buf[i] = f.lower
		}
	}
	return string(buf[:])
}

func ParseFlags(s string) (keytrail.Modifiers, error) {
	if len(s) != len(flagOrder) {
		return 0, fmt.Errorf("flags %q: want %d characters", s, len(flagOrder))
	}

	var m keytrail.Modifiers
	for i, f := range flagOrder {
		switch s[i] {
		case f.upper:
			m |= f.mod
		case f.lower:
		default:
			return 0, fmt.Errorf("flags %q: unexpected %q at position %d", s, s[i], i)
		}
	}
	return m, nil
}
