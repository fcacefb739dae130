package keytrail

// Keysym values from X11/keysymdef.h that the pipeline needs to recognise.
const (
	NoSymbol Keysym = 0

	KeysymBackSpace  Keysym = 0xff08
	KeysymTab        Keysym = 0xff09
	KeysymReturn     Keysym = 0xff0d
	KeysymEscape     Keysym = 0xff1b
	KeysymDelete     Keysym = 0xffff
	KeysymLeft       Keysym = 0xff51
	KeysymUp         Keysym = 0xff52
	KeysymRight      Keysym = 0xff53
	KeysymDown       Keysym = 0xff54
	KeysymISOLeftTab Keysym = 0xfe20

	KeysymKPEnter  Keysym = 0xff8d
	KeysymKPLeft   Keysym = 0xff96
	KeysymKPUp     Keysym = 0xff97
	KeysymKPRight  Keysym = 0xff98
	KeysymKPDown   Keysym = 0xff99
	KeysymKPDelete Keysym = 0xff9f
)
