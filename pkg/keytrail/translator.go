package keytrail

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// ComposeBufferSize is the byte buffer handed to the input method per lookup.
	ComposeBufferSize = 4
	// MaxComposedRunes caps the text kept from one composition.
	MaxComposedRunes = 3
)

// Translator turns raw key presses into composed text through a
// locale-bound input context. It keeps no state of its own; dead-key
// sequences are tracked by the input context.
type Translator struct {
	ic InputContext
}

func NewTranslator(ic InputContext) *Translator {
	return &Translator{ic: ic}
}

func (t *Translator) Translate(ev RawKeyEvent) CompositionResult {
	sym, text, status := t.ic.Lookup(ev, ComposeBufferSize)

	// A keysym without text is a pending dead key; the next press carries
	// the composed text.
	if status != LookupBoth {
		return CompositionResult{}
	}
	if text == "" || !utf8.ValidString(text) {
		return CompositionResult{}
	}

	text = norm.NFC.String(text)
	if utf8.RuneCountInString(text) > MaxComposedRunes {
		text = truncateRunes(text, MaxComposedRunes)
	}

	return CompositionResult{
		Composed: true,
		Keysym:   sym,
		Text:     text,
	}
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
