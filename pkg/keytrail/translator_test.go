package keytrail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	keycodeA      Keycode = 38
	keycodeE      Keycode = 26
	keycodeShiftL Keycode = 50
	keycodeDead   Keycode = 48
	keycodeReturn Keycode = 36
)

func newFakeIC() *fakeInputContext {
	return &fakeInputContext{
		byKeycode: map[Keycode]lookupResult{
			keycodeA:      {sym: 'a', text: "a", status: LookupBoth},
			keycodeE:      {sym: 'e', text: "e", status: LookupBoth},
			keycodeShiftL: {sym: 0xffe1, status: LookupKeysym},
			keycodeReturn: {sym: KeysymReturn, text: "\r", status: LookupBoth},
		},
		deadKey:  keycodeDead,
		combined: map[Keycode]string{keycodeE: "\u00e9"},
	}
}

func TestTranslateComposed(t *testing.T) {
	ic := newFakeIC()
	tr := NewTranslator(ic)

	res := tr.Translate(RawKeyEvent{Keycode: keycodeA})
	assert.Equal(t, CompositionResult{Composed: true, Keysym: 'a', Text: "a"}, res)
	assert.Equal(t, []int{ComposeBufferSize}, ic.sizes)
}

func TestTranslateBareModifier(t *testing.T) {
	tr := NewTranslator(newFakeIC())

	res := tr.Translate(RawKeyEvent{Keycode: keycodeShiftL})
	assert.False(t, res.Composed)
	assert.Empty(t, res.Text)
}

func TestTranslateDeadKey(t *testing.T) {
	tr := NewTranslator(newFakeIC())

	pending := tr.Translate(RawKeyEvent{Keycode: keycodeDead})
	assert.False(t, pending.Composed, "dead key alone must not compose")

	res := tr.Translate(RawKeyEvent{Keycode: keycodeE})
	assert.True(t, res.Composed)
	assert.Equal(t, "\u00e9", res.Text)
}

func TestTranslateStatuses(t *testing.T) {
	tests := []struct {
		name     string
		result   lookupResult
		composed bool
		text     string
	}{
		{"both", lookupResult{'x', "x", LookupBoth}, true, "x"},
		{"chars only", lookupResult{0, "x", LookupChars}, false, ""},
		{"keysym only", lookupResult{'x', "", LookupKeysym}, false, ""},
		{"none", lookupResult{0, "", LookupNone}, false, ""},
		{"overflow", lookupResult{0, "", LookupBufferOverflow}, false, ""},
		{"both without text", lookupResult{'x', "", LookupBoth}, false, ""},
		{"invalid utf-8", lookupResult{'x', "\xff\xfe", LookupBoth}, false, ""},
		{"truncated to three runes", lookupResult{'x', "abcd", LookupBoth}, true, "abc"},
		{"decomposed input is normalised", lookupResult{0xe9, "e\u0301", LookupBoth}, true, "\u00e9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ic := &fakeInputContext{byKeycode: map[Keycode]lookupResult{1: tt.result}}
			res := NewTranslator(ic).Translate(RawKeyEvent{Keycode: 1})

			assert.Equal(t, tt.composed, res.Composed)
			assert.Equal(t, tt.text, res.Text)
		})
	}
}

func TestTranslateDeterministic(t *testing.T) {
	sequence := []Keycode{keycodeA, keycodeShiftL, keycodeE, keycodeReturn, keycodeA, 99}

	run := func() []CompositionResult {
		tr := NewTranslator(newFakeIC())
		out := make([]CompositionResult, 0, len(sequence))
		for _, code := range sequence {
			out = append(out, tr.Translate(RawKeyEvent{Keycode: code}))
		}
		return out
	}

	assert.Equal(t, run(), run())
}
