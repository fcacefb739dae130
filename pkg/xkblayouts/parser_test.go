package xkblayouts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayouts(t *testing.T) {
	registry, err := ParseLayouts("testdata/evdev.xml")
	require.NoError(t, err)

	assert.Len(t, registry.Layouts, 2)
	assert.Len(t, registry.Layouts[0].Variants, 1)
	assert.Equal(t, "English (US)", registry.GetLayoutPrettyName("us", ""))
	assert.Equal(t, "English (US, intl., with dead keys)", registry.GetLayoutPrettyName("us", "intl"))
	assert.Equal(t, "German (no dead keys)", registry.GetLayoutPrettyName("de", "nodeadkeys"))
	assert.Equal(t, "", registry.GetLayoutPrettyName("de", "neo"))
	assert.Equal(t, "", registry.GetLayoutPrettyName("fr", ""))
	assert.Equal(t, "Generic 105-key PC", registry.GetModelPrettyName("pc105"))
	assert.Equal(t, "Dell 101-key PC (Dell)", registry.GetModelPrettyName("dell101"))
	assert.Equal(t, "", registry.GetModelPrettyName("pc86"))

	assert.Equal(t, "en", registry.GetLayoutShortName("us"))
	assert.Equal(t, "", registry.GetLayoutShortName("fr"))
}

func TestParseLayoutsMissingFile(t *testing.T) {
	_, err := ParseLayouts("testdata/does-not-exist.xml")
	assert.Error(t, err)
}

func TestParseRulesNames(t *testing.T) {
	raw := []byte("evdev\x00pc105\x00us,de\x00,nodeadkeys\x00grp:alt_shift_toggle\x00")

	names, err := ParseRulesNames(raw)
	require.NoError(t, err)

	assert.Equal(t, "evdev", names.Rules)
	assert.Equal(t, "pc105", names.Model)
	assert.Equal(t, []string{"us", "de"}, names.Layouts)
	assert.Equal(t, []string{"", "nodeadkeys"}, names.Variants)
	assert.Equal(t, []string{"grp:alt_shift_toggle"}, names.Options)
}

func TestParseRulesNamesShort(t *testing.T) {
	names, err := ParseRulesNames([]byte("evdev\x00pc105\x00us"))
	require.NoError(t, err)

	assert.Equal(t, []string{"us"}, names.Layouts)
	assert.Equal(t, []string{""}, names.Variants)
	assert.Nil(t, names.Options)

	_, err = ParseRulesNames(nil)
	assert.ErrorIs(t, err, ErrEmptyRulesNames)
}

func TestDescribe(t *testing.T) {
	registry, err := ParseLayouts("testdata/evdev.xml")
	require.NoError(t, err)

	names := RulesNames{
		Layouts:  []string{"us", "de", "fr"},
		Variants: []string{"intl", "", "bepo"},
	}

	assert.Equal(t, []string{
		"English (US, intl., with dead keys)",
		"German",
		"fr(bepo)",
	}, registry.Describe(names))

	var none *XkbConfigRegistry
	assert.Equal(t, []string{"us(intl)", "de", "fr(bepo)"}, none.Describe(names))
}

func TestDescribeWithoutVariants(t *testing.T) {
	registry, err := ParseLayouts("testdata/evdev.xml")
	require.NoError(t, err)

	names := RulesNames{Layouts: []string{"us", "de"}}
	assert.Equal(t, []string{"English (US)", "German"}, registry.Describe(names))

	names.Variants = []string{"intl"}
	assert.Equal(t, []string{"English (US, intl., with dead keys)", "German"}, registry.Describe(names))
}
