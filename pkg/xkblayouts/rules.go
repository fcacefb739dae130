package xkblayouts

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyRulesNames = errors.New("empty _XKB_RULES_NAMES")

// RulesNames is the decoded _XKB_RULES_NAMES root window property: the
// rules file, model, layouts, variants and options the server keymap was
// compiled from.
type RulesNames struct {
	Rules    string
	Model    string
	Layouts  []string
	Variants []string
	Options  []string
}

// ParseRulesNames decodes the NUL-separated property value. Missing
// trailing fields are left empty.
func ParseRulesNames(raw []byte) (RulesNames, error) {
	if len(raw) == 0 {
		return RulesNames{}, ErrEmptyRulesNames
	}

	fields := strings.Split(string(bytes.TrimRight(raw, "\x00")), "\x00")
	for len(fields) < 5 {
		fields = append(fields, "")
	}

	names := RulesNames{
		Rules:    fields[0],
		Model:    fields[1],
		Layouts:  splitList(fields[2]),
		Variants: splitList(fields[3]),
		Options:  splitList(fields[4]),
	}

	// Variants pair up with layouts by position.
	for len(names.Variants) < len(names.Layouts) {
		names.Variants = append(names.Variants, "")
	}

	return names, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// Describe returns a human-readable name for every configured layout,
// falling back to the raw layout(variant) code when the registry does not
// know it.
func (r *XkbConfigRegistry) Describe(names RulesNames) []string {
	out := make([]string, 0, len(names.Layouts))
	for i, layout := range names.Layouts {
		var variant string
		if i < len(names.Variants) {
			variant = names.Variants[i]
		}

		var pretty string
		if r != nil {
			pretty = r.GetLayoutPrettyName(layout, variant)
		}
		if pretty == "" {
			pretty = layout
			if variant != "" {
				pretty = fmt.Sprintf("%s(%s)", layout, variant)
			}
		}
		out = append(out, pretty)
	}

	return out
}
