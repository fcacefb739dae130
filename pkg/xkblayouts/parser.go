package xkblayouts

import (
	"encoding/xml"
	"fmt"
	"os"
)

func ParseLayouts(path string) (*XkbConfigRegistry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	registry := &XkbConfigRegistry{}
	err = xml.NewDecoder(file).Decode(registry)
	if err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}

	return registry, nil
}

func (r *XkbConfigRegistry) layout(name string) (Layout, bool) {
	for _, l := range r.Layouts {
		if l.ConfigItem.Name == name {
			return l, true
		}
	}
	return Layout{}, false
}

// GetLayoutPrettyName returns the registry description of layout, or of
// its variant when one is given. Unknown names yield "".
func (r *XkbConfigRegistry) GetLayoutPrettyName(layout, variant string) string {
	l, ok := r.layout(layout)
	if !ok {
		return ""
	}
	if variant == "" {
		return l.ConfigItem.Description
	}

	for _, v := range l.Variants {
		if v.ConfigItem.Name == variant {
			return v.ConfigItem.Description
		}
	}

	return ""
}

// GetLayoutShortName returns the short indicator label (e.g. "en") the
// registry carries for layout.
func (r *XkbConfigRegistry) GetLayoutShortName(layout string) string {
	l, _ := r.layout(layout)
	return l.ConfigItem.ShortDescription
}

func (r *XkbConfigRegistry) GetModelPrettyName(model string) string {
	for _, m := range r.Models {
		if m.ConfigItem.Name != model {
			continue
		}
		if m.ConfigItem.Vendor != "" && m.ConfigItem.Vendor != "Generic" {
			return fmt.Sprintf("%s (%s)", m.ConfigItem.Description, m.ConfigItem.Vendor)
		}
		return m.ConfigItem.Description
	}

	return ""
}
