package xkblayouts

import "encoding/xml"

// XkbConfigRegistry is the subset of an XKB rules XML file (evdev.xml)
// needed to describe the active keyboard configuration.
type XkbConfigRegistry struct {
	XMLName xml.Name `xml:"xkbConfigRegistry"`
	Models  []Model  `xml:"modelList>model"`
	Layouts []Layout `xml:"layoutList>layout"`
}

type ConfigItem struct {
	Name             string `xml:"name"`
	ShortDescription string `xml:"shortDescription"`
	Description      string `xml:"description"`
	Vendor           string `xml:"vendor"`
}

type Model struct {
	ConfigItem ConfigItem `xml:"configItem"`
}

type Layout struct {
	ConfigItem ConfigItem `xml:"configItem"`
	Variants   []Variant  `xml:"variantList>variant"`
}

type Variant struct {
	ConfigItem ConfigItem `xml:"configItem"`
}
