package model

// Panel icon keys. The set is fixed; unknown values fall back to the default.
const (
	IconBuilding  = "building"
	IconHome      = "home"
	IconStore     = "store"
	IconWarehouse = "warehouse"
	IconIndustry  = "industry"
)

// DefaultIcon is used when a panel has no icon or an unrecognized one
const DefaultIcon = IconBuilding

// PanelIcons lists the selectable icon keys in display order
var PanelIcons = []string{IconBuilding, IconHome, IconStore, IconWarehouse, IconIndustry}

// NormalizeIcon maps a raw icon value to a member of the fixed icon set
func NormalizeIcon(raw string) string {
	for _, key := range PanelIcons {
		if raw == key {
			return key
		}
	}
	return DefaultIcon
}
