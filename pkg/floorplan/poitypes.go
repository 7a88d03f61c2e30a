package floorplan

// POITypeInfo describes one entry of the fixed POI-type catalog.
// CanChangeFloor marks connector types: a path reaching such a POI may
// continue onto another floor instead of terminating.
type POITypeInfo struct {
	Key            string
	Label          string
	Glyph          rune // marker character in the terminal renderer
	CanChangeFloor bool
}

// poiCatalog is ordered for stable cycling in the editor.
var poiCatalog = []POITypeInfo{
	{Key: "info", Label: "Information", Glyph: 'i'},
	{Key: "toilet", Label: "Toilet", Glyph: 'T'},
	{Key: "cafe", Label: "Café", Glyph: 'C'},
	{Key: "room", Label: "Room", Glyph: 'R'},
	{Key: "exit", Label: "Exit", Glyph: 'X'},
	{Key: "elevator", Label: "Elevator", Glyph: 'E', CanChangeFloor: true},
	{Key: "stairs", Label: "Stairs", Glyph: 'S', CanChangeFloor: true},
	{Key: "escalator", Label: "Escalator", Glyph: 'Z', CanChangeFloor: true},
}

// POITypes returns the catalog in its fixed order.
func POITypes() []POITypeInfo {
	return append([]POITypeInfo(nil), poiCatalog...)
}

// POITypeByKey looks up a catalog entry.
func POITypeByKey(key string) (POITypeInfo, bool) {
	for _, t := range poiCatalog {
		if t.Key == key {
			return t, true
		}
	}
	return POITypeInfo{}, false
}

// IsConnector reports whether the POI type permits mid-path floor changes.
// Unknown types are treated as plain terminals.
func IsConnector(key string) bool {
	t, ok := POITypeByKey(key)
	return ok && t.CanChangeFloor
}
