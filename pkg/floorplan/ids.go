package floorplan

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// suffixOf parses the numeric suffix of an id like "poi-7". Returns 0 for
// ids that don't carry one.
func suffixOf(id string) int {
	i := strings.LastIndexByte(id, '-')
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// maxSuffix returns the largest numeric suffix among ids with the given
// kind prefix.
func maxSuffix(kind string, ids []string) int {
	max := 0
	prefix := kind + "-"
	for _, id := range ids {
		if strings.HasPrefix(id, prefix) {
			if n := suffixOf(id); n > max {
				max = n
			}
		}
	}
	return max
}

// allocate produces the next unused "<kind>-<n>" id, starting from
// max(counter, maxExistingSuffix+1), and advances the persisted counter
// past the returned value for counted kinds (path, floor). Screen and POI
// ids stay dense through Renumber, so their next suffix is always derived
// from the live set.
func (m *Model) allocate(kind string) string {
	n := maxSuffix(kind, m.liveIDs(kind)) + 1
	switch kind {
	case "path":
		if m.counters.Path > n {
			n = m.counters.Path
		}
		m.counters.Path = n + 1
	case "floor":
		if m.counters.Floor > n {
			n = m.counters.Floor
		}
		m.counters.Floor = n + 1
	}
	return fmt.Sprintf("%s-%d", kind, n)
}

func (m *Model) liveIDs(kind string) []string {
	var ids []string
	switch kind {
	case "floor":
		for _, f := range m.floors {
			ids = append(ids, f.ID)
		}
	case "path":
		for _, p := range m.paths {
			ids = append(ids, p.ID)
		}
	default:
		for _, p := range m.points {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// Renumber reassigns dense sequential ids to all screens and all POIs
// independently, ordered by their current numeric suffix. Labels are
// rewritten to "S<n>"/"P<n>" and every path's endpoint references are
// rewritten in the same pass, so no path can ever point at a retired id.
// Runs after every point deletion.
func (m *Model) Renumber() {
	rename := make(map[string]string)
	renumberType := func(pt PointType, prefix, labelPrefix string) {
		var pts []*Point
		for _, p := range m.points {
			if p.Type == pt {
				pts = append(pts, p)
			}
		}
		sort.SliceStable(pts, func(i, j int) bool {
			return suffixOf(pts[i].ID) < suffixOf(pts[j].ID)
		})
		for i, p := range pts {
			newID := fmt.Sprintf("%s-%d", prefix, i+1)
			if p.ID != newID {
				rename[p.ID] = newID
			}
			p.ID = newID
			p.Label = fmt.Sprintf("%s%d", labelPrefix, i+1)
		}
	}
	renumberType(PointScreen, "screen", "S")
	renumberType(PointPOI, "poi", "P")

	if len(rename) == 0 {
		return
	}
	for _, path := range m.paths {
		if id, ok := rename[path.FromID]; ok {
			path.FromID = id
		}
		if id, ok := rename[path.ToID]; ok {
			path.ToID = id
		}
	}
}
