package geometry

import (
	"math"

	"github.com/zoner/zoner-cli/pkg/models"
)

// Adjacency lists the zone ids touching each side of a zone.
type Adjacency struct {
	Left   []string
	Right  []string
	Top    []string
	Bottom []string
}

// FindAdjacentZones returns, for each side of target, every other zone whose
// opposite edge lies within AdjacencyEpsilon of that side and whose span on
// the perpendicular axis overlaps the target's span.
func FindAdjacentZones(target models.Zone, zones []models.Zone) Adjacency {
	var adj Adjacency
	tg := target.Geometry

	for _, z := range zones {
		if z.ID == target.ID {
			continue
		}
		g := z.Geometry

		if spansOverlap(tg.Y, tg.Bottom(), g.Y, g.Bottom()) {
			if edgesTouch(g.Right(), tg.X) {
				adj.Left = append(adj.Left, z.ID)
			}
			if edgesTouch(g.X, tg.Right()) {
				adj.Right = append(adj.Right, z.ID)
			}
		}
		if spansOverlap(tg.X, tg.Right(), g.X, g.Right()) {
			if edgesTouch(g.Bottom(), tg.Y) {
				adj.Top = append(adj.Top, z.ID)
			}
			if edgesTouch(g.Y, tg.Bottom()) {
				adj.Bottom = append(adj.Bottom, z.ID)
			}
		}
	}

	return adj
}

// SharedEdgeLength returns the length of the overlapping span between two
// zones along the axis perpendicular to their shared edge, or 0 when the
// zones do not touch. Used to rank neighbors when reclaiming deleted space.
func SharedEdgeLength(a, b models.Rect) float64 {
	if edgesTouch(a.Right(), b.X) || edgesTouch(b.Right(), a.X) {
		return overlapLength(a.Y, a.Bottom(), b.Y, b.Bottom())
	}
	if edgesTouch(a.Bottom(), b.Y) || edgesTouch(b.Bottom(), a.Y) {
		return overlapLength(a.X, a.Right(), b.X, b.Right())
	}
	return 0
}

// CollectGeometriesAtDivider finds every zone that touches the divider line
// between two adjacent zones and returns their current geometries keyed by id.
// isVertical selects a vertical divider (zones side by side) versus a
// horizontal one (zones stacked). The boolean result is false when the two
// zones do not share an edge on the requested axis.
func CollectGeometriesAtDivider(a, b models.Zone, isVertical bool, zones []models.Zone) (map[string]models.Rect, bool) {
	ag, bg := a.Geometry, b.Geometry

	var divider float64
	switch {
	case isVertical && edgesTouch(ag.Right(), bg.X):
		divider = ag.Right()
	case isVertical && edgesTouch(bg.Right(), ag.X):
		divider = bg.Right()
	case !isVertical && edgesTouch(ag.Bottom(), bg.Y):
		divider = ag.Bottom()
	case !isVertical && edgesTouch(bg.Bottom(), ag.Y):
		divider = bg.Bottom()
	default:
		return nil, false
	}

	touching := make(map[string]models.Rect)
	for _, z := range zones {
		g := z.Geometry
		if isVertical {
			if edgesTouch(g.X, divider) || edgesTouch(g.Right(), divider) {
				touching[z.ID] = g
			}
		} else {
			if edgesTouch(g.Y, divider) || edgesTouch(g.Bottom(), divider) {
				touching[z.ID] = g
			}
		}
	}

	return touching, true
}

func edgesTouch(a, b float64) bool {
	return math.Abs(a-b) <= AdjacencyEpsilon
}

// spansOverlap reports whether (lo1, hi1) and (lo2, hi2) overlap by more than
// the adjacency epsilon; mere corner contact does not count.
func spansOverlap(lo1, hi1, lo2, hi2 float64) bool {
	return overlapLength(lo1, hi1, lo2, hi2) > AdjacencyEpsilon
}

func overlapLength(lo1, hi1, lo2, hi2 float64) float64 {
	lo := math.Max(lo1, lo2)
	hi := math.Min(hi1, hi2)
	if hi <= lo {
		return 0
	}
	return hi - lo
}
