// Package geometry provides the pure functions behind zone editing: edge and
// grid snapping, adjacency queries, fill-region expansion and divider
// collection. All coordinates are normalized to [0, 1] and the functions hold
// no state; callers pass the full zone list on every query.
package geometry

import (
	"math"

	"github.com/zoner/zoner-cli/pkg/models"
)

// AdjacencyEpsilon is the distance within which two edges count as touching.
const AdjacencyEpsilon = 0.001

// Options configures snapping behavior for a single call.
type Options struct {
	GridEnabled   bool
	GridIntervalX float64
	GridIntervalY float64
	EdgeEnabled   bool
	EdgeThreshold float64
	MinSize       float64
}

// OptionsFromSettings builds snap options from the persisted settings.
func OptionsFromSettings(s *models.Settings) Options {
	return Options{
		GridEnabled:   s.Snapping.GridEnabled,
		GridIntervalX: s.Snapping.GridIntervalX,
		GridIntervalY: s.Snapping.GridIntervalY,
		EdgeEnabled:   s.Snapping.EdgeEnabled,
		EdgeThreshold: s.Snapping.EdgeThreshold,
		MinSize:       s.Zones.MinSize,
	}
}

// Edges selects which edges of a rectangle are being actively changed and may
// therefore snap. Edges not selected are returned exactly as given.
type Edges struct {
	Left, Right, Top, Bottom bool
}

// AllEdges selects every edge, used for whole-rectangle moves.
func AllEdges() Edges {
	return Edges{Left: true, Right: true, Top: true, Bottom: true}
}

// Snap snaps all four edges of rect against the grid and the other zones.
// The zone identified by excludeID is ignored so a zone never snaps to itself.
func Snap(rect models.Rect, zones []models.Zone, excludeID string, opts Options) models.Rect {
	return SnapSelective(rect, zones, excludeID, AllEdges(), opts)
}

// SnapSelective snaps only the selected edges of rect. A resize from the right
// handle passes Edges{Right: true} so the fixed left edge is never moved.
// The result is clamped to the minimum size and to the [0, 1] layout bounds,
// giving priority to position over size when both cannot be satisfied.
func SnapSelective(rect models.Rect, zones []models.Zone, excludeID string, edges Edges, opts Options) models.Rect {
	xStops, yStops := edgeStops(zones, excludeID)

	l, r := rect.X, rect.Right()
	t, b := rect.Y, rect.Bottom()

	if edges.Left {
		l = snapValue(l, xStops, opts.GridIntervalX, opts)
	}
	if edges.Right {
		r = snapValue(r, xStops, opts.GridIntervalX, opts)
	}
	if edges.Top {
		t = snapValue(t, yStops, opts.GridIntervalY, opts)
	}
	if edges.Bottom {
		b = snapValue(b, yStops, opts.GridIntervalY, opts)
	}

	l, r = enforceSpan(l, r, edges.Left, edges.Right, opts.MinSize)
	t, b = enforceSpan(t, b, edges.Top, edges.Bottom, opts.MinSize)

	return Clamp(models.Rect{X: l, Y: t, Width: r - l, Height: b - t}, opts.MinSize)
}

// Clamp forces rect inside the [0, 1] layout bounds with at least the given
// minimum size. Position wins over size: an oversized rect is shrunk in place
// rather than pushed out of bounds.
func Clamp(rect models.Rect, minSize float64) models.Rect {
	w := math.Max(rect.Width, minSize)
	h := math.Max(rect.Height, minSize)
	if w > 1 {
		w = 1
	}
	if h > 1 {
		h = 1
	}

	x := clamp01(rect.X)
	y := clamp01(rect.Y)
	if x+w > 1 {
		x = 1 - w
		if x < 0 {
			x = 0
			w = 1
		}
	}
	if y+h > 1 {
		y = 1 - h
		if y < 0 {
			y = 0
			h = 1
		}
	}

	return models.Rect{X: x, Y: y, Width: w, Height: h}
}

// snapValue snaps a single edge coordinate. Candidate positions are the
// neighboring zone edges within the snap threshold and the nearest grid line;
// the closest candidate wins. With no candidate the value passes through.
func snapValue(v float64, stops []float64, interval float64, opts Options) float64 {
	best := v
	bestDist := math.Inf(1)

	if opts.EdgeEnabled {
		for _, stop := range stops {
			d := math.Abs(stop - v)
			if d <= opts.EdgeThreshold && d < bestDist {
				best = stop
				bestDist = d
			}
		}
	}

	if opts.GridEnabled && interval > 0 {
		g := math.Round(v/interval) * interval
		if d := math.Abs(g - v); d < bestDist {
			best = g
			bestDist = d
		}
	}

	return best
}

// enforceSpan restores the minimum span after snapping, moving only edges that
// were actively snapped so a fixed opposite edge stays exactly where given.
func enforceSpan(lo, hi float64, loActive, hiActive bool, minSize float64) (float64, float64) {
	if hi-lo >= minSize {
		return lo, hi
	}
	switch {
	case hiActive && !loActive:
		hi = lo + minSize
	case loActive && !hiActive:
		lo = hi - minSize
	default:
		hi = lo + minSize
	}
	return lo, hi
}

// edgeStops collects the X and Y edge coordinates of every zone except the
// excluded one.
func edgeStops(zones []models.Zone, excludeID string) (xs, ys []float64) {
	for _, z := range zones {
		if z.ID == excludeID {
			continue
		}
		g := z.Geometry
		xs = append(xs, g.X, g.Right())
		ys = append(ys, g.Y, g.Bottom())
	}
	return xs, ys
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
