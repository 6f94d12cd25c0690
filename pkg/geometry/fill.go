package geometry

import (
	"math"

	"github.com/zoner/zoner-cli/pkg/models"
)

// Point is a normalized cursor position inside the layout.
type Point struct {
	X, Y float64
}

// FillRegion computes the maximal empty rectangle reachable from rect by
// expanding outward until hitting the nearest occupied zone edge or the
// layout boundary. Expansion happens on one axis at a time; the optional
// cursor picks which axis goes first (the axis whose nearer side is closer to
// the cursor), so the region grows toward the user's pointer when both axes
// have room. The second result is false when no expansion is possible.
func FillRegion(rect models.Rect, zones []models.Zone, excludeID string, cursor *Point) (models.Rect, bool) {
	others := make([]models.Rect, 0, len(zones))
	for _, z := range zones {
		if z.ID == excludeID {
			continue
		}
		others = append(others, z.Geometry)
	}

	horizontalFirst := true
	if cursor != nil {
		dx := math.Min(math.Abs(cursor.X-rect.X), math.Abs(cursor.X-rect.Right()))
		dy := math.Min(math.Abs(cursor.Y-rect.Y), math.Abs(cursor.Y-rect.Bottom()))
		horizontalFirst = dx <= dy
	}

	expanded := rect
	if horizontalFirst {
		expanded = expandHorizontal(expanded, others)
		expanded = expandVertical(expanded, others)
	} else {
		expanded = expandVertical(expanded, others)
		expanded = expandHorizontal(expanded, others)
	}

	if rectsAlmostEqual(expanded, rect) {
		return rect, false
	}
	return expanded, true
}

// expandHorizontal grows rect left and right up to the nearest zone edge that
// overlaps its vertical span, or the layout boundary.
func expandHorizontal(rect models.Rect, others []models.Rect) models.Rect {
	left, right := 0.0, 1.0
	for _, g := range others {
		if !spansOverlap(rect.Y, rect.Bottom(), g.Y, g.Bottom()) {
			continue
		}
		if g.Right() <= rect.X+AdjacencyEpsilon && g.Right() > left {
			left = g.Right()
		}
		if g.X >= rect.Right()-AdjacencyEpsilon && g.X < right {
			right = g.X
		}
	}
	return models.Rect{X: left, Y: rect.Y, Width: right - left, Height: rect.Height}
}

// expandVertical grows rect up and down up to the nearest zone edge that
// overlaps its horizontal span, or the layout boundary.
func expandVertical(rect models.Rect, others []models.Rect) models.Rect {
	top, bottom := 0.0, 1.0
	for _, g := range others {
		if !spansOverlap(rect.X, rect.Right(), g.X, g.Right()) {
			continue
		}
		if g.Bottom() <= rect.Y+AdjacencyEpsilon && g.Bottom() > top {
			top = g.Bottom()
		}
		if g.Y >= rect.Bottom()-AdjacencyEpsilon && g.Y < bottom {
			bottom = g.Y
		}
	}
	return models.Rect{X: rect.X, Y: top, Width: rect.Width, Height: bottom - top}
}

func rectsAlmostEqual(a, b models.Rect) bool {
	const tol = 1e-9
	return math.Abs(a.X-b.X) < tol &&
		math.Abs(a.Y-b.Y) < tol &&
		math.Abs(a.Width-b.Width) < tol &&
		math.Abs(a.Height-b.Height) < tol
}
