// Package templates generates complete zone lists for common layouts: even
// grids, column/row strips and a master-plus-stack arrangement, all in
// normalized coordinates.
package templates

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/zoner/zoner-cli/pkg/models"
)

// Template names one built-in layout generator.
type Template struct {
	ID          string
	Name        string
	Description string
	generate    func() []models.Rect
}

// Generate produces fresh zone records for the template. Every call assigns
// new ids; numbers run sequentially from 1 in reading order.
func (t Template) Generate() []models.Zone {
	rects := t.generate()
	zones := make([]models.Zone, len(rects))
	for i, r := range rects {
		zones[i] = models.Zone{
			ID:         uuid.NewString(),
			Number:     i + 1,
			Geometry:   r,
			Appearance: models.DefaultAppearance(),
		}
	}
	return zones
}

// Builtin returns the built-in templates sorted by id.
func Builtin() []Template {
	ts := []Template{
		{ID: "halves", Name: "Halves", Description: "Two side-by-side halves", generate: func() []models.Rect { return Columns(2) }},
		{ID: "thirds", Name: "Thirds", Description: "Three equal columns", generate: func() []models.Rect { return Columns(3) }},
		{ID: "grid-2x2", Name: "Grid 2×2", Description: "Four quadrants", generate: func() []models.Rect { return Grid(2, 2) }},
		{ID: "grid-3x3", Name: "Grid 3×3", Description: "Nine equal cells", generate: func() []models.Rect { return Grid(3, 3) }},
		{ID: "rows", Name: "Rows", Description: "Two stacked rows", generate: func() []models.Rect { return Rows(2) }},
		{ID: "master-stack", Name: "Master + Stack", Description: "Large master zone with a stacked side column", generate: func() []models.Rect { return MasterStack(0.6, 2) }},
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i].ID < ts[j].ID })
	return ts
}

// Lookup finds a built-in template by id.
func Lookup(id string) (Template, error) {
	for _, t := range Builtin() {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("unknown template %q", id)
}

// Grid produces rows x cols equal cells in reading order.
func Grid(rows, cols int) []models.Rect {
	if rows < 1 || cols < 1 {
		return nil
	}
	w := 1.0 / float64(cols)
	h := 1.0 / float64(rows)
	rects := make([]models.Rect, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			rects = append(rects, models.Rect{
				X:      float64(c) * w,
				Y:      float64(r) * h,
				Width:  w,
				Height: h,
			})
		}
	}
	return rects
}

// Columns produces n equal vertical strips.
func Columns(n int) []models.Rect {
	return Grid(1, n)
}

// Rows produces n equal horizontal strips.
func Rows(n int) []models.Rect {
	return Grid(n, 1)
}

// MasterStack produces one master zone occupying masterFraction of the width
// and stackCount equal zones stacked in the remaining column.
func MasterStack(masterFraction float64, stackCount int) []models.Rect {
	masterFraction = math.Max(0.1, math.Min(0.9, masterFraction))
	if stackCount < 1 {
		stackCount = 1
	}
	rects := []models.Rect{
		{X: 0, Y: 0, Width: masterFraction, Height: 1},
	}
	stackH := 1.0 / float64(stackCount)
	for i := 0; i < stackCount; i++ {
		rects = append(rects, models.Rect{
			X:      masterFraction,
			Y:      float64(i) * stackH,
			Width:  1 - masterFraction,
			Height: stackH,
		})
	}
	return rects
}
