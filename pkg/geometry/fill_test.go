package geometry

import (
	"testing"

	"github.com/zoner/zoner-cli/pkg/models"
)

func TestFillRegionExpandsToBounds(t *testing.T) {
	rect := models.Rect{X: 0.4, Y: 0.4, Width: 0.2, Height: 0.2}
	got, ok := FillRegion(rect, nil, "self", nil)
	if !ok {
		t.Fatal("expected expansion on an empty layout")
	}
	want := models.Rect{X: 0, Y: 0, Width: 1, Height: 1}
	if !rectsEqual(got, want) {
		t.Errorf("FillRegion = %+v, want %+v", got, want)
	}
}

func TestFillRegionStopsAtNeighbor(t *testing.T) {
	rect := models.Rect{X: 0.4, Y: 0.4, Width: 0.2, Height: 0.2}
	zones := []models.Zone{zoneAt("blocker", 0.8, 0.0, 0.2, 1.0)}

	got, ok := FillRegion(rect, zones, "self", nil)
	if !ok {
		t.Fatal("expected expansion")
	}
	want := models.Rect{X: 0, Y: 0, Width: 0.8, Height: 1.0}
	if !rectsEqual(got, want) {
		t.Errorf("FillRegion = %+v, want %+v", got, want)
	}
}

func TestFillRegionCursorPicksAxis(t *testing.T) {
	// A single top-left blocker makes the expansion order observable: the
	// axis that expands first claims the contested strip beside the blocker.
	rect := models.Rect{X: 0.4, Y: 0.4, Width: 0.2, Height: 0.2}
	zones := []models.Zone{zoneAt("corner", 0.0, 0.0, 0.3, 0.3)}

	// Cursor just right of the zone: horizontal axis goes first.
	horizontal, ok := FillRegion(rect, zones, "self", &Point{X: 0.65, Y: 0.5})
	if !ok {
		t.Fatal("expected expansion")
	}
	wantH := models.Rect{X: 0, Y: 0.3, Width: 1, Height: 0.7}
	if !rectsEqual(horizontal, wantH) {
		t.Errorf("horizontal-first FillRegion = %+v, want %+v", horizontal, wantH)
	}

	// Cursor just above the zone: vertical axis goes first.
	vertical, ok := FillRegion(rect, zones, "self", &Point{X: 0.5, Y: 0.35})
	if !ok {
		t.Fatal("expected expansion")
	}
	wantV := models.Rect{X: 0.3, Y: 0, Width: 0.7, Height: 1}
	if !rectsEqual(vertical, wantV) {
		t.Errorf("vertical-first FillRegion = %+v, want %+v", vertical, wantV)
	}
}

func TestFillRegionNoRoom(t *testing.T) {
	rect := models.Rect{X: 0, Y: 0, Width: 1, Height: 1}
	if _, ok := FillRegion(rect, nil, "self", nil); ok {
		t.Error("full-bounds zone reported expansion")
	}
}
