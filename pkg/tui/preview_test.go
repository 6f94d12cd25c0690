package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoner/zoner-cli/pkg/models"
)

func previewZone(id string, number int, name string, r models.Rect) models.Zone {
	return models.Zone{ID: id, Number: number, Name: name, Geometry: r}
}

func TestRenderPreviewTooSmall(t *testing.T) {
	zones := []models.Zone{
		previewZone("a", 1, "main", models.Rect{X: 0, Y: 0, Width: 1, Height: 1}),
	}
	assert.Equal(t, "", RenderPreview(zones, nil, 4, 10))
	assert.Equal(t, "", RenderPreview(zones, nil, 10, 2))
}

func TestRenderPreviewSingleZone(t *testing.T) {
	zones := []models.Zone{
		previewZone("a", 1, "main", models.Rect{X: 0, Y: 0, Width: 1, Height: 1}),
	}

	out := RenderPreview(zones, nil, 21, 7)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7)
	for i, line := range lines {
		assert.Len(t, []rune(line), 21, "line %d", i)
	}

	top := []rune(lines[0])
	bottom := []rune(lines[6])
	assert.Equal(t, '┌', top[0])
	assert.Equal(t, '┐', top[20])
	assert.Equal(t, '└', bottom[0])
	assert.Equal(t, '┘', bottom[20])
	assert.Contains(t, lines[3], "1 main")
}

func TestRenderPreviewSelectedBorder(t *testing.T) {
	zones := []models.Zone{
		previewZone("a", 1, "", models.Rect{X: 0, Y: 0, Width: 0.5, Height: 1}),
		previewZone("b", 2, "", models.Rect{X: 0.5, Y: 0, Width: 0.5, Height: 1}),
	}

	out := RenderPreview(zones, map[string]bool{"b": true}, 21, 7)
	assert.Contains(t, out, "╔", "selected zone uses a doubled border")
	assert.Contains(t, out, "┌", "unselected zone keeps the single border")
}

func TestRenderPreviewPaintOrder(t *testing.T) {
	zones := []models.Zone{
		previewZone("under", 1, "under", models.Rect{X: 0, Y: 0, Width: 1, Height: 1}),
		previewZone("over", 2, "over", models.Rect{X: 0.25, Y: 0.25, Width: 0.5, Height: 0.5}),
	}

	out := RenderPreview(zones, nil, 41, 13)
	assert.Contains(t, out, "2 over")
	// The later zone's interior clears the earlier zone's label.
	assert.NotContains(t, out, "1 under")
}

func TestRenderPreviewTruncatesLabel(t *testing.T) {
	zones := []models.Zone{
		previewZone("a", 1, "verylongname", models.Rect{X: 0, Y: 0, Width: 0.2, Height: 1}),
	}

	out := RenderPreview(zones, nil, 21, 7)
	assert.Contains(t, out, "1 v")
	assert.NotContains(t, out, "very")
}

func TestRenderPreviewMultibyteName(t *testing.T) {
	zones := []models.Zone{
		previewZone("a", 1, "café", models.Rect{X: 0, Y: 0, Width: 1, Height: 1}),
	}

	out := RenderPreview(zones, nil, 21, 7)
	assert.Contains(t, out, "1 café")
	for i, line := range strings.Split(out, "\n") {
		assert.Len(t, []rune(line), 21, "line %d", i)
	}
}
