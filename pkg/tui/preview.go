package tui

import (
	"strconv"
	"strings"

	"github.com/zoner/zoner-cli/pkg/models"
)

// RenderPreview draws the zones onto a character canvas in paint order, so
// later zones overdraw earlier ones just as they would on screen. Each zone
// shows its border, number and (when it fits) its name. Zones whose ids are
// in selected render with a doubled border.
func RenderPreview(zones []models.Zone, selected map[string]bool, width, height int) string {
	if width < 5 || height < 3 {
		return ""
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for _, z := range zones {
		drawZone(canvas, z, selected[z.ID], width, height)
	}

	lines := make([]string, height)
	for i, row := range canvas {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

func drawZone(canvas [][]rune, z models.Zone, selected bool, width, height int) {
	g := z.Geometry
	x1 := int(g.X * float64(width-1))
	y1 := int(g.Y * float64(height-1))
	x2 := int(g.Right() * float64(width-1))
	y2 := int(g.Bottom() * float64(height-1))
	if x2 <= x1 {
		x2 = x1 + 1
	}
	if y2 <= y1 {
		y2 = y1 + 1
	}
	if x2 >= width {
		x2 = width - 1
	}
	if y2 >= height {
		y2 = height - 1
	}

	h, v := '─', '│'
	tl, tr, bl, br := '┌', '┐', '└', '┘'
	if selected {
		h, v = '═', '║'
		tl, tr, bl, br = '╔', '╗', '╚', '╝'
	}

	// Clear the interior so the zone overdraws anything beneath it.
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			canvas[y][x] = ' '
		}
	}
	for x := x1 + 1; x < x2; x++ {
		canvas[y1][x] = h
		canvas[y2][x] = h
	}
	for y := y1 + 1; y < y2; y++ {
		canvas[y][x1] = v
		canvas[y][x2] = v
	}
	canvas[y1][x1] = tl
	canvas[y1][x2] = tr
	canvas[y2][x1] = bl
	canvas[y2][x2] = br

	label := []rune(strconv.Itoa(z.Number))
	if z.Name != "" {
		label = append(label, ' ')
		label = append(label, []rune(z.Name)...)
	}
	maxLabel := x2 - x1 - 1
	if maxLabel < 1 {
		return
	}
	if len(label) > maxLabel {
		label = label[:maxLabel]
	}
	ly := (y1 + y2) / 2
	lx := x1 + 1 + (maxLabel-len(label))/2
	for i, r := range label {
		canvas[ly][lx+i] = r
	}
}
