// Package zones holds the authoritative in-memory zone collection for the
// layout being edited. The Manager is deliberately validation-free: callers
// (the editor controller) validate before mutating, and undo commands mutate
// through the same direct setters when replaying history.
package zones

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/zoner/zoner-cli/pkg/geometry"
	"github.com/zoner/zoner-cli/pkg/models"
)

// MaxZoneNumber is the highest assignable zone number.
const MaxZoneNumber = 99

// Listener is invoked after the zone collection changes. During a batch
// update notifications are suppressed and flushed once at the end.
type Listener func()

// Manager owns the ordered zone collection. Order is paint order: the last
// zone draws on top.
type Manager struct {
	zones      []models.Zone
	listeners  []Listener
	batchDepth int
	batchDirty bool
	closed     bool
}

// NewManager creates an empty zone store.
func NewManager() *Manager {
	return &Manager{}
}

// Close invalidates the store. Undo commands holding a reference treat a
// closed store as gone and become no-ops instead of mutating stale state.
func (m *Manager) Close() {
	m.closed = true
	m.zones = nil
	m.listeners = nil
}

// Alive reports whether the store is still usable.
func (m *Manager) Alive() bool {
	return !m.closed
}

// AddListener registers a change callback.
func (m *Manager) AddListener(l Listener) {
	m.listeners = append(m.listeners, l)
}

// BeginBatchUpdate suppresses change notifications until the matching
// EndBatchUpdate. Brackets nest; only the outermost end flushes.
func (m *Manager) BeginBatchUpdate() {
	m.batchDepth++
}

// EndBatchUpdate closes a batch bracket, flushing one notification if any
// mutation happened inside. Unbalanced calls clamp at depth zero.
func (m *Manager) EndBatchUpdate() {
	if m.batchDepth == 0 {
		return
	}
	m.batchDepth--
	if m.batchDepth == 0 && m.batchDirty {
		m.batchDirty = false
		m.notify()
	}
}

func (m *Manager) changed() {
	if m.batchDepth > 0 {
		m.batchDirty = true
		return
	}
	m.notify()
}

func (m *Manager) notify() {
	for _, l := range m.listeners {
		l()
	}
}

// Zones returns a copy of the zone list in paint order.
func (m *Manager) Zones() []models.Zone {
	out := make([]models.Zone, len(m.zones))
	copy(out, m.zones)
	return out
}

// Count returns the number of zones.
func (m *Manager) Count() int {
	return len(m.zones)
}

// Zone looks up a zone by id.
func (m *Manager) Zone(id string) (models.Zone, bool) {
	if i := m.indexOf(id); i >= 0 {
		return m.zones[i], true
	}
	return models.Zone{}, false
}

// IndexOf returns the zone's position in paint order, or -1.
func (m *Manager) IndexOf(id string) int {
	return m.indexOf(id)
}

func (m *Manager) indexOf(id string) int {
	for i := range m.zones {
		if m.zones[i].ID == id {
			return i
		}
	}
	return -1
}

// NextNumber returns the lowest unused zone number, or 0 when all numbers in
// [1, MaxZoneNumber] are taken.
func (m *Manager) NextNumber() int {
	used := make(map[int]bool, len(m.zones))
	for _, z := range m.zones {
		used[z.Number] = true
	}
	for n := 1; n <= MaxZoneNumber; n++ {
		if !used[n] {
			return n
		}
	}
	return 0
}

// MaxNumber returns the highest zone number currently in use.
func (m *Manager) MaxNumber() int {
	max := 0
	for _, z := range m.zones {
		if z.Number > max {
			max = z.Number
		}
	}
	return max
}

// AddZone creates a zone with the given geometry, the next free number and
// default appearance, appended on top of the paint order.
func (m *Manager) AddZone(rect models.Rect) string {
	zone := models.Zone{
		ID:         uuid.NewString(),
		Name:       "",
		Number:     m.NextNumber(),
		Geometry:   rect,
		Appearance: models.DefaultAppearance(),
	}
	m.zones = append(m.zones, zone)
	m.changed()
	return zone.ID
}

// InsertZone re-inserts a fully formed zone record at the given paint-order
// position. Used by undo to restore deleted zones exactly where they were.
func (m *Manager) InsertZone(zone models.Zone, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(m.zones) {
		index = len(m.zones)
	}
	m.zones = append(m.zones, models.Zone{})
	copy(m.zones[index+1:], m.zones[index:])
	m.zones[index] = zone
	m.changed()
}

// DeleteZone removes the zone by id.
func (m *Manager) DeleteZone(id string) bool {
	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	m.zones = append(m.zones[:i], m.zones[i+1:]...)
	m.changed()
	return true
}

// DuplicateZone copies a zone with a fresh id, the next free number, an
// offset position and a " copy" name suffix, appended on top.
func (m *Manager) DuplicateZone(id string, offset float64) (string, bool) {
	i := m.indexOf(id)
	if i < 0 {
		return "", false
	}
	src := m.zones[i]

	dup := src
	dup.ID = uuid.NewString()
	dup.Number = m.NextNumber()
	if src.Name != "" {
		dup.Name = src.Name + " copy"
	}
	dup.Geometry = geometry.Clamp(models.Rect{
		X:      src.Geometry.X + offset,
		Y:      src.Geometry.Y + offset,
		Width:  src.Geometry.Width,
		Height: src.Geometry.Height,
	}, 0)

	m.zones = append(m.zones, dup)
	m.changed()
	return dup.ID, true
}

// SplitZone halves a zone along the requested axis. The original keeps the
// first half, the new zone takes the second half and inherits the original's
// appearance. Returns the new zone's id.
func (m *Manager) SplitZone(id string, horizontal bool) (string, bool) {
	i := m.indexOf(id)
	if i < 0 {
		return "", false
	}
	g := m.zones[i].Geometry

	var first, second models.Rect
	if horizontal {
		// Horizontal split: one half above the other.
		first = models.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height / 2}
		second = models.Rect{X: g.X, Y: g.Y + g.Height/2, Width: g.Width, Height: g.Height / 2}
	} else {
		first = models.Rect{X: g.X, Y: g.Y, Width: g.Width / 2, Height: g.Height}
		second = models.Rect{X: g.X + g.Width/2, Y: g.Y, Width: g.Width / 2, Height: g.Height}
	}

	m.zones[i].Geometry = first

	newZone := models.Zone{
		ID:         uuid.NewString(),
		Name:       "",
		Number:     m.NextNumber(),
		Geometry:   second,
		Appearance: m.zones[i].Appearance,
	}
	m.zones = append(m.zones, newZone)
	m.changed()
	return newZone.ID, true
}

// UpdateZoneGeometryDirect sets a zone's geometry without validation.
func (m *Manager) UpdateZoneGeometryDirect(id string, rect models.Rect) bool {
	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	m.zones[i].Geometry = rect
	m.changed()
	return true
}

// UpdateZoneName sets a zone's name without validation.
func (m *Manager) UpdateZoneName(id, name string) bool {
	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	m.zones[i].Name = name
	m.changed()
	return true
}

// UpdateZoneNumber sets a zone's number without validation.
func (m *Manager) UpdateZoneNumber(id string, number int) bool {
	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	m.zones[i].Number = number
	m.changed()
	return true
}

// UpdateZoneAppearance replaces a zone's appearance wholesale.
func (m *Manager) UpdateZoneAppearance(id string, a models.Appearance) bool {
	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	m.zones[i].Appearance = a
	m.changed()
	return true
}

// BringToFront moves the zone to the end of the paint order.
func (m *Manager) BringToFront(id string) bool {
	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	if i == len(m.zones)-1 {
		return true
	}
	z := m.zones[i]
	m.zones = append(m.zones[:i], m.zones[i+1:]...)
	m.zones = append(m.zones, z)
	m.changed()
	return true
}

// SendToBack moves the zone to the start of the paint order.
func (m *Manager) SendToBack(id string) bool {
	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	if i == 0 {
		return true
	}
	z := m.zones[i]
	m.zones = append(m.zones[:i], m.zones[i+1:]...)
	m.zones = append([]models.Zone{z}, m.zones...)
	m.changed()
	return true
}

// BringForward swaps the zone with its next (higher) neighbor.
func (m *Manager) BringForward(id string) bool {
	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	if i == len(m.zones)-1 {
		return true
	}
	m.zones[i], m.zones[i+1] = m.zones[i+1], m.zones[i]
	m.changed()
	return true
}

// SendBackward swaps the zone with its previous (lower) neighbor.
func (m *Manager) SendBackward(id string) bool {
	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	if i == 0 {
		return true
	}
	m.zones[i-1], m.zones[i] = m.zones[i], m.zones[i-1]
	m.changed()
	return true
}

// ExpandToFillSpace grows the zone into adjacent empty space, optionally
// biased toward the cursor. Returns false when no expansion is possible.
func (m *Manager) ExpandToFillSpace(id string, cursor *geometry.Point) bool {
	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	filled, ok := geometry.FillRegion(m.zones[i].Geometry, m.zones, id, cursor)
	if !ok {
		return false
	}
	m.zones[i].Geometry = filled
	m.changed()
	return true
}

// DeleteZoneWithFill deletes a zone and, when autoFill is set, expands each
// formerly adjacent zone to reclaim the vacated space. Neighbors are
// processed by shared-edge length descending so the largest neighbor claims
// the most space first.
func (m *Manager) DeleteZoneWithFill(id string, autoFill bool) bool {
	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	deleted := m.zones[i]

	var neighbors []string
	if autoFill {
		adj := geometry.FindAdjacentZones(deleted, m.zones)
		neighbors = append(neighbors, adj.Left...)
		neighbors = append(neighbors, adj.Right...)
		neighbors = append(neighbors, adj.Top...)
		neighbors = append(neighbors, adj.Bottom...)
		sort.SliceStable(neighbors, func(a, b int) bool {
			ga, _ := m.Zone(neighbors[a])
			gb, _ := m.Zone(neighbors[b])
			return geometry.SharedEdgeLength(ga.Geometry, deleted.Geometry) >
				geometry.SharedEdgeLength(gb.Geometry, deleted.Geometry)
		})
	}

	m.BeginBatchUpdate()
	defer m.EndBatchUpdate()

	if !m.DeleteZone(id) {
		return false
	}
	for _, nid := range neighbors {
		m.ExpandToFillSpace(nid, nil)
	}
	return true
}

// RestoreZones replaces the whole collection, used by undo/redo of structural
// operations such as template apply, paste and clear-all.
func (m *Manager) RestoreZones(zones []models.Zone) {
	m.zones = make([]models.Zone, len(zones))
	copy(m.zones, zones)
	m.changed()
}

// String summarizes the store for debug logging.
func (m *Manager) String() string {
	return fmt.Sprintf("zones.Manager(%d zones, batch depth %d)", len(m.zones), m.batchDepth)
}
