// Package editor implements the zone-layout editing session: a validating
// controller over the zone store, an undoable command set, selection state,
// the multi-zone drag protocol and the clipboard protocol. All methods are
// synchronous and must be called from a single goroutine.
package editor

import (
	"encoding/json"
	"math"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/zoner/zoner-cli/pkg/geometry"
	"github.com/zoner/zoner-cli/pkg/models"
	"github.com/zoner/zoner-cli/pkg/shaders"
	"github.com/zoner/zoner-cli/pkg/undo"
	"github.com/zoner/zoner-cli/pkg/zones"
)

// geometryTolerance suppresses no-op history entries caused by sub-pixel
// jitter during drags: geometry changes smaller than this are dropped.
const geometryTolerance = 1e-4

// maxNameLength bounds user-facing zone names.
const maxNameLength = 100

// forbiddenNameChars are rejected in zone names.
const forbiddenNameChars = `<>"'` + "`"

// LayoutService is the external persistence collaborator. Implementations
// load and save whole layout documents.
type LayoutService interface {
	LoadLayout(id string) (*models.Layout, error)
	CreateLayout(layout *models.Layout) (string, error)
	UpdateLayout(layout *models.Layout) error
}

// ShaderService is the external shader metadata collaborator. The editor
// only consumes shader ids and declared parameter ids.
type ShaderService interface {
	AvailableShaders() []shaders.Info
	ShaderInfo(id string) (shaders.Info, bool)
}

// SelectionListener is notified whenever the selection changes.
type SelectionListener func(ids []string)

// Controller is the single point of mutation for the presentation layer. It
// owns the zone store, undo stack and selection for one editing session.
type Controller struct {
	settings *models.Settings
	store    *zones.Manager
	stack    *undo.Stack
	layouts  LayoutService
	shaders  ShaderService
	clip     Clipboard

	layout    *models.Layout
	persisted bool
	metaDirty bool

	selection    []string
	selListeners []SelectionListener

	drag *dragState
}

// NewController creates an editing session with an empty unnamed layout.
// Settings are loaded once by the caller and threaded through explicitly.
func NewController(settings *models.Settings, layouts LayoutService, shaderSvc ShaderService, clip Clipboard) *Controller {
	c := &Controller{
		settings: settings,
		store:    zones.NewManager(),
		stack:    undo.NewStack(settings.Editor.UndoDepth),
		layouts:  layouts,
		shaders:  shaderSvc,
		clip:     clip,
		layout:   models.NewLayout(""),
	}
	// Zone removal must drop the id from the selection in the same logical
	// step; the store notification fires once per mutation or batch.
	c.store.AddListener(c.pruneSelection)
	return c
}

// Close ends the session, invalidating the store so that any retained undo
// commands become no-ops.
func (c *Controller) Close() {
	c.store.Close()
	c.stack.Clear()
}

// Store exposes the zone store for read access and change subscription.
func (c *Controller) Store() *zones.Manager { return c.store }

// Settings returns the session's configuration.
func (c *Controller) Settings() *models.Settings { return c.settings }

// Layout returns the layout metadata being edited.
func (c *Controller) Layout() *models.Layout { return c.layout }

// Zones returns the current zone list in paint order.
func (c *Controller) Zones() []models.Zone { return c.store.Zones() }

// snapOptions builds per-call snap options from the session settings.
func (c *Controller) snapOptions() geometry.Options {
	return geometry.OptionsFromSettings(c.settings)
}

// --- history ---

// Undo reverts the most recent history entry.
func (c *Controller) Undo() { c.stack.Undo() }

// Redo replays the next undone entry.
func (c *Controller) Redo() { c.stack.Redo() }

// CanUndo reports whether history is available to undo.
func (c *Controller) CanUndo() bool { return c.stack.CanUndo() }

// CanRedo reports whether undone history is available to redo.
func (c *Controller) CanRedo() bool { return c.stack.CanRedo() }

// UndoLabel describes the entry Undo would revert.
func (c *Controller) UndoLabel() string { return c.stack.UndoLabel() }

// RedoLabel describes the entry Redo would replay.
func (c *Controller) RedoLabel() string { return c.stack.RedoLabel() }

// IsDirty reports whether the session has unsaved changes, either in the
// undo history position or in layout metadata edited outside the history.
func (c *Controller) IsDirty() bool {
	return !c.stack.IsClean() || c.metaDirty
}

// --- session lifecycle ---

// NewLayoutSession starts editing a fresh empty layout, dropping history.
func (c *Controller) NewLayoutSession(name string) {
	c.layout = models.NewLayout(name)
	c.persisted = false
	c.metaDirty = false
	c.store.RestoreZones(nil)
	c.stack.Clear()
	c.setSelectionDirect(nil)
}

// LoadLayout fetches a layout from the persistence service and replaces the
// editing session wholesale. Undo history does not cross layout boundaries.
// On failure the in-memory state is left untouched so the user can retry.
func (c *Controller) LoadLayout(id string) error {
	layout, err := c.layouts.LoadLayout(id)
	if err != nil {
		return wrapError(ErrCodeLoadFailed, err, "failed to load layout %q", id)
	}
	c.layout = layout
	c.persisted = true
	c.metaDirty = false
	c.store.RestoreZones(layout.Zones)
	c.stack.Clear()
	c.setSelectionDirect(nil)
	return nil
}

// SaveLayout collects the edited zones into the layout document and persists
// it wholesale. A successful save marks the history clean.
func (c *Controller) SaveLayout() error {
	c.layout.Zones = c.store.Zones()
	if c.persisted {
		if err := c.layouts.UpdateLayout(c.layout); err != nil {
			return wrapError(ErrCodeSaveFailed, err, "failed to save layout %q", c.layout.Name)
		}
	} else {
		id, err := c.layouts.CreateLayout(c.layout)
		if err != nil {
			return wrapError(ErrCodeSaveFailed, err, "failed to create layout %q", c.layout.Name)
		}
		c.layout.ID = id
		c.persisted = true
	}
	c.stack.SetClean()
	c.metaDirty = false
	return nil
}

// ExportLayout serializes the in-memory document straight to an external
// path, touching neither the store nor the session's dirty state. Export
// stays available as a recovery path when saving fails.
func (c *Controller) ExportLayout(path string) error {
	c.layout.Zones = c.store.Zones()
	data, err := json.MarshalIndent(c.layout, "", "  ")
	if err != nil {
		return wrapError(ErrCodeSaveFailed, err, "failed to serialize layout")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return wrapError(ErrCodeSaveFailed, err, "failed to export layout to %s", path)
	}
	return nil
}

// --- validation ---

func (c *Controller) validateGeometry(rect models.Rect) error {
	if rect.Width <= 0 || rect.Height <= 0 {
		return newError(ErrCodeInvalidGeometry, "zone size must be positive, got %.3fx%.3f", rect.Width, rect.Height)
	}
	if rect.X < 0 || rect.Y < 0 || rect.Right() > 1+geometryTolerance || rect.Bottom() > 1+geometryTolerance {
		return newError(ErrCodeInvalidGeometry, "zone must lie within the layout bounds")
	}
	return nil
}

func (c *Controller) validateName(zoneID, name string) error {
	if len(name) > maxNameLength {
		return zoneError(ErrCodeInvalidName, zoneID, "zone name exceeds %d characters", maxNameLength)
	}
	if strings.ContainsAny(name, forbiddenNameChars) {
		return zoneError(ErrCodeInvalidName, zoneID, "zone name contains forbidden characters")
	}
	if name == "" {
		return nil
	}
	for _, z := range c.store.Zones() {
		if z.ID != zoneID && z.Name == name {
			return zoneError(ErrCodeInvalidName, zoneID, "zone name %q is already in use", name)
		}
	}
	return nil
}

func (c *Controller) validateNumber(zoneID string, number int) error {
	if number < 1 || number > zones.MaxZoneNumber {
		return zoneError(ErrCodeInvalidNumber, zoneID, "zone number must be between 1 and %d", zones.MaxZoneNumber)
	}
	for _, z := range c.store.Zones() {
		if z.ID != zoneID && z.Number == number {
			return zoneError(ErrCodeInvalidNumber, zoneID, "zone number %d is already in use", number)
		}
	}
	return nil
}

// --- zone operations ---

// AddZone validates, snaps and creates a zone, returning its id.
func (c *Controller) AddZone(rect models.Rect) (string, error) {
	if err := c.validateGeometry(rect); err != nil {
		return "", err
	}
	snapped := geometry.Snap(rect, c.store.Zones(), "", c.snapOptions())

	number := c.store.NextNumber()
	if number == 0 {
		return "", newError(ErrCodeInvalidNumber, "all %d zone numbers are in use", zones.MaxZoneNumber)
	}

	zone := models.Zone{
		ID:         uuid.NewString(),
		Number:     number,
		Geometry:   snapped,
		Appearance: models.DefaultAppearance(),
	}
	c.stack.Push(&addZoneCommand{
		store: c.store,
		zone:  zone,
		index: c.store.Count(),
		label: "add zone",
	})
	return zone.ID, nil
}

// DeleteZone removes a zone. With autoFill set, formerly adjacent zones
// expand to reclaim the vacated space; the delete and every fill form one
// history entry. The zone leaves the selection in the same step.
func (c *Controller) DeleteZone(id string, autoFill bool) error {
	zone, ok := c.store.Zone(id)
	if !ok {
		return zoneError(ErrCodeZoneNotFound, id, "zone %s does not exist", id)
	}
	index := c.store.IndexOf(id)

	if !autoFill {
		c.stack.Push(&deleteZoneCommand{store: c.store, zone: zone, index: index})
		return nil
	}

	adj := geometry.FindAdjacentZones(zone, c.store.Zones())
	neighbors := append(append(append(append([]string{}, adj.Left...), adj.Right...), adj.Top...), adj.Bottom...)
	sortNeighborsBySharedEdge(c.store, neighbors, zone.Geometry)

	c.store.BeginBatchUpdate()
	defer c.store.EndBatchUpdate()
	c.stack.BeginMacro("delete zone")
	defer c.stack.EndMacro()

	c.stack.Push(&deleteZoneCommand{store: c.store, zone: zone, index: index})
	for _, nid := range neighbors {
		n, ok := c.store.Zone(nid)
		if !ok {
			continue
		}
		filled, ok := geometry.FillRegion(n.Geometry, c.store.Zones(), nid, nil)
		if !ok {
			continue
		}
		c.stack.Push(&geometryCommand{
			store:   c.store,
			zoneID:  nid,
			oldRect: n.Geometry,
			newRect: filled,
			label:   "fill space",
		})
	}
	return nil
}

// DuplicateZone copies a zone with a fresh id and offset position as one
// undoable entry, returning the new id.
func (c *Controller) DuplicateZone(id string) (string, error) {
	src, ok := c.store.Zone(id)
	if !ok {
		return "", zoneError(ErrCodeZoneNotFound, id, "zone %s does not exist", id)
	}
	number := c.store.NextNumber()
	if number == 0 {
		return "", newError(ErrCodeInvalidNumber, "all %d zone numbers are in use", zones.MaxZoneNumber)
	}

	dup := src
	dup.ID = uuid.NewString()
	dup.Number = number
	if src.Name != "" {
		dup.Name = c.uniqueCopyName(src.Name)
	}
	offset := c.settings.Editor.DuplicateOffset
	dup.Geometry = geometry.Clamp(models.Rect{
		X:      src.Geometry.X + offset,
		Y:      src.Geometry.Y + offset,
		Width:  src.Geometry.Width,
		Height: src.Geometry.Height,
	}, c.settings.Zones.MinSize)

	c.stack.Push(&addZoneCommand{
		store: c.store,
		zone:  dup,
		index: c.store.Count(),
		label: "duplicate zone",
	})
	return dup.ID, nil
}

// uniqueCopyName appends " copy" suffixes until the name is free.
func (c *Controller) uniqueCopyName(base string) string {
	return c.uniqueCopyNameAvoiding(base, nil)
}

// uniqueCopyNameAvoiding treats the extra names as taken alongside the
// store's, for callers staging several zones before any of them land.
func (c *Controller) uniqueCopyNameAvoiding(base string, extra map[string]bool) string {
	name := base + " copy"
	for c.nameTaken(name) || extra[name] {
		name += " copy"
		if len(name) > maxNameLength {
			return ""
		}
	}
	return name
}

func (c *Controller) nameTaken(name string) bool {
	for _, z := range c.store.Zones() {
		if z.Name == name {
			return true
		}
	}
	return false
}

// UpdateZoneGeometry runs the snap-then-clamp pipeline on a candidate
// geometry and records the change. The edges parameter limits snapping to
// the edges actively being dragged; pass geometry.AllEdges() for moves.
// Changes within the floating-point tolerance are dropped so sub-pixel drag
// jitter does not pollute the history.
func (c *Controller) UpdateZoneGeometry(id string, rect models.Rect, edges geometry.Edges) error {
	zone, ok := c.store.Zone(id)
	if !ok {
		return zoneError(ErrCodeZoneNotFound, id, "zone %s does not exist", id)
	}
	if rect.Width <= 0 || rect.Height <= 0 {
		return zoneError(ErrCodeInvalidGeometry, id, "zone size must be positive")
	}

	snapped := geometry.SnapSelective(rect, c.store.Zones(), id, edges, c.snapOptions())
	if rectsWithinTolerance(snapped, zone.Geometry) {
		return nil
	}

	c.stack.Push(&geometryCommand{
		store:   c.store,
		zoneID:  id,
		oldRect: zone.Geometry,
		newRect: snapped,
		label:   "move zone",
	})
	return nil
}

// RenameZone validates and records a name change.
func (c *Controller) RenameZone(id, name string) error {
	zone, ok := c.store.Zone(id)
	if !ok {
		return zoneError(ErrCodeZoneNotFound, id, "zone %s does not exist", id)
	}
	if err := c.validateName(id, name); err != nil {
		return err
	}
	if zone.Name == name {
		return nil
	}
	c.stack.Push(&nameCommand{store: c.store, zoneID: id, oldName: zone.Name, newName: name})
	return nil
}

// RenumberZone validates and records a shortcut number change.
func (c *Controller) RenumberZone(id string, number int) error {
	zone, ok := c.store.Zone(id)
	if !ok {
		return zoneError(ErrCodeZoneNotFound, id, "zone %s does not exist", id)
	}
	if err := c.validateNumber(id, number); err != nil {
		return err
	}
	if zone.Number == number {
		return nil
	}
	c.stack.Push(&numberCommand{store: c.store, zoneID: id, oldNumber: zone.Number, newNumber: number})
	return nil
}

// UpdateZoneAppearance replaces a zone's appearance as one history entry.
func (c *Controller) UpdateZoneAppearance(id string, a models.Appearance) error {
	zone, ok := c.store.Zone(id)
	if !ok {
		return zoneError(ErrCodeZoneNotFound, id, "zone %s does not exist", id)
	}
	if zone.Appearance == a {
		return nil
	}
	c.stack.Push(&appearanceCommand{store: c.store, zoneID: id, oldA: zone.Appearance, newA: a})
	return nil
}

// UpdateZonesAppearance applies one appearance field change to several zones
// as a single history entry.
func (c *Controller) UpdateZonesAppearance(ids []string, field AppearanceField, value FieldValue) error {
	if len(ids) == 0 {
		return newError(ErrCodeNoSelection, "no zones given")
	}
	oldA := make(map[string]models.Appearance, len(ids))
	newA := make(map[string]models.Appearance, len(ids))
	for _, id := range ids {
		zone, ok := c.store.Zone(id)
		if !ok {
			return zoneError(ErrCodeZoneNotFound, id, "zone %s does not exist", id)
		}
		oldA[id] = zone.Appearance
		newA[id] = applyAppearanceField(zone.Appearance, field, value)
	}
	c.stack.Push(&batchAppearanceCommand{store: c.store, oldA: oldA, newA: newA})
	return nil
}

// SplitZone halves a zone along the requested axis, returning the new zone's
// id. Fails when either half would drop below the minimum size.
func (c *Controller) SplitZone(id string, horizontal bool) (string, error) {
	zone, ok := c.store.Zone(id)
	if !ok {
		return "", zoneError(ErrCodeZoneNotFound, id, "zone %s does not exist", id)
	}
	g := zone.Geometry
	minSize := c.settings.Zones.MinSize
	if horizontal && g.Height/2 < minSize {
		return "", zoneError(ErrCodeInvalidGeometry, id, "zone is too short to split")
	}
	if !horizontal && g.Width/2 < minSize {
		return "", zoneError(ErrCodeInvalidGeometry, id, "zone is too narrow to split")
	}
	number := c.store.NextNumber()
	if number == 0 {
		return "", newError(ErrCodeInvalidNumber, "all %d zone numbers are in use", zones.MaxZoneNumber)
	}

	var first, second models.Rect
	if horizontal {
		first = models.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height / 2}
		second = models.Rect{X: g.X, Y: g.Y + g.Height/2, Width: g.Width, Height: g.Height / 2}
	} else {
		first = models.Rect{X: g.X, Y: g.Y, Width: g.Width / 2, Height: g.Height}
		second = models.Rect{X: g.X + g.Width/2, Y: g.Y, Width: g.Width / 2, Height: g.Height}
	}

	newZone := models.Zone{
		ID:         uuid.NewString(),
		Number:     number,
		Geometry:   second,
		Appearance: zone.Appearance,
	}
	c.stack.Push(&splitCommand{
		store:    c.store,
		zoneID:   id,
		oldRect:  g,
		newRect:  first,
		newZone:  newZone,
		newIndex: c.store.Count(),
	})
	return newZone.ID, nil
}

// ExpandZone grows a zone into adjacent empty space, biased toward the
// optional cursor position.
func (c *Controller) ExpandZone(id string, cursor *geometry.Point) error {
	zone, ok := c.store.Zone(id)
	if !ok {
		return zoneError(ErrCodeZoneNotFound, id, "zone %s does not exist", id)
	}
	filled, ok := geometry.FillRegion(zone.Geometry, c.store.Zones(), id, cursor)
	if !ok {
		return zoneError(ErrCodeNoExpansion, id, "no adjacent space to fill")
	}
	c.stack.Push(&geometryCommand{
		store:   c.store,
		zoneID:  id,
		oldRect: zone.Geometry,
		newRect: filled,
		label:   "expand zone",
	})
	return nil
}

// ResizeDivider moves the shared edge between two adjacent zones to a new
// normalized position, resizing every zone touching that divider line as one
// history entry. The position is clamped so no touching zone drops below the
// minimum size.
func (c *Controller) ResizeDivider(idA, idB string, isVertical bool, newPos float64) error {
	zoneA, ok := c.store.Zone(idA)
	if !ok {
		return zoneError(ErrCodeZoneNotFound, idA, "zone %s does not exist", idA)
	}
	zoneB, ok := c.store.Zone(idB)
	if !ok {
		return zoneError(ErrCodeZoneNotFound, idB, "zone %s does not exist", idB)
	}

	touching, ok := geometry.CollectGeometriesAtDivider(zoneA, zoneB, isVertical, c.store.Zones())
	if !ok {
		return newError(ErrCodeNoDivider, "zones %s and %s do not share an edge", idA, idB)
	}

	divider := dividerPosition(zoneA.Geometry, zoneB.Geometry, isVertical)
	minSize := c.settings.Zones.MinSize

	// Clamp the new position so every touching zone keeps its minimum size.
	lo, hi := 0.0, 1.0
	for _, g := range touching {
		start, end := g.Y, g.Bottom()
		if isVertical {
			start, end = g.X, g.Right()
		}
		if almostEqual(end, divider) && start+minSize > lo {
			lo = start + minSize
		}
		if almostEqual(start, divider) && end-minSize < hi {
			hi = end - minSize
		}
	}
	newPos = math.Max(lo, math.Min(hi, newPos))
	if math.Abs(newPos-divider) < geometryTolerance {
		return nil
	}

	oldRects := make(map[string]models.Rect, len(touching))
	newRects := make(map[string]models.Rect, len(touching))
	for id, g := range touching {
		oldRects[id] = g
		ng := g
		if isVertical {
			if almostEqual(g.Right(), divider) {
				ng.Width = newPos - g.X
			} else {
				ng.Width = g.Right() - newPos
				ng.X = newPos
			}
		} else {
			if almostEqual(g.Bottom(), divider) {
				ng.Height = newPos - g.Y
			} else {
				ng.Height = g.Bottom() - newPos
				ng.Y = newPos
			}
		}
		newRects[id] = ng
	}

	c.stack.Push(&dividerResizeCommand{store: c.store, oldRects: oldRects, newRects: newRects})
	return nil
}

// --- z-order ---

// BringToFront moves the zone to the top of the paint order.
func (c *Controller) BringToFront(id string) error {
	return c.reorder(id, "raise zone to front", (*zones.Manager).BringToFront)
}

// SendToBack moves the zone to the bottom of the paint order.
func (c *Controller) SendToBack(id string) error {
	return c.reorder(id, "lower zone to back", (*zones.Manager).SendToBack)
}

// BringForward raises the zone one step.
func (c *Controller) BringForward(id string) error {
	return c.reorder(id, "raise zone", (*zones.Manager).BringForward)
}

// SendBackward lowers the zone one step.
func (c *Controller) SendBackward(id string) error {
	return c.reorder(id, "lower zone", (*zones.Manager).SendBackward)
}

// reorder captures whole-list snapshots around a z-order move. Coarse but
// simple: paint order has no stable per-zone key to diff against.
func (c *Controller) reorder(id, label string, move func(*zones.Manager, string) bool) error {
	if _, ok := c.store.Zone(id); !ok {
		return zoneError(ErrCodeZoneNotFound, id, "zone %s does not exist", id)
	}
	before := c.store.Zones()
	move(c.store, id)
	after := c.store.Zones()
	if sameOrder(before, after) {
		return nil
	}
	// The store already holds the new order; record the transition without
	// replaying it (Push calls Redo, RestoreZones is idempotent here).
	c.stack.Push(&restoreCommand{store: c.store, oldZones: before, newZones: after, label: label})
	return nil
}

// ClearAllZones removes every zone as one history entry.
func (c *Controller) ClearAllZones() {
	if c.store.Count() == 0 {
		return
	}
	c.stack.Push(&restoreCommand{
		store:    c.store,
		oldZones: c.store.Zones(),
		newZones: nil,
		label:    "clear all zones",
	})
}

// ApplyTemplate replaces the zone list with a template's generated zones as
// one history entry.
func (c *Controller) ApplyTemplate(templateZones []models.Zone) error {
	if len(templateZones) > zones.MaxZoneNumber {
		return newError(ErrCodeInvalidNumber, "template has more than %d zones", zones.MaxZoneNumber)
	}
	for _, z := range templateZones {
		if err := c.validateGeometry(z.Geometry); err != nil {
			return err
		}
	}
	c.stack.Push(&restoreCommand{
		store:    c.store,
		oldZones: c.store.Zones(),
		newZones: templateZones,
		label:    "apply template",
	})
	return nil
}

// --- layout metadata ---

// SetLayoutName renames the layout being edited.
func (c *Controller) SetLayoutName(name string) error {
	if name == "" {
		return newError(ErrCodeInvalidName, "layout name cannot be empty")
	}
	if len(name) > maxNameLength {
		return newError(ErrCodeInvalidName, "layout name exceeds %d characters", maxNameLength)
	}
	c.layout.Name = name
	c.metaDirty = true
	return nil
}

// SetZonePadding sets the per-layout padding override; -1 inherits the
// global default.
func (c *Controller) SetZonePadding(v int) error {
	if v < -1 {
		return newError(ErrCodeInvalidGeometry, "zone padding must be -1 or a non-negative value")
	}
	c.layout.ZonePadding = v
	c.metaDirty = true
	return nil
}

// SetOuterGap sets the per-layout outer gap override; -1 inherits the global
// default.
func (c *Controller) SetOuterGap(v int) error {
	if v < -1 {
		return newError(ErrCodeInvalidGeometry, "outer gap must be -1 or a non-negative value")
	}
	c.layout.OuterGap = v
	c.metaDirty = true
	return nil
}

// SetShader assigns a shader to the layout, or clears it with an empty id.
// Parameter values stored for a previous shader that the new shader does not
// declare are pruned so orphaned keys never accumulate across switches.
func (c *Controller) SetShader(id string) error {
	if id == "" {
		c.layout.ShaderID = ""
		c.layout.ShaderParams = nil
		c.metaDirty = true
		return nil
	}
	info, ok := c.shaders.ShaderInfo(id)
	if !ok {
		return newError(ErrCodeInvalidShader, "unknown shader %q", id)
	}
	c.layout.ShaderID = id
	c.layout.ShaderParams = pruneShaderParams(c.layout.ShaderParams, info)
	c.metaDirty = true
	return nil
}

// SetShaderParam stores a parameter value for the layout's current shader.
func (c *Controller) SetShaderParam(paramID string, value float64) error {
	if c.layout.ShaderID == "" {
		return newError(ErrCodeInvalidShader, "layout has no shader assigned")
	}
	info, ok := c.shaders.ShaderInfo(c.layout.ShaderID)
	if !ok {
		return newError(ErrCodeInvalidShader, "unknown shader %q", c.layout.ShaderID)
	}
	if !info.HasParameter(paramID) {
		return newError(ErrCodeInvalidShader, "shader %q has no parameter %q", c.layout.ShaderID, paramID)
	}
	if c.layout.ShaderParams == nil {
		c.layout.ShaderParams = make(map[string]float64)
	}
	c.layout.ShaderParams[paramID] = value
	c.metaDirty = true
	return nil
}

// pruneShaderParams drops stored parameter values the given shader does not
// declare.
func pruneShaderParams(params map[string]float64, info shaders.Info) map[string]float64 {
	if len(params) == 0 {
		return nil
	}
	kept := make(map[string]float64)
	for key, v := range params {
		if info.HasParameter(key) {
			kept[key] = v
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// --- helpers ---

func rectsWithinTolerance(a, b models.Rect) bool {
	return math.Abs(a.X-b.X) < geometryTolerance &&
		math.Abs(a.Y-b.Y) < geometryTolerance &&
		math.Abs(a.Width-b.Width) < geometryTolerance &&
		math.Abs(a.Height-b.Height) < geometryTolerance
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= geometry.AdjacencyEpsilon
}

func dividerPosition(a, b models.Rect, isVertical bool) float64 {
	if isVertical {
		if almostEqual(a.Right(), b.X) {
			return a.Right()
		}
		return b.Right()
	}
	if almostEqual(a.Bottom(), b.Y) {
		return a.Bottom()
	}
	return b.Bottom()
}

func sameOrder(a, b []models.Zone) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

func sortNeighborsBySharedEdge(store *zones.Manager, ids []string, deleted models.Rect) {
	lengths := make(map[string]float64, len(ids))
	for _, id := range ids {
		if z, ok := store.Zone(id); ok {
			lengths[id] = geometry.SharedEdgeLength(z.Geometry, deleted)
		}
	}
	// Insertion sort keeps this dependency-free; neighbor counts are tiny.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && lengths[ids[j]] > lengths[ids[j-1]]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}
