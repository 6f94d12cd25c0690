package editor

import (
	"github.com/zoner/zoner-cli/pkg/models"
	"github.com/zoner/zoner-cli/pkg/zones"
)

// Commands capture enough old/new state to invert themselves exactly. They
// hold a non-owning reference to the zone store and become no-ops once the
// store is closed; history may outlive the session that built it.

// addZoneCommand inserts a fully formed zone record at a fixed paint-order
// position. It backs add, duplicate and single-zone paste operations.
type addZoneCommand struct {
	store *zones.Manager
	zone  models.Zone
	index int
	label string
}

func (c *addZoneCommand) Label() string { return c.label }

func (c *addZoneCommand) Redo() {
	if !c.store.Alive() {
		return
	}
	if c.store.IndexOf(c.zone.ID) >= 0 {
		return
	}
	c.store.InsertZone(c.zone, c.index)
}

func (c *addZoneCommand) Undo() {
	if !c.store.Alive() {
		return
	}
	c.store.DeleteZone(c.zone.ID)
}

// deleteZoneCommand removes a zone, remembering its full record and position
// so undo restores it exactly where it was.
type deleteZoneCommand struct {
	store *zones.Manager
	zone  models.Zone
	index int
}

func (c *deleteZoneCommand) Label() string { return "delete zone" }

func (c *deleteZoneCommand) Redo() {
	if !c.store.Alive() {
		return
	}
	c.store.DeleteZone(c.zone.ID)
}

func (c *deleteZoneCommand) Undo() {
	if !c.store.Alive() {
		return
	}
	if c.store.IndexOf(c.zone.ID) >= 0 {
		return
	}
	c.store.InsertZone(c.zone, c.index)
}

// geometryCommand swaps a zone between two geometries. It backs move, resize
// and fill operations.
type geometryCommand struct {
	store   *zones.Manager
	zoneID  string
	oldRect models.Rect
	newRect models.Rect
	label   string
}

func (c *geometryCommand) Label() string { return c.label }

func (c *geometryCommand) Redo() {
	if !c.store.Alive() {
		return
	}
	c.store.UpdateZoneGeometryDirect(c.zoneID, c.newRect)
}

func (c *geometryCommand) Undo() {
	if !c.store.Alive() {
		return
	}
	c.store.UpdateZoneGeometryDirect(c.zoneID, c.oldRect)
}

// nameCommand swaps a zone's name.
type nameCommand struct {
	store   *zones.Manager
	zoneID  string
	oldName string
	newName string
}

func (c *nameCommand) Label() string { return "rename zone" }

func (c *nameCommand) Redo() {
	if !c.store.Alive() {
		return
	}
	c.store.UpdateZoneName(c.zoneID, c.newName)
}

func (c *nameCommand) Undo() {
	if !c.store.Alive() {
		return
	}
	c.store.UpdateZoneName(c.zoneID, c.oldName)
}

// numberCommand swaps a zone's shortcut number.
type numberCommand struct {
	store     *zones.Manager
	zoneID    string
	oldNumber int
	newNumber int
}

func (c *numberCommand) Label() string { return "renumber zone" }

func (c *numberCommand) Redo() {
	if !c.store.Alive() {
		return
	}
	c.store.UpdateZoneNumber(c.zoneID, c.newNumber)
}

func (c *numberCommand) Undo() {
	if !c.store.Alive() {
		return
	}
	c.store.UpdateZoneNumber(c.zoneID, c.oldNumber)
}

// appearanceCommand swaps a zone's full appearance record.
type appearanceCommand struct {
	store  *zones.Manager
	zoneID string
	oldA   models.Appearance
	newA   models.Appearance
}

func (c *appearanceCommand) Label() string { return "change zone appearance" }

func (c *appearanceCommand) Redo() {
	if !c.store.Alive() {
		return
	}
	c.store.UpdateZoneAppearance(c.zoneID, c.newA)
}

func (c *appearanceCommand) Undo() {
	if !c.store.Alive() {
		return
	}
	c.store.UpdateZoneAppearance(c.zoneID, c.oldA)
}

// splitCommand shrinks the original zone to one half and inserts the new
// zone occupying the other half.
type splitCommand struct {
	store    *zones.Manager
	zoneID   string
	oldRect  models.Rect
	newRect  models.Rect
	newZone  models.Zone
	newIndex int
}

func (c *splitCommand) Label() string { return "split zone" }

func (c *splitCommand) Redo() {
	if !c.store.Alive() {
		return
	}
	c.store.UpdateZoneGeometryDirect(c.zoneID, c.newRect)
	if c.store.IndexOf(c.newZone.ID) < 0 {
		c.store.InsertZone(c.newZone, c.newIndex)
	}
}

func (c *splitCommand) Undo() {
	if !c.store.Alive() {
		return
	}
	c.store.DeleteZone(c.newZone.ID)
	c.store.UpdateZoneGeometryDirect(c.zoneID, c.oldRect)
}

// restoreCommand swaps the whole zone list between two snapshots. It backs
// the structural operations: z-order changes, template apply, clear-all and
// paste, where a wholesale replace is the simplest correct inverse.
type restoreCommand struct {
	store    *zones.Manager
	oldZones []models.Zone
	newZones []models.Zone
	label    string
}

func (c *restoreCommand) Label() string { return c.label }

func (c *restoreCommand) Redo() {
	if !c.store.Alive() {
		return
	}
	c.store.RestoreZones(c.newZones)
}

func (c *restoreCommand) Undo() {
	if !c.store.Alive() {
		return
	}
	c.store.RestoreZones(c.oldZones)
}

// batchAppearanceCommand applies one appearance change across N zones as a
// single history entry, remembering each zone's prior appearance.
type batchAppearanceCommand struct {
	store *zones.Manager
	oldA  map[string]models.Appearance
	newA  map[string]models.Appearance
}

func (c *batchAppearanceCommand) Label() string { return "change zones appearance" }

func (c *batchAppearanceCommand) Redo() {
	if !c.store.Alive() {
		return
	}
	c.store.BeginBatchUpdate()
	defer c.store.EndBatchUpdate()
	for id, a := range c.newA {
		c.store.UpdateZoneAppearance(id, a)
	}
}

func (c *batchAppearanceCommand) Undo() {
	if !c.store.Alive() {
		return
	}
	c.store.BeginBatchUpdate()
	defer c.store.EndBatchUpdate()
	for id, a := range c.oldA {
		c.store.UpdateZoneAppearance(id, a)
	}
}

// dividerResizeCommand moves every zone touching a shared divider line in one
// history entry.
type dividerResizeCommand struct {
	store    *zones.Manager
	oldRects map[string]models.Rect
	newRects map[string]models.Rect
}

func (c *dividerResizeCommand) Label() string { return "move divider" }

func (c *dividerResizeCommand) Redo() {
	if !c.store.Alive() {
		return
	}
	c.store.BeginBatchUpdate()
	defer c.store.EndBatchUpdate()
	for id, r := range c.newRects {
		c.store.UpdateZoneGeometryDirect(id, r)
	}
}

func (c *dividerResizeCommand) Undo() {
	if !c.store.Alive() {
		return
	}
	c.store.BeginBatchUpdate()
	defer c.store.EndBatchUpdate()
	for id, r := range c.oldRects {
		c.store.UpdateZoneGeometryDirect(id, r)
	}
}

// selectionCommand makes selection changes part of the history, a deliberate
// ergonomics choice so undo also walks selection back.
type selectionCommand struct {
	controller *Controller
	oldIDs     []string
	newIDs     []string
}

func (c *selectionCommand) Label() string { return "change selection" }

func (c *selectionCommand) Redo() {
	if c.controller == nil {
		return
	}
	c.controller.setSelectionDirect(c.newIDs)
}

func (c *selectionCommand) Undo() {
	if c.controller == nil {
		return
	}
	c.controller.setSelectionDirect(c.oldIDs)
}
