package editor

import (
	"github.com/zoner/zoner-cli/pkg/geometry"
	"github.com/zoner/zoner-cli/pkg/models"
)

// Multi-zone drag: the primary zone follows the pointer through the snap
// pipeline and every other selected zone follows the same delta. During the
// drag all zones move directly, bypassing the history, with notifications
// batched to one refresh per update; on commit the accumulated movement
// becomes one macro so a single undo returns every dragged zone to its
// starting position.

type dragState struct {
	primaryID string
	starts    map[string]models.Rect // dragged id -> starting geometry
}

// StartMultiZoneDrag snapshots the starting geometry of the primary zone and
// of every other selected zone.
func (c *Controller) StartMultiZoneDrag(primaryID string) error {
	primary, ok := c.store.Zone(primaryID)
	if !ok {
		return zoneError(ErrCodeZoneNotFound, primaryID, "zone %s does not exist", primaryID)
	}

	starts := map[string]models.Rect{primaryID: primary.Geometry}
	for _, id := range c.selection {
		if id == primaryID {
			continue
		}
		if z, ok := c.store.Zone(id); ok {
			starts[id] = z.Geometry
		}
	}

	c.drag = &dragState{primaryID: primaryID, starts: starts}
	return nil
}

// UpdateMultiZoneDrag moves the primary zone through the snap pipeline and
// applies its accumulated delta to every follower. rect is the primary's
// candidate position under the pointer.
func (c *Controller) UpdateMultiZoneDrag(rect models.Rect) {
	if c.drag == nil {
		return
	}
	primaryStart := c.drag.starts[c.drag.primaryID]

	snapped := geometry.SnapSelective(rect, c.store.Zones(), c.drag.primaryID, geometry.AllEdges(), c.snapOptions())
	dx := snapped.X - primaryStart.X
	dy := snapped.Y - primaryStart.Y

	c.store.BeginBatchUpdate()
	defer c.store.EndBatchUpdate()

	c.store.UpdateZoneGeometryDirect(c.drag.primaryID, snapped)
	for id, start := range c.drag.starts {
		if id == c.drag.primaryID {
			continue
		}
		moved := geometry.Clamp(models.Rect{
			X:      start.X + dx,
			Y:      start.Y + dy,
			Width:  start.Width,
			Height: start.Height,
		}, c.settings.Zones.MinSize)
		c.store.UpdateZoneGeometryDirect(id, moved)
	}
}

// EndMultiZoneDrag finishes the drag. On commit the whole movement becomes
// one history entry; on cancel every dragged zone returns to its starting
// geometry with no history recorded.
func (c *Controller) EndMultiZoneDrag(commit bool) {
	drag := c.drag
	c.drag = nil
	if drag == nil {
		return
	}

	c.store.BeginBatchUpdate()
	defer c.store.EndBatchUpdate()

	if !commit {
		for id, start := range drag.starts {
			c.store.UpdateZoneGeometryDirect(id, start)
		}
		return
	}

	c.stack.BeginMacro("move zones")
	defer c.stack.EndMacro()
	for id, start := range drag.starts {
		z, ok := c.store.Zone(id)
		if !ok || rectsWithinTolerance(z.Geometry, start) {
			continue
		}
		// The zone already sits at its final geometry; the command's
		// immediate Redo re-applies it, which is a no-op by construction.
		c.stack.Push(&geometryCommand{
			store:   c.store,
			zoneID:  id,
			oldRect: start,
			newRect: z.Geometry,
			label:   "move zone",
		})
	}
}

// DragActive reports whether a multi-zone drag is in progress.
func (c *Controller) DragActive() bool {
	return c.drag != nil
}
