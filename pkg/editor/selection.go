package editor

// Selection state: an order-preserving list of zone ids, always a subset of
// the zones that exist. The first entry is the primary selection. Selection
// changes made by the user are undoable history entries; pruning after a
// zone removal is direct because the removal's own undo restores the zone
// and the selection command layering would otherwise double-track it.

// Selection returns a copy of the selected zone ids in selection order.
func (c *Controller) Selection() []string {
	out := make([]string, len(c.selection))
	copy(out, c.selection)
	return out
}

// PrimarySelection returns the first selected id, or empty.
func (c *Controller) PrimarySelection() string {
	if len(c.selection) == 0 {
		return ""
	}
	return c.selection[0]
}

// IsSelected reports whether the zone is part of the selection.
func (c *Controller) IsSelected(id string) bool {
	for _, s := range c.selection {
		if s == id {
			return true
		}
	}
	return false
}

// AddSelectionListener registers a callback fired on every selection change.
func (c *Controller) AddSelectionListener(l SelectionListener) {
	c.selListeners = append(c.selListeners, l)
}

// SelectZone makes the zone the sole selection. With additive set the zone
// joins the existing selection instead.
func (c *Controller) SelectZone(id string, additive bool) error {
	if _, ok := c.store.Zone(id); !ok {
		return zoneError(ErrCodeZoneNotFound, id, "zone %s does not exist", id)
	}
	if !additive {
		c.SetSelection([]string{id})
		return nil
	}
	if c.IsSelected(id) {
		return nil
	}
	c.SetSelection(append(c.Selection(), id))
	return nil
}

// ToggleZoneSelection adds or removes the zone from the selection.
func (c *Controller) ToggleZoneSelection(id string) error {
	if _, ok := c.store.Zone(id); !ok {
		return zoneError(ErrCodeZoneNotFound, id, "zone %s does not exist", id)
	}
	if !c.IsSelected(id) {
		c.SetSelection(append(c.Selection(), id))
		return nil
	}
	next := make([]string, 0, len(c.selection)-1)
	for _, s := range c.selection {
		if s != id {
			next = append(next, s)
		}
	}
	c.SetSelection(next)
	return nil
}

// SetSelection replaces the selection as an undoable history entry. Ids that
// do not name existing zones are dropped.
func (c *Controller) SetSelection(ids []string) {
	next := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := c.store.Zone(id); ok {
			next = append(next, id)
		}
	}
	if equalIDs(c.selection, next) {
		return
	}
	c.stack.Push(&selectionCommand{
		controller: c,
		oldIDs:     c.Selection(),
		newIDs:     next,
	})
}

// ClearSelection empties the selection as an undoable history entry.
func (c *Controller) ClearSelection() {
	c.SetSelection(nil)
}

// setSelectionDirect installs a selection without touching the history.
// Used by selection commands during undo/redo and by session lifecycle.
func (c *Controller) setSelectionDirect(ids []string) {
	c.selection = make([]string, len(ids))
	copy(c.selection, ids)
	for _, l := range c.selListeners {
		l(c.Selection())
	}
}

// pruneSelection drops selected ids whose zones no longer exist. Registered
// as a store listener so removal and pruning are one logical step.
func (c *Controller) pruneSelection() {
	kept := c.selection[:0:0]
	for _, id := range c.selection {
		if _, ok := c.store.Zone(id); ok {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(c.selection) {
		return
	}
	c.setSelectionDirect(kept)
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
