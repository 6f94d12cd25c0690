package editor

// Visibility allow-lists restrict where a layout applies. An empty list
// means the layout is visible everywhere on that axis.
//
// Toggling is deliberately asymmetric: toggling an item off an empty list
// populates the list with every known item except the toggled one, and
// toggling an item back on when that would make the list cover every known
// item collapses the list to empty again. The empty state is the only
// representation of "everywhere", and "visible nowhere" is unreachable.

// ToggleAllowedScreen toggles the layout's visibility on one screen.
// knownScreens is the full set of screens currently attached.
func (c *Controller) ToggleAllowedScreen(screen string, knownScreens []string) {
	c.layout.AllowedScreens = toggleAllowed(c.layout.AllowedScreens, screen, knownScreens)
	c.metaDirty = true
}

// ToggleAllowedDesktop toggles the layout's visibility on one virtual
// desktop.
func (c *Controller) ToggleAllowedDesktop(desktop string, knownDesktops []string) {
	c.layout.AllowedDesktops = toggleAllowed(c.layout.AllowedDesktops, desktop, knownDesktops)
	c.metaDirty = true
}

// ToggleAllowedActivity toggles the layout's visibility in one activity.
func (c *Controller) ToggleAllowedActivity(activity string, knownActivities []string) {
	c.layout.AllowedActivities = toggleAllowed(c.layout.AllowedActivities, activity, knownActivities)
	c.metaDirty = true
}

func toggleAllowed(list []string, item string, known []string) []string {
	if len(list) == 0 {
		out := make([]string, 0, len(known))
		for _, k := range known {
			if k != item {
				out = append(out, k)
			}
		}
		return out
	}

	if containsString(list, item) {
		out := make([]string, 0, len(list)-1)
		for _, v := range list {
			if v != item {
				out = append(out, v)
			}
		}
		return out
	}

	out := append(append([]string(nil), list...), item)
	if coversAll(out, known) {
		return nil
	}
	return out
}

func containsString(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}

// coversAll reports whether list contains every entry of known. Known items
// can appear or disappear between sessions, so this is set containment, not
// length comparison.
func coversAll(list, known []string) bool {
	if len(known) == 0 {
		return false
	}
	for _, k := range known {
		if !containsString(list, k) {
			return false
		}
	}
	return true
}
