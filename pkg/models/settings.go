package models

// Settings represents the application configuration
type Settings struct {
	Snapping SnappingSettings `yaml:"snapping"`
	Zones    ZoneSettings     `yaml:"zones"`
	Editor   EditorSettings   `yaml:"editor"`
}

// SnappingSettings controls grid and edge snapping during editing
type SnappingSettings struct {
	GridEnabled   bool    `yaml:"grid_enabled"`
	GridIntervalX float64 `yaml:"grid_interval_x"`
	GridIntervalY float64 `yaml:"grid_interval_y"`
	EdgeEnabled   bool    `yaml:"edge_enabled"`
	EdgeThreshold float64 `yaml:"edge_threshold"`
}

// ZoneSettings controls zone defaults and global gap values
type ZoneSettings struct {
	MinSize     float64 `yaml:"min_size"`
	ZonePadding int     `yaml:"zone_padding"`
	OuterGap    int     `yaml:"outer_gap"`
}

// EditorSettings controls editing session behavior
type EditorSettings struct {
	UndoDepth       int     `yaml:"undo_depth"`
	DuplicateOffset float64 `yaml:"duplicate_offset"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Snapping: SnappingSettings{
			GridEnabled:   true,
			GridIntervalX: 0.05,
			GridIntervalY: 0.05,
			EdgeEnabled:   true,
			EdgeThreshold: 0.015,
		},
		Zones: ZoneSettings{
			MinSize:     0.05,
			ZonePadding: 8,
			OuterGap:    0,
		},
		Editor: EditorSettings{
			UndoDepth:       100,
			DuplicateOffset: 0.02,
		},
	}
}
