package models

import (
	"github.com/google/uuid"
)

// Rect is a rectangle in normalized layout-relative coordinates.
// All fields are in [0, 1] and X+Width <= 1, Y+Height <= 1 for a valid rect.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Appearance holds per-zone presentation overrides. Colors are hex strings
// ("#RRGGBB" or "#AARRGGBB"); they only take effect when UseCustomColors is set.
type Appearance struct {
	HighlightColor  string  `json:"highlightColor"`
	InactiveColor   string  `json:"inactiveColor"`
	BorderColor     string  `json:"borderColor"`
	ActiveOpacity   float64 `json:"activeOpacity"`
	InactiveOpacity float64 `json:"inactiveOpacity"`
	BorderWidth     float64 `json:"borderWidth"`
	BorderRadius    float64 `json:"borderRadius"`
	UseCustomColors bool    `json:"useCustomColors"`
}

// Zone is a single rectangular region of a layout.
type Zone struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Number     int        `json:"zoneNumber"`
	Geometry   Rect       `json:"relativeGeometry"`
	Appearance Appearance `json:"appearance"`
}

// Layout is the persisted unit: a named collection of zones plus optional
// shader and visibility metadata.
//
// ZonePadding and OuterGap use -1 to mean "inherit the global default".
// Empty allow-lists mean "visible everywhere".
type Layout struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Type              string             `json:"type,omitempty"`
	IsBuiltIn         bool               `json:"isBuiltIn,omitempty"`
	Zones             []Zone             `json:"zones"`
	ShaderID          string             `json:"shaderId,omitempty"`
	ShaderParams      map[string]float64 `json:"shaderParams,omitempty"`
	ZonePadding       int                `json:"zonePadding"`
	OuterGap          int                `json:"outerGap"`
	AllowedScreens    []string           `json:"allowedScreens,omitempty"`
	AllowedDesktops   []string           `json:"allowedDesktops,omitempty"`
	AllowedActivities []string           `json:"allowedActivities,omitempty"`
}

// NewLayout creates an empty layout with a fresh id and inherited gap settings.
func NewLayout(name string) *Layout {
	return &Layout{
		ID:          uuid.NewString(),
		Name:        name,
		Zones:       []Zone{},
		ZonePadding: -1,
		OuterGap:    -1,
	}
}

// CloneZones returns a copy of a zone slice.
func CloneZones(zs []Zone) []Zone {
	out := make([]Zone, len(zs))
	copy(out, zs)
	return out
}

// CloneZones returns a copy of the layout's zone list.
func (l *Layout) CloneZones() []Zone {
	return CloneZones(l.Zones)
}

// ZonesMIMEType identifies zone-array clipboard payloads.
const ZonesMIMEType = "application/vnd.zoner.zones+json"

// ClipboardVersion is the current clipboard envelope schema version.
const ClipboardVersion = 1

// ClipboardEnvelope is the versioned JSON document placed on the system
// clipboard by copy/cut. The system clipboard carries it as plain text; the
// MIMEType field lets consumers distinguish it from arbitrary JSON.
type ClipboardEnvelope struct {
	MIMEType string `json:"mimeType"`
	Version  int    `json:"version"`
	Zones    []Zone `json:"zones"`
}

// DefaultAppearance returns the appearance applied to newly created zones.
func DefaultAppearance() Appearance {
	return Appearance{
		HighlightColor:  "#3daee9",
		InactiveColor:   "#31363b",
		BorderColor:     "#3daee9",
		ActiveOpacity:   0.4,
		InactiveOpacity: 0.15,
		BorderWidth:     2,
		BorderRadius:    4,
		UseCustomColors: false,
	}
}
