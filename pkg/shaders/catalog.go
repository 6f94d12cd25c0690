// Package shaders provides the shader metadata catalog. The editor consumes
// only shader ids and declared parameter ids (for staleness pruning); shader
// source and execution live in the compositor, not here.
package shaders

// Parameter declares one tunable shader parameter.
type Parameter struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Default float64 `json:"default"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Info describes one available shader effect.
type Info struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Parameters []Parameter `json:"parameters"`
}

// HasParameter reports whether the shader declares the given parameter id.
func (i Info) HasParameter(id string) bool {
	for _, p := range i.Parameters {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Catalog is a static shader metadata registry.
type Catalog struct {
	infos []Info
}

// NewCatalog creates a catalog over the given shaders.
func NewCatalog(infos []Info) *Catalog {
	return &Catalog{infos: infos}
}

// NewBuiltinCatalog returns the catalog of effects shipped with the editor.
func NewBuiltinCatalog() *Catalog {
	return NewCatalog([]Info{
		{
			ID:   "glow",
			Name: "Glow",
			Parameters: []Parameter{
				{ID: "intensity", Name: "Intensity", Default: 0.5, Min: 0, Max: 1},
				{ID: "radius", Name: "Radius", Default: 8, Min: 0, Max: 32},
			},
		},
		{
			ID:   "blur",
			Name: "Background Blur",
			Parameters: []Parameter{
				{ID: "strength", Name: "Strength", Default: 0.3, Min: 0, Max: 1},
			},
		},
		{
			ID:   "scanlines",
			Name: "Scanlines",
			Parameters: []Parameter{
				{ID: "density", Name: "Density", Default: 120, Min: 10, Max: 480},
				{ID: "opacity", Name: "Opacity", Default: 0.2, Min: 0, Max: 1},
			},
		},
		{
			ID:   "gradient",
			Name: "Animated Gradient",
			Parameters: []Parameter{
				{ID: "speed", Name: "Speed", Default: 0.5, Min: 0, Max: 4},
				{ID: "hueShift", Name: "Hue Shift", Default: 0, Min: 0, Max: 360},
			},
		},
	})
}

// AvailableShaders lists every shader in the catalog.
func (c *Catalog) AvailableShaders() []Info {
	out := make([]Info, len(c.infos))
	copy(out, c.infos)
	return out
}

// ShaderInfo looks up one shader by id.
func (c *Catalog) ShaderInfo(id string) (Info, bool) {
	for _, info := range c.infos {
		if info.ID == id {
			return info, true
		}
	}
	return Info{}, false
}
