// Package files implements the on-disk layout store and settings file. Each
// layout is one JSON document under the zoner config directory; settings are
// a single YAML file beside them.
package files

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/zoner/zoner-cli/pkg/models"
)

const (
	// AppDir is the directory name under the XDG config home.
	AppDir       = "zoner"
	LayoutsDir   = "layouts"
	SettingsFile = "settings.yaml"
)

// Store is a file-backed layout store rooted at a config directory. It
// implements the editor's LayoutService.
type Store struct {
	root string
}

// NewStore creates a store rooted at the user's XDG config directory.
func NewStore() *Store {
	return NewStoreAt(filepath.Join(xdg.ConfigHome, AppDir))
}

// NewStoreAt creates a store rooted at an explicit directory, used by tests
// and by the --config-dir flag.
func NewStoreAt(root string) *Store {
	return &Store{root: root}
}

// Root returns the store's config directory.
func (s *Store) Root() string {
	return s.root
}

// Init creates the config directory structure.
func (s *Store) Init() error {
	dirs := []string{
		s.root,
		filepath.Join(s.root, LayoutsDir),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

func (s *Store) layoutPath(id string) string {
	return filepath.Join(s.root, LayoutsDir, id+".json")
}

// LoadLayout reads one layout document by id.
func (s *Store) LoadLayout(id string) (*models.Layout, error) {
	data, err := os.ReadFile(s.layoutPath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", id, err)
	}
	layout, err := decodeLayout(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", id, err)
	}
	log.Debug("loaded layout", "id", id, "zones", len(layout.Zones))
	return layout, nil
}

// CreateLayout persists a new layout document, assigning an id when the
// layout has none, and returns the id.
func (s *Store) CreateLayout(layout *models.Layout) (string, error) {
	if layout.ID == "" {
		layout.ID = uuid.NewString()
	}
	if err := s.writeLayout(layout); err != nil {
		return "", err
	}
	return layout.ID, nil
}

// UpdateLayout rewrites an existing layout document wholesale.
func (s *Store) UpdateLayout(layout *models.Layout) error {
	if layout.ID == "" {
		return fmt.Errorf("layout has no id")
	}
	if _, err := os.Stat(s.layoutPath(layout.ID)); err != nil {
		return fmt.Errorf("layout %s does not exist: %w", layout.ID, err)
	}
	return s.writeLayout(layout)
}

// DeleteLayout removes a layout document.
func (s *Store) DeleteLayout(id string) error {
	if err := os.Remove(s.layoutPath(id)); err != nil {
		return fmt.Errorf("failed to delete layout %s: %w", id, err)
	}
	return nil
}

// ImportLayout copies a layout document from an external path into the
// store under a fresh id, returning the new id.
func (s *Store) ImportLayout(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	layout, err := decodeLayout(data)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}
	layout.ID = uuid.NewString()
	if layout.Name == "" {
		layout.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := s.writeLayout(layout); err != nil {
		return "", err
	}
	return layout.ID, nil
}

// ExportLayout writes a stored layout document to an external path.
func (s *Store) ExportLayout(id string, path string) error {
	layout, err := s.LoadLayout(id)
	if err != nil {
		return err
	}
	data, err := encodeLayout(layout)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ListLayouts reads every layout document, sorted by name.
func (s *Store) ListLayouts() ([]*models.Layout, error) {
	dir := filepath.Join(s.root, LayoutsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read layouts directory: %w", err)
	}

	var layouts []*models.Layout
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read layout %s: %w", entry.Name(), err)
		}
		layout, err := decodeLayout(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse layout %s: %w", entry.Name(), err)
		}
		layouts = append(layouts, layout)
	}

	sort.Slice(layouts, func(i, j int) bool { return layouts[i].Name < layouts[j].Name })
	return layouts, nil
}

// FindLayoutByName resolves a layout by exact name.
func (s *Store) FindLayoutByName(name string) (*models.Layout, error) {
	layouts, err := s.ListLayouts()
	if err != nil {
		return nil, err
	}
	for _, l := range layouts {
		if l.Name == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("no layout named %q", name)
}

func (s *Store) writeLayout(layout *models.Layout) error {
	if err := s.Init(); err != nil {
		return err
	}
	data, err := encodeLayout(layout)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.layoutPath(layout.ID), data, 0644); err != nil {
		return fmt.Errorf("failed to write layout %s: %w", layout.ID, err)
	}
	log.Debug("wrote layout", "id", layout.ID, "zones", len(layout.Zones))
	return nil
}

func encodeLayout(layout *models.Layout) ([]byte, error) {
	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal layout: %w", err)
	}
	return append(data, '\n'), nil
}

func decodeLayout(data []byte) (*models.Layout, error) {
	layout := models.Layout{ZonePadding: -1, OuterGap: -1}
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, err
	}
	if layout.Zones == nil {
		layout.Zones = []models.Zone{}
	}
	return &layout, nil
}

// ReadSettings loads the settings file, falling back to defaults when it
// does not exist yet.
func (s *Store) ReadSettings() (*models.Settings, error) {
	data, err := os.ReadFile(filepath.Join(s.root, SettingsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

// WriteSettings persists the settings file.
func (s *Store) WriteSettings(settings *models.Settings) error {
	if err := s.Init(); err != nil {
		return err
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	path := filepath.Join(s.root, SettingsFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
