package commands

import (
	"fmt"

	"github.com/zoner/zoner-cli/pkg/files"
	"github.com/zoner/zoner-cli/pkg/models"
)

// configDir overrides the default XDG config location when set (--config-dir).
var configDir string

// SetConfigDir points all commands at an alternate config directory.
func SetConfigDir(dir string) { configDir = dir }

func openStore() *files.Store {
	if configDir != "" {
		return files.NewStoreAt(configDir)
	}
	return files.NewStore()
}

// resolveLayout looks a layout up by id first, then by name.
func resolveLayout(store *files.Store, ref string) (*models.Layout, error) {
	layout, err := store.LoadLayout(ref)
	if err == nil {
		return layout, nil
	}
	layout, nameErr := store.FindLayoutByName(ref)
	if nameErr != nil {
		return nil, fmt.Errorf("no layout with id or name %q", ref)
	}
	return layout, nil
}
