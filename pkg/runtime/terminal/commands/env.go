package commands

import (
	"fmt"
	"io"

	"github.com/de-tools/compliance-atlas/pkg/config"
	"github.com/de-tools/compliance-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/compliance-atlas/pkg/services/profiles"
	"github.com/de-tools/compliance-atlas/pkg/services/recommendation"
	"github.com/de-tools/compliance-atlas/pkg/store/catalog"
)

// Env is shared by all commands. Config is populated before any command runs.
type Env struct {
	Config   *config.Config
	Output   io.Writer
	Reporter *export.Reporter
}

func (e *Env) engine(catalogPath string) (*recommendation.Engine, error) {
	if catalogPath == "" {
		catalogPath = e.Config.CatalogPath
	}

	c, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return recommendation.NewEngine(c)
}

func (e *Env) registry(profilesPath string) (profiles.Registry, error) {
	if profilesPath == "" {
		profilesPath = e.Config.ProfilesPath
	}
	if profilesPath == "" {
		path, err := profiles.DefaultPath()
		if err != nil {
			return nil, err
		}
		profilesPath = path
	}
	return profiles.NewRegistry(profilesPath)
}
