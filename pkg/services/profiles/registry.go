package profiles

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/de-tools/compliance-atlas/pkg/adapters"
	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/de-tools/compliance-atlas/pkg/models/store"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/ini.v1"
)

const DefaultFileName = ".compliance-profiles"

// Registry reads organization profiles from an INI file, one section per
// organization:
//
//	[acme]
//	sector = health
//	size = small
//	budget = medium
//	maturity = managed
//	infrastructure = onprem, cloud
//	annual_revenue = 12000000
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (domain.Profile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

// DefaultPath is the profiles file in the user's home directory.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// NewRegistry loads the INI file at path. A leading ~ is expanded.
func NewRegistry(path string) (Registry, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand %s: %w", path, err)
	}

	cfg, err := ini.Load(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles %s: %w", expanded, err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var names []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			names = append(names, section.Name())
		}
	}
	return names, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (domain.Profile, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil || len(section.Keys()) == 0 {
		return domain.Profile{}, fmt.Errorf("profile %s not found", name)
	}

	org := store.OrganizationProfile{
		Name:           name,
		Sector:         section.Key("sector").String(),
		Size:           section.Key("size").String(),
		Budget:         section.Key("budget").String(),
		Maturity:       section.Key("maturity").String(),
		Infrastructure: splitList(section.Key("infrastructure").String()),
	}

	if section.HasKey("annual_revenue") {
		revenue, err := section.Key("annual_revenue").Float64()
		if err != nil {
			return domain.Profile{}, fmt.Errorf("profile %s: invalid annual_revenue: %w", name, err)
		}
		org.AnnualRevenue = &revenue
	}

	profile, err := adapters.MapOrganizationProfileStoreToDomainInput(org).Parse()
	if err != nil {
		return domain.Profile{}, fmt.Errorf("profile %s: %w", name, err)
	}
	return profile, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
