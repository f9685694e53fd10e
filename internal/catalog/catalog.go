// Package catalog exposes read-only reference data about the supported
// social networks.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"socialmanager/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed platforms.yml
var platformsYAML []byte

// RateLimit is the documented request allowance of a platform API.
type RateLimit struct {
	Requests int           `yaml:"requests" json:"requests"`
	Window   time.Duration `yaml:"window" json:"-"`
	// WindowText is Window rendered for JSON clients.
	WindowText string `yaml:"-" json:"window"`
}

// MediaLimits describes what a platform accepts alongside text.
type MediaLimits struct {
	MaxImages int  `yaml:"max_images" json:"max_images"`
	Video     bool `yaml:"video" json:"video"`
	Required  bool `yaml:"required" json:"required"`
}

// PlatformInfo is one catalogue entry.
type PlatformInfo struct {
	Name           models.Platform `yaml:"name" json:"name"`
	DisplayName    string          `yaml:"display_name" json:"display_name"`
	BaseURL        string          `yaml:"base_url" json:"base_url"`
	APIVersion     string          `yaml:"api_version" json:"api_version"`
	Auth           string          `yaml:"auth" json:"auth"`
	CredentialEnv  []string        `yaml:"credential_env" json:"credential_env"`
	RateLimit      RateLimit       `yaml:"rate_limit" json:"rate_limit"`
	CharacterLimit int             `yaml:"character_limit" json:"character_limit"`
	Media          MediaLimits     `yaml:"media" json:"media"`
}

// Fits reports whether content is within the platform's character limit.
func (p PlatformInfo) Fits(content string) bool {
	d := models.Draft{Content: content}
	return p.CharacterLimit <= 0 || d.CharacterCount() <= p.CharacterLimit
}

// Catalog is an immutable set of platform entries in display order.
type Catalog struct {
	entries []PlatformInfo
	byName  map[models.Platform]PlatformInfo
}

type document struct {
	Platforms []PlatformInfo `yaml:"platforms"`
}

// Parse decodes a catalogue document and checks that every entry names a
// supported platform exactly once.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse platform catalogue: %w", err)
	}

	c := &Catalog{byName: make(map[models.Platform]PlatformInfo, len(doc.Platforms))}
	for _, p := range doc.Platforms {
		name, err := models.ParsePlatform(string(p.Name))
		if err != nil {
			return nil, err
		}
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("platform %q listed twice", name)
		}
		if p.RateLimit.Requests < 0 || p.RateLimit.Window < 0 {
			return nil, fmt.Errorf("platform %q: negative rate limit", name)
		}
		p.Name = name
		p.RateLimit.WindowText = p.RateLimit.Window.String()
		c.entries = append(c.entries, p)
		c.byName[name] = p
	}
	return c, nil
}

var (
	loadOnce sync.Once
	loaded   *Catalog
	loadErr  error
)

// Load returns the embedded catalogue.
func Load() (*Catalog, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(platformsYAML)
	})
	return loaded, loadErr
}

// List returns every entry in display order.
func (c *Catalog) List() []PlatformInfo {
	out := make([]PlatformInfo, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get returns the entry for p.
func (c *Catalog) Get(p models.Platform) (PlatformInfo, error) {
	info, ok := c.byName[p]
	if !ok {
		return PlatformInfo{}, fmt.Errorf("%w: %q", models.ErrUnknownPlatform, p)
	}
	return info, nil
}

// OverLimit returns the platforms in selected whose character limit content
// exceeds, in selection order.
func (c *Catalog) OverLimit(content string, selected models.Platforms) []models.Platform {
	var over []models.Platform
	for _, p := range selected {
		info, ok := c.byName[p]
		if ok && !info.Fits(content) {
			over = append(over, p)
		}
	}
	return over
}
