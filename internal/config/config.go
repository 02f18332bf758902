// Package config holds the selection defaults shared by the MCP server and
// the wand CLI. Values are loaded from an optional JSON file; tool arguments
// and command-line flags override them per call.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ironsheep/image-select-mcp/internal/imaging"
	"github.com/ironsheep/image-select-mcp/internal/selection"
)

// Config holds runtime defaults for selections and previews.
type Config struct {
	Debug bool `json:"debug"`

	// Selection defaults
	Threshold         float64 `json:"threshold"` // 0-255
	Criterion         string  `json:"criterion"`
	Antialias         bool    `json:"antialias"`
	SelectTransparent bool    `json:"select_transparent"`
	FeatherRadius     float64 `json:"feather_radius"`

	// Preview
	OverlayColor string `json:"overlay_color"`
}

const (
	defaultThreshold    = 15
	defaultOverlayColor = "#FF000080"
	maxFeatherRadius    = 100
)

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:             false,
		Threshold:         defaultThreshold,
		Criterion:         selection.Composite.String(),
		Antialias:         true,
		SelectTransparent: true,
		FeatherRadius:     0,
		OverlayColor:      defaultOverlayColor,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 255 {
		c.Threshold = defaultThreshold
	}
	crit, err := selection.ParseCriterion(c.Criterion)
	if err != nil {
		crit = selection.Composite
	}
	c.Criterion = crit.String()
	if c.FeatherRadius < 0 {
		c.FeatherRadius = 0
	}
	if c.FeatherRadius > maxFeatherRadius {
		c.FeatherRadius = maxFeatherRadius
	}
	if _, err := imaging.ParseColor(c.OverlayColor); err != nil {
		c.OverlayColor = defaultOverlayColor
	}
	return nil
}

// Options converts the selection defaults into selection.Options.
func (c *Config) Options() selection.Options {
	crit, err := selection.ParseCriterion(c.Criterion)
	if err != nil {
		crit = selection.Composite
	}
	return selection.Options{
		Criterion:         crit,
		Antialias:         c.Antialias,
		Threshold:         selection.ThresholdFromLevel(c.Threshold),
		SelectTransparent: c.SelectTransparent,
	}
}

// Load attempts to read configuration from the given JSON file path. If path
// is empty or the file does not exist it returns DefaultConfig(). On JSON
// error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decode %s: %w", path, err)
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
