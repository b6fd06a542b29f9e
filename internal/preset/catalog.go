// Package preset ships a built-in catalog of common subscription
// services so new entries can be prefilled instead of typed from
// scratch.
package preset

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"subtrack/internal/core"
)

//go:embed presets.yaml
var presetsYAML []byte

// Preset is a catalog entry with sensible defaults for one service.
type Preset struct {
	Name         string            `yaml:"name" json:"name"`
	DefaultCents int64             `yaml:"-" json:"default_cents"`
	Currency     core.Currency     `yaml:"currency" json:"currency"`
	BillingCycle core.BillingCycle `yaml:"billing_cycle" json:"billing_cycle"`
	Category     core.Category     `yaml:"category" json:"category"`
	Description  string            `yaml:"description" json:"description"`

	DefaultCost string `yaml:"default_cost" json:"-"`
}

type catalogFile struct {
	Presets []Preset `yaml:"presets"`
}

// Catalog parses the embedded preset list. Every entry is validated
// against the closed enums, so a bad catalog fails loudly at startup
// rather than producing invalid subscriptions later.
func Catalog() ([]Preset, error) {
	var file catalogFile
	if err := yaml.Unmarshal(presetsYAML, &file); err != nil {
		return nil, fmt.Errorf("parse preset catalog: %w", err)
	}

	for i := range file.Presets {
		p := &file.Presets[i]
		if p.Name == "" {
			return nil, fmt.Errorf("preset %d: %w", i, core.ErrEmptyName)
		}
		cents, err := core.ParseDecimalToCents(p.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", p.Name, err)
		}
		p.DefaultCents = cents
		if p.Currency == "" {
			p.Currency = core.USD
		}
		if !p.Currency.Valid() {
			return nil, fmt.Errorf("preset %s: %w: %q", p.Name, core.ErrInvalidCurrency, p.Currency)
		}
		if !p.BillingCycle.Valid() {
			return nil, fmt.Errorf("preset %s: %w: %q", p.Name, core.ErrInvalidCycle, p.BillingCycle)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("preset %s: %w: %q", p.Name, core.ErrInvalidCategory, p.Category)
		}
	}
	return file.Presets, nil
}

// Find returns the preset with the given name, matched exactly.
func Find(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
