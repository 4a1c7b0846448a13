package application

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DisplayConfig controls report presentation: the currency symbol used by
// formatted exports and the mapping from stored unit labels to display
// labels.
type DisplayConfig struct {
	CurrencySymbol string            `yaml:"currency_symbol"`
	DefaultUnit    string            `yaml:"default_unit"`
	UnitDisplay    map[string]string `yaml:"unit_display"`
}

// DefaultDisplayConfig returns the built-in display settings: "piece"
// shows as "pcs", "ml" quantities show unit-less, products missing from
// the catalog fall back to "units".
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		CurrencySymbol: "$",
		DefaultUnit:    "units",
		UnitDisplay: map[string]string{
			"piece": "pcs",
			"ml":    "",
		},
	}
}

// LoadDisplayConfig loads display settings from the REPORTING_CONFIG yaml
// file when set, falling back to defaults.
func LoadDisplayConfig() (DisplayConfig, error) {
	cfg := DefaultDisplayConfig()
	if symbol := os.Getenv("CURRENCY_SYMBOL"); symbol != "" {
		cfg.CurrencySymbol = symbol
	}

	if path := os.Getenv("REPORTING_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.CurrencySymbol == "" {
		cfg.CurrencySymbol = "$"
	}
	if cfg.DefaultUnit == "" {
		cfg.DefaultUnit = "units"
	}
	return cfg, nil
}

// DisplayUnit maps a stored unit label to its display form. An entry
// mapping to the empty string means the quantity shows unit-less.
func (c DisplayConfig) DisplayUnit(base string) string {
	if c.UnitDisplay != nil {
		if mapped, ok := c.UnitDisplay[base]; ok {
			return mapped
		}
	}
	return base
}
