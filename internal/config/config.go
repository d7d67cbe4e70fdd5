// Package config loads the [preprocessor.rolltables] options out of the raw
// table mdBook forwards from book.toml.
package config

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config holds the preprocessor options.
type Config struct {
	// ValueSeparator joins the two digits of a combined roll value, as in
	// the 3.2 of a d4.4 table.
	ValueSeparator string `mapstructure:"value-separator"`

	// LabelSeparator joins the two die sizes in the header notation, as in
	// d4.4.
	LabelSeparator string `mapstructure:"label-separator"`

	// WarnOnUnusualDice enables a warning whenever a table needs a die size
	// no physical dice set has.
	WarnOnUnusualDice bool `mapstructure:"warn-on-unusual-dice"`
}

// hostKeys are the entries mdBook itself reads from a preprocessor table.
// They ride along in the raw table but are not options of this program.
var hostKeys = map[string]bool{
	"command":   true,
	"renderer":  true,
	"renderers": true,
	"before":    true,
	"after":     true,
	"optional":  true,
}

// Load builds the configuration from a book's raw preprocessor table, nil
// when book.toml has none. Unknown keys and wrongly typed values are errors,
// so a typo in book.toml fails the build instead of silently falling back to
// defaults.
func Load(table map[string]any) (*Config, error) {
	v := viper.New()
	v.SetDefault("value-separator", ".")
	v.SetDefault("label-separator", ".")
	v.SetDefault("warn-on-unusual-dice", false)

	cleaned := make(map[string]any, len(table))
	for key, val := range table {
		if !hostKeys[key] {
			cleaned[key] = val
		}
	}
	if err := v.MergeConfigMap(cleaned); err != nil {
		return nil, fmt.Errorf("merge preprocessor table: %w", err)
	}

	cfg := &Config{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("invalid preprocessor configuration: %w", err)
	}
	return cfg, nil
}
