package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load(nil): %v", err)
	}
	if cfg.ValueSeparator != "." {
		t.Fatalf("value separator=%q, want %q", cfg.ValueSeparator, ".")
	}
	if cfg.LabelSeparator != "." {
		t.Fatalf("label separator=%q, want %q", cfg.LabelSeparator, ".")
	}
	if cfg.WarnOnUnusualDice {
		t.Fatal("warn-on-unusual-dice defaults to true, want false")
	}
}

func TestLoadValues(t *testing.T) {
	cfg, err := Load(map[string]any{
		"value-separator":      "-",
		"label-separator":      "",
		"warn-on-unusual-dice": true,
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ValueSeparator != "-" {
		t.Fatalf("value separator=%q, want %q", cfg.ValueSeparator, "-")
	}
	if cfg.LabelSeparator != "" {
		t.Fatalf("label separator=%q, want empty", cfg.LabelSeparator)
	}
	if !cfg.WarnOnUnusualDice {
		t.Fatal("warn-on-unusual-dice=false, want true")
	}
}

func TestLoadIgnoresHostKeys(t *testing.T) {
	cfg, err := Load(map[string]any{
		"command":  "mdbook-rolltables",
		"renderer": "html",
		"before":   []any{"links"},
		"optional": true,
	})
	if err != nil {
		t.Fatalf("Load with host keys: %v", err)
	}
	if cfg.ValueSeparator != "." {
		t.Fatalf("value separator=%q, want default", cfg.ValueSeparator)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	tables := []map[string]any{
		{"warn-unusual-dice": true},
		{"separator": "."},
		{"value-separator": ".", "extra": 1},
	}
	for _, table := range tables {
		if _, err := Load(table); err == nil {
			t.Errorf("Load(%v) accepted an unknown key", table)
		}
	}
}

func TestLoadRejectsWrongTypes(t *testing.T) {
	tables := []map[string]any{
		{"value-separator": 5},
		{"label-separator": false},
		{"warn-on-unusual-dice": "yes"},
	}
	for _, table := range tables {
		if _, err := Load(table); err == nil {
			t.Errorf("Load(%v) accepted a wrongly typed value", table)
		}
	}
}
