package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigValidation(t *testing.T) {
	// Test valid config
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Default config should not return error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty input", func(c *Config) { c.Input.Path = "" }},
		{"long delimiter", func(c *Config) { c.Input.Delimiter = ";;" }},
		{"empty delimiter", func(c *Config) { c.Input.Delimiter = "" }},
		{"zero classes", func(c *Config) { c.Palette.NumClasses = 0 }},
		{"negative inclusion", func(c *Config) { c.Highlight.InclusionThreshold = -0.1 }},
		{"exclusion above one", func(c *Config) { c.Highlight.ExclusionThreshold = 1.5 }},
		{"zero marker size", func(c *Config) { c.Chart.MarkerSize = 0 }},
		{"empty output", func(c *Config) { c.Output.Path = "" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := DefaultConfig()
			test.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Config with %s should return error", test.name)
			}
		})
	}
}

func TestLoadFromFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"input": {"path": "data.tsv", "delimiter": "\t"}, "highlight": {"inclusion_threshold": 0.75}, "log_level": "info"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Input.Path != "data.tsv" {
		t.Errorf("Expected input path data.tsv, got %s", cfg.Input.Path)
	}
	if cfg.Input.DelimiterRune() != '\t' {
		t.Errorf("Expected tab delimiter, got %q", cfg.Input.DelimiterRune())
	}
	if cfg.Highlight.InclusionThreshold != 0.75 {
		t.Errorf("Expected inclusion threshold 0.75, got %v", cfg.Highlight.InclusionThreshold)
	}
	// untouched fields keep defaults
	if cfg.Highlight.ExclusionThreshold != 0.6 {
		t.Errorf("Expected default exclusion threshold 0.6, got %v", cfg.Highlight.ExclusionThreshold)
	}
	if cfg.Output.Path != "plot.json" || !cfg.Output.DoubleEncode {
		t.Errorf("Expected default output settings, got %+v", cfg.Output)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level info, got %s", cfg.LogLevel)
	}
}

func TestLoadFromFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
palette:
  num_classes: 20
chart:
  rest_name: Everything else
  marker_size: 5
output:
  path: out/figure.json
  double_encode: false
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Palette.NumClasses != 20 {
		t.Errorf("Expected 20 classes, got %d", cfg.Palette.NumClasses)
	}
	if cfg.Chart.RestName != "Everything else" || cfg.Chart.MarkerSize != 5 {
		t.Errorf("Unexpected chart config: %+v", cfg.Chart)
	}
	if cfg.Chart.HighlightName != "Incorrect learned human noisy labels" {
		t.Errorf("Expected default highlight name, got %s", cfg.Chart.HighlightName)
	}
	if cfg.Output.Path != "out/figure.json" || cfg.Output.DoubleEncode {
		t.Errorf("Unexpected output config: %+v", cfg.Output)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing config file")
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("Expected error for malformed config file")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("NOISEVIZ_INPUT", "env.csv")
	t.Setenv("NOISEVIZ_NUM_CLASSES", "100")
	t.Setenv("NOISEVIZ_INCLUSION_THRESHOLD", "0.9")
	t.Setenv("NOISEVIZ_EXCLUSION_THRESHOLD", "not-a-number")
	t.Setenv("NOISEVIZ_DOUBLE_ENCODE", "false")
	t.Setenv("NOISEVIZ_IMAGE_EXTENSION", "")
	t.Setenv("NOISEVIZ_LOG_LEVEL", "debug")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("Failed to load config from env: %v", err)
	}

	if cfg.Input.Path != "env.csv" {
		t.Errorf("Expected input env.csv, got %s", cfg.Input.Path)
	}
	if cfg.Palette.NumClasses != 100 {
		t.Errorf("Expected 100 classes, got %d", cfg.Palette.NumClasses)
	}
	if cfg.Highlight.InclusionThreshold != 0.9 {
		t.Errorf("Expected inclusion threshold 0.9, got %v", cfg.Highlight.InclusionThreshold)
	}
	if cfg.Highlight.ExclusionThreshold != 0.6 {
		t.Errorf("Unparseable value should be ignored, got %v", cfg.Highlight.ExclusionThreshold)
	}
	if cfg.Output.DoubleEncode {
		t.Error("Expected double encoding to be disabled")
	}
	if cfg.Input.ImageExtension != "" {
		t.Errorf("Expected empty image extension, got %q", cfg.Input.ImageExtension)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.LogLevel)
	}
}

func TestDelimiterRune(t *testing.T) {
	tests := []struct {
		delim  string
		expect rune
	}{
		{",", ','},
		{";", ';'},
		{"\t", '\t'},
		{"", ','},
	}

	for _, test := range tests {
		if got := (InputConfig{Delimiter: test.delim}).DelimiterRune(); got != test.expect {
			t.Errorf("Expected %q for %q, got %q", test.expect, test.delim, got)
		}
	}
}
