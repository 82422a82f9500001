package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

/*
Config is the configuration for the application.

Contains the configuration for the input dataset, the color palette, the
highlight condition, the chart styling and the output file.
*/
type Config struct {
	Input     InputConfig     `json:"input" yaml:"input"`
	Palette   PaletteConfig   `json:"palette" yaml:"palette"`
	Highlight HighlightConfig `json:"highlight" yaml:"highlight"`
	Chart     ChartConfig     `json:"chart" yaml:"chart"`
	Output    OutputConfig    `json:"output" yaml:"output"`
	LogLevel  string          `json:"log_level" yaml:"log_level"`
}

/*
InputConfig is the configuration for the input dataset.
*/
type InputConfig struct {
	// path to the delimited dataset
	Path string `json:"path" yaml:"path"`
	// single character field delimiter
	Delimiter string `json:"delimiter" yaml:"delimiter"`
	// prefix joined with the url column to form the image URL
	ImageBaseURL string `json:"image_base_url" yaml:"image_base_url"`
	// suffix appended to the url column
	ImageExtension string `json:"image_extension" yaml:"image_extension"`
}

/*
PaletteConfig is the configuration for the label color mapping.
*/
type PaletteConfig struct {
	// number of distinct labels, used as the lookup divisor
	NumClasses int `json:"num_classes" yaml:"num_classes"`
}

/*
HighlightConfig holds the strict lower bounds of the highlight condition.
*/
type HighlightConfig struct {
	InclusionThreshold float64 `json:"inclusion_threshold" yaml:"inclusion_threshold"`
	ExclusionThreshold float64 `json:"exclusion_threshold" yaml:"exclusion_threshold"`
}

/*
ChartConfig is the configuration for the scatter traces.
*/
type ChartConfig struct {
	// legend entry for points that are not highlighted
	RestName string `json:"rest_name" yaml:"rest_name"`
	// legend entry for highlighted points
	HighlightName string `json:"highlight_name" yaml:"highlight_name"`
	// hover caption of the original label
	LabelCaption string `json:"label_caption" yaml:"label_caption"`
	// hover caption of the noisy label
	NoisyLabelCaption string `json:"noisy_label_caption" yaml:"noisy_label_caption"`
	MarkerSize        int     `json:"marker_size" yaml:"marker_size"`
	MarkerOpacity     float64 `json:"marker_opacity" yaml:"marker_opacity"`
	// border stroke of highlighted markers
	HighlightLineColor string `json:"highlight_line_color" yaml:"highlight_line_color"`
	HighlightLineWidth int    `json:"highlight_line_width" yaml:"highlight_line_width"`
}

/*
OutputConfig is the configuration for the serialized figure.
*/
type OutputConfig struct {
	// path of the written figure
	Path string `json:"path" yaml:"path"`
	// encode the figure JSON once more as a JSON string
	DoubleEncode bool `json:"double_encode" yaml:"double_encode"`
}

/*
Default config
*/
func DefaultConfig() *Config {
	return &Config{
		// input configuration
		Input: InputConfig{
			Path:           "plot_data.csv",
			Delimiter:      ",",
			ImageBaseURL:   "https://raw.githubusercontent.com/YoongiKim/CIFAR-10-images/refs/heads/master/train/",
			ImageExtension: ".jpg",
		},
		// palette configuration
		Palette: PaletteConfig{
			NumClasses: 10,
		},
		// highlight configuration
		Highlight: HighlightConfig{
			InclusionThreshold: 0.6,
			ExclusionThreshold: 0.6,
		},
		// chart configuration
		Chart: ChartConfig{
			RestName:           "Click Me!",
			HighlightName:      "Incorrect learned human noisy labels",
			LabelCaption:       "CIFAR-10",
			NoisyLabelCaption:  "CIFAR-10N",
			MarkerSize:         8,
			MarkerOpacity:      0.6,
			HighlightLineColor: "black",
			HighlightLineWidth: 2,
		},
		// output configuration
		Output: OutputConfig{
			Path:         "plot.json",
			DoubleEncode: true,
		},
		// logging configuration
		LogLevel: "warn",
	}
}

/*
LoadFromFile loads the configuration from a JSON or YAML file.

Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
Fields missing from the file keep their default values.
*/
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
		}
	}
	return config, nil
}

/*
LoadFromEnv loads the configuration from the environment variables.
*/
func LoadFromEnv() (*Config, error) {
	config := DefaultConfig()
	config.ApplyEnv()
	return config, nil
}

/*
ApplyEnv overrides the configuration with NOISEVIZ_* environment variables.
Values that fail to parse are ignored.
*/
func (c *Config) ApplyEnv() {
	// Input config
	if path := os.Getenv("NOISEVIZ_INPUT"); path != "" {
		c.Input.Path = path
	}

	if delim := os.Getenv("NOISEVIZ_DELIMITER"); delim != "" {
		c.Input.Delimiter = delim
	}

	if baseURL := os.Getenv("NOISEVIZ_IMAGE_BASE_URL"); baseURL != "" {
		c.Input.ImageBaseURL = baseURL
	}

	if ext, ok := os.LookupEnv("NOISEVIZ_IMAGE_EXTENSION"); ok {
		c.Input.ImageExtension = ext
	}

	// Palette config
	if classesStr := os.Getenv("NOISEVIZ_NUM_CLASSES"); classesStr != "" {
		if classes, err := strconv.Atoi(classesStr); err == nil {
			c.Palette.NumClasses = classes
		}
	}

	// Highlight config
	if inclStr := os.Getenv("NOISEVIZ_INCLUSION_THRESHOLD"); inclStr != "" {
		if incl, err := strconv.ParseFloat(inclStr, 64); err == nil {
			c.Highlight.InclusionThreshold = incl
		}
	}

	if exclStr := os.Getenv("NOISEVIZ_EXCLUSION_THRESHOLD"); exclStr != "" {
		if excl, err := strconv.ParseFloat(exclStr, 64); err == nil {
			c.Highlight.ExclusionThreshold = excl
		}
	}

	// Output config
	if path := os.Getenv("NOISEVIZ_OUTPUT"); path != "" {
		c.Output.Path = path
	}

	if doubleStr := os.Getenv("NOISEVIZ_DOUBLE_ENCODE"); doubleStr != "" {
		if double, err := strconv.ParseBool(doubleStr); err == nil {
			c.Output.DoubleEncode = double
		}
	}

	if level := os.Getenv("NOISEVIZ_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
}

/*
Validate checks if the configuration is valid
*/
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input path is empty")
	}
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("invalid delimiter: %q", c.Input.Delimiter)
	}
	if c.Palette.NumClasses <= 0 {
		return fmt.Errorf("invalid number of classes: %d", c.Palette.NumClasses)
	}
	if c.Highlight.InclusionThreshold < 0 || c.Highlight.InclusionThreshold > 1 {
		return fmt.Errorf("invalid inclusion threshold: %v", c.Highlight.InclusionThreshold)
	}
	if c.Highlight.ExclusionThreshold < 0 || c.Highlight.ExclusionThreshold > 1 {
		return fmt.Errorf("invalid exclusion threshold: %v", c.Highlight.ExclusionThreshold)
	}
	if c.Chart.MarkerSize <= 0 {
		return fmt.Errorf("invalid marker size: %d", c.Chart.MarkerSize)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output path is empty")
	}
	return nil
}

/*
DelimiterRune returns the delimiter as a rune, or ',' when unset.
*/
func (c InputConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}
