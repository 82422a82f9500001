package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"noise-viz/config"
	"noise-viz/dataset"
	"noise-viz/figure"
)

func main() {
	// load the environment variables
	_ = godotenv.Load()

	// parse the command line arguments
	cfg := parseFlags(os.Args[1:])

	// Initialize logging
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	log.SetLevel(level)

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	if err := run(cfg); err != nil {
		log.Fatal("Failed to build plot: ", err)
	}

	fmt.Printf("Plotly figure saved as %s\n", cfg.Output.Path)
}

/*
run loads the dataset, derives the plot columns, builds the figure and
writes it to the configured output path.
*/
func run(cfg *config.Config) error {
	rows, err := dataset.LoadFile(cfg.Input.Path, cfg.Input.DelimiterRune())
	if err != nil {
		return err
	}

	dataset.NewDeriver(cfg).Apply(rows)

	summary := dataset.Summarize(rows)
	log.WithFields(log.Fields{
		"rows":        summary.Rows,
		"highlighted": summary.Highlighted,
		"noise_rate":  fmt.Sprintf("%.3f", summary.NoiseRate()),
		"labels":      len(summary.PerLabel),
	}).Info("Dataset loaded")
	log.Debugf("Embedding bounds: x=[%.3f, %.3f] y=[%.3f, %.3f]",
		summary.Bounds.MinX, summary.Bounds.MaxX, summary.Bounds.MinY, summary.Bounds.MaxY)
	for _, label := range summary.Labels() {
		log.Debugf("Label %s: %d rows", label, summary.PerLabel[label])
	}

	fig := figure.Build(rows, figure.StyleFromConfig(cfg.Chart))

	n, err := figure.WriteFile(cfg.Output.Path, fig, cfg.Output.DoubleEncode)
	if err != nil {
		return fmt.Errorf("error writing figure: %w", err)
	}

	log.Infof("Wrote %s to %s", humanize.Bytes(uint64(n)), cfg.Output.Path)
	return nil
}

func parseFlags(args []string) *config.Config {
	fs := flag.NewFlagSet("noise-viz", flag.ExitOnError)
	configPath := fs.String("config", "./config.json", "Path to a JSON or YAML config file")

	// the config file has to be known before the other defaults are set
	_ = fs.Parse(filterConfigFlag(args))

	// Load default config
	cfg, err := config.LoadFromFile(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("Ignoring config file %s: %v", *configPath, err)
		}
		cfg = config.DefaultConfig()
	}
	cfg.ApplyEnv()

	fs = flag.NewFlagSet("noise-viz", flag.ExitOnError)
	fs.String("config", *configPath, "Path to a JSON or YAML config file")

	// Input flags
	fs.StringVar(&cfg.Input.Path, "input", cfg.Input.Path, "Path to the delimited dataset")
	fs.StringVar(&cfg.Input.Delimiter, "delimiter", cfg.Input.Delimiter, "Field delimiter of the dataset")
	fs.StringVar(&cfg.Input.ImageBaseURL, "image-base-url", cfg.Input.ImageBaseURL, "Prefix of the image URLs")
	fs.StringVar(&cfg.Input.ImageExtension, "image-ext", cfg.Input.ImageExtension, "Suffix of the image URLs")

	// Palette and highlight flags
	fs.IntVar(&cfg.Palette.NumClasses, "num-classes", cfg.Palette.NumClasses, "Number of distinct labels")
	fs.Float64Var(&cfg.Highlight.InclusionThreshold, "inclusion-threshold", cfg.Highlight.InclusionThreshold, "Inclusion probability must be above this value")
	fs.Float64Var(&cfg.Highlight.ExclusionThreshold, "exclusion-threshold", cfg.Highlight.ExclusionThreshold, "Exclusion probability must be above this value")

	// Output flags
	fs.StringVar(&cfg.Output.Path, "output", cfg.Output.Path, "Path of the written figure")
	fs.BoolVar(&cfg.Output.DoubleEncode, "double-encode", cfg.Output.DoubleEncode, "Encode the figure JSON as a JSON string")

	// Log level flag
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error, fatal)")

	// Parse flags
	_ = fs.Parse(args)

	return cfg
}

// filterConfigFlag keeps only the -config flag and its value.
func filterConfigFlag(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-config" || arg == "--config":
			out = append(out, arg)
			if i+1 < len(args) {
				out = append(out, args[i+1])
				i++
			}
		case strings.HasPrefix(arg, "-config=") || strings.HasPrefix(arg, "--config="):
			out = append(out, arg)
		}
	}
	return out
}
