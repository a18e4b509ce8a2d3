// Package config holds the configuration for the palette generator with
// the hierarchy defaults → config file → environment → flags.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ConfigFilePath resolves the optional config file path ahead of the full
// flag parse, so the file can be overlaid before env and flags take
// precedence. A --config argument wins over DMXTABLE_CONFIG, matching the
// flags-over-env order of the rest of the hierarchy.
func ConfigFilePath() string {
	args := os.Args[1:]
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if rest, ok := strings.CutPrefix(arg, "--config="); ok {
			return rest
		}
	}
	return os.Getenv("DMXTABLE_CONFIG")
}

// Config holds all generator settings.
type Config struct {
	// Output configuration
	OutputDir  string `yaml:"output_dir"`
	CSVName    string `yaml:"csv_name"`
	SortedName string `yaml:"sorted_csv_name"`
	ReportName string `yaml:"report_name"`
	SwatchDir  string `yaml:"swatch_dir"`

	// Rendering configuration
	SwatchSize    int  `yaml:"swatch_size"`
	Workers       int  `yaml:"workers"`
	WriteSwatches bool `yaml:"write_swatches"`
	WriteReport   bool `yaml:"write_report"`

	// Service configuration
	ServiceName string `yaml:"service_name"`
	LogLevel    string `yaml:"log_level"`

	// Path of an optional YAML config file, flag-only.
	ConfigFile string `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		OutputDir:     ".",
		CSVName:       "dmx_colors.csv",
		SortedName:    "dmx_colors_by_brightness.csv",
		ReportName:    "dmx_preview.html",
		SwatchDir:     "swatches",
		SwatchSize:    20,
		Workers:       runtime.NumCPU(),
		WriteSwatches: true,
		WriteReport:   true,
		ServiceName:   "dmx-table",
		LogLevel:      "info",
	}
}

// LoadFromFile overlays settings from a YAML config file. A missing file is
// an error; callers skip the call when no file was configured.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return nil
}

// LoadFromEnv loads configuration from environment variables with
// DMXTABLE_ prefix.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("DMXTABLE_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("DMXTABLE_CSV_NAME"); v != "" {
		c.CSVName = v
	}
	if v := os.Getenv("DMXTABLE_SORTED_CSV_NAME"); v != "" {
		c.SortedName = v
	}
	if v := os.Getenv("DMXTABLE_REPORT_NAME"); v != "" {
		c.ReportName = v
	}
	if v := os.Getenv("DMXTABLE_SWATCH_DIR"); v != "" {
		c.SwatchDir = v
	}
	if v := os.Getenv("DMXTABLE_SWATCH_SIZE"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			c.SwatchSize = size
		}
	}
	if v := os.Getenv("DMXTABLE_WORKERS"); v != "" {
		if workers, err := strconv.Atoi(v); err == nil {
			c.Workers = workers
		}
	}
	if v := os.Getenv("DMXTABLE_WRITE_SWATCHES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.WriteSwatches = b
		}
	}
	if v := os.Getenv("DMXTABLE_WRITE_REPORT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.WriteReport = b
		}
	}
	if v := os.Getenv("DMXTABLE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// LoadFromFlags registers and parses command-line flags.
func (c *Config) LoadFromFlags() {
	pflag.StringVar(&c.ConfigFile, "config", c.ConfigFile, "Path to YAML config file")
	pflag.StringVar(&c.OutputDir, "output-dir", c.OutputDir, "Directory for generated files")
	pflag.StringVar(&c.CSVName, "csv-name", c.CSVName, "Filename of the index-ordered CSV table")
	pflag.StringVar(&c.SortedName, "sorted-csv-name", c.SortedName, "Filename of the brightness-ordered CSV table")
	pflag.StringVar(&c.ReportName, "report-name", c.ReportName, "Filename of the HTML preview page")
	pflag.StringVar(&c.SwatchDir, "swatch-dir", c.SwatchDir, "Subdirectory for swatch images")
	pflag.IntVar(&c.SwatchSize, "swatch-size", c.SwatchSize, "Swatch image edge length in pixels")
	pflag.IntVar(&c.Workers, "workers", c.Workers, "Concurrent swatch render workers")
	pflag.BoolVar(&c.WriteSwatches, "write-swatches", c.WriteSwatches, "Render swatch images")
	pflag.BoolVar(&c.WriteReport, "write-report", c.WriteReport, "Write the HTML preview page")
	pflag.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")

	pflag.Parse()
}

// Validate checks that required configuration values are set.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.CSVName == "" || c.SortedName == "" {
		return fmt.Errorf("CSV filenames are required")
	}
	if c.WriteReport && c.ReportName == "" {
		return fmt.Errorf("report filename is required")
	}
	if c.WriteSwatches && c.SwatchDir == "" {
		return fmt.Errorf("swatch directory is required")
	}
	if c.SwatchSize <= 0 || c.SwatchSize > 1024 {
		return fmt.Errorf("swatch size must be between 1 and 1024")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}
