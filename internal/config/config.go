package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mcncl/textconv/internal/models"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for textconv
type Config struct {
	Indent int          `yaml:"indent" toml:"indent"`
	CSV    CSVConfig    `yaml:"csv" toml:"csv"`
	Output OutputConfig `yaml:"output" toml:"output"`
	Batch  BatchConfig  `yaml:"batch" toml:"batch"`
	Dev    DevConfig    `yaml:"dev" toml:"dev"`
}

// CSVConfig controls CSV conversion
type CSVConfig struct {
	// HeaderCase is applied to header names in csv-to-json: none, snake,
	// camel, lower_camel or kebab.
	HeaderCase models.KeyStyle `yaml:"header_case" toml:"header_case"`
}

// OutputConfig controls where converted files are written
type OutputConfig struct {
	// Dir receives batch output. Empty means next to each input file.
	Dir       string `yaml:"dir" toml:"dir"`
	Overwrite bool   `yaml:"overwrite" toml:"overwrite"`
}

// BatchConfig controls concurrent conversion of several files
type BatchConfig struct {
	Concurrency int `yaml:"concurrency" toml:"concurrency"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug" toml:"debug"`
}

// configNames are searched for, in order, in each directory.
var configNames = []string{
	".textconv.yml", ".textconv.yaml", ".textconv.toml",
	"textconv.yml", "textconv.yaml", "textconv.toml",
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Indent: models.DefaultIndent,
		CSV: CSVConfig{
			HeaderCase: models.KeyStyleNone,
		},
		Output: OutputConfig{
			Overwrite: false,
		},
		Batch: BatchConfig{
			Concurrency: runtime.GOMAXPROCS(0),
		},
	}
}

// LoadConfig loads configuration from a YAML or TOML file, chosen by
// extension. Keys missing from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := NewConfig()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if !models.ValidIndent(c.Indent) {
		return fmt.Errorf("invalid indent %d: must be 2 or 4", c.Indent)
	}
	if !c.CSV.HeaderCase.Valid() {
		return fmt.Errorf("invalid csv.header_case %q: must be one of %v", c.CSV.HeaderCase, models.KeyStyles)
	}
	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("invalid batch.concurrency %d: must be at least 1", c.Batch.Concurrency)
	}
	return nil
}

// MergeConfigs merges CLI overrides into a base config.
// Non-zero values from override take precedence over base values.
func MergeConfigs(base, override *Config) *Config {
	merged := *base

	if override.Indent != 0 {
		merged.Indent = override.Indent
	}
	if override.CSV.HeaderCase != "" {
		merged.CSV.HeaderCase = override.CSV.HeaderCase
	}
	if override.Output.Dir != "" {
		merged.Output.Dir = override.Output.Dir
	}
	if override.Batch.Concurrency != 0 {
		merged.Batch.Concurrency = override.Batch.Concurrency
	}

	// Boolean flags can only switch a setting on
	merged.Output.Overwrite = base.Output.Overwrite || override.Output.Overwrite
	merged.Dev.Debug = base.Dev.Debug || override.Dev.Debug

	return &merged
}

// LoadConfigWithCLI loads config with CLI argument precedence:
// CLI flags > config file > defaults.
func LoadConfigWithCLI(configPath string, cli *Config) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cli != nil {
		cfg = MergeConfigs(cfg, cli)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
