// Package config loads and validates the generator configuration from
// YAML. Violated constraints fail fast here, before any graph
// construction begins.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/mathforge/mathforge/pkg/addition"
	"github.com/mathforge/mathforge/pkg/generator"
	"github.com/mathforge/mathforge/pkg/validation"
)

// DefaultSeed is used when the config names no seed.
const DefaultSeed = 42

var validate = validator.New()

// Range is an inclusive integer range.
type Range struct {
	Min int `yaml:"min" validate:"min=0"`
	Max int `yaml:"max" validate:"min=0"`
}

// ProblemsConfig bounds the graph-based problem generator.
type ProblemsConfig struct {
	NumProblems     int   `yaml:"num_problems" validate:"required,min=1"`
	NumLayers       Range `yaml:"num_layers"`
	ItemsPerLayer   Range `yaml:"items_per_layer"`
	OperationBudget int   `yaml:"operation_budget" validate:"required,min=1"`
}

// ExportConfig names the exporter and its destination.
type ExportConfig struct {
	Format          string `yaml:"format" validate:"omitempty,oneof=csv json jsonl-snappy"`
	OutputDirectory string `yaml:"output_directory"`
}

// Config is the top-level configuration file shape.
type Config struct {
	RandomSeed int64            `yaml:"random_seed"`
	Problems   ProblemsConfig   `yaml:"problems"`
	Export     ExportConfig     `yaml:"export_options"`
	Addition   *addition.Config `yaml:"addition,omitempty"`
}

// Load reads, parses, defaults, and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.RandomSeed == 0 {
		c.RandomSeed = DefaultSeed
	}
	if c.Export.Format == "" {
		c.Export.Format = "csv"
	}
	if c.Export.OutputDirectory == "" {
		c.Export.OutputDirectory = "./data"
	}
	if c.Problems.ItemsPerLayer.Min == 0 && c.Problems.ItemsPerLayer.Max == 0 {
		c.Problems.ItemsPerLayer = Range{Min: 2, Max: 4}
	}
}

// Validate runs struct-tag validation plus the cross-field range
// checks the tags cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	cv := validation.NewConfigValidator("config.Config")
	cv.Positive("problems.items_per_layer.min", c.Problems.ItemsPerLayer.Min).
		OrderedRange("problems.items_per_layer", c.Problems.ItemsPerLayer.Min, c.Problems.ItemsPerLayer.Max).
		When(c.Problems.NumLayers.Min != 0 || c.Problems.NumLayers.Max != 0, func(v *validation.ConfigValidator) {
			v.MinInt("problems.num_layers.min", c.Problems.NumLayers.Min, 2).
				OrderedRange("problems.num_layers", c.Problems.NumLayers.Min, c.Problems.NumLayers.Max)
		})
	if err := cv.Validate(); err != nil {
		return err
	}

	if c.Addition != nil {
		if err := c.Addition.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// GeneratorConfig maps the file shape onto the generator's config.
func (c *Config) GeneratorConfig() generator.Config {
	return generator.Config{
		NumLayersMin:    c.Problems.NumLayers.Min,
		NumLayersMax:    c.Problems.NumLayers.Max,
		MinPerLayer:     c.Problems.ItemsPerLayer.Min,
		MaxPerLayer:     c.Problems.ItemsPerLayer.Max,
		OperationBudget: c.Problems.OperationBudget,
	}
}
