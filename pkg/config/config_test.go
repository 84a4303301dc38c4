package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
random_seed: 7
problems:
  num_problems: 100
  num_layers:
    min: 2
    max: 4
  items_per_layer:
    min: 2
    max: 3
  operation_budget: 12
export_options:
  format: jsonl-snappy
  output_directory: /tmp/out
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.RandomSeed)
	assert.Equal(t, 100, cfg.Problems.NumProblems)
	assert.Equal(t, Range{Min: 2, Max: 4}, cfg.Problems.NumLayers)
	assert.Equal(t, 12, cfg.Problems.OperationBudget)
	assert.Equal(t, "jsonl-snappy", cfg.Export.Format)
	assert.Equal(t, "/tmp/out", cfg.Export.OutputDirectory)
	assert.Nil(t, cfg.Addition)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
problems:
  num_problems: 10
  operation_budget: 5
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultSeed), cfg.RandomSeed)
	assert.Equal(t, "csv", cfg.Export.Format)
	assert.Equal(t, "./data", cfg.Export.OutputDirectory)
	assert.Equal(t, Range{Min: 2, Max: 4}, cfg.Problems.ItemsPerLayer)
	assert.Equal(t, Range{}, cfg.Problems.NumLayers, "layer count stays a per-problem draw")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "problems: [not a mapping")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name     string
		contents string
	}{
		{"missing num_problems", `
problems:
  operation_budget: 5
`},
		{"zero budget", `
problems:
  num_problems: 10
  operation_budget: 0
`},
		{"inverted items range", `
problems:
  num_problems: 10
  operation_budget: 5
  items_per_layer:
    min: 4
    max: 2
`},
		{"layer range below two", `
problems:
  num_problems: 10
  operation_budget: 5
  num_layers:
    min: 1
    max: 3
`},
		{"unknown export format", `
problems:
  num_problems: 10
  operation_budget: 5
export_options:
  format: parquet
`},
		{"invalid addition section", `
problems:
  num_problems: 10
  operation_budget: 5
addition:
  training_config:
    generation_type: random
    num_examples: 10
    min_terms: 1
    max_terms: 2
    min_digits: 1
    max_digits: 1
  test_config:
    generation_type: random
    num_examples: 5
    min_terms: 2
    max_terms: 2
    min_digits: 1
    max_digits: 1
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.contents))
			assert.Error(t, err)
		})
	}
}

func TestGeneratorConfig_Mapping(t *testing.T) {
	cfg := &Config{
		Problems: ProblemsConfig{
			NumProblems:     10,
			NumLayers:       Range{Min: 3, Max: 4},
			ItemsPerLayer:   Range{Min: 2, Max: 5},
			OperationBudget: 9,
		},
	}
	gc := cfg.GeneratorConfig()
	assert.Equal(t, 3, gc.NumLayersMin)
	assert.Equal(t, 4, gc.NumLayersMax)
	assert.Equal(t, 2, gc.MinPerLayer)
	assert.Equal(t, 5, gc.MaxPerLayer)
	assert.Equal(t, 9, gc.OperationBudget)
}
