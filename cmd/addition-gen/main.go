package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mathforge/mathforge/pkg/addition"
	"github.com/mathforge/mathforge/pkg/export"
	"github.com/mathforge/mathforge/pkg/logging"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	format := flag.String("exporter", "csv", "Export format (csv, json, jsonl-snappy)")
	outputDir := flag.String("output_dir", "./data", "Path to output directory")
	flag.Parse()

	logger := logging.NewDefaultLogger()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("invalid configuration", logging.Error(err))
		os.Exit(1)
	}

	gen, err := addition.NewGenerator(*cfg, logger)
	if err != nil {
		logger.Error("invalid addition configuration", logging.Error(err))
		os.Exit(1)
	}

	train, test, err := gen.GenerateData()
	if err != nil {
		logger.Error("generation failed", logging.Error(err))
		os.Exit(1)
	}

	exporter, err := export.For(*format)
	if err != nil {
		logger.Error("unknown export format", logging.Error(err))
		os.Exit(1)
	}
	if err := exporter.Export(records(train), filepath.Join(*outputDir, "train")); err != nil {
		logger.Error("train export failed", logging.Error(err))
		os.Exit(1)
	}
	if err := exporter.Export(records(test), filepath.Join(*outputDir, "test")); err != nil {
		logger.Error("test export failed", logging.Error(err))
		os.Exit(1)
	}

	logger.Info("addition data exported",
		logging.Path(*outputDir),
		logging.Int("train", len(train)),
		logging.Int("test", len(test)))
}

func loadConfig(path string) (*addition.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg := &addition.Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func records(examples []addition.Example) []export.Record {
	out := make([]export.Record, len(examples))
	for i, e := range examples {
		out[i] = e.Record()
	}
	return out
}
