package main

import (
	"flag"
	"os"

	"github.com/mathforge/mathforge/pkg/catalog"
	"github.com/mathforge/mathforge/pkg/config"
	"github.com/mathforge/mathforge/pkg/export"
	"github.com/mathforge/mathforge/pkg/generator"
	"github.com/mathforge/mathforge/pkg/logging"
	"github.com/mathforge/mathforge/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	format := flag.String("format", "", "Export format (csv, json, jsonl-snappy); overrides config")
	outputDir := flag.String("output", "", "Output directory; overrides config")
	count := flag.Int("count", 0, "Number of problems; overrides config")
	seed := flag.Int64("seed", 0, "Random seed; overrides config")
	flag.Parse()

	logger := logging.NewDefaultLogger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("invalid configuration", logging.Error(err))
		os.Exit(1)
	}
	if *format != "" {
		cfg.Export.Format = *format
	}
	if *outputDir != "" {
		cfg.Export.OutputDirectory = *outputDir
	}
	if *count > 0 {
		cfg.Problems.NumProblems = *count
	}
	if *seed != 0 {
		cfg.RandomSeed = *seed
	}

	registry := metrics.DefaultRegistry()
	gen, err := generator.New(cfg.RandomSeed, catalog.Default(), cfg.GeneratorConfig(),
		generator.WithLogger(logger),
		generator.WithMetrics(registry),
	)
	if err != nil {
		logger.Error("invalid generator configuration", logging.Error(err))
		os.Exit(1)
	}

	logger.Info("generating problems",
		logging.Seed(cfg.RandomSeed),
		logging.Count(cfg.Problems.NumProblems))

	problems, err := gen.GenerateDataset(cfg.Problems.NumProblems)
	if err != nil {
		logger.Error("generation failed", logging.Error(err))
		os.Exit(1)
	}

	records := make([]export.Record, len(problems))
	for i, p := range problems {
		records[i] = p.Record()
	}

	exporter, err := export.For(cfg.Export.Format)
	if err != nil {
		logger.Error("unknown export format", logging.Error(err))
		os.Exit(1)
	}
	if err := exporter.Export(records, cfg.Export.OutputDirectory); err != nil {
		registry.RecordExport(cfg.Export.Format, "error")
		logger.Error("export failed", logging.Error(err))
		os.Exit(1)
	}
	registry.RecordExport(cfg.Export.Format, "success")

	logger.Info("dataset exported",
		logging.String("format", cfg.Export.Format),
		logging.Path(cfg.Export.OutputDirectory),
		logging.Count(len(records)))
}
