package addition

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/mathforge/mathforge/pkg/export"
	"github.com/mathforge/mathforge/pkg/logging"
)

// Example is one generated addition problem.
type Example struct {
	Terms            []string
	Sum              string
	Question         string
	Answer           string
	Text             string
	FillZerosApplied bool
	ContainsHeldOut  bool
	DatasetType      string
}

// Record flattens the example for the exporters.
func (e Example) Record() export.Record {
	return export.Record{
		"terms":              strings.Join(e.Terms, ","),
		"sum":                e.Sum,
		"question":           e.Question,
		"answer":             e.Answer,
		"text":               e.Text,
		"fill_zeros_applied": e.FillZerosApplied,
		"contains_held_out":  e.ContainsHeldOut,
		"dataset_type":       e.DatasetType,
	}
}

// Generator produces addition datasets from a single seeded source.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	logger logging.Logger
}

// NewGenerator validates the config and seeds the generator.
func NewGenerator(cfg Config, logger logging.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Generator{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.RandomSeed)),
		logger: logger,
	}, nil
}

// GenerateData builds the training and test splits. When a held-out
// config is present, training examples containing a held-out digit at
// a held-out position are moved into the test split.
func (g *Generator) GenerateData() (train, test []Example, err error) {
	train, err = g.generateSplit(g.cfg.Training, "train")
	if err != nil {
		return nil, nil, err
	}

	moved := make([]Example, 0)
	if g.cfg.HeldOut != nil {
		clean := make([]Example, 0, len(train))
		for _, example := range train {
			if example.ContainsHeldOut {
				example.DatasetType = "test"
				moved = append(moved, example)
			} else {
				clean = append(clean, example)
			}
		}
		train = clean
	}

	test, err = g.generateSplit(g.cfg.Test, "test")
	if err != nil {
		return nil, nil, err
	}
	test = append(test, moved...)

	g.logger.Info("addition data generated",
		logging.Int("train", len(train)),
		logging.Int("test", len(test)),
		logging.Int("moved_held_out", len(moved)))
	return train, test, nil
}

func (g *Generator) generateSplit(cfg DatasetConfig, datasetType string) ([]Example, error) {
	switch cfg.GenerationType {
	case GenerateAll:
		return g.generateAll(cfg, datasetType), nil
	case GenerateRandom:
		return g.generateRandom(cfg, datasetType), nil
	default:
		return nil, fmt.Errorf("addition: invalid generation type %q", cfg.GenerationType)
	}
}

// generateAll enumerates every combination with replacement of terms
// drawn from the full digit range, for each term count.
func (g *Generator) generateAll(cfg DatasetConfig, datasetType string) []Example {
	minNum := pow10(cfg.MinDigits - 1)
	maxNum := pow10(cfg.MaxDigits) - 1
	numbers := make([]string, 0, maxNum-minNum+1)
	for n := minNum; n <= maxNum; n++ {
		numbers = append(numbers, strconv.Itoa(n))
	}

	examples := make([]Example, 0)
	for numTerms := cfg.MinTerms; numTerms <= cfg.MaxTerms; numTerms++ {
		terms := make([]string, numTerms)
		var walk func(pos, start int)
		walk = func(pos, start int) {
			if pos == numTerms {
				examples = append(examples, g.makeExample(append([]string(nil), terms...), cfg.FillZeros, datasetType))
				return
			}
			for i := start; i < len(numbers); i++ {
				terms[pos] = numbers[i]
				walk(pos+1, i)
			}
		}
		walk(0, 0)
	}
	return examples
}

func (g *Generator) generateRandom(cfg DatasetConfig, datasetType string) []Example {
	examples := make([]Example, 0, cfg.NumExamples)
	for i := 0; i < cfg.NumExamples; i++ {
		numTerms := cfg.MinTerms + g.rng.Intn(cfg.MaxTerms-cfg.MinTerms+1)
		terms := make([]string, numTerms)
		for k := range terms {
			numDigits := cfg.MinDigits + g.rng.Intn(cfg.MaxDigits-cfg.MinDigits+1)
			low := pow10(numDigits - 1)
			high := pow10(numDigits) - 1
			terms[k] = strconv.Itoa(low + g.rng.Intn(high-low+1))
		}
		examples = append(examples, g.makeExample(terms, cfg.FillZeros, datasetType))
	}
	return examples
}

func (g *Generator) makeExample(terms []string, fillZeros bool, datasetType string) Example {
	applied := false
	if fillZeros {
		maxLen := 0
		for _, t := range terms {
			if len(t) > maxLen {
				maxLen = len(t)
			}
		}
		for i, t := range terms {
			terms[i] = strings.Repeat("0", maxLen-len(t)) + t
		}
		applied = true
	}

	containsHeldOut := false
	if g.cfg.HeldOut != nil {
		for _, t := range terms {
			if g.containsHeldOutDigit(t) {
				containsHeldOut = true
				break
			}
		}
	}

	total := 0
	for _, t := range terms {
		n, _ := strconv.Atoi(t)
		total += n
	}

	question := strings.Join(terms, " + ")
	answer := fmt.Sprintf("= %d", total)

	return Example{
		Terms:            terms,
		Sum:              strconv.Itoa(total),
		Question:         question,
		Answer:           answer,
		Text:             question + " " + answer,
		FillZerosApplied: applied,
		ContainsHeldOut:  containsHeldOut,
		DatasetType:      datasetType,
	}
}

// containsHeldOutDigit checks the term's digits at the held-out
// positions, counted from the least significant digit.
func (g *Generator) containsHeldOutDigit(term string) bool {
	for _, pos := range g.cfg.HeldOut.Positions {
		if pos > len(term) {
			continue
		}
		digit := int(term[len(term)-pos] - '0')
		for _, held := range g.cfg.HeldOut.Digits {
			if digit == held {
				return true
			}
		}
	}
	return false
}

func pow10(n int) int {
	result := 1
	for i := 0; i < n; i++ {
		result *= 10
	}
	return result
}
