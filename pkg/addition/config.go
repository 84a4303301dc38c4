// Package addition generates synthetic multi-term addition problems:
// pure combinatorics over digit strings, with optional held-out
// digit/position constraints that move matching examples from the
// training split to the test split.
package addition

import (
	"github.com/mathforge/mathforge/pkg/validation"
)

// Generation strategies for one dataset split.
const (
	// GenerateRandom draws num_examples problems with random term and
	// digit counts.
	GenerateRandom = "random"
	// GenerateAll enumerates every combination (with replacement) of
	// terms in the digit range, per term count.
	GenerateAll = "generate_all"
)

// DatasetConfig bounds one dataset split.
type DatasetConfig struct {
	GenerationType string `yaml:"generation_type"`
	// NumExamples is required for the random strategy.
	NumExamples int `yaml:"num_examples"`
	// MinTerms and MaxTerms bound the summand count per problem.
	MinTerms int `yaml:"min_terms"`
	MaxTerms int `yaml:"max_terms"`
	// MinDigits and MaxDigits bound the digit count per term.
	MinDigits int `yaml:"min_digits"`
	MaxDigits int `yaml:"max_digits"`
	// FillZeros pads every term with leading zeros to the length of the
	// longest term in its problem.
	FillZeros bool `yaml:"fill_zeros"`
}

func (c DatasetConfig) validate(cv *validation.ConfigValidator) {
	cv.OneOf("GenerationType", c.GenerationType, []string{GenerateRandom, GenerateAll}).
		When(c.GenerationType == GenerateRandom, func(v *validation.ConfigValidator) {
			v.Positive("NumExamples", c.NumExamples)
		}).
		MinInt("MinTerms", c.MinTerms, 2).
		OrderedRange("Terms", c.MinTerms, c.MaxTerms).
		Positive("MinDigits", c.MinDigits).
		OrderedRange("Digits", c.MinDigits, c.MaxDigits)
}

// HeldOutConfig names digits to exclude from the training split at
// given positions. Positions count from the right, 1 = units place.
type HeldOutConfig struct {
	Digits    []int `yaml:"digits"`
	Positions []int `yaml:"positions"`
}

func (c HeldOutConfig) validate(cv *validation.ConfigValidator) {
	for _, d := range c.Digits {
		cv.RangeInt("Digits", d, 0, 9)
	}
	for _, p := range c.Positions {
		cv.Positive("Positions", p)
	}
}

// Config is the full addition-generator configuration.
type Config struct {
	RandomSeed int64          `yaml:"random_seed"`
	Training   DatasetConfig  `yaml:"training_config"`
	Test       DatasetConfig  `yaml:"test_config"`
	HeldOut    *HeldOutConfig `yaml:"held_out_config"`
}

// Validate fails fast on invalid ranges, before any generation.
func (c Config) Validate() error {
	cv := validation.NewConfigValidator("addition.Config")
	c.Training.validate(cv)
	c.Test.validate(cv)
	if c.HeldOut != nil {
		c.HeldOut.validate(cv)
	}
	return cv.Validate()
}
