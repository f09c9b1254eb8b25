package config

import (
	"errors"
	"fmt"
	"math"
)

// weightSumTolerance absorbs float error when checking that similarity
// weights sum to one.
const weightSumTolerance = 1e-9

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSimilarity(); err != nil {
		return err
	}
	if err := c.validateResolver(); err != nil {
		return err
	}
	if err := c.validateEngine(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSimilarity() error {
	weights := []struct {
		name  string
		value float64
	}{
		{"similarity.mfcc_weight", c.Similarity.MFCCWeight},
		{"similarity.chroma_weight", c.Similarity.ChromaWeight},
		{"similarity.tempo_weight", c.Similarity.TempoWeight},
	}
	for _, w := range weights {
		if w.value < 0 || w.value > 1 {
			return fmt.Errorf("%s must be between 0 and 1", w.name)
		}
	}
	sum := c.Similarity.MFCCWeight + c.Similarity.ChromaWeight + c.Similarity.TempoWeight
	if math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("similarity weights must sum to 1, got %v", sum)
	}
	if c.Similarity.TempoEpsilon <= 0 {
		return errors.New("similarity.tempo_epsilon must be positive")
	}
	return nil
}

func (c *Config) validateResolver() error {
	if c.Resolver.MinScore < 0 || c.Resolver.MinScore > 1 {
		return errors.New("resolver.min_score must be between 0 and 1")
	}
	if c.Resolver.MaxSuggestions < 0 {
		return errors.New("resolver.max_suggestions must not be negative")
	}
	return nil
}

func (c *Config) validateEngine() error {
	if c.Engine.Parallelism < 0 {
		return errors.New("engine.parallelism must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}
