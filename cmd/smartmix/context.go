package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"smartmix/internal/config"
	"smartmix/internal/dataset"
	"smartmix/internal/library"
	"smartmix/internal/logging"
	"smartmix/internal/recommend"
	"smartmix/internal/resolve"
	"smartmix/internal/similarity"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolvedPath, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}

		// Flag overrides beat the file; re-validate afterwards so a bad
		// flag value fails the same way a bad file value does.
		if level := flagValue(c.logLevelFlag); level != "" {
			cfg.Logging.Level = level
		}
		if format := flagValue(c.logFormatFlag); format != "" {
			cfg.Logging.Format = format
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}

		c.config = cfg
		c.configPath = resolvedPath
		c.configExists = exists
	})
	return c.config, c.configErr
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*flag))
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// newEngine assembles the recommendation pipeline from the effective config.
func (c *commandContext) newEngine() (*recommend.Engine, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	simEngine, err := similarity.NewEngine(similarity.Options{
		Weights: similarity.Weights{
			MFCC:   cfg.Similarity.MFCCWeight,
			Chroma: cfg.Similarity.ChromaWeight,
			Tempo:  cfg.Similarity.TempoWeight,
		},
		TempoEpsilon: cfg.Similarity.TempoEpsilon,
		Parallelism:  cfg.Engine.Parallelism,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("configure similarity engine: %w", err)
	}

	resolver := resolve.New(resolve.Options{
		MinScore:       cfg.Resolver.MinScore,
		MaxSuggestions: cfg.Resolver.MaxSuggestions,
		Logger:         logger,
	})

	return recommend.NewEngine(resolver, simEngine, logger), nil
}

// withStore opens the configured library store, runs fn, and closes it.
func (c *commandContext) withStore(fn func(*library.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := library.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

// loadCollection reads tracks from the CSV at path, or from the imported
// library when fromLibrary is set.
func (c *commandContext) loadCollection(path string, fromLibrary bool) (dataset.Collection, error) {
	if !fromLibrary {
		return dataset.LoadCSV(path)
	}

	var col dataset.Collection
	err := c.withStore(func(store *library.Store) error {
		loaded, err := store.Collection(context.Background())
		if err != nil {
			return err
		}
		if loaded.Len() == 0 {
			return fmt.Errorf("library %s is empty; run 'smartmix library import' first", store.Path())
		}
		col = loaded
		return nil
	})
	return col, err
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
