// Package testsupport provides helpers shared by package tests: temp-backed
// configurations, canned feature datasets, and library stores with cleanup
// registered.
package testsupport

import (
	"path/filepath"
	"testing"

	"smartmix/internal/config"
)

// NewConfig produces a config seeded with unique temp paths per test. Callers
// mutate the returned value directly when a test needs non-default settings.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryPath = filepath.Join(base, "library.db")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	return &cfg
}
