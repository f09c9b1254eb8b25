// Package config loads, validates, and defaults smartmix configuration.
//
// Configuration lives in a TOML file resolved from, in order: an explicit
// --config path, ~/.config/smartmix/config.toml, then ./smartmix.toml in the
// working directory. A missing file is not an error; every setting has a
// usable default so the CLI works out of the box.
//
// All path fields are expanded (~ resolution, absolute cleaning) during Load,
// so downstream code never sees unexpanded values.
package config
