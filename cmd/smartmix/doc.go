// Package main hosts the smartmix CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into one-shot
// recommendation runs, candidate rankings, dataset validation, library
// imports, and configuration scaffolding. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
// The recommend command's stdout is contractual output; everything
// diagnostic goes to stderr.
package main
