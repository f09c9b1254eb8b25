// Package logging builds the slog loggers used across smartmix.
//
// Two output formats are supported: a human-oriented console format
// (timestamp, level, component prefix, message, key=value attributes on one
// line) and structured JSON for machine consumption. All diagnostic output
// goes to stderr so that stdout stays reserved for command results; an
// optional log file receives a copy when paths.log_dir is configured.
//
// Components obtain loggers through NewComponentLogger, which tags every
// record with a component attribute and tolerates a nil base logger by
// falling back to a no-op handler. That keeps logging an optional side
// channel: engine code never branches on whether a logger is present.
package logging
