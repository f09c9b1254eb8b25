// Package library persists track feature records in SQLite so a dataset can
// be imported once and recommended against repeatedly. Imports replace the
// whole table inside one transaction and are serialized with a file lock;
// similarity matrices are never stored, only the per-track descriptors.
package library
