// Package feature provides the dense matrix type and column standardization
// used to prepare audio feature vectors for similarity scoring.
package feature
