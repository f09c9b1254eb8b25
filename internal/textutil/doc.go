// Package textutil provides track-name normalization and tokenization for
// fuzzy matching.
//
// Track labels arrive from many sources (filenames, playlist exports, user
// input) and carry noise that should never affect matching: bracketed
// annotations like "(Live)" or "[2011 Remaster]", punctuation, case, and
// irregular whitespace. NormalizeTrackName strips all of that and produces a
// canonical form; TokenSet splits the canonical form for overlap scoring.
//
// Normalization is idempotent: applying it to an already-normalized string
// returns the string unchanged.
package textutil
