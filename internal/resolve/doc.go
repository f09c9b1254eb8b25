// Package resolve maps free-text track queries to rows of a name table.
//
// Matching happens in normalized space (see package textutil): substring
// containment in either direction scores 1.0, anything else scores by the
// fraction of the query's tokens present in the candidate. The best score
// must reach a configurable minimum or resolution fails with ErrNoMatch;
// failed lookups carry Jaro-Winkler ranked near-miss suggestions to help the
// user correct the query. Suggestions are purely diagnostic and never
// influence which row resolves.
//
// Candidates are scanned in table order and only a strictly higher score
// replaces the current best, so ties resolve to the lowest index. Combined
// with stateless scoring this makes resolution fully deterministic.
package resolve
