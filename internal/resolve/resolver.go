package resolve

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"smartmix/internal/logging"
	"smartmix/internal/textutil"
)

// ErrNoMatch indicates no candidate scored at or above the resolver minimum.
var ErrNoMatch = errors.New("no matching track")

// DefaultMinScore is the score a best match must reach to be accepted.
const DefaultMinScore = 0.3

// DefaultMaxSuggestions bounds the near-miss list attached to failed lookups.
const DefaultMaxSuggestions = 5

// Match identifies the table row a query resolved to.
type Match struct {
	Index      int
	Name       string // original label as stored in the table
	Normalized string
	Score      float64
}

// Options tunes resolution behavior. Zero values select the defaults; a
// negative MaxSuggestions disables suggestions entirely.
type Options struct {
	MinScore       float64
	MaxSuggestions int
	Logger         *slog.Logger
}

// Resolver maps free-text track identifiers to rows of a name table. Safe
// for concurrent use.
type Resolver struct {
	minScore       float64
	maxSuggestions int
	logger         *slog.Logger
}

// New builds a Resolver from opts.
func New(opts Options) *Resolver {
	minScore := opts.MinScore
	if minScore == 0 {
		minScore = DefaultMinScore
	}
	maxSuggestions := opts.MaxSuggestions
	if maxSuggestions == 0 {
		maxSuggestions = DefaultMaxSuggestions
	}
	if maxSuggestions < 0 {
		maxSuggestions = 0
	}
	return &Resolver{
		minScore:       minScore,
		maxSuggestions: maxSuggestions,
		logger:         logging.NewComponentLogger(opts.Logger, "resolve"),
	}
}

// Resolve returns the best-matching row for query among names, scanning in
// table order. Only a strictly higher score replaces the current best, so the
// lowest index wins ties. A best score below the minimum yields ErrNoMatch
// with near-miss suggestions folded into the message.
func (r *Resolver) Resolve(query string, names []string) (Match, error) {
	normalizedQuery := textutil.NormalizeTrackName(query)
	queryTokens := textutil.TokenSet(normalizedQuery)

	best := Match{Index: -1}
	for i, name := range names {
		candidate := textutil.NormalizeTrackName(name)
		score := matchScore(normalizedQuery, queryTokens, candidate)
		if score > best.Score {
			best = Match{Index: i, Name: name, Normalized: candidate, Score: score}
		}
	}

	if best.Index < 0 || best.Score < r.minScore {
		detail := fmt.Sprintf("query %q scored %.2f against %d names (minimum %.2f)",
			query, best.Score, len(names), r.minScore)
		if hints := r.formatSuggestions(query, names); hints != "" {
			detail += "; closest: " + hints
		}
		r.logger.Debug("resolution failed",
			logging.String("query", query),
			logging.String("normalized", normalizedQuery),
			logging.Float64("best_score", best.Score),
		)
		return Match{}, fmt.Errorf("%w: %s", ErrNoMatch, detail)
	}

	r.logger.Debug("resolved track",
		logging.String("query", query),
		logging.Int("index", best.Index),
		logging.String("name", best.Name),
		logging.Float64("score", best.Score),
	)
	return best, nil
}

func (r *Resolver) formatSuggestions(query string, names []string) string {
	suggestions := Suggest(query, names, r.maxSuggestions)
	if len(suggestions) == 0 {
		return ""
	}
	parts := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		parts = append(parts, fmt.Sprintf("%q (%.2f)", s.Name, s.Score))
	}
	return strings.Join(parts, ", ")
}

// matchScore scores a normalized candidate against the normalized query.
// Substring containment in either direction is a perfect match; otherwise the
// score is the fraction of query tokens found in the candidate.
func matchScore(query string, queryTokens map[string]struct{}, candidate string) float64 {
	if strings.Contains(candidate, query) || strings.Contains(query, candidate) {
		return 1.0
	}
	candidateTokens := textutil.TokenSet(candidate)
	common := 0
	for token := range queryTokens {
		if _, ok := candidateTokens[token]; ok {
			common++
		}
	}
	denom := len(queryTokens)
	if denom < 1 {
		denom = 1
	}
	return float64(common) / float64(denom)
}
