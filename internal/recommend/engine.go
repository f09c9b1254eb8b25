package recommend

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"smartmix/internal/dataset"
	"smartmix/internal/logging"
	"smartmix/internal/resolve"
	"smartmix/internal/similarity"
)

// previewLimit bounds how many ranked candidates each run logs at debug.
const previewLimit = 5

// Result is the outcome of one recommendation run.
type Result struct {
	Target     resolve.Match
	Best       Candidate
	BestName   string
	Candidates []Candidate
}

// Engine runs the recommendation pipeline: score the collection, resolve the
// query to a row, pick the best other row.
type Engine struct {
	resolver   *resolve.Resolver
	similarity *similarity.Engine
	logger     *slog.Logger
}

// NewEngine returns an Engine over the supplied collaborators. A nil logger
// is replaced with a no-op logger.
func NewEngine(resolver *resolve.Resolver, sim *similarity.Engine, logger *slog.Logger) *Engine {
	return &Engine{
		resolver:   resolver,
		similarity: sim,
		logger:     logging.NewComponentLogger(logger, "recommend"),
	}
}

// Recommend scores col, resolves query against the track names, and returns
// the best crossfade candidate for the resolved track. The full descending
// candidate ranking rides along for diagnostics.
func (e *Engine) Recommend(col dataset.Collection, query string) (Result, error) {
	logger := e.logger.With(logging.String(logging.FieldRequestID, uuid.NewString()))
	logger.Debug("recommendation requested",
		logging.String("query", query),
		logging.Int("tracks", col.Len()),
	)

	sim := e.similarity.Build(col)

	match, err := e.resolver.Resolve(query, col.Names())
	if err != nil {
		return Result{}, err
	}

	row := sim.Row(match.Index)
	bestIndex, err := SelectBest(row, match.Index)
	if err != nil {
		return Result{}, fmt.Errorf("recommend for %q: %w", match.Name, err)
	}

	result := Result{
		Target:     match,
		Best:       Candidate{Index: bestIndex, Score: row[bestIndex]},
		BestName:   col.Tracks[bestIndex].Name,
		Candidates: Rank(row, match.Index, -1),
	}

	logger.Debug("recommendation complete",
		logging.String("target", match.Name),
		logging.String("best", result.BestName),
		logging.Float64("score", result.Best.Score),
	)
	for i, candidate := range result.Candidates {
		if i >= previewLimit {
			break
		}
		logger.Debug("candidate",
			logging.Int("rank", i+1),
			logging.String("name", col.Tracks[candidate.Index].Name),
			logging.Float64("score", candidate.Score),
		)
	}
	return result, nil
}
