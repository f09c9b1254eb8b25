package recommend

import (
	"errors"
	"sort"
)

// ErrNoCandidate indicates the resolved target is the only track available,
// so there is nothing to crossfade into.
var ErrNoCandidate = errors.New("no candidate tracks")

// Candidate pairs a track row index with its combined similarity score
// against the current target.
type Candidate struct {
	Index int
	Score float64
}

// Rank returns the candidates of row ordered by descending score, always
// excluding target itself. Equal scores keep ascending index order. A
// negative n returns every candidate; otherwise the list is capped at n.
func Rank(row []float64, target, n int) []Candidate {
	if n == 0 {
		return nil
	}
	candidates := make([]Candidate, 0, len(row))
	for i, score := range row {
		if i == target {
			continue
		}
		candidates = append(candidates, Candidate{Index: i, Score: score})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if n > 0 && len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// SelectBest returns the index of the highest-scoring entry in row other
// than target. Ties resolve to the lowest index so repeated runs agree.
func SelectBest(row []float64, target int) (int, error) {
	best := -1
	for i, score := range row {
		if i == target {
			continue
		}
		if best < 0 || score > row[best] {
			best = i
		}
	}
	if best < 0 {
		return 0, ErrNoCandidate
	}
	return best, nil
}
