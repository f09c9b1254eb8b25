package resolve

import (
	"sort"

	"github.com/xrash/smetrics"

	"smartmix/internal/textutil"
)

// Standard Jaro-Winkler parameters: the common-prefix bonus applies above a
// 0.7 base score over at most the first 4 characters.
const (
	jaroBoostThreshold = 0.7
	jaroPrefixSize     = 4
)

// Suggestion pairs a candidate label with its Jaro-Winkler similarity to the
// query, both compared in normalized form.
type Suggestion struct {
	Index int
	Name  string
	Score float64
}

// Suggest ranks up to n near-miss candidates for a query, best first. Equal
// scores keep table order. Purely diagnostic: resolution never consults
// suggestions.
func Suggest(query string, names []string, n int) []Suggestion {
	if n <= 0 || len(names) == 0 {
		return nil
	}
	normalizedQuery := textutil.NormalizeTrackName(query)
	if normalizedQuery == "" {
		return nil
	}

	out := make([]Suggestion, 0, len(names))
	for i, name := range names {
		candidate := textutil.NormalizeTrackName(name)
		if candidate == "" {
			continue
		}
		score := smetrics.JaroWinkler(normalizedQuery, candidate, jaroBoostThreshold, jaroPrefixSize)
		out = append(out, Suggestion{Index: i, Name: name, Score: score})
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
