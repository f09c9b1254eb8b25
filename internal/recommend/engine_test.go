package recommend

import (
	"errors"
	"math"
	"testing"

	"smartmix/internal/dataset"
	"smartmix/internal/resolve"
	"smartmix/internal/similarity"
	"smartmix/internal/testsupport"
)

func newTestEngine(t *testing.T, opts similarity.Options) *Engine {
	t.Helper()
	simEngine, err := similarity.NewEngine(opts)
	if err != nil {
		t.Fatalf("similarity.NewEngine: %v", err)
	}
	return NewEngine(resolve.New(resolve.Options{}), simEngine, nil)
}

func TestRecommendFollowsCrossfadeChain(t *testing.T) {
	col := testsupport.Collection(t, testsupport.CrossfadeTrio()...)
	engine := newTestEngine(t, similarity.Options{})

	// The trio is built as a cycle: each track's ending vectors line up with
	// the next track's starting vectors.
	tests := []struct {
		query string
		want  string
	}{
		{"alpha", "Bravo.mp3"},
		{"bravo", "Charlie [Extended].mp3"},
		{"charlie", "Alpha (Original Mix).mp3"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			result, err := engine.Recommend(col, tt.query)
			if err != nil {
				t.Fatalf("Recommend(%q): %v", tt.query, err)
			}
			if result.BestName != tt.want {
				t.Errorf("best = %q, want %q", result.BestName, tt.want)
			}
			if result.Best.Index == result.Target.Index {
				t.Error("recommendation returned the target itself")
			}
		})
	}
}

func TestRecommendResultDetails(t *testing.T) {
	col := testsupport.Collection(t, testsupport.CrossfadeTrio()...)
	engine := newTestEngine(t, similarity.Options{Parallelism: 1})

	result, err := engine.Recommend(col, "Alpha")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if result.Target.Index != 0 || result.Target.Score != 1.0 {
		t.Errorf("target = %+v, want index 0 with score 1.0", result.Target)
	}
	if result.Best.Index != 1 {
		t.Errorf("best index = %d, want 1", result.Best.Index)
	}
	if math.Abs(result.Best.Score-0.84) > 1e-6 {
		t.Errorf("best score = %v, want 0.84", result.Best.Score)
	}
	if len(result.Candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(result.Candidates))
	}
	if result.Candidates[0].Index != 1 || result.Candidates[1].Index != 2 {
		t.Errorf("candidate order = %+v, want Bravo then Charlie", result.Candidates)
	}
	for _, candidate := range result.Candidates {
		if candidate.Index == result.Target.Index {
			t.Errorf("candidate list contains the target: %+v", candidate)
		}
	}
}

func TestRecommendWeightsChangeWinner(t *testing.T) {
	col := testsupport.Collection(t, testsupport.CrossfadeTrio()...)
	engine := newTestEngine(t, similarity.Options{
		Weights: similarity.Weights{MFCC: 0.1, Chroma: 0.1, Tempo: 0.8},
	})

	// With tempo dominating, Charlie's matching start tempo beats Bravo's
	// aligned feature vectors.
	result, err := engine.Recommend(col, "alpha")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if result.BestName != "Charlie [Extended].mp3" {
		t.Errorf("best = %q, want Charlie [Extended].mp3", result.BestName)
	}
}

func TestRecommendSingleTrack(t *testing.T) {
	trio := testsupport.CrossfadeTrio()
	col := testsupport.Collection(t, trio[0])
	engine := newTestEngine(t, similarity.Options{})

	_, err := engine.Recommend(col, "alpha")
	if !errors.Is(err, ErrNoCandidate) {
		t.Errorf("err = %v, want ErrNoCandidate", err)
	}
}

func TestRecommendUnknownQuery(t *testing.T) {
	col := testsupport.Collection(t, testsupport.CrossfadeTrio()...)
	engine := newTestEngine(t, similarity.Options{})

	_, err := engine.Recommend(col, "zzz unrelated")
	if !errors.Is(err, resolve.ErrNoMatch) {
		t.Errorf("err = %v, want resolve.ErrNoMatch", err)
	}
}

func TestRecommendEmptyCollection(t *testing.T) {
	engine := newTestEngine(t, similarity.Options{})

	_, err := engine.Recommend(dataset.Collection{}, "anything")
	if !errors.Is(err, resolve.ErrNoMatch) {
		t.Errorf("err = %v, want resolve.ErrNoMatch", err)
	}
}
