package similarity

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync"
	"time"

	"smartmix/internal/dataset"
	"smartmix/internal/feature"
	"smartmix/internal/logging"
)

// DefaultTempoEpsilon guards the tempo-proximity division when the maximum
// tempo difference across the dataset is zero.
const DefaultTempoEpsilon = 1e-8

// weightSumTolerance absorbs float error when checking that weights sum to 1.
const weightSumTolerance = 1e-9

// Weights are the relative contributions of each feature family to the
// combined score. Each must lie in [0, 1] and together they must sum to 1.
type Weights struct {
	MFCC   float64
	Chroma float64
	Tempo  float64
}

// DefaultWeights weight timbre and tempo as the main signals, with
// pitch-class refining the decision.
func DefaultWeights() Weights {
	return Weights{MFCC: 0.4, Chroma: 0.2, Tempo: 0.4}
}

func (w Weights) validate() error {
	for _, v := range []float64{w.MFCC, w.Chroma, w.Tempo} {
		if v < 0 || v > 1 {
			return fmt.Errorf("weights must be between 0 and 1, got %+v", w)
		}
	}
	if sum := w.MFCC + w.Chroma + w.Tempo; math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1, got %v", sum)
	}
	return nil
}

// Options configures an Engine.
type Options struct {
	// Weights default to DefaultWeights when left zero.
	Weights Weights
	// TempoEpsilon defaults to DefaultTempoEpsilon when zero.
	TempoEpsilon float64
	// Parallelism is the number of worker goroutines filling matrix rows;
	// zero or negative selects GOMAXPROCS.
	Parallelism int
	Logger      *slog.Logger
}

// Engine computes combined end-to-start similarity matrices for track
// collections. Safe for concurrent use; Build carries no state between calls.
type Engine struct {
	weights     Weights
	epsilon     float64
	parallelism int
	logger      *slog.Logger
}

// NewEngine validates opts and returns a ready engine.
func NewEngine(opts Options) (*Engine, error) {
	weights := opts.Weights
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	if err := weights.validate(); err != nil {
		return nil, err
	}

	epsilon := opts.TempoEpsilon
	if epsilon == 0 {
		epsilon = DefaultTempoEpsilon
	}
	if epsilon < 0 {
		return nil, fmt.Errorf("tempo epsilon must be positive, got %v", epsilon)
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	return &Engine{
		weights:     weights,
		epsilon:     epsilon,
		parallelism: parallelism,
		logger:      logging.NewComponentLogger(opts.Logger, "similarity"),
	}, nil
}

// Build computes the N×N crossfade similarity matrix for col. Entry (i, j)
// scores how well track i's ending characteristics lead into track j's
// starting characteristics. The collection must be well-formed (see
// dataset.Collection.Validate); both loaders guarantee that.
func (e *Engine) Build(col dataset.Collection) feature.Matrix {
	start := time.Now()
	n := col.Len()

	b := &builder{
		weights:     e.weights,
		mfccStart:   feature.Standardize(matrixOf(col.Tracks, col.MFCCDim, func(t dataset.Track) []float64 { return t.MFCCStart })),
		mfccEnd:     feature.Standardize(matrixOf(col.Tracks, col.MFCCDim, func(t dataset.Track) []float64 { return t.MFCCEnd })),
		chromaStart: feature.Standardize(matrixOf(col.Tracks, col.ChromaDim, func(t dataset.Track) []float64 { return t.ChromaStart })),
		chromaEnd:   feature.Standardize(matrixOf(col.Tracks, col.ChromaDim, func(t dataset.Track) []float64 { return t.ChromaEnd })),
		tempoDiff:   feature.NewMatrix(n, n),
		sim:         feature.NewMatrix(n, n),
	}

	// Tempo proximity normalizes by the dataset-wide maximum difference, so
	// the difference matrix is filled before any row is scored.
	var maxDiff float64
	for i, from := range col.Tracks {
		for j, to := range col.Tracks {
			d := math.Abs(from.TempoEnd - to.TempoStart)
			b.tempoDiff.Set(i, j, d)
			if d > maxDiff {
				maxDiff = d
			}
		}
	}
	b.tempoDenom = maxDiff + e.epsilon

	workers := e.parallelism
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			b.fillRow(i)
		}
	} else {
		rows := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range rows {
					b.fillRow(i)
				}
			}()
		}
		for i := 0; i < n; i++ {
			rows <- i
		}
		close(rows)
		wg.Wait()
	}

	e.logger.Debug("similarity matrix built",
		logging.Int("tracks", n),
		logging.Float64("max_tempo_diff", maxDiff),
		logging.Int("workers", workers),
		logging.Duration("elapsed", time.Since(start)),
	)

	return b.sim
}

// builder fills similarity rows. Workers own disjoint rows of sim, so no
// locking is needed.
type builder struct {
	weights     Weights
	tempoDenom  float64
	mfccStart   feature.Matrix
	mfccEnd     feature.Matrix
	chromaStart feature.Matrix
	chromaEnd   feature.Matrix
	tempoDiff   feature.Matrix
	sim         feature.Matrix
}

func (b *builder) fillRow(i int) {
	mfccEnd := b.mfccEnd.Row(i)
	chromaEnd := b.chromaEnd.Row(i)
	for j := 0; j < b.sim.Cols(); j++ {
		score := b.weights.MFCC*Cosine(mfccEnd, b.mfccStart.Row(j)) +
			b.weights.Chroma*Cosine(chromaEnd, b.chromaStart.Row(j)) +
			b.weights.Tempo*(1-b.tempoDiff.At(i, j)/b.tempoDenom)
		b.sim.Set(i, j, score)
	}
}

func matrixOf(tracks []dataset.Track, dim int, pick func(dataset.Track) []float64) feature.Matrix {
	m := feature.NewMatrix(len(tracks), dim)
	for i, track := range tracks {
		copy(m.Row(i), pick(track))
	}
	return m
}
