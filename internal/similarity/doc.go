// Package similarity scores how well one track crossfades into another.
//
// For a collection of N tracks the engine produces an N×N matrix whose (i, j)
// entry combines three signals comparing track i's ending characteristics
// with track j's starting characteristics:
//
//   - cosine similarity of the standardized MFCC (timbre) vectors,
//   - cosine similarity of the standardized chroma (pitch-class) vectors,
//   - tempo proximity, 1 - |tempoEnd(i) - tempoStart(j)| / (maxDiff + eps),
//     where maxDiff is the largest such difference in the dataset and eps
//     guards the all-tempos-equal case.
//
// The three are linearly combined with configurable weights that must sum to
// one. Standardization is fit per call on the current collection only, so
// identical inputs always produce identical matrices regardless of
// parallelism.
package similarity
