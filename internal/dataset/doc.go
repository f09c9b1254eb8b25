// Package dataset defines the track feature model and loads feature datasets
// from CSV.
//
// A dataset row describes one audio track by the descriptors the recommender
// scores: MFCC (timbre) and chroma (pitch-class) vectors captured near the
// start and end of the track, plus start and end tempo in BPM. Vector columns
// are serialized as bracketed comma-separated floats, e.g. "[0.12, -3.4]".
//
// Loading validates the schema and every cell up front: required columns must
// all be present, every vector must parse, and vector lengths must agree
// across rows per feature family. Downstream packages rely on that and never
// re-validate shape.
//
// Row order in the source is preserved; it is the tie-break order for both
// name resolution and recommendation ranking.
package dataset
