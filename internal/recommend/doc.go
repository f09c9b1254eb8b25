// Package recommend turns a similarity matrix and a free-text track query
// into a crossfade recommendation. The selector ranks one matrix row; the
// engine wires resolution, scoring, and selection into the one-shot pipeline.
package recommend
