package dataset

import "fmt"

// Track holds the per-track audio descriptors used for crossfade scoring.
// MFCC vectors describe spectral texture (timbre); chroma vectors describe
// pitch-class energy; tempo is beats per minute. Each family is captured once
// near the start and once near the end of the track.
type Track struct {
	Name        string
	MFCCStart   []float64
	MFCCEnd     []float64
	ChromaStart []float64
	ChromaEnd   []float64
	TempoStart  float64
	TempoEnd    float64
}

// Collection is an ordered set of tracks with dataset-wide vector
// dimensionality. MFCCDim and ChromaDim apply to both the start and end
// vectors of their family.
type Collection struct {
	Tracks    []Track
	MFCCDim   int
	ChromaDim int
}

// Len returns the number of tracks.
func (c Collection) Len() int {
	return len(c.Tracks)
}

// Names returns the track labels in row order.
func (c Collection) Names() []string {
	names := make([]string, len(c.Tracks))
	for i, track := range c.Tracks {
		names[i] = track.Name
	}
	return names
}

// Validate checks dataset-wide invariants: positive dimensions and consistent
// vector lengths on every row. Both loaders enforce this before handing a
// collection to the similarity engine.
func (c Collection) Validate() error {
	if len(c.Tracks) == 0 {
		return nil
	}
	if c.MFCCDim <= 0 || c.ChromaDim <= 0 {
		return fmt.Errorf("vector dimensions must be positive, got mfcc=%d chroma=%d", c.MFCCDim, c.ChromaDim)
	}
	for i, track := range c.Tracks {
		if len(track.MFCCStart) != c.MFCCDim || len(track.MFCCEnd) != c.MFCCDim {
			return fmt.Errorf("track %d (%q): mfcc lengths %d/%d, want %d",
				i, track.Name, len(track.MFCCStart), len(track.MFCCEnd), c.MFCCDim)
		}
		if len(track.ChromaStart) != c.ChromaDim || len(track.ChromaEnd) != c.ChromaDim {
			return fmt.Errorf("track %d (%q): chroma lengths %d/%d, want %d",
				i, track.Name, len(track.ChromaStart), len(track.ChromaEnd), c.ChromaDim)
		}
	}
	return nil
}
