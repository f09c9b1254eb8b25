package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"smartmix/internal/dataset"
)

// CrossfadeTrio returns three tracks whose ending vectors line up pairwise
// with another track's starting vectors: Alpha flows into Bravo, Bravo into
// Charlie, and Charlie back into Alpha. The start and end feature matrices
// share column statistics, so standardization preserves the alignment and the
// expected cosine terms stay exact. Callers may mutate the returned slice.
func CrossfadeTrio() []dataset.Track {
	return []dataset.Track{
		{
			Name:        "Alpha (Original Mix).mp3",
			MFCCStart:   []float64{1, 0, 0},
			MFCCEnd:     []float64{0, 1, 0},
			ChromaStart: []float64{1, 0, 0, 0},
			ChromaEnd:   []float64{0, 1, 0, 0},
			TempoStart:  100,
			TempoEnd:    124,
		},
		{
			Name:        "Bravo.mp3",
			MFCCStart:   []float64{0, 1, 0},
			MFCCEnd:     []float64{0, 0, 1},
			ChromaStart: []float64{0, 1, 0, 0},
			ChromaEnd:   []float64{0, 0, 1, 0},
			TempoStart:  140,
			TempoEnd:    124,
		},
		{
			Name:        "Charlie [Extended].mp3",
			MFCCStart:   []float64{0, 0, 1},
			MFCCEnd:     []float64{1, 0, 0},
			ChromaStart: []float64{0, 0, 1, 0},
			ChromaEnd:   []float64{1, 0, 0, 0},
			TempoStart:  124,
			TempoEnd:    100,
		},
	}
}

// Collection assembles the given tracks into a validated collection, taking
// the vector dimensions from the first track.
func Collection(t testing.TB, tracks ...dataset.Track) dataset.Collection {
	t.Helper()

	col := dataset.Collection{Tracks: tracks}
	if len(tracks) > 0 {
		col.MFCCDim = len(tracks[0].MFCCStart)
		col.ChromaDim = len(tracks[0].ChromaStart)
	}
	if err := col.Validate(); err != nil {
		t.Fatalf("collection fixture: %v", err)
	}
	return col
}

// WriteDatasetCSV writes the tracks as a feature CSV in a fresh temp
// directory and returns the file path.
func WriteDatasetCSV(t testing.TB, tracks ...dataset.Track) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "features.csv")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create dataset csv: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(dataset.RequiredColumns); err != nil {
		t.Fatalf("write dataset header: %v", err)
	}
	for _, track := range tracks {
		record := []string{
			track.Name,
			formatVector(track.MFCCStart),
			formatVector(track.MFCCEnd),
			formatVector(track.ChromaStart),
			formatVector(track.ChromaEnd),
			strconv.FormatFloat(track.TempoStart, 'g', -1, 64),
			strconv.FormatFloat(track.TempoEnd, 'g', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			t.Fatalf("write dataset row: %v", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		t.Fatalf("flush dataset csv: %v", err)
	}
	return path
}

func formatVector(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
