package dataset_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"smartmix/internal/dataset"
)

const validCSV = `filename,mfcc_start,mfcc_end,chroma_start,chroma_end,tempo_start,tempo_end
"Alpha (Original Mix).mp3","[1.0, 2.0, 3.0]","[0.5, -1.5, 2.5]","[0.1, 0.2]","[0.3, 0.4]",120.5,124
Bravo.mp3,"[4.0, 5.0, 6.0]","[-0.5, 0.0, 1.0]","[0.5, 0.6]","[0.7, 0.8]",128,126.25
`

func TestReadCSVParsesTracks(t *testing.T) {
	col, err := dataset.ReadCSV(strings.NewReader(validCSV))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	if col.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", col.Len())
	}
	if col.MFCCDim != 3 || col.ChromaDim != 2 {
		t.Fatalf("dims = %d/%d, want 3/2", col.MFCCDim, col.ChromaDim)
	}

	alpha := col.Tracks[0]
	if alpha.Name != "Alpha (Original Mix).mp3" {
		t.Errorf("name = %q", alpha.Name)
	}
	wantMFCC := []float64{1.0, 2.0, 3.0}
	for i, v := range wantMFCC {
		if alpha.MFCCStart[i] != v {
			t.Errorf("MFCCStart[%d] = %v, want %v", i, alpha.MFCCStart[i], v)
		}
	}
	if alpha.MFCCEnd[1] != -1.5 {
		t.Errorf("MFCCEnd[1] = %v, want -1.5", alpha.MFCCEnd[1])
	}
	if alpha.TempoStart != 120.5 || alpha.TempoEnd != 124 {
		t.Errorf("tempos = %v/%v, want 120.5/124", alpha.TempoStart, alpha.TempoEnd)
	}

	names := col.Names()
	if names[1] != "Bravo.mp3" {
		t.Errorf("Names()[1] = %q, want Bravo.mp3", names[1])
	}

	if err := col.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestReadCSVMissingColumns(t *testing.T) {
	input := `filename,mfcc_start,mfcc_end,tempo_start
a.mp3,"[1]","[2]",100
`
	_, err := dataset.ReadCSV(strings.NewReader(input))
	var schemaErr *dataset.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}

	want := []string{"chroma_start", "chroma_end", "tempo_end"}
	if len(schemaErr.Missing) != len(want) {
		t.Fatalf("Missing = %v, want %v", schemaErr.Missing, want)
	}
	for i, name := range want {
		if schemaErr.Missing[i] != name {
			t.Errorf("Missing[%d] = %q, want %q", i, schemaErr.Missing[i], name)
		}
	}
}

func TestReadCSVEmptyInput(t *testing.T) {
	_, err := dataset.ReadCSV(strings.NewReader(""))
	var schemaErr *dataset.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError for empty input, got %v", err)
	}
	if len(schemaErr.Missing) != len(dataset.RequiredColumns) {
		t.Errorf("Missing = %v, want all required columns", schemaErr.Missing)
	}
}

func TestReadCSVParseErrors(t *testing.T) {
	header := "filename,mfcc_start,mfcc_end,chroma_start,chroma_end,tempo_start,tempo_end\n"

	tests := []struct {
		name       string
		rows       string
		wantRow    int
		wantColumn string
	}{
		{
			name:       "bad float in vector",
			rows:       `a.mp3,"[1.0, oops]","[1.0]","[1.0]","[1.0]",100,100` + "\n",
			wantRow:    1,
			wantColumn: "mfcc_start",
		},
		{
			name:       "empty vector",
			rows:       `a.mp3,"[]","[1.0]","[1.0]","[1.0]",100,100` + "\n",
			wantRow:    1,
			wantColumn: "mfcc_start",
		},
		{
			name: "inconsistent vector length",
			rows: `a.mp3,"[1.0, 2.0]","[3.0, 4.0]","[1.0]","[1.0]",100,100` + "\n" +
				`b.mp3,"[1.0, 2.0, 3.0]","[3.0, 4.0]","[1.0]","[1.0]",100,100` + "\n",
			wantRow:    2,
			wantColumn: "mfcc_start",
		},
		{
			name:       "end length differs from start",
			rows:       `a.mp3,"[1.0, 2.0]","[3.0]","[1.0]","[1.0]",100,100` + "\n",
			wantRow:    1,
			wantColumn: "mfcc_end",
		},
		{
			name:       "bad tempo",
			rows:       `a.mp3,"[1.0]","[1.0]","[1.0]","[1.0]",fast,100` + "\n",
			wantRow:    1,
			wantColumn: "tempo_start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dataset.ReadCSV(strings.NewReader(header + tt.rows))
			var parseErr *dataset.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if parseErr.Row != tt.wantRow {
				t.Errorf("Row = %d, want %d", parseErr.Row, tt.wantRow)
			}
			if parseErr.Column != tt.wantColumn {
				t.Errorf("Column = %q, want %q", parseErr.Column, tt.wantColumn)
			}
			if parseErr.Value == "" {
				t.Error("ParseError should carry the offending value")
			}
		})
	}
}

func TestReadCSVExtraColumnsIgnored(t *testing.T) {
	input := `album,filename,mfcc_start,mfcc_end,chroma_start,chroma_end,tempo_start,tempo_end,year
X,a.mp3,"[1.0]","[1.0]","[1.0]","[1.0]",100,100,1999
`
	col, err := dataset.ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if col.Len() != 1 || col.Tracks[0].Name != "a.mp3" {
		t.Fatalf("unexpected collection: %+v", col)
	}
}

func TestReadCSVShortRow(t *testing.T) {
	input := `filename,mfcc_start,mfcc_end,chroma_start,chroma_end,tempo_start,tempo_end
a.mp3,"[1.0]","[1.0]"
`
	_, err := dataset.ReadCSV(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for short row")
	}
}

func TestReadCSVUnbracketedVectors(t *testing.T) {
	input := `filename,mfcc_start,mfcc_end,chroma_start,chroma_end,tempo_start,tempo_end
a.mp3,"1.0, 2.0","3.0, 4.0","[0.5]","[0.6]",100,100
`
	col, err := dataset.ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if col.MFCCDim != 2 || col.Tracks[0].MFCCEnd[1] != 4.0 {
		t.Fatalf("unexpected parse: %+v", col.Tracks[0])
	}
}

func TestLoadCSVNotFound(t *testing.T) {
	_, err := dataset.LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, dataset.ErrNotFound) {
		t.Fatalf("expected dataset.ErrNotFound, got %v", err)
	}
}

func TestLoadCSVFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.csv")
	if err := os.WriteFile(path, []byte(validCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	col, err := dataset.LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if col.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", col.Len())
	}
}

func TestCollectionValidate(t *testing.T) {
	good := dataset.Collection{
		Tracks: []dataset.Track{{
			Name:        "a",
			MFCCStart:   []float64{1, 2},
			MFCCEnd:     []float64{3, 4},
			ChromaStart: []float64{5},
			ChromaEnd:   []float64{6},
		}},
		MFCCDim:   2,
		ChromaDim: 1,
	}
	if err := good.Validate(); err != nil {
		t.Errorf("valid collection rejected: %v", err)
	}

	bad := good
	bad.MFCCDim = 3
	if err := bad.Validate(); err == nil {
		t.Error("expected error for mismatched mfcc dimension")
	}

	var empty dataset.Collection
	if err := empty.Validate(); err != nil {
		t.Errorf("empty collection should validate: %v", err)
	}
}
