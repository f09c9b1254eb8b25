package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// RequiredColumns lists the columns every feature dataset must provide, in
// reporting order.
var RequiredColumns = []string{
	"filename",
	"mfcc_start",
	"mfcc_end",
	"chroma_start",
	"chroma_end",
	"tempo_start",
	"tempo_end",
}

// LoadCSV reads a feature dataset from the file at path. A missing file
// yields ErrNotFound; schema and cell problems yield SchemaError or
// ParseError respectively.
func LoadCSV(path string) (Collection, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Collection{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Collection{}, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	col, err := ReadCSV(file)
	if err != nil {
		return Collection{}, fmt.Errorf("dataset %s: %w", path, err)
	}
	return col, nil
}

// ReadCSV parses a feature dataset from r. The header is validated before any
// row is parsed; an incomplete schema aborts immediately.
func ReadCSV(r io.Reader) (Collection, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return Collection{}, &SchemaError{Missing: append([]string(nil), RequiredColumns...)}
	}
	if err != nil {
		return Collection{}, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return Collection{}, &SchemaError{Missing: missing}
	}

	var col Collection
	row := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Collection{}, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++

		track := Track{Name: record[index["filename"]]}

		if track.MFCCStart, err = vectorCell(record, index, "mfcc_start", row, &col.MFCCDim); err != nil {
			return Collection{}, err
		}
		if track.MFCCEnd, err = vectorCell(record, index, "mfcc_end", row, &col.MFCCDim); err != nil {
			return Collection{}, err
		}
		if track.ChromaStart, err = vectorCell(record, index, "chroma_start", row, &col.ChromaDim); err != nil {
			return Collection{}, err
		}
		if track.ChromaEnd, err = vectorCell(record, index, "chroma_end", row, &col.ChromaDim); err != nil {
			return Collection{}, err
		}
		if track.TempoStart, err = tempoCell(record, index, "tempo_start", row); err != nil {
			return Collection{}, err
		}
		if track.TempoEnd, err = tempoCell(record, index, "tempo_end", row); err != nil {
			return Collection{}, err
		}

		col.Tracks = append(col.Tracks, track)
	}

	return col, nil
}

// vectorCell parses one float-list cell and enforces the shared dimension of
// its feature family. The first parsed vector of a family sets *dim.
func vectorCell(record []string, index map[string]int, column string, row int, dim *int) ([]float64, error) {
	value := record[index[column]]
	vector, err := parseFloatList(value)
	if err != nil {
		return nil, &ParseError{Row: row, Column: column, Value: value, Err: err}
	}
	if *dim == 0 {
		*dim = len(vector)
	} else if len(vector) != *dim {
		return nil, &ParseError{
			Row:    row,
			Column: column,
			Value:  value,
			Err:    fmt.Errorf("vector length %d, want %d", len(vector), *dim),
		}
	}
	return vector, nil
}

func tempoCell(record []string, index map[string]int, column string, row int) (float64, error) {
	value := record[index[column]]
	tempo, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &ParseError{Row: row, Column: column, Value: value, Err: errors.New("not a number")}
	}
	return tempo, nil
}

// parseFloatList parses "[a, b, c]" into floats. The surrounding brackets are
// optional; an empty list is an error because a feature vector must have at
// least one component.
func parseFloatList(value string) ([]float64, error) {
	trimmed := strings.Trim(strings.TrimSpace(value), "[]")
	if strings.TrimSpace(trimmed) == "" {
		return nil, errors.New("empty vector")
	}
	parts := strings.Split(trimmed, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		number := strings.TrimSpace(part)
		f, err := strconv.ParseFloat(number, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", number)
		}
		out = append(out, f)
	}
	return out, nil
}
