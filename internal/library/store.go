package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"
	_ "modernc.org/sqlite"

	"smartmix/internal/config"
	"smartmix/internal/dataset"
)

// ErrImportLocked indicates another process is importing into the same
// library right now.
var ErrImportLocked = errors.New("library import already in progress")

// Store manages track persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Entry is one stored track as shown by listings.
type Entry struct {
	ID         int64
	Name       string
	TempoStart float64
	TempoEnd   float64
	ImportedAt time.Time
}

const trackColumns = "name, mfcc_start, mfcc_end, chroma_start, chroma_end, tempo_start, tempo_end"

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

// Open initializes or connects to the library database at the configured
// path, creating the parent directory when needed.
func Open(cfg *config.Config) (*Store, error) {
	path := cfg.Paths.LibraryPath
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create library directory: %w", err)
	}
	if err := unix.Access(dir, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return nil, fmt.Errorf("library directory %s not accessible: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Import replaces the library contents with the tracks of col inside one
// transaction and reports how many tracks were written. An exclusive file
// lock next to the database serializes concurrent imports.
func (s *Store) Import(ctx context.Context, col dataset.Collection) (int, error) {
	ctx = ensureContext(ctx)
	if err := col.Validate(); err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}

	lock := flock.New(s.path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return 0, fmt.Errorf("acquire import lock: %w", err)
	}
	if !locked {
		return 0, ErrImportLocked
	}
	defer func() { _ = lock.Unlock() }()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tracks"); err != nil {
		return 0, fmt.Errorf("clear existing tracks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tracks (
		name, mfcc_start, mfcc_end, chroma_start, chroma_end,
		tempo_start, tempo_end, imported_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	importedAt := time.Now().UTC().Format(time.RFC3339Nano)
	for _, track := range col.Tracks {
		cells, err := encodeTrackVectors(track)
		if err != nil {
			return 0, fmt.Errorf("encode track %q: %w", track.Name, err)
		}
		if _, err := stmt.ExecContext(ctx,
			track.Name,
			cells.mfccStart, cells.mfccEnd, cells.chromaStart, cells.chromaEnd,
			track.TempoStart, track.TempoEnd, importedAt,
		); err != nil {
			return 0, fmt.Errorf("insert track %q: %w", track.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return len(col.Tracks), nil
}

// Collection loads every stored track in import order.
func (s *Store) Collection(ctx context.Context) (dataset.Collection, error) {
	ctx = ensureContext(ctx)

	rows, err := s.db.QueryContext(ctx, "SELECT "+trackColumns+" FROM tracks ORDER BY id")
	if err != nil {
		return dataset.Collection{}, fmt.Errorf("query tracks: %w", err)
	}
	defer rows.Close()

	var col dataset.Collection
	for rows.Next() {
		track, err := scanTrack(rows)
		if err != nil {
			return dataset.Collection{}, err
		}
		col.Tracks = append(col.Tracks, track)
	}
	if err := rows.Err(); err != nil {
		return dataset.Collection{}, fmt.Errorf("iterate tracks: %w", err)
	}

	if len(col.Tracks) > 0 {
		col.MFCCDim = len(col.Tracks[0].MFCCStart)
		col.ChromaDim = len(col.Tracks[0].ChromaStart)
	}
	if err := col.Validate(); err != nil {
		return dataset.Collection{}, fmt.Errorf("library %s: %w", s.path, err)
	}
	return col, nil
}

// List returns a summary row per stored track in import order.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	ctx = ensureContext(ctx)

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, tempo_start, tempo_end, imported_at FROM tracks ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry       Entry
			importedRaw string
		)
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.TempoStart, &entry.TempoEnd, &importedRaw); err != nil {
			return nil, fmt.Errorf("scan track row: %w", err)
		}
		if imported, err := time.Parse(time.RFC3339Nano, importedRaw); err == nil {
			entry.ImportedAt = imported
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Count reports how many tracks are stored.
func (s *Store) Count(ctx context.Context) (int, error) {
	ctx = ensureContext(ctx)

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM tracks").Scan(&count); err != nil {
		return 0, fmt.Errorf("count tracks: %w", err)
	}
	return count, nil
}

// Clear removes every stored track.
func (s *Store) Clear(ctx context.Context) error {
	ctx = ensureContext(ctx)

	if _, err := s.db.ExecContext(ctx, "DELETE FROM tracks"); err != nil {
		return fmt.Errorf("clear tracks: %w", err)
	}
	return nil
}

type vectorCells struct {
	mfccStart   string
	mfccEnd     string
	chromaStart string
	chromaEnd   string
}

func encodeTrackVectors(track dataset.Track) (vectorCells, error) {
	var (
		cells vectorCells
		err   error
	)
	if cells.mfccStart, err = encodeVector(track.MFCCStart); err != nil {
		return vectorCells{}, err
	}
	if cells.mfccEnd, err = encodeVector(track.MFCCEnd); err != nil {
		return vectorCells{}, err
	}
	if cells.chromaStart, err = encodeVector(track.ChromaStart); err != nil {
		return vectorCells{}, err
	}
	if cells.chromaEnd, err = encodeVector(track.ChromaEnd); err != nil {
		return vectorCells{}, err
	}
	return cells, nil
}

func encodeVector(values []float64) (string, error) {
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func scanTrack(scanner interface{ Scan(dest ...any) error }) (dataset.Track, error) {
	var (
		track       dataset.Track
		mfccStart   string
		mfccEnd     string
		chromaStart string
		chromaEnd   string
	)
	if err := scanner.Scan(
		&track.Name,
		&mfccStart,
		&mfccEnd,
		&chromaStart,
		&chromaEnd,
		&track.TempoStart,
		&track.TempoEnd,
	); err != nil {
		return dataset.Track{}, fmt.Errorf("scan track: %w", err)
	}

	var err error
	if track.MFCCStart, err = decodeVector(mfccStart); err != nil {
		return dataset.Track{}, fmt.Errorf("decode mfcc_start for %q: %w", track.Name, err)
	}
	if track.MFCCEnd, err = decodeVector(mfccEnd); err != nil {
		return dataset.Track{}, fmt.Errorf("decode mfcc_end for %q: %w", track.Name, err)
	}
	if track.ChromaStart, err = decodeVector(chromaStart); err != nil {
		return dataset.Track{}, fmt.Errorf("decode chroma_start for %q: %w", track.Name, err)
	}
	if track.ChromaEnd, err = decodeVector(chromaEnd); err != nil {
		return dataset.Track{}, fmt.Errorf("decode chroma_end for %q: %w", track.Name, err)
	}
	return track, nil
}

func decodeVector(cell string) ([]float64, error) {
	var values []float64
	if err := json.Unmarshal([]byte(cell), &values); err != nil {
		return nil, err
	}
	return values, nil
}
