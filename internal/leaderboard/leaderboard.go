// Package leaderboard persists the top-5 record as a flat binary file of five
// little-endian int32 values with no header.
package leaderboard

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"hyakumasu/internal/session"
)

// FileSize is the exact length of a leaderboard file in bytes.
const FileSize = session.RecordSize * 4

var (
	// ErrNotFound reports that no leaderboard has been saved yet.
	ErrNotFound = errors.New("leaderboard: not found")
	// ErrCorrupt reports a leaderboard file that cannot be trusted.
	ErrCorrupt = errors.New("leaderboard: corrupt")
)

// Store loads and saves the leaderboard.
type Store interface {
	Load() (session.Record, error)
	Save(session.Record) error
}

// File stores the leaderboard at a filesystem path.
type File struct {
	path string
}

// NewFile returns a File store for path.
func NewFile(path string) *File { return &File{path: path} }

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Load reads the record. A missing file yields ErrNotFound; a file of the
// wrong length or holding an unsorted record yields ErrCorrupt.
func (f *File) Load() (session.Record, error) {
	var rec session.Record
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return rec, ErrNotFound
	}
	if err != nil {
		return rec, fmt.Errorf("leaderboard: read %s: %w", f.path, err)
	}
	return Decode(data)
}

// Save overwrites the file with rec.
func (f *File) Save(rec session.Record) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("leaderboard: %w", err)
		}
	}
	if err := os.WriteFile(f.path, Encode(rec), 0o644); err != nil {
		return fmt.Errorf("leaderboard: write %s: %w", f.path, err)
	}
	return nil
}

// Encode serializes rec in order.
func Encode(rec session.Record) []byte {
	var buf bytes.Buffer
	var raw [session.RecordSize]int32
	for i, v := range rec {
		raw[i] = int32(v)
	}
	// Writes into a bytes.Buffer cannot fail.
	_ = binary.Write(&buf, binary.LittleEndian, raw)
	return buf.Bytes()
}

// Decode parses exactly FileSize bytes into a record.
func Decode(data []byte) (session.Record, error) {
	var rec session.Record
	if len(data) != FileSize {
		return rec, fmt.Errorf("%w: %d bytes, want %d", ErrCorrupt, len(data), FileSize)
	}
	var raw [session.RecordSize]int32
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &raw); err != nil {
		return rec, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	for i, v := range raw {
		rec[i] = int(v)
	}
	if !session.Valid(rec) {
		return session.Record{}, fmt.Errorf("%w: %v is not an ascending record", ErrCorrupt, rec)
	}
	return rec, nil
}

// Memory keeps the leaderboard in process.
type Memory struct {
	rec   session.Record
	saved bool
	Saves int
}

// Load returns the last saved record or ErrNotFound.
func (m *Memory) Load() (session.Record, error) {
	if !m.saved {
		return session.Record{}, ErrNotFound
	}
	return m.rec, nil
}

// Save stores rec.
func (m *Memory) Save(rec session.Record) error {
	m.rec = rec
	m.saved = true
	m.Saves++
	return nil
}
