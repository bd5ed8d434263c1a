// Package cache persists expensive per-run artifacts: exhaustive-search
// permutation tables and transpiled-circuit results.
//
// Artifacts are gob-encoded blobs in a single LevelDB store, addressed by a
// structured Key. Every call site composes keys through the same canonical
// encoder, so the same logical run can never hide under differently
// formatted keys. A missing or undecodable entry is a cache miss, never a
// failure: callers fall back to recomputation.
package cache

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/op/go-logging"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// Key identifies one cached artifact. Field order in the encoded form is
// fixed: kind, physical qubit count, circuit, architecture, seed.
type Key struct {
	// Kind namespaces the artifact: a search label ("exhaustive") or a
	// layout-strategy name ("random", "LinePlacement", ...).
	Kind string
	// PhysQubits is the physical qubit count of the run.
	PhysQubits int
	// Circuit is the circuit name, e.g. "dj_4".
	Circuit string
	// Arch is the architecture family name, e.g. "line".
	Arch string
	// Seed is the transpiler seed of the run.
	Seed int64
}

// Bytes renders the canonical key encoding.
func (k Key) Bytes() []byte {
	return []byte(fmt.Sprintf("%s|phys=%d|circ=%s|arch=%s|seed=%d",
		k.Kind, k.PhysQubits, k.Circuit, k.Arch, k.Seed))
}

// Store is a LevelDB-backed blob cache. A nil *Store is valid and behaves
// as an always-miss cache, so callers need no cache-enabled branches.
type Store struct {
	db  *leveldb.DB
	log *logging.Logger
}

// Open opens (or creates) the store at path. Opening an unreadable or
// corrupted store is an error; the caller decides whether to run cacheless.
func Open(path string, log *logging.Logger) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}

	return &Store{db: db, log: log}, nil
}

// OpenInMemory returns a store backed by volatile memory, used in tests.
func OpenInMemory(log *logging.Logger) (*Store, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("cache: open in-memory: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}

	return s.db.Close()
}

// Get decodes the artifact under key into value and reports whether it was
// found. Absent and corrupt entries both miss; corruption is logged and the
// stale entry dropped.
func (s *Store) Get(key Key, value any) bool {
	if s == nil {
		return false
	}

	raw, err := s.db.Get(key.Bytes(), nil)
	if err == leveldb.ErrNotFound {
		return false
	}
	if err != nil {
		s.warnf("read of %s failed, recomputing: %v", key.Bytes(), err)
		return false
	}
	if err = gob.NewDecoder(bytes.NewReader(raw)).Decode(value); err != nil {
		s.warnf("entry %s is corrupt, recomputing: %v", key.Bytes(), err)
		_ = s.db.Delete(key.Bytes(), nil)
		return false
	}

	return true
}

// Put stores the artifact under key. The write is a single atomic batch:
// partial tables never land on disk.
func (s *Store) Put(key Key, value any) error {
	if s == nil {
		return nil
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return fmt.Errorf("cache: encode %s: %w", key.Bytes(), err)
	}

	batch := new(leveldb.Batch)
	batch.Put(key.Bytes(), buf.Bytes())
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("cache: write %s: %w", key.Bytes(), err)
	}

	return nil
}

// Delete removes the artifact under key, if present.
func (s *Store) Delete(key Key) error {
	if s == nil {
		return nil
	}

	return s.db.Delete(key.Bytes(), nil)
}

func (s *Store) warnf(format string, args ...any) {
	if s.log != nil {
		s.log.Warningf("cache: "+format, args...)
	}
}
