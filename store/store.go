// Package store persists the three ledgers as whole-snapshot JSON files.
// Each ledger is serialized as its full ordered record array on every save;
// there is no incremental format. A missing file on load means a cold start
// with an empty ledger, while an unreadable or corrupt file is a distinct
// StorageError.
//
// Saves are atomic per file: the snapshot is written to a temporary file in
// the same directory and renamed over the previous one.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jimfa07/urban-octo-dollop/ledger"
)

// Snapshot file names inside the data directory.
const (
	DeliveriesFile = "deliveries.json"
	DepositsFile   = "deposits.json"
	DebitNotesFile = "debit_notes.json"
)

// StorageError is a snapshot read or write failure. Absence of a file is
// not a StorageError; corrupt or unreadable data is.
type StorageError struct {
	Op   string // "read", "decode", "write"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Store reads and writes ledger snapshots under a data directory.
type Store struct {
	dir string
	log zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a logger for snapshot I/O events.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// New creates a store rooted at dir.
func New(dir string, opts ...Option) *Store {
	s := &Store{
		dir: dir,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// Files returns the snapshot file paths, whether or not they exist yet.
func (s *Store) Files() []string {
	return []string{
		filepath.Join(s.dir, DeliveriesFile),
		filepath.Join(s.dir, DepositsFile),
		filepath.Join(s.dir, DebitNotesFile),
	}
}

// Load reads the three snapshots into a reconciled Ledgers aggregate seeded
// with the given opening balance. Missing files load as empty ledgers.
func (s *Store) Load(openingBalance decimal.Decimal) (*ledger.Ledgers, error) {
	l := ledger.NewLedgers(openingBalance)

	if err := s.loadFile(DeliveriesFile, l.Deliveries); err != nil {
		return nil, err
	}
	if err := s.loadFile(DepositsFile, l.Deposits); err != nil {
		return nil, err
	}
	if err := s.loadFile(DebitNotesFile, l.Notes); err != nil {
		return nil, err
	}

	// Persisted reconciliation outputs are treated as stale.
	ledger.Reconcile(l)

	s.log.Debug().
		Str("dir", s.dir).
		Int("deliveries", l.Deliveries.Len()).
		Int("deposits", l.Deposits.Len()).
		Int("notes", l.Notes.Len()).
		Msg("snapshots loaded")

	return l, nil
}

// Save writes all three snapshots. The ledgers should be reconciled first
// so the persisted derived fields reflect current state.
func (s *Store) Save(l *ledger.Ledgers) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &StorageError{Op: "write", Path: s.dir, Err: err}
	}

	if err := s.saveFile(DeliveriesFile, l.Deliveries); err != nil {
		return err
	}
	if err := s.saveFile(DepositsFile, l.Deposits); err != nil {
		return err
	}
	if err := s.saveFile(DebitNotesFile, l.Notes); err != nil {
		return err
	}

	s.log.Debug().Str("dir", s.dir).Msg("snapshots saved")
	return nil
}

func (s *Store) loadFile(name string, into json.Unmarshaler) error {
	path := filepath.Join(s.dir, name)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.log.Debug().Str("path", path).Msg("no snapshot, cold start")
		return nil
	}
	if err != nil {
		return &StorageError{Op: "read", Path: path, Err: err}
	}

	if err := into.UnmarshalJSON(raw); err != nil {
		return &StorageError{Op: "decode", Path: path, Err: err}
	}
	return nil
}

func (s *Store) saveFile(name string, from json.Marshaler) error {
	path := filepath.Join(s.dir, name)

	raw, err := json.MarshalIndent(from, "", "  ")
	if err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &StorageError{Op: "write", Path: path, Err: err}
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	return nil
}
