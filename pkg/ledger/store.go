package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shunichi-ikebuchi/file-manager/pkg/pathutil"
)

// Store reads and writes the ledger file.
type Store struct {
	path string
	now  func() time.Time
}

// NewStore creates a Store for the ledger file at path.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Path returns the ledger file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the ledger file. The returned record is always usable: a
// missing file yields the zero state with a nil notice, and an unreadable
// or unparseable file yields the zero state with a non-nil notice for the
// caller to display. A broken file is not touched until the next Save
// replaces it.
func (s *Store) Load() (rec Record, notice error) {
	empty := Record{Balance: decimal.Zero, Purchases: []Purchase{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return empty, nil
		}
		return empty, fmt.Errorf("failed to read ledger %s: %w", s.path, err)
	}

	if err := json.Unmarshal(data, &rec); err != nil {
		return empty, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	if rec.Purchases == nil {
		rec.Purchases = []Purchase{}
	}

	return rec, nil
}

// Save replaces the ledger file with balance and purchases, stamping
// last_updated with the current time.
func (s *Store) Save(balance decimal.Decimal, purchases []Purchase) error {
	if purchases == nil {
		purchases = []Purchase{}
	}
	rec := Record{
		Balance:     balance,
		Purchases:   purchases,
		LastUpdated: s.now().Format(time.RFC3339),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return &SaveError{Path: s.path, Err: err}
	}

	if err := pathutil.EnsureParentDir(s.path); err != nil {
		return &SaveError{Path: s.path, Err: err}
	}
	if err := pathutil.WriteFileAtomic(s.path, buf.Bytes(), 0644); err != nil {
		return &SaveError{Path: s.path, Err: err}
	}

	return nil
}
