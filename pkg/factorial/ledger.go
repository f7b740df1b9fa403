package factorial

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"sync"
)

// DefaultLedgerFile is the CSV file results are appended to.
const DefaultLedgerFile = "xvalue.csv"

// Entry is one ledger row: an input and the decimal string of its factorial.
type Entry struct {
	X     int    `json:"x"`
	Value string `json:"value"`
}

// Ledger appends x,x! rows to a CSV file. The file is created on first write
// and never truncated. Safe for concurrent use within one process.
type Ledger struct {
	path string
	mu   sync.Mutex
}

// NewLedger returns a ledger backed by path.
func NewLedger(path string) *Ledger {
	if path == "" {
		path = DefaultLedgerFile
	}
	return &Ledger{path: path}
}

// Path returns the backing file.
func (l *Ledger) Path() string { return l.path }

// Append writes one row.
func (l *Ledger) Append(x int, value *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{strconv.Itoa(x), value.String()}); err != nil {
		return fmt.Errorf("write ledger row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush ledger: %w", err)
	}
	return nil
}

// Record computes x! and appends it.
func (l *Ledger) Record(x int) (*big.Int, error) {
	v, err := Compute(x)
	if err != nil {
		return nil, err
	}
	if err := l.Append(x, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Entries reads every row. A missing file is an empty ledger.
func (l *Ledger) Entries() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	var out []Entry
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read ledger: %w", err)
		}
		x, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("read ledger: bad input column %q: %w", rec[0], err)
		}
		out = append(out, Entry{X: x, Value: rec[1]})
	}
}
