package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dannyphamv/barcode-printer/internal/model"
)

const ledgerFileName = "print_history.csv"

// header is the first line of every ledger file
var header = []string{"barcode", "date time printed"}

// Ledger owns the print history file. It assumes a single process and a
// single writer; there is no file locking.
type Ledger struct {
	path string
}

// NewLedger creates a ledger backed by print_history.csv under appDataDir
func NewLedger(appDataDir string) *Ledger {
	return &Ledger{path: filepath.Join(appDataDir, ledgerFileName)}
}

// Path returns the file path used by this ledger
func (l *Ledger) Path() string { return l.path }

// EnsureInitialized creates the ledger file with its header row when absent.
// Calling it again is a no-op. An existing zero-byte file is repaired by
// writing the header; any other existing content is trusted as-is.
func (l *Ledger) EnsureInitialized() error {
	info, err := os.Stat(l.path)
	if err == nil && info.Size() > 0 {
		return nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat history ledger: %w", err)
	}
	return l.writeHeaderOnly()
}

// Append records one printed barcode with its print time. The header row is
// written first if the file does not exist yet.
func (l *Ledger) Append(barcodeValue string, when time.Time) error {
	writeHeader := false
	if _, err := os.Stat(l.path); errors.Is(err, os.ErrNotExist) {
		writeHeader = true
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open history ledger: %w", err)
	}

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(header); err != nil {
			f.Close()
			return fmt.Errorf("write ledger header: %w", err)
		}
	}
	if err := w.Write([]string{barcodeValue, model.FormatTimestamp(when)}); err != nil {
		f.Close()
		return fmt.Errorf("write ledger record: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush history ledger: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close history ledger: %w", err)
	}
	return nil
}

// ReadAll returns every record in file order. A missing file reads as empty;
// callers decide on ordering.
func (l *Ledger) ReadAll() ([]model.HistoryRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history ledger: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse history ledger: %w", err)
	}

	var records []model.HistoryRecord
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}
		printedAt, err := model.ParseTimestamp(row[1])
		if err != nil {
			// Keep the record visible even when its timestamp is mangled.
			printedAt = time.Time{}
		}
		records = append(records, model.HistoryRecord{Barcode: row[0], PrintedAt: printedAt})
	}
	return records, nil
}

// Clear truncates the ledger back to just its header row, irreversibly
// discarding all records.
func (l *Ledger) Clear() error {
	return l.writeHeaderOnly()
}

func (l *Ledger) writeHeaderOnly() error {
	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("create history ledger: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write ledger header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush history ledger: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close history ledger: %w", err)
	}
	return nil
}

// SortedNewestFirst returns a copy of records ordered most recent first.
// Ordering compares the parsed timestamps, not the display strings: lexical
// comparison of MM/DD/YYYY text breaks across month and year boundaries.
func SortedNewestFirst(records []model.HistoryRecord) []model.HistoryRecord {
	sorted := make([]model.HistoryRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PrintedAt.After(sorted[j].PrintedAt)
	})
	return sorted
}
