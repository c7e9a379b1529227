package testutil

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/dalemusser/agendahub/internal/app/store/sheetdb"
	"github.com/dalemusser/agendahub/internal/domain/models"
)

// FakeTable is an in-memory sheetdb.RowTable for tests. It mimics the
// remote worksheet closely enough for the store and engine tests: 1-based
// addressing with the header as row 1, order-preserving appends, whole-row
// deletes that shift later rows up, and value-only range clears.
//
// Each mutating operation can be made to fail once or always by setting the
// corresponding error field; this is how the rollover tests inject a
// transport failure between the archive-append and the clear step.
type FakeTable struct {
	mu   sync.Mutex
	rows [][]string

	ReadErr   error
	AppendErr error
	UpdateErr error
	DeleteErr error
	ClearErr  error

	// Calls counts operations by name (ReadAll, AppendRows, ...).
	Calls map[string]int
}

var _ sheetdb.RowTable = (*FakeTable)(nil)

// NewFakeTable builds a table whose first row is the given header.
func NewFakeTable(header []string) *FakeTable {
	return &FakeTable{
		rows:  [][]string{append([]string(nil), header...)},
		Calls: map[string]int{},
	}
}

// NewCurrentTable builds a fake Current worksheet with its header row.
func NewCurrentTable() *FakeTable {
	return NewFakeTable(models.CurrentHeader())
}

// NewHistoryTable builds a fake History worksheet with its header row.
func NewHistoryTable() *FakeTable {
	return NewFakeTable(models.HistoryHeader())
}

func (f *FakeTable) record(op string) {
	if f.Calls == nil {
		f.Calls = map[string]int{}
	}
	f.Calls[op]++
}

// ReadAll returns a deep copy of all rows, header included.
func (f *FakeTable) ReadAll(ctx context.Context) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ReadAll")
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}
	out := make([][]string, len(f.rows))
	for i, row := range f.rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (f *FakeTable) AppendRow(ctx context.Context, values []string) error {
	return f.AppendRows(ctx, [][]string{values})
}

func (f *FakeTable) AppendRows(ctx context.Context, rows [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("AppendRows")
	if f.AppendErr != nil {
		return f.AppendErr
	}
	for _, row := range rows {
		f.rows = append(f.rows, append([]string(nil), row...))
	}
	return nil
}

func (f *FakeTable) UpdateCell(ctx context.Context, row, col int, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateCell")
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	if row < 1 || row > len(f.rows) {
		return fmt.Errorf("%w: row %d out of range", sheetdb.ErrWrite, row)
	}
	r := f.rows[row-1]
	for len(r) < col {
		r = append(r, "")
	}
	r[col-1] = value
	f.rows[row-1] = r
	return nil
}

func (f *FakeTable) DeleteRow(ctx context.Context, row int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteRow")
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	if row < 1 || row > len(f.rows) {
		return fmt.Errorf("%w: row %d out of range", sheetdb.ErrWrite, row)
	}
	f.rows = append(f.rows[:row-1], f.rows[row:]...)
	return nil
}

// ClearRange blanks values in a bounded "A<start>:Z<end>" range, then drops
// the trailing fully-empty rows the way a values read would.
func (f *FakeTable) ClearRange(ctx context.Context, a1Range string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ClearRange")
	if f.ClearErr != nil {
		return f.ClearErr
	}
	start, end, err := parseRowBounds(a1Range)
	if err != nil {
		return err
	}
	for i := start; i <= end && i <= len(f.rows); i++ {
		f.rows[i-1] = make([]string, len(f.rows[i-1]))
	}
	for len(f.rows) > 0 && rowEmpty(f.rows[len(f.rows)-1]) {
		f.rows = f.rows[:len(f.rows)-1]
	}
	return nil
}

// Len returns the current row count, header included.
func (f *FakeTable) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

// Row returns a copy of the 1-based row.
func (f *FakeTable) Row(i int) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.rows[i-1]...)
}

// parseRowBounds extracts the row numbers from a simple two-cell range such
// as "A2:Z1000". Column letters are ignored; the fake clears whole rows.
func parseRowBounds(a1Range string) (int, int, error) {
	parts := strings.SplitN(a1Range, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unsupported range %q", a1Range)
	}
	start, err := trailingNumber(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("unsupported range %q", a1Range)
	}
	end, err := trailingNumber(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("unsupported range %q", a1Range)
	}
	return start, end, nil
}

func trailingNumber(cell string) (int, error) {
	i := 0
	for i < len(cell) && (cell[i] < '0' || cell[i] > '9') {
		i++
	}
	return strconv.Atoi(cell[i:])
}

func rowEmpty(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}
