// internal/app/store/agenda/agendastore.go

// Package agendastore provides typed access to the "Current" worksheet.
//
// Reads parse rows into models.AgendaRecord; mutations translate named
// fields back into the fixed positional layout. Row indexes are 1-based and
// count the header as row 1, the same addressing the adapter uses. A row
// index is only valid against the read it came from: any delete (or a week
// close) shifts or removes rows, so callers must re-read rather than reuse
// a stale index.
package agendastore

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/agendahub/internal/app/store/sheetdb"
	"github.com/dalemusser/agendahub/internal/domain/models"
)

// SubmittedAtLayout is the timestamp format stamped on new submissions.
const SubmittedAtLayout = "2006-01-02 15:04"

// Item is an agenda record together with the worksheet row it occupied at
// read time.
type Item struct {
	RowIndex int // 1-based, header is row 1, first data row is 2
	models.AgendaRecord
}

// Store reads and mutates the Current worksheet.
type Store struct {
	tbl sheetdb.RowTable
}

// New creates a store over the Current worksheet handle.
func New(tbl sheetdb.RowTable) *Store {
	return &Store{tbl: tbl}
}

// List returns all data rows in sheet order, header excluded.
func (s *Store) List(ctx context.Context) ([]Item, error) {
	rows, err := s.tbl.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	items := make([]Item, 0, len(rows)-1)
	for i, row := range rows[1:] {
		items = append(items, Item{
			RowIndex:     i + 2,
			AgendaRecord: models.AgendaFromRow(row),
		})
	}
	return items, nil
}

// Get re-reads the worksheet and returns the record at rowIndex. found is
// false when the index no longer points at a data row.
func (s *Store) Get(ctx context.Context, rowIndex int) (Item, bool, error) {
	rows, err := s.tbl.ReadAll(ctx)
	if err != nil {
		return Item{}, false, err
	}
	if rowIndex < 2 || rowIndex > len(rows) {
		return Item{}, false, nil
	}
	return Item{RowIndex: rowIndex, AgendaRecord: models.AgendaFromRow(rows[rowIndex-1])}, true, nil
}

// Append adds the record as a new last row, stamping SubmittedAt if the
// caller left it empty.
func (s *Store) Append(ctx context.Context, rec models.AgendaRecord) error {
	if rec.SubmittedAt == "" {
		rec.SubmittedAt = time.Now().Format(SubmittedAtLayout)
	}
	return s.tbl.AppendRow(ctx, rec.ToRow())
}

// FieldUpdate names the four columns an owner may change after submission.
// Everything else on the row (submitted-at, department, due date, owner,
// pin) is deliberately not expressible here.
type FieldUpdate struct {
	Category string
	Content  string
	Status   string
	Note     string
}

// UpdateFields writes the four editable columns of the given row, one cell
// each, leaving every other column untouched.
func (s *Store) UpdateFields(ctx context.Context, rowIndex int, upd FieldUpdate) error {
	if rowIndex < 2 {
		return fmt.Errorf("%w: row %d is not a data row", sheetdb.ErrWrite, rowIndex)
	}
	cells := []struct {
		col   int
		value string
	}{
		{models.ColCategory, upd.Category},
		{models.ColContent, upd.Content},
		{models.ColStatus, upd.Status},
		{models.ColNote, upd.Note},
	}
	for _, c := range cells {
		if err := s.tbl.UpdateCell(ctx, rowIndex, c.col, c.value); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the row entirely. Subsequent rows shift up by one, which
// invalidates every row index resolved before this call.
func (s *Store) Delete(ctx context.Context, rowIndex int) error {
	if rowIndex < 2 {
		return fmt.Errorf("%w: row %d is not a data row", sheetdb.ErrWrite, rowIndex)
	}
	return s.tbl.DeleteRow(ctx, rowIndex)
}
