// internal/app/store/sheetdb/table.go
package sheetdb

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// RowTable is the adapter surface the typed stores build on. *Table is the
// live implementation; tests substitute an in-memory fake.
//
// Row and column indexes are 1-based, counting the header as row 1, to match
// how the spreadsheet itself is addressed.
type RowTable interface {
	ReadAll(ctx context.Context) ([][]string, error)
	AppendRow(ctx context.Context, values []string) error
	AppendRows(ctx context.Context, rows [][]string) error
	UpdateCell(ctx context.Context, row, col int, value string) error
	DeleteRow(ctx context.Context, row int) error
	ClearRange(ctx context.Context, a1Range string) error
}

// Table is a handle to one worksheet of the opened spreadsheet.
type Table struct {
	conn    *Conn
	title   string
	sheetID int64
}

// ReadAll returns every row of the worksheet, header included, with all
// values rendered as strings. Trailing blank cells may be absent from a row.
func (t *Table) ReadAll(ctx context.Context) ([][]string, error) {
	resp, err := t.conn.svc.Spreadsheets.Values.
		Get(t.conn.spreadsheetID, quoteTitle(t.title)).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %v", ErrConnection, t.title, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, v := range raw {
			row[i] = cellString(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AppendRow appends one row after the last non-empty row.
func (t *Table) AppendRow(ctx context.Context, values []string) error {
	return t.AppendRows(ctx, [][]string{values})
}

// AppendRows appends the rows in order as one batch.
func (t *Table) AppendRows(ctx context.Context, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	vr := &sheets.ValueRange{Values: toInterfaceRows(rows)}
	_, err := t.conn.svc.Spreadsheets.Values.
		Append(t.conn.spreadsheetID, quoteTitle(t.title), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: appending %d row(s) to %q: %v", ErrWrite, len(rows), t.title, err)
	}
	return nil
}

// UpdateCell writes one cell. row 1 is the header row; col 1 is column A.
func (t *Table) UpdateCell(ctx context.Context, row, col int, value string) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("%w: cell (%d,%d) out of range", ErrWrite, row, col)
	}
	ref := fmt.Sprintf("%s!%s%d", quoteTitle(t.title), columnLetter(col), row)
	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err := t.conn.svc.Spreadsheets.Values.
		Update(t.conn.spreadsheetID, ref, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: updating %s: %v", ErrWrite, ref, err)
	}
	return nil
}

// DeleteRow removes the whole row from the worksheet. Every row below it
// shifts up by one, so any row index resolved before this call is stale.
func (t *Table) DeleteRow(ctx context.Context, row int) error {
	if row < 1 {
		return fmt.Errorf("%w: row %d out of range", ErrWrite, row)
	}
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    t.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(row - 1),
					EndIndex:   int64(row),
				},
			},
		}},
	}
	_, err := t.conn.svc.Spreadsheets.
		BatchUpdate(t.conn.spreadsheetID, req).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: deleting row %d of %q: %v", ErrWrite, row, t.title, err)
	}
	return nil
}

// ClearRange blanks the values in the given A1 range without removing rows,
// columns, or the header.
func (t *Table) ClearRange(ctx context.Context, a1Range string) error {
	ref := fmt.Sprintf("%s!%s", quoteTitle(t.title), a1Range)
	_, err := t.conn.svc.Spreadsheets.Values.
		Clear(t.conn.spreadsheetID, ref, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: clearing %s: %v", ErrWrite, ref, err)
	}
	return nil
}

// quoteTitle wraps a worksheet title for use in A1 notation. Titles with
// spaces or non-ASCII characters must be quoted.
func quoteTitle(title string) string {
	return "'" + title + "'"
}

// columnLetter converts a 1-based column index to its A1 letter form
// (1 -> A, 26 -> Z, 27 -> AA).
func columnLetter(col int) string {
	s := ""
	for col > 0 {
		col--
		s = string(rune('A'+col%26)) + s
		col /= 26
	}
	return s
}

func cellString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func toInterfaceRows(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		vals := make([]interface{}, len(row))
		for j, v := range row {
			vals[j] = v
		}
		out[i] = vals
	}
	return out
}
