// internal/app/system/rollover/rollover.go

// Package rollover implements the weekly close: every data row of the
// Current worksheet is moved into History under an operator-chosen batch
// label, then Current is cleared back to its header.
//
// The move is not transactional. The archive append and the clear are two
// independent remote writes; if the append succeeds and the clear fails,
// the rows exist in both worksheets until an operator reconciles them, and
// retrying the close archives them again. That weakness is inherited from
// the tool this replaces and is deliberately preserved (the trusted-operator
// population is tiny and a staging log was judged not worth the machinery);
// the tests pin the behavior down so it stays a known quantity.
package rollover

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/agendahub/internal/app/store/sheetdb"
	"github.com/dalemusser/agendahub/internal/domain/models"
	"go.uber.org/zap"
)

// ClearBound is the addressable range wiped on Current after archiving.
// Rows beyond it are a capacity ceiling the office accepts, not something
// the close detects.
const ClearBound = "A2:Z1000"

// ErrEmptyLabel rejects a close with no batch label. The label is the only
// thing that identifies a batch in History, so it is required.
var ErrEmptyLabel = errors.New("batch label is required")

// Error reports which step of the close failed and carries the cause.
type Error struct {
	Step string // "read", "archive", or "clear"
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("week close failed during %s: %v", e.Step, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Engine performs the weekly close over the two worksheet handles.
//
// The engine trusts its caller: the admin password check and the explicit
// confirmation checkbox are enforced by the admin feature before CloseWeek
// is ever invoked.
type Engine struct {
	current sheetdb.RowTable
	history sheetdb.RowTable
	log     *zap.Logger
}

// New creates an engine over the Current and History worksheet handles.
func New(current, history sheetdb.RowTable, logger *zap.Logger) *Engine {
	return &Engine{current: current, history: history, log: logger}
}

// CloseWeek archives every Current data row under batchLabel and clears
// Current, returning the number of rows archived. A Current holding only
// its header is a no-op returning 0, not an error.
//
// Rows keep the exact order they held in Current; no re-sorting happens
// here (department ordering is a presentation concern in the read paths).
func (e *Engine) CloseWeek(ctx context.Context, batchLabel string) (int, error) {
	if batchLabel == "" {
		return 0, ErrEmptyLabel
	}

	rows, err := e.current.ReadAll(ctx)
	if err != nil {
		return 0, &Error{Step: "read", Err: err}
	}
	if len(rows) <= 1 {
		e.log.Info("week close skipped, no data rows", zap.String("batch_label", batchLabel))
		return 0, nil
	}

	archived := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		archived = append(archived, archiveRow(batchLabel, row))
	}

	if err := e.history.AppendRows(ctx, archived); err != nil {
		return 0, &Error{Step: "archive", Err: err}
	}
	if err := e.current.ClearRange(ctx, ClearBound); err != nil {
		// Rows are now in both worksheets. Surface it; the operator must
		// reconcile by hand before retrying.
		e.log.Error("current sheet clear failed after archive append",
			zap.String("batch_label", batchLabel),
			zap.Int("rows_archived", len(archived)),
			zap.Error(err))
		return 0, &Error{Step: "clear", Err: err}
	}

	e.log.Info("week closed",
		zap.String("batch_label", batchLabel),
		zap.Int("rows_archived", len(archived)))
	return len(archived), nil
}

// archiveRow turns one Current data row into its History form: the row is
// normalized to the Current column count, the trailing pin column dropped,
// and the batch label prepended.
func archiveRow(batchLabel string, row []string) []string {
	norm := make([]string, models.CurrentColumnCount)
	copy(norm, row)

	out := make([]string, 0, models.HistoryColumnCount)
	out = append(out, batchLabel)
	out = append(out, norm[:models.ColPin-1]...)
	return out
}
