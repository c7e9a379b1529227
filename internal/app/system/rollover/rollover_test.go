package rollover_test

import (
	"errors"
	"testing"

	archivestore "github.com/dalemusser/agendahub/internal/app/store/archive"
	"github.com/dalemusser/agendahub/internal/app/store/sheetdb"
	"github.com/dalemusser/agendahub/internal/app/system/rollover"
	"github.com/dalemusser/agendahub/internal/domain/models"
	"github.com/dalemusser/agendahub/internal/testutil"
	"go.uber.org/zap"
)

func newEngine(cur, hist *testutil.FakeTable) *rollover.Engine {
	return rollover.New(cur, hist, zap.NewNop())
}

func TestCloseWeek_EmptyLabel(t *testing.T) {
	cur := testutil.NewCurrentTable()
	hist := testutil.NewHistoryTable()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := newEngine(cur, hist).CloseWeek(ctx, "")
	if !errors.Is(err, rollover.ErrEmptyLabel) {
		t.Fatalf("expected ErrEmptyLabel, got %v", err)
	}
	if cur.Calls["AppendRows"] != 0 && hist.Calls["AppendRows"] != 0 {
		t.Error("no writes expected on validation failure")
	}
}

func TestCloseWeek_EmptyCurrent(t *testing.T) {
	cur := testutil.NewCurrentTable()
	hist := testutil.NewHistoryTable()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	n, err := newEngine(cur, hist).CloseWeek(ctx, "2026-01 W1")
	if err != nil {
		t.Fatalf("CloseWeek failed: %v", err)
	}
	if n != 0 {
		t.Errorf("archived count: got %d, want 0", n)
	}
	if cur.Len() != 1 || hist.Len() != 1 {
		t.Error("both tables should be untouched")
	}
	if hist.Calls["AppendRows"] != 0 {
		t.Error("no append expected for an empty week")
	}
	if cur.Calls["ClearRange"] != 0 {
		t.Error("no clear expected for an empty week")
	}
}

func TestCloseWeek_ArchivesAndClears(t *testing.T) {
	cur := testutil.NewCurrentTable()
	hist := testutil.NewHistoryTable()
	testutil.SeedCurrent(cur,
		testutil.SampleRecord("기획팀", "1111"),
		testutil.SampleRecord("총무팀", "2222"),
	)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	n, err := newEngine(cur, hist).CloseWeek(ctx, "2026-01 W1")
	if err != nil {
		t.Fatalf("CloseWeek failed: %v", err)
	}
	if n != 2 {
		t.Errorf("archived count: got %d, want 2", n)
	}

	// Current keeps only its header.
	if cur.Len() != 1 {
		t.Errorf("current rows after close: got %d, want 1 (header)", cur.Len())
	}

	// History gained two rows, label prefixed, pin gone, order preserved.
	recs, err := archivestore.New(hist).List(ctx)
	if err != nil {
		t.Fatalf("history read failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("history rows: got %d, want 2", len(recs))
	}
	if recs[0].BatchLabel != "2026-01 W1" || recs[1].BatchLabel != "2026-01 W1" {
		t.Errorf("batch labels: %q, %q", recs[0].BatchLabel, recs[1].BatchLabel)
	}
	if recs[0].Department != "기획팀" || recs[1].Department != "총무팀" {
		t.Errorf("order not preserved: %q, %q", recs[0].Department, recs[1].Department)
	}
	for i := 1; i <= 2; i++ {
		row := hist.Row(i + 1)
		if len(row) != models.HistoryColumnCount {
			t.Errorf("history row %d width: got %d, want %d", i, len(row), models.HistoryColumnCount)
		}
		for _, v := range row {
			if v == "1111" || v == "2222" {
				t.Errorf("pin leaked into history row %d: %v", i, row)
			}
		}
	}
}

func TestCloseWeek_SecondCloseIsNoop(t *testing.T) {
	cur := testutil.NewCurrentTable()
	hist := testutil.NewHistoryTable()
	testutil.SeedCurrent(cur, testutil.SampleRecord("도서관", "9999"))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	eng := newEngine(cur, hist)
	if _, err := eng.CloseWeek(ctx, "W1"); err != nil {
		t.Fatalf("first close failed: %v", err)
	}
	n, err := eng.CloseWeek(ctx, "W1")
	if err != nil {
		t.Fatalf("second close failed: %v", err)
	}
	if n != 0 {
		t.Errorf("second close archived %d rows, want 0", n)
	}
	if got := hist.Len() - 1; got != 1 {
		t.Errorf("history data rows: got %d, want 1 (no duplication)", got)
	}
}

func TestCloseWeek_ReadFailure(t *testing.T) {
	cur := testutil.NewCurrentTable()
	cur.ReadErr = sheetdb.ErrConnection
	hist := testutil.NewHistoryTable()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := newEngine(cur, hist).CloseWeek(ctx, "W1")
	var rerr *rollover.Error
	if !errors.As(err, &rerr) || rerr.Step != "read" {
		t.Fatalf("expected read-step error, got %v", err)
	}
	if !errors.Is(err, sheetdb.ErrConnection) {
		t.Error("cause should be preserved through the wrap")
	}
}

// TestCloseWeek_ClearFailureThenRetryDuplicates pins down the documented
// gap: when the clear fails after the archive append succeeded, the rows
// exist in both worksheets, and retrying the whole close archives them a
// second time. This is the current, accepted behavior; if this test starts
// failing because retries stopped duplicating, the close has become
// transactional and this test should be rewritten, not patched.
func TestCloseWeek_ClearFailureThenRetryDuplicates(t *testing.T) {
	cur := testutil.NewCurrentTable()
	hist := testutil.NewHistoryTable()
	testutil.SeedCurrent(cur, testutil.SampleRecord("총무팀", "4321"))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	eng := newEngine(cur, hist)

	cur.ClearErr = sheetdb.ErrWrite
	_, err := eng.CloseWeek(ctx, "W1")
	var rerr *rollover.Error
	if !errors.As(err, &rerr) || rerr.Step != "clear" {
		t.Fatalf("expected clear-step error, got %v", err)
	}

	// The row is now in both worksheets.
	if got := cur.Len() - 1; got != 1 {
		t.Fatalf("current data rows after failed clear: got %d, want 1", got)
	}
	if got := hist.Len() - 1; got != 1 {
		t.Fatalf("history data rows after failed clear: got %d, want 1", got)
	}

	// Operator retries the whole close once the transport recovers.
	cur.ClearErr = nil
	n, err := eng.CloseWeek(ctx, "W1")
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if n != 1 {
		t.Errorf("retry archived %d rows, want 1", n)
	}

	// The already-archived row was archived again: duplication, by design.
	if got := hist.Len() - 1; got != 2 {
		t.Errorf("history data rows after retry: got %d, want 2 (duplicated)", got)
	}
	if got := cur.Len(); got != 1 {
		t.Errorf("current rows after retry: got %d, want 1 (header only)", got)
	}
}

func TestCloseWeek_ShortRowsNormalized(t *testing.T) {
	cur := testutil.NewCurrentTable()
	hist := testutil.NewHistoryTable()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// A row with trailing blanks trimmed, as the sheet service returns them.
	if err := cur.AppendRow(ctx, []string{"2026-01-05 09:30", "기획팀", models.CategoryGeneralReport, "보고"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	n, err := newEngine(cur, hist).CloseWeek(ctx, "W1")
	if err != nil {
		t.Fatalf("CloseWeek failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("archived count: got %d, want 1", n)
	}
	row := hist.Row(2)
	if len(row) != models.HistoryColumnCount {
		t.Errorf("history row width: got %d, want %d", len(row), models.HistoryColumnCount)
	}
	if row[0] != "W1" || row[2] != "기획팀" {
		t.Errorf("unexpected history row: %v", row)
	}
}
