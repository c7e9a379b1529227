package archivestore_test

import (
	"context"
	"testing"

	archivestore "github.com/dalemusser/agendahub/internal/app/store/archive"
	"github.com/dalemusser/agendahub/internal/domain/models"
	"github.com/dalemusser/agendahub/internal/testutil"
)

func seedHistory(t *testing.T, tbl *testutil.FakeTable, recs ...models.ArchivedRecord) {
	t.Helper()
	for _, rec := range recs {
		if err := tbl.AppendRow(context.Background(), rec.ToRow()); err != nil {
			t.Fatalf("seed append failed: %v", err)
		}
	}
}

func archived(label, dept string) models.ArchivedRecord {
	return models.ArchivedRecord{
		BatchLabel:  label,
		SubmittedAt: "2026-01-05 09:30",
		Department:  dept,
		Category:    models.CategoryGeneralReport,
		Content:     "보고",
		Status:      models.StatusDone,
		DueDate:     "2026-01-09",
		Owner:       "담당자",
	}
}

func TestList_Empty(t *testing.T) {
	store := archivestore.New(testutil.NewHistoryTable())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	recs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty history, got %d rows", len(recs))
	}
}

func TestBatches_FirstSeenOrder(t *testing.T) {
	tbl := testutil.NewHistoryTable()
	seedHistory(t, tbl,
		archived("2026-01 W1", "기획팀"),
		archived("2026-01 W1", "도서관"),
		archived("2026-01 W2", "기획팀"),
		archived("2026-01 W1", "총무팀"),
	)
	store := archivestore.New(tbl)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	labels, err := store.Batches(ctx)
	if err != nil {
		t.Fatalf("Batches failed: %v", err)
	}
	want := []string{"2026-01 W1", "2026-01 W2"}
	if len(labels) != len(want) {
		t.Fatalf("labels: got %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("labels: got %v, want %v", labels, want)
		}
	}
}

func TestListBatch(t *testing.T) {
	tbl := testutil.NewHistoryTable()
	seedHistory(t, tbl,
		archived("2026-01 W1", "기획팀"),
		archived("2026-01 W2", "도서관"),
		archived("2026-01 W1", "총무팀"),
	)
	store := archivestore.New(tbl)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	recs, err := store.ListBatch(ctx, "2026-01 W1")
	if err != nil {
		t.Fatalf("ListBatch failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(recs))
	}
	if recs[0].Department != "기획팀" || recs[1].Department != "총무팀" {
		t.Errorf("rows out of order: %v, %v", recs[0].Department, recs[1].Department)
	}
}
