package testutil

import (
	"context"
	"time"

	"github.com/dalemusser/agendahub/internal/domain/models"
)

// TestContext returns a context with a generous deadline for store tests.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// SampleRecord returns a plausible agenda record for the given department,
// with the remaining fields filled with fixed test values.
func SampleRecord(department, pin string) models.AgendaRecord {
	return models.AgendaRecord{
		SubmittedAt: "2026-01-05 09:30",
		Department:  department,
		Category:    models.CategoryGeneralReport,
		Content:     "주간 업무 보고",
		Status:      models.StatusInProgress,
		DueDate:     "2026-01-09",
		Owner:       "홍길동",
		Note:        "",
		Pin:         pin,
	}
}

// SeedCurrent appends the records to a fake Current table, bypassing the
// store layer.
func SeedCurrent(tbl *FakeTable, recs ...models.AgendaRecord) {
	ctx := context.Background()
	for _, rec := range recs {
		_ = tbl.AppendRow(ctx, rec.ToRow())
	}
}
