package history

import (
	"testing"

	"github.com/dalemusser/agendahub/internal/domain/models"
)

func TestSortRecords_CatalogOrder(t *testing.T) {
	recs := []models.ArchivedRecord{
		{BatchLabel: "2026-08-21 회차", Department: "도서관", Content: "서가 정리"},
		{BatchLabel: "2026-08-21 회차", Department: "기획팀", Content: "예산 검토"},
		{BatchLabel: "2026-08-21 회차", Department: "총무팀", Content: "비품 구매"},
	}

	sortRecords(recs)

	want := []string{"기획팀", "총무팀", "도서관"}
	for i, dept := range want {
		if recs[i].Department != dept {
			t.Fatalf("position %d has %q, want %q", i, recs[i].Department, dept)
		}
	}
}

func TestSortRecords_LegacyDepartmentLast(t *testing.T) {
	recs := []models.ArchivedRecord{
		{Department: "구조조정전부서", Content: "이관 업무"},
		{Department: "기획팀", Content: "예산 검토"},
	}

	sortRecords(recs)

	if recs[0].Department != "기획팀" {
		t.Fatalf("legacy department sorted before catalog entry: %q first", recs[0].Department)
	}
}

func TestSortRecords_StableWithinDepartment(t *testing.T) {
	recs := []models.ArchivedRecord{
		{Department: "기획팀", Content: "첫 안건"},
		{Department: "기획팀", Content: "둘째 안건"},
	}

	sortRecords(recs)

	if recs[0].Content != "첫 안건" || recs[1].Content != "둘째 안건" {
		t.Fatal("rows within one department were reordered")
	}
}
