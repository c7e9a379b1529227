// internal/domain/models/columns.go
package models

// Column indexes are 1-based to match the sheet adapter's addressing, where
// row 1 is the header row and column 1 is column A.

// Current worksheet columns, in the fixed wire order.
const (
	ColSubmittedAt = 1
	ColDepartment  = 2
	ColCategory    = 3
	ColContent     = 4
	ColStatus      = 5
	ColDueDate     = 6
	ColOwner       = 7
	ColNote        = 8
	ColPin         = 9

	CurrentColumnCount = 9
)

// History worksheet columns: batch label first, then the Current layout
// without the pin.
const (
	HistColBatchLabel  = 1
	HistColSubmittedAt = 2
	HistColDepartment  = 3
	HistColCategory    = 4
	HistColContent     = 5
	HistColStatus      = 6
	HistColDueDate     = 7
	HistColOwner       = 8
	HistColNote        = 9

	HistoryColumnCount = 9
)

// CurrentHeader returns the header row of the Current worksheet.
func CurrentHeader() []string {
	return []string{"입력일시", "부서명", "구분", "업무내용", "진행상태", "마감기한", "담당자", "비고", "PIN"}
}

// HistoryHeader returns the header row of the History worksheet.
func HistoryHeader() []string {
	return []string{"회차정보", "입력일시", "부서명", "구분", "업무내용", "진행상태", "마감기한", "담당자", "비고"}
}

// ToRow serializes the record into the Current column order.
func (a AgendaRecord) ToRow() []string {
	return []string{
		a.SubmittedAt,
		a.Department,
		a.Category,
		a.Content,
		a.Status,
		a.DueDate,
		a.Owner,
		a.Note,
		a.Pin,
	}
}

// AgendaFromRow parses a Current data row. Short rows (trailing blank cells
// trimmed by the sheet service) are tolerated; missing cells read as "".
func AgendaFromRow(row []string) AgendaRecord {
	return AgendaRecord{
		SubmittedAt: cell(row, ColSubmittedAt),
		Department:  cell(row, ColDepartment),
		Category:    cell(row, ColCategory),
		Content:     cell(row, ColContent),
		Status:      cell(row, ColStatus),
		DueDate:     cell(row, ColDueDate),
		Owner:       cell(row, ColOwner),
		Note:        cell(row, ColNote),
		Pin:         cell(row, ColPin),
	}
}

// ToRow serializes the record into the History column order. The pin never
// appears in History.
func (h ArchivedRecord) ToRow() []string {
	return []string{
		h.BatchLabel,
		h.SubmittedAt,
		h.Department,
		h.Category,
		h.Content,
		h.Status,
		h.DueDate,
		h.Owner,
		h.Note,
	}
}

// ArchivedFromRow parses a History data row.
func ArchivedFromRow(row []string) ArchivedRecord {
	return ArchivedRecord{
		BatchLabel:  cell(row, HistColBatchLabel),
		SubmittedAt: cell(row, HistColSubmittedAt),
		Department:  cell(row, HistColDepartment),
		Category:    cell(row, HistColCategory),
		Content:     cell(row, HistColContent),
		Status:      cell(row, HistColStatus),
		DueDate:     cell(row, HistColDueDate),
		Owner:       cell(row, HistColOwner),
		Note:        cell(row, HistColNote),
	}
}

// cell returns the value at the 1-based column index, or "" past the end.
func cell(row []string, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}
	return row[col-1]
}
