// internal/domain/models/agenda.go
package models

// AgendaRecord represents one data row in the "Current" worksheet: a single
// agenda item submitted by a department for the active reporting week.
//
// The worksheet is positional. Column order is a wire contract with the
// shared spreadsheet and must match CurrentHeader exactly; every translation
// between field names and column indexes lives in this package so the layout
// cannot drift silently between readers and writers.
type AgendaRecord struct {
	SubmittedAt string // "2006-01-02 15:04", stamped at submission
	Department  string // one of the department catalog names (legacy values allowed on read)
	Category    string // CategoryMajorIssue, CategoryGeneralReport, or CategoryCooperation
	Content     string
	Status      string // StatusInProgress, StatusDone, StatusDelayed, or StatusPlanned
	DueDate     string // "2006-01-02"
	Owner       string
	Note        string

	// Pin is the write-once per-record secret set at submission. It is never
	// rendered back to any view; it exists only to authorize a later edit or
	// delete of this specific row.
	Pin string
}

// ArchivedRecord represents one row in the "History" worksheet: an agenda
// item moved there by a weekly close. It is an AgendaRecord prefixed with the
// batch label of the close that archived it, with the pin stripped.
// Archived rows are immutable once written.
type ArchivedRecord struct {
	BatchLabel  string // operator-chosen name for the close, e.g. "2026-01-08 정기회의"
	SubmittedAt string
	Department  string
	Category    string
	Content     string
	Status      string
	DueDate     string
	Owner       string
	Note        string
}

// Category values as stored in the sheet. The Korean strings are the wire
// values the office's spreadsheet has always used.
const (
	CategoryMajorIssue    = "주요현안" // major issue
	CategoryGeneralReport = "일반보고" // general report
	CategoryCooperation   = "협조요청" // cooperation request
)

// Status values as stored in the sheet.
const (
	StatusInProgress = "진행중" // in progress
	StatusDone       = "완료"  // done
	StatusDelayed    = "지연"  // delayed
	StatusPlanned    = "예정"  // planned
)

// Categories lists the valid category values in form display order.
func Categories() []string {
	return []string{CategoryMajorIssue, CategoryGeneralReport, CategoryCooperation}
}

// Statuses lists the valid status values in form display order.
func Statuses() []string {
	return []string{StatusInProgress, StatusDone, StatusDelayed, StatusPlanned}
}

// IsValidCategory reports whether v is one of the fixed category values.
func IsValidCategory(v string) bool {
	return v == CategoryMajorIssue || v == CategoryGeneralReport || v == CategoryCooperation
}

// IsValidStatus reports whether v is one of the fixed status values.
func IsValidStatus(v string) bool {
	return v == StatusInProgress || v == StatusDone || v == StatusDelayed || v == StatusPlanned
}
