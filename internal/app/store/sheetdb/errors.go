// internal/app/store/sheetdb/errors.go
package sheetdb

import "errors"

// Error classes for adapter failures. Callers match these with errors.Is;
// the wrapped cause carries the transport detail.
var (
	// ErrConnection marks failures to reach or resolve the spreadsheet:
	// bad credentials, unknown spreadsheet, unknown worksheet title.
	ErrConnection = errors.New("sheet store connection failed")

	// ErrWrite marks a remote mutation that failed in transit. Writes are
	// not retried here; a multi-step caller may be left partially applied.
	ErrWrite = errors.New("sheet store write failed")
)
