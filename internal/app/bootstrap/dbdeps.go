// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/agendahub/internal/app/store/sheetdb"
)

// DBDeps holds the spreadsheet backend dependencies for the app: the
// authenticated connection and the two worksheet handles everything else
// is built from.
type DBDeps struct {
	SheetConn *sheetdb.Conn
	Current   sheetdb.RowTable
	History   sheetdb.RowTable
}
