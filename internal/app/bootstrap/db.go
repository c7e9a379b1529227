// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/agendahub/internal/app/store/sheetdb"
	"github.com/dalemusser/agendahub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB opens the Google Sheets connection and resolves the two
// worksheet handles. It fails fast: a typo'd spreadsheet ID or a missing
// worksheet title should stop startup, not surface on the first request.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	conn, err := sheetdb.Open(ctx, sheetdb.Config{
		SpreadsheetID:   appCfg.SpreadsheetID,
		CredentialsJSON: appCfg.CredentialsJSON,
		CredentialsFile: appCfg.CredentialsFile,
	}, logger)
	if err != nil {
		return DBDeps{}, fmt.Errorf("opening spreadsheet connection: %w", err)
	}

	current, err := conn.Table(appCfg.CurrentSheet)
	if err != nil {
		return DBDeps{}, fmt.Errorf("resolving worksheet %q: %w", appCfg.CurrentSheet, err)
	}
	history, err := conn.Table(appCfg.HistorySheet)
	if err != nil {
		return DBDeps{}, fmt.Errorf("resolving worksheet %q: %w", appCfg.HistorySheet, err)
	}

	logger.Info("spreadsheet connected",
		zap.String("current_sheet", appCfg.CurrentSheet),
		zap.String("history_sheet", appCfg.HistorySheet))

	return DBDeps{SheetConn: conn, Current: current, History: history}, nil
}

// EnsureSchema writes the header row into any worksheet that is still
// completely empty. Worksheets that already have content are left alone;
// a mismatched header is reported but never rewritten, since row 1 may
// have been adjusted by hand in the spreadsheet UI.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := ensureHeader(ctx, deps.Current, models.CurrentHeader(), appCfg.CurrentSheet, logger); err != nil {
		return err
	}
	return ensureHeader(ctx, deps.History, models.HistoryHeader(), appCfg.HistorySheet, logger)
}

func ensureHeader(ctx context.Context, tbl sheetdb.RowTable, header []string, name string, logger *zap.Logger) error {
	rows, err := tbl.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("reading worksheet %q: %w", name, err)
	}
	if len(rows) == 0 {
		logger.Info("writing header row into empty worksheet", zap.String("worksheet", name))
		if err := tbl.AppendRow(ctx, header); err != nil {
			return fmt.Errorf("writing header to worksheet %q: %w", name, err)
		}
		return nil
	}
	if !headerMatches(rows[0], header) {
		logger.Warn("worksheet header differs from the expected columns",
			zap.String("worksheet", name),
			zap.Strings("found", rows[0]),
			zap.Strings("expected", header))
	}
	return nil
}

func headerMatches(found, want []string) bool {
	if len(found) < len(want) {
		return false
	}
	for i := range want {
		if found[i] != want[i] {
			return false
		}
	}
	return true
}
