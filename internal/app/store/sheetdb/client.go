// internal/app/store/sheetdb/client.go

// Package sheetdb is the record store adapter: it opens named worksheets of
// one shared Google spreadsheet and performs row-level reads and mutations.
//
// Every operation is a synchronous remote call with no local cache, so each
// read reflects the spreadsheet's state at call time and two reads in the
// same logical operation may observe different states. The connection handle
// itself is built once at startup (bootstrap.ConnectDB) and reused for the
// life of the process; there is no explicit close.
package sheetdb

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Config carries everything needed to reach the spreadsheet.
type Config struct {
	SpreadsheetID string

	// CredentialsJSON is the primary credential source: the service-account
	// key inlined into configuration (the deployed path).
	CredentialsJSON string

	// CredentialsFile is the secondary source: a key file on disk (the local
	// development path). Tried only when the primary is absent or rejected.
	CredentialsFile string
}

// Conn is a handle to one spreadsheet. It caches the worksheet title to
// sheet-ID mapping resolved at open time; row data is never cached.
type Conn struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetIDs      map[string]int64
	log           *zap.Logger
}

// Open authenticates against the Sheets API and resolves the spreadsheet.
//
// The primary credential source (inline JSON) is tried first; the key file
// is the fallback. Failure surfaces only when both are unusable, wrapped in
// ErrConnection.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (*Conn, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("%w: spreadsheet id is not configured", ErrConnection)
	}

	svc, err := newService(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	doc, err := svc.Spreadsheets.Get(cfg.SpreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: resolving spreadsheet %q: %v", ErrConnection, cfg.SpreadsheetID, err)
	}

	ids := make(map[string]int64, len(doc.Sheets))
	for _, sh := range doc.Sheets {
		if sh.Properties != nil {
			ids[sh.Properties.Title] = sh.Properties.SheetId
		}
	}

	logger.Info("sheet store connected",
		zap.String("spreadsheet_id", cfg.SpreadsheetID),
		zap.Int("worksheets", len(ids)))

	return &Conn{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetIDs:      ids,
		log:           logger,
	}, nil
}

// newService builds the API client, trying inline credentials before the
// key file.
func newService(ctx context.Context, cfg Config, logger *zap.Logger) (*sheets.Service, error) {
	if cfg.CredentialsJSON != "" {
		jwtCfg, err := google.JWTConfigFromJSON([]byte(cfg.CredentialsJSON), sheets.SpreadsheetsScope)
		if err == nil {
			svc, serr := sheets.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
			if serr == nil {
				return svc, nil
			}
			err = serr
		}
		if cfg.CredentialsFile == "" {
			return nil, fmt.Errorf("%w: inline credentials rejected: %v", ErrConnection, err)
		}
		logger.Warn("inline service-account credentials rejected, trying key file",
			zap.String("credentials_file", cfg.CredentialsFile),
			zap.Error(err))
	}

	if cfg.CredentialsFile == "" {
		return nil, fmt.Errorf("%w: no credential source configured", ErrConnection)
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("%w: key file %q rejected: %v", ErrConnection, cfg.CredentialsFile, err)
	}
	return svc, nil
}

// Table returns a handle for the named worksheet. The title must have been
// present when the spreadsheet was opened.
func (c *Conn) Table(name string) (*Table, error) {
	id, ok := c.sheetIDs[name]
	if !ok {
		return nil, fmt.Errorf("%w: worksheet %q not found", ErrConnection, name)
	}
	return &Table{conn: c, title: name, sheetID: id}, nil
}

// Ping verifies the spreadsheet is still reachable. Used by the health
// endpoint; reads only metadata.
func (c *Conn) Ping(ctx context.Context) error {
	_, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}
