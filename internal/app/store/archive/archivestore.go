// internal/app/store/archive/archivestore.go

// Package archivestore provides typed read access to the "History"
// worksheet. History is append-only: rows are written only by the weekly
// close (see system/rollover) and are never updated or deleted here.
package archivestore

import (
	"context"

	"github.com/dalemusser/agendahub/internal/app/store/sheetdb"
	"github.com/dalemusser/agendahub/internal/domain/models"
)

// Store reads the History worksheet.
type Store struct {
	tbl sheetdb.RowTable
}

// New creates a store over the History worksheet handle.
func New(tbl sheetdb.RowTable) *Store {
	return &Store{tbl: tbl}
}

// List returns all archived rows in sheet order, header excluded.
func (s *Store) List(ctx context.Context) ([]models.ArchivedRecord, error) {
	rows, err := s.tbl.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	recs := make([]models.ArchivedRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		recs = append(recs, models.ArchivedFromRow(row))
	}
	return recs, nil
}

// Batches returns the distinct batch labels in the order they first appear,
// which is the order the closes happened.
func (s *Store) Batches(ctx context.Context) ([]string, error) {
	recs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(recs))
	var labels []string
	for _, rec := range recs {
		if _, ok := seen[rec.BatchLabel]; ok {
			continue
		}
		seen[rec.BatchLabel] = struct{}{}
		labels = append(labels, rec.BatchLabel)
	}
	return labels, nil
}

// ListBatch returns the rows archived under one batch label, in the order
// they held before the close.
func (s *Store) ListBatch(ctx context.Context, label string) ([]models.ArchivedRecord, error) {
	recs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.ArchivedRecord
	for _, rec := range recs {
		if rec.BatchLabel == label {
			out = append(out, rec)
		}
	}
	return out, nil
}
