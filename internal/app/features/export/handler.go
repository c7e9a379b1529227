// internal/app/features/export/handler.go
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	agendastore "github.com/dalemusser/agendahub/internal/app/store/agenda"
	archivestore "github.com/dalemusser/agendahub/internal/app/store/archive"
	"github.com/dalemusser/agendahub/internal/app/system/departments"
	"github.com/dalemusser/agendahub/internal/app/system/timeouts"
	"github.com/dalemusser/agendahub/internal/domain/models"
	"go.uber.org/zap"
)

type Handler struct {
	Agenda  *agendastore.Store
	Archive *archivestore.Store
	Log     *zap.Logger
}

func NewHandler(agendaStore *agendastore.Store, archiveStore *archivestore.Store, logger *zap.Logger) *Handler {
	return &Handler{Agenda: agendaStore, Archive: archiveStore, Log: logger}
}

// ServeCurrentCSV handles GET /export/current.csv: the live table in
// department order, pins withheld.
func (h *Handler) ServeCurrentCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	items, err := h.Agenda.List(ctx)
	if err != nil {
		h.Log.Error("exporting current sheet failed", zap.Error(err))
		http.Error(w, "export failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Department
	}
	less := departments.SortIndex(names)
	sort.SliceStable(items, func(i, j int) bool { return less(i, j) })

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, currentCSVRow(it.AgendaRecord))
	}

	writeCSV(w, h.Log, csvFilename("금주안건"), currentCSVHeader(), rows)
}

// ServeHistoryCSV handles GET /export/history.csv: every archived batch,
// batch order preserved and departments ordered within each batch.
func (h *Handler) ServeHistoryCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	batches, err := h.Archive.Batches(ctx)
	if err != nil {
		h.Log.Error("exporting history sheet failed", zap.Error(err))
		http.Error(w, "export failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	var rows [][]string
	for _, label := range batches {
		recs, err := h.Archive.ListBatch(ctx, label)
		if err != nil {
			h.Log.Error("exporting history batch failed",
				zap.String("batch_label", label), zap.Error(err))
			http.Error(w, "export failed: "+err.Error(), http.StatusBadGateway)
			return
		}
		sortArchived(recs)
		for _, rec := range recs {
			rows = append(rows, rec.ToRow())
		}
	}

	writeCSV(w, h.Log, csvFilename("지난기록"), models.HistoryHeader(), rows)
}

func sortArchived(recs []models.ArchivedRecord) {
	names := make([]string, len(recs))
	for i, rec := range recs {
		names[i] = rec.Department
	}
	less := departments.SortIndex(names)
	sort.SliceStable(recs, func(i, j int) bool { return less(i, j) })
}

// currentCSVHeader is the Current worksheet header with the pin column
// withheld. Pins never leave the worksheet.
func currentCSVHeader() []string {
	return models.CurrentHeader()[:models.ColPin-1]
}

func currentCSVRow(rec models.AgendaRecord) []string {
	return rec.ToRow()[:models.ColPin-1]
}

func csvFilename(prefix string) string {
	return fmt.Sprintf("%s_%s.csv", prefix, time.Now().Format("20060102"))
}

// writeCSV streams header+rows as a UTF-8 CSV attachment. The BOM keeps
// Excel from mangling the Korean text.
func writeCSV(w http.ResponseWriter, log *zap.Logger, filename string, header []string, rows [][]string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))

	if _, err := w.Write([]byte("\xEF\xBB\xBF")); err != nil {
		log.Warn("writing csv BOM failed", zap.Error(err))
		return
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		log.Warn("writing csv header failed", zap.Error(err))
		return
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			log.Warn("writing csv row failed", zap.Error(err))
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Warn("flushing csv failed", zap.Error(err))
	}
}
