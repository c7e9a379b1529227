// internal/app/features/history/handler.go
package history

import (
	"context"
	"net/http"
	"sort"

	"github.com/dalemusser/agendahub/internal/app/features/errors"
	archivestore "github.com/dalemusser/agendahub/internal/app/store/archive"
	"github.com/dalemusser/agendahub/internal/app/system/auth"
	"github.com/dalemusser/agendahub/internal/app/system/departments"
	"github.com/dalemusser/agendahub/internal/app/system/timeouts"
	"github.com/dalemusser/agendahub/internal/app/system/viewdata"
	"github.com/dalemusser/agendahub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM
	Batches       []string
	SelectedBatch string
	Records       []models.ArchivedRecord
}

type Handler struct {
	Archive    *archivestore.Store
	SessionMgr *auth.SessionManager
	ErrLog     *errors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(store *archivestore.Store, sessionMgr *auth.SessionManager, errLog *errors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Archive: store, SessionMgr: sessionMgr, ErrLog: errLog, Log: logger}
}

// ServeHistory renders the archived batches. The batch selector lists
// labels in close order; the newest batch is shown when none is chosen.
func (h *Handler) ServeHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	batches, err := h.Archive.Batches(ctx)
	if err != nil {
		h.ErrLog.LogStoreError(w, r, "listing archive batches failed", err,
			"지난 기록을 불러오지 못했습니다.", "/")
		return
	}

	selected := r.URL.Query().Get("batch")
	if selected == "" && len(batches) > 0 {
		selected = batches[len(batches)-1]
	}

	var records []models.ArchivedRecord
	if selected != "" {
		records, err = h.Archive.ListBatch(ctx, selected)
		if err != nil {
			h.ErrLog.LogStoreError(w, r, "listing archive batch failed", err,
				"지난 기록을 불러오지 못했습니다.", "/history")
			return
		}
		sortRecords(records)
	}

	data := pageData{
		BaseVM:        viewdata.NewBaseVM(r, h.SessionMgr, "지난 회차 기록", "/"),
		Batches:       batches,
		SelectedBatch: selected,
		Records:       records,
	}
	templates.Render(w, r, "history_list", data)
}

// sortRecords applies the same department ordering the current view uses.
func sortRecords(recs []models.ArchivedRecord) {
	names := make([]string, len(recs))
	for i, rec := range recs {
		names[i] = rec.Department
	}
	less := departments.SortIndex(names)
	sort.SliceStable(recs, func(i, j int) bool { return less(i, j) })
}
