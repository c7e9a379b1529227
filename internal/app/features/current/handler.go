// internal/app/features/current/handler.go
package current

import (
	"context"
	"net/http"
	"sort"

	"github.com/dalemusser/agendahub/internal/app/features/errors"
	agendastore "github.com/dalemusser/agendahub/internal/app/store/agenda"
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
	Items           []agendastore.Item
	Departments     []string
	FilterDept      string
	TotalCount      int
	DeptCount       int
	InProgressCount int
}

type Handler struct {
	Agenda     *agendastore.Store
	SessionMgr *auth.SessionManager
	ErrLog     *errors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(store *agendastore.Store, sessionMgr *auth.SessionManager, errLog *errors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Agenda: store, SessionMgr: sessionMgr, ErrLog: errLog, Log: logger}
}

// ServeCurrent renders the live table for this week, sorted by department
// catalog order, with an optional single-department filter.
func (h *Handler) ServeCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Agenda.List(ctx)
	if err != nil {
		h.ErrLog.LogStoreError(w, r, "listing current agenda failed", err,
			"금주 안건을 불러오지 못했습니다.", "/")
		return
	}

	filter := r.URL.Query().Get("dept")
	items = filterByDept(items, filter)
	sortItems(items)

	data := pageData{
		BaseVM:      viewdata.NewBaseVM(r, h.SessionMgr, "금주 안건 현황", "/"),
		Items:       items,
		Departments: departments.Catalog(),
		FilterDept:  filter,
	}
	data.TotalCount, data.DeptCount, data.InProgressCount = summarize(items)

	templates.Render(w, r, "current_list", data)
}

// filterByDept keeps only rows for dept; an empty dept keeps everything.
func filterByDept(items []agendastore.Item, dept string) []agendastore.Item {
	if dept == "" {
		return items
	}
	kept := items[:0]
	for _, it := range items {
		if it.Department == dept {
			kept = append(kept, it)
		}
	}
	return kept
}

// sortItems orders rows by department catalog rank; rows sharing a
// department keep their sheet order.
func sortItems(items []agendastore.Item) {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Department
	}
	less := departments.SortIndex(names)
	sort.SliceStable(items, func(i, j int) bool { return less(i, j) })
}

func summarize(items []agendastore.Item) (total, depts, inProgress int) {
	seen := make(map[string]bool)
	for _, it := range items {
		total++
		if !seen[it.Department] {
			seen[it.Department] = true
			depts++
		}
		if it.Status == models.StatusInProgress {
			inProgress++
		}
	}
	return total, depts, inProgress
}
