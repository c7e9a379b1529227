// internal/app/features/items/handler.go
package items

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/dalemusser/agendahub/internal/app/features/errors"
	agendastore "github.com/dalemusser/agendahub/internal/app/store/agenda"
	"github.com/dalemusser/agendahub/internal/app/system/auth"
	"github.com/dalemusser/agendahub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/agendahub/internal/app/system/pinguard"
	"github.com/dalemusser/agendahub/internal/app/system/timeouts"
	"github.com/dalemusser/agendahub/internal/app/system/viewdata"
	"github.com/dalemusser/agendahub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type promptData struct {
	viewdata.BaseVM
	RowIndex  int
	Item      agendastore.Item
	FormError string
}

type editData struct {
	viewdata.BaseVM
	RowIndex   int
	Item       agendastore.Item
	Categories []string
	Statuses   []string
	FormError  string
}

type Handler struct {
	Agenda     *agendastore.Store
	Guard      *pinguard.Guard
	SessionMgr *auth.SessionManager
	ErrLog     *apperrors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(store *agendastore.Store, guard *pinguard.Guard, sessionMgr *auth.SessionManager, errLog *apperrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Agenda: store, Guard: guard, SessionMgr: sessionMgr, ErrLog: errLog, Log: logger}
}

// timeNow is a test seam for grant validity checks.
var timeNow = time.Now

// rowIndexParam reads the {row} URL parameter. Row 1 is the header, so
// anything below 2 is rejected.
func rowIndexParam(r *http.Request) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, "row"))
	if err != nil || n < 2 {
		return 0, false
	}
	return n, true
}

// ServeEdit shows the pin prompt for a row, or the edit form when the
// session already carries a live grant for that row.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	rowIndex, ok := rowIndexParam(r)
	if !ok {
		h.ErrLog.LogBadRequest(w, r, "bad row index in edit URL", nil,
			"잘못된 요청입니다.", "/current")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, found, err := h.Agenda.Get(ctx, rowIndex)
	if err != nil {
		h.ErrLog.LogStoreError(w, r, "loading agenda row failed", err,
			"안건을 불러오지 못했습니다.", "/current")
		return
	}
	if !found {
		apperrors.RenderError(w, r, "해당 안건을 찾을 수 없습니다. 이미 삭제되었거나 회차 마감으로 보관되었을 수 있습니다.", "/current")
		return
	}

	if grant, ok := h.SessionMgr.Grant(r); ok && grant.Valid(rowIndex, timeNow()) {
		h.renderEdit(w, r, rowIndex, item, "")
		return
	}
	h.renderPrompt(w, r, rowIndex, item, "")
}

// HandleAuthorize checks the posted pin against the row and, on a match,
// stores a fresh single-use grant in the session.
func (h *Handler) HandleAuthorize(w http.ResponseWriter, r *http.Request) {
	rowIndex, ok := rowIndexParam(r)
	if !ok {
		h.ErrLog.LogBadRequest(w, r, "bad row index in authorize URL", nil,
			"잘못된 요청입니다.", "/current")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parsing authorize form failed", err,
			"요청을 해석할 수 없습니다.", "/current")
		return
	}
	pin := strings.TrimSpace(r.PostFormValue("pin"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	grant, err := h.Guard.Authorize(ctx, rowIndex, pin)
	if errors.Is(err, pinguard.ErrNotAuthorized) {
		item, found, gerr := h.Agenda.Get(ctx, rowIndex)
		if gerr != nil || !found {
			apperrors.RenderError(w, r, "해당 안건을 찾을 수 없습니다.", "/current")
			return
		}
		h.renderPrompt(w, r, rowIndex, item, "PIN이 일치하지 않습니다. 다시 입력해 주세요.")
		return
	}
	if err != nil {
		h.ErrLog.LogStoreError(w, r, "authorizing agenda row failed", err,
			"인증 처리에 실패했습니다.", "/current")
		return
	}

	if err := h.SessionMgr.SaveGrant(w, r, grant); err != nil {
		h.ErrLog.LogStoreError(w, r, "saving edit grant failed", err,
			"세션 저장에 실패했습니다.", "/current")
		return
	}

	http.Redirect(w, r, "/items/"+strconv.Itoa(rowIndex)+"/edit", http.StatusSeeOther)
}

// HandleUpdate writes the editable fields of a granted row and spends
// the grant.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	rowIndex, ok := rowIndexParam(r)
	if !ok {
		h.ErrLog.LogBadRequest(w, r, "bad row index in update URL", nil,
			"잘못된 요청입니다.", "/current")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parsing update form failed", err,
			"요청을 해석할 수 없습니다.", "/current")
		return
	}

	upd := agendastore.FieldUpdate{
		Category: strings.TrimSpace(r.PostFormValue("category")),
		Content:  htmlsanitize.Sanitize(strings.TrimSpace(r.PostFormValue("content"))),
		Status:   strings.TrimSpace(r.PostFormValue("status")),
		Note:     htmlsanitize.Sanitize(strings.TrimSpace(r.PostFormValue("note"))),
	}
	if msg := validateUpdate(upd); msg != "" {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
		defer cancel()
		item, found, err := h.Agenda.Get(ctx, rowIndex)
		if err != nil || !found {
			apperrors.RenderError(w, r, "해당 안건을 찾을 수 없습니다.", "/current")
			return
		}
		h.renderEdit(w, r, rowIndex, item, msg)
		return
	}

	grant, _ := h.SessionMgr.Grant(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.Guard.Update(ctx, grant, rowIndex, upd)
	if errors.Is(err, pinguard.ErrNotAuthorized) {
		h.redirectReauth(w, r, rowIndex)
		return
	}
	if err != nil {
		h.ErrLog.LogStoreError(w, r, "updating agenda row failed", err,
			"안건 수정에 실패했습니다.", "/current")
		return
	}

	if err := h.SessionMgr.ClearGrant(w, r); err != nil {
		h.Log.Warn("clearing spent grant failed", zap.Error(err))
	}
	h.Log.Info("agenda item updated", zap.Int("row", rowIndex))
	http.Redirect(w, r, "/current", http.StatusSeeOther)
}

// HandleDelete removes a granted row and spends the grant.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	rowIndex, ok := rowIndexParam(r)
	if !ok {
		h.ErrLog.LogBadRequest(w, r, "bad row index in delete URL", nil,
			"잘못된 요청입니다.", "/current")
		return
	}

	grant, _ := h.SessionMgr.Grant(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.Guard.Delete(ctx, grant, rowIndex)
	if errors.Is(err, pinguard.ErrNotAuthorized) {
		h.redirectReauth(w, r, rowIndex)
		return
	}
	if err != nil {
		h.ErrLog.LogStoreError(w, r, "deleting agenda row failed", err,
			"안건 삭제에 실패했습니다.", "/current")
		return
	}

	if err := h.SessionMgr.ClearGrant(w, r); err != nil {
		h.Log.Warn("clearing spent grant failed", zap.Error(err))
	}
	h.Log.Info("agenda item deleted", zap.Int("row", rowIndex))
	http.Redirect(w, r, "/current", http.StatusSeeOther)
}

// redirectReauth sends the user back to the pin prompt after a missing or
// expired grant. The prompt explains why via the expired flag.
func (h *Handler) redirectReauth(w http.ResponseWriter, r *http.Request, rowIndex int) {
	http.Redirect(w, r, "/items/"+strconv.Itoa(rowIndex)+"/edit?expired=1", http.StatusSeeOther)
}

func (h *Handler) renderPrompt(w http.ResponseWriter, r *http.Request, rowIndex int, item agendastore.Item, formError string) {
	if formError == "" && r.URL.Query().Get("expired") == "1" {
		formError = "인증이 만료되었습니다. PIN을 다시 입력해 주세요."
	}
	data := promptData{
		BaseVM:    viewdata.NewBaseVM(r, h.SessionMgr, "안건 인증", "/current"),
		RowIndex:  rowIndex,
		Item:      item,
		FormError: formError,
	}
	templates.Render(w, r, "item_pin_prompt", data)
}

func (h *Handler) renderEdit(w http.ResponseWriter, r *http.Request, rowIndex int, item agendastore.Item, formError string) {
	data := editData{
		BaseVM:     viewdata.NewBaseVM(r, h.SessionMgr, "안건 수정", "/current"),
		RowIndex:   rowIndex,
		Item:       item,
		Categories: models.Categories(),
		Statuses:   models.Statuses(),
		FormError:  formError,
	}
	templates.Render(w, r, "item_edit_form", data)
}

// validateUpdate checks the editable fields the same way submission does.
func validateUpdate(upd agendastore.FieldUpdate) string {
	switch {
	case !models.IsValidCategory(upd.Category):
		return "구분 값이 올바르지 않습니다."
	case upd.Content == "":
		return "업무내용을 입력해 주세요."
	case !models.IsValidStatus(upd.Status):
		return "진행상태 값이 올바르지 않습니다."
	}
	return ""
}
