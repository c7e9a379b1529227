// internal/app/features/submit/handler.go
package submit

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/agendahub/internal/app/features/errors"
	agendastore "github.com/dalemusser/agendahub/internal/app/store/agenda"
	"github.com/dalemusser/agendahub/internal/app/system/auth"
	"github.com/dalemusser/agendahub/internal/app/system/departments"
	"github.com/dalemusser/agendahub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/agendahub/internal/app/system/timeouts"
	"github.com/dalemusser/agendahub/internal/app/system/viewdata"
	"github.com/dalemusser/agendahub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM
	Departments []string
	Categories  []string
	Statuses    []string
	Form        formValues
	FormError   string
}

// formValues echoes the posted fields back into the form on a
// validation failure so the user does not retype everything.
type formValues struct {
	Department string
	Category   string
	Content    string
	Status     string
	DueDate    string
	Owner      string
	Note       string
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

// ServeForm renders the empty submission form.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, formValues{Category: models.CategoryGeneralReport, Status: models.StatusInProgress}, "")
}

// HandleSubmit validates the posted agenda item and appends it to the
// current-week table. The pin is stored alongside the row and is the only
// credential for later edits, so it is validated strictly here.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parsing submit form failed", err,
			"요청을 해석할 수 없습니다.", "/submit")
		return
	}

	form := formValues{
		Department: strings.TrimSpace(r.PostFormValue("department")),
		Category:   strings.TrimSpace(r.PostFormValue("category")),
		Content:    strings.TrimSpace(r.PostFormValue("content")),
		Status:     strings.TrimSpace(r.PostFormValue("status")),
		DueDate:    strings.TrimSpace(r.PostFormValue("due_date")),
		Owner:      strings.TrimSpace(r.PostFormValue("owner")),
		Note:       strings.TrimSpace(r.PostFormValue("note")),
	}
	pin := strings.TrimSpace(r.PostFormValue("pin"))

	if msg := validate(form, pin); msg != "" {
		h.renderForm(w, r, form, msg)
		return
	}

	rec := models.AgendaRecord{
		Department: form.Department,
		Category:   form.Category,
		Content:    htmlsanitize.Sanitize(form.Content),
		Status:     form.Status,
		DueDate:    form.DueDate,
		Owner:      htmlsanitize.Sanitize(form.Owner),
		Note:       htmlsanitize.Sanitize(form.Note),
		Pin:        pin,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Agenda.Append(ctx, rec); err != nil {
		h.ErrLog.LogStoreError(w, r, "appending agenda row failed", err,
			"안건 저장에 실패했습니다. 다시 시도해 주세요.", "/submit")
		return
	}

	h.Log.Info("agenda item submitted",
		zap.String("department", rec.Department),
		zap.String("category", rec.Category))

	http.Redirect(w, r, "/current", http.StatusSeeOther)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, form formValues, formError string) {
	data := pageData{
		BaseVM:      viewdata.NewBaseVM(r, h.SessionMgr, "안건 등록", "/current"),
		Departments: departments.Catalog(),
		Categories:  models.Categories(),
		Statuses:    models.Statuses(),
		Form:        form,
		FormError:   formError,
	}
	templates.Render(w, r, "submit_form", data)
}

// validate returns a user-facing Korean message for the first failed
// check, or "" when the submission is acceptable.
func validate(form formValues, pin string) string {
	switch {
	case form.Department == "":
		return "부서를 선택해 주세요."
	case !departments.IsValid(form.Department):
		return "알 수 없는 부서입니다. 목록에서 선택해 주세요."
	case !models.IsValidCategory(form.Category):
		return "구분 값이 올바르지 않습니다."
	case form.Content == "":
		return "업무내용을 입력해 주세요."
	case !models.IsValidStatus(form.Status):
		return "진행상태 값이 올바르지 않습니다."
	case !validPin(pin):
		return "PIN은 숫자 4자리여야 합니다."
	}
	return ""
}

// validPin accepts exactly four ASCII digits.
func validPin(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
