// internal/app/features/admin/handler.go
package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/dalemusser/agendahub/internal/app/features/errors"
	agendastore "github.com/dalemusser/agendahub/internal/app/store/agenda"
	archivestore "github.com/dalemusser/agendahub/internal/app/store/archive"
	"github.com/dalemusser/agendahub/internal/app/system/auth"
	"github.com/dalemusser/agendahub/internal/app/system/rollover"
	"github.com/dalemusser/agendahub/internal/app/system/timeouts"
	"github.com/dalemusser/agendahub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type loginData struct {
	viewdata.BaseVM
	FormError string
}

type dashboardData struct {
	viewdata.BaseVM
	CurrentCount  int
	BatchCount    int
	SuggestedName string
	Notice        string
	FormError     string
}

type Handler struct {
	Engine        *rollover.Engine
	Agenda        *agendastore.Store
	Archive       *archivestore.Store
	SessionMgr    *auth.SessionManager
	ErrLog        *apperrors.ErrorLogger
	AdminPassword string
	Log           *zap.Logger
}

func NewHandler(engine *rollover.Engine, agendaStore *agendastore.Store, archiveStore *archivestore.Store, sessionMgr *auth.SessionManager, errLog *apperrors.ErrorLogger, adminPassword string, logger *zap.Logger) *Handler {
	return &Handler{
		Engine:        engine,
		Agenda:        agendaStore,
		Archive:       archiveStore,
		SessionMgr:    sessionMgr,
		ErrLog:        errLog,
		AdminPassword: adminPassword,
		Log:           logger,
	}
}

// ServeAdmin shows the password form to anonymous visitors and the
// dashboard with the week-close form to a signed-in admin.
func (h *Handler) ServeAdmin(w http.ResponseWriter, r *http.Request) {
	if !h.SessionMgr.IsAdmin(r) {
		h.renderLogin(w, r, "")
		return
	}
	h.renderDashboard(w, r, "", "")
}

// HandleLogin checks the posted password against the configured admin
// password, as plain text equality. That is how this office has always
// gated the close; see the deploy notes before hardening it.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parsing admin login form failed", err,
			"요청을 해석할 수 없습니다.", "/admin")
		return
	}

	password := r.PostFormValue("password")
	if password == "" || password != h.AdminPassword {
		h.Log.Warn("admin login refused", zap.String("remote", r.RemoteAddr))
		h.renderLogin(w, r, "비밀번호가 일치하지 않습니다.")
		return
	}

	if err := h.SessionMgr.SignInAdmin(w, r); err != nil {
		h.ErrLog.LogStoreError(w, r, "saving admin session failed", err,
			"세션 저장에 실패했습니다.", "/admin")
		return
	}
	h.Log.Info("admin signed in", zap.String("remote", r.RemoteAddr))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// HandleLogout drops the admin flag and returns to the landing page.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOutAdmin(w, r); err != nil {
		h.Log.Warn("clearing admin session failed", zap.Error(err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleCloseWeek runs the weekly close. It demands a non-empty batch
// label and the explicit confirmation checkbox; the engine itself does no
// such checking.
func (h *Handler) HandleCloseWeek(w http.ResponseWriter, r *http.Request) {
	if !h.SessionMgr.IsAdmin(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parsing close-week form failed", err,
			"요청을 해석할 수 없습니다.", "/admin")
		return
	}

	label := strings.TrimSpace(r.PostFormValue("batch_label"))
	if label == "" {
		h.renderDashboard(w, r, "", "회차 이름을 입력해 주세요.")
		return
	}
	if r.PostFormValue("confirm") != "on" {
		h.renderDashboard(w, r, "", "마감 확인란에 체크해 주세요.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	archived, err := h.Engine.CloseWeek(ctx, label)
	if err != nil {
		var rerr *rollover.Error
		if errors.As(err, &rerr) && rerr.Step == "clear" {
			// Archive succeeded but Current was not wiped. The rows now sit
			// in both worksheets; retrying would archive them a second time.
			h.Log.Error("week close left duplicate rows", zap.String("batch_label", label), zap.Error(err))
			h.renderDashboard(w, r, "",
				"보관은 완료되었지만 금주 시트 비우기에 실패했습니다. 스프레드시트에서 금주 시트를 직접 정리한 뒤 다시 시도하세요. ("+err.Error()+")")
			return
		}
		h.Log.Error("week close failed", zap.String("batch_label", label), zap.Error(err))
		h.renderDashboard(w, r, "", "주간 마감에 실패했습니다. ("+err.Error()+")")
		return
	}

	if archived == 0 {
		h.renderDashboard(w, r, "금주 시트에 보관할 안건이 없습니다.", "")
		return
	}
	h.renderDashboard(w, r, fmt.Sprintf("%d건의 안건을 '%s' 회차로 보관하고 금주 시트를 비웠습니다.", archived, label), "")
}

func (h *Handler) renderLogin(w http.ResponseWriter, r *http.Request, formError string) {
	data := loginData{
		BaseVM:    viewdata.NewBaseVM(r, h.SessionMgr, "관리자 로그인", "/"),
		FormError: formError,
	}
	templates.Render(w, r, "admin_login", data)
}

func (h *Handler) renderDashboard(w http.ResponseWriter, r *http.Request, notice, formError string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	data := dashboardData{
		BaseVM:        viewdata.NewBaseVM(r, h.SessionMgr, "관리자", "/"),
		SuggestedName: suggestedBatchLabel(time.Now()),
		Notice:        notice,
		FormError:     formError,
	}

	// Counts are advisory. A read failure here should not block the
	// dashboard the close form lives on.
	if items, err := h.Agenda.List(ctx); err == nil {
		data.CurrentCount = len(items)
	} else {
		h.Log.Warn("counting current rows for dashboard failed", zap.Error(err))
	}
	if batches, err := h.Archive.Batches(ctx); err == nil {
		data.BatchCount = len(batches)
	} else {
		h.Log.Warn("counting archive batches for dashboard failed", zap.Error(err))
	}

	templates.Render(w, r, "admin_dashboard", data)
}

// suggestedBatchLabel proposes a label for the close form. The operator
// can overwrite it freely; only non-emptiness is enforced.
func suggestedBatchLabel(now time.Time) string {
	return now.Format("2006-01-02") + " 회차"
}
