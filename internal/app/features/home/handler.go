// internal/app/features/home/handler.go
package home

import (
	"net/http"

	"github.com/dalemusser/agendahub/internal/app/system/auth"
	"github.com/dalemusser/agendahub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM
}

type Handler struct {
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{SessionMgr: sessionMgr, Log: logger}
}

// ServeHome renders the landing page with links into the agenda views.
func (h *Handler) ServeHome(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, h.SessionMgr, "주간 전략회의", "/"),
	}
	templates.Render(w, r, "home", data)
}
