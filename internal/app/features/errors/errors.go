// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/agendahub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the view model for error pages.
type pageData struct {
	SiteName string
	Title    string
	Message  string
	BackURL  string
}

// Handler renders the standalone error pages. No store access needed.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders a friendly "page not found" page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	data := pageData{
		SiteName: viewdata.SiteName,
		Title:    "페이지를 찾을 수 없습니다",
		Message:  "요청하신 페이지가 없습니다. 주소를 확인해주세요.",
		BackURL:  "/",
	}
	templates.Render(w, r, "error_page", data)
}
