// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/agendahub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderError shows a friendly error page with a message and a way back.
// Used by handlers when a store operation fails and the user should retry
// the whole interaction from scratch.
func RenderError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	data := pageData{
		SiteName: viewdata.SiteName,
		Title:    "오류",
		Message:  msg,
		BackURL:  backURL,
	}
	templates.Render(w, r, "error_page", data)
}
