// internal/app/features/export/routes.go
package export

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/current.csv", h.ServeCurrentCSV)
	r.Get("/history.csv", h.ServeHistoryCSV)
	return r
}
