// internal/app/features/history/routes.go
package history

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeHistory)
	return r
}
