// internal/app/features/items/routes.go
package items

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{row}/edit", h.ServeEdit)
	r.Post("/{row}/authorize", h.HandleAuthorize)
	r.Post("/{row}/update", h.HandleUpdate)
	r.Post("/{row}/delete", h.HandleDelete)
	return r
}
