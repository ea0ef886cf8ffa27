package finder

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/search", h.SearchByPLZ)
	r.Get("/plz/{plz}", h.GetByPLZ)
	r.Get("/city", h.SearchByCity)
	r.Get("/wahlkreise", h.ListConstituencies)
	r.Get("/wahlkreise/{number}", h.GetConstituency)

	return r
}
