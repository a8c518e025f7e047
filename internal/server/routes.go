package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gp_tracker/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Post("/calculate", handler(s.postV1Calculate))

			r.Route("/slayer", func(r chi.Router) {
				r.Get("/breakdown", handler(s.getV1SlayerBreakdown))
				r.Get("/masters", handler(s.getV1SlayerMasters))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
