package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Post("/generate", h.generate)

		r.Route("/plans", func(r chi.Router) {
			r.Get("/", h.listPlans)
			r.Post("/", h.createPlan)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getPlan)
				r.Delete("/", h.deletePlan)
				r.Get("/print", h.printPlan)
				r.Get("/export.xlsx", h.exportPlan)
			})
		})
	})

	router.NotFound(RouteNotFound)
	router.MethodNotAllowed(RouteNotFound)

	return router
}
