package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/biztime/internal/apperror"
	"github.com/MrJamesThe3rd/biztime/internal/http/company"
	"github.com/MrJamesThe3rd/biztime/internal/http/industry"
	"github.com/MrJamesThe3rd/biztime/internal/http/invoice"
	"github.com/MrJamesThe3rd/biztime/internal/http/respond"
)

func New(
	companies *company.Handler,
	invoices *invoice.Handler,
	industries *industry.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Anything the router cannot match gets the same 404 body, method
	// mismatches included.
	notFound := func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, apperror.NotFound("Not Found"))
	}
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Route("/companies", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		companies.Routes(r)
	})

	router.Route("/invoices", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		invoices.Routes(r)
	})

	router.Route("/industries", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		industries.Routes(r)
	})

	return router
}
