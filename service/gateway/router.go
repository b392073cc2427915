package gateway

import (
	"net/http"

	"github.com/elC0mpa/cloud-finance/model"
	"github.com/elC0mpa/cloud-finance/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewRouter mounts the finance endpoints and the health check.
// Finance routes accept every method and the handler rejects non-GET itself.
func NewRouter(svc GatewayService, logger zerolog.Logger, version string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	finance := NewHandler(svc)
	r.Handle("/finance", finance)
	r.Handle("/api/finance", finance)

	for _, a := range model.Analyses() {
		report := NewAnalysisHandler(svc, a)
		r.Handle("/finance/"+a.String(), report)
		r.Handle("/api/finance/"+a.String(), report)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		jsonResponse(w, svc.Logger(), http.StatusOK, response.Health{
			Status:      "healthy",
			Version:     version,
			Credentials: svc.Configured(),
		})
	})

	return r
}
