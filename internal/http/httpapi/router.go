package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"animagen/internal/http/handlers"
	"animagen/internal/infra"
	"animagen/internal/infra/geoip"
	"animagen/internal/middleware"
)

// NewRouter wires the delivery shell around the pipeline handlers.
func NewRouter(app *handlers.App, cfg *infra.Config, log infra.Logger, resolver geoip.CountryResolver) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		middleware.RequestID,
		middleware.Logger(log, resolver),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/generate", app.Generate)
		r.Get("/prompts/suggest", app.SuggestPrompts)
		r.Post("/explain", app.Explain)
		r.Get("/history", app.HistoryList)
	})

	// rendered videos are served straight from the artifact store
	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(app.Store.BasePath())))
	r.Handle("/static/*", fileServer)

	return r
}
