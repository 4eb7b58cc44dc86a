package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	routeRoot    = "/"
	routeSignup  = "/user/signup"
	routeSignin  = "/user/signin"
	routeVersion = "/version"
	routeMetrics = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Accept-Encoding", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get(routeRoot, h.hello)
		r.Get(routeVersion, h.getServerVersion)
		r.Post(routeSignup, h.signup)
		r.Post(routeSignin, h.signin)
	})

	// promhttp negotiates its own compression
	router.Method(http.MethodGet, routeMetrics, h.metrics.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
