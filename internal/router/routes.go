package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aashari/go-prompt-router/docs"
	"github.com/aashari/go-prompt-router/internal/handlers"
	"github.com/aashari/go-prompt-router/internal/health"
	"github.com/aashari/go-prompt-router/internal/middleware"
	"github.com/aashari/go-prompt-router/internal/monitoring"
)

// Dependencies are the handlers the router mounts
type Dependencies struct {
	Prompts []*handlers.PromptHandlers
	Health  *health.HealthChecker
	Metrics *monitoring.Metrics
}

// AddRoutes mounts one runnable's endpoints under h.Path
func AddRoutes(mux *http.ServeMux, h *handlers.PromptHandlers) {
	mux.HandleFunc("POST "+h.Path, h.TopicHandler)
	mux.HandleFunc("POST "+h.Path+"/invoke", h.InvokeHandler)
	mux.HandleFunc("POST "+h.Path+"/batch", h.BatchHandler)
	mux.HandleFunc("GET "+h.Path+"/input_schema", h.InputSchemaHandler)
	mux.HandleFunc("GET "+h.Path+"/output_schema", h.OutputSchemaHandler)

	for _, path := range []string{h.Path, h.Path + "/invoke", h.Path + "/batch"} {
		mux.HandleFunc(path, methodNotAllowed(http.MethodPost))
	}
	for _, path := range []string{h.Path + "/input_schema", h.Path + "/output_schema"} {
		mux.HandleFunc(path, methodNotAllowed(http.MethodGet, http.MethodHead))
	}
}

// SetupRoutes configures all routes for the application
func SetupRoutes(deps Dependencies) http.Handler {
	mux := http.NewServeMux()

	for _, h := range deps.Prompts {
		AddRoutes(mux, h)
	}

	if deps.Health != nil {
		mux.HandleFunc("GET /health", health.HealthHandler(deps.Health))
		mux.HandleFunc("/health", methodNotAllowed(http.MethodGet, http.MethodHead))
	}

	metrics := deps.Metrics
	if metrics == nil {
		metrics = monitoring.GetMetrics()
	}
	mux.HandleFunc("GET /metrics", metrics.Handler)
	mux.HandleFunc("/metrics", methodNotAllowed(http.MethodGet, http.MethodHead))

	// Add pprof endpoints for performance profiling
	monitoring.SetupPprofRoutes(mux)

	// Serve Swagger UI with proper configuration
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	))

	mux.HandleFunc("/", notFound)

	var handler http.Handler = mux
	handler = metrics.Middleware(handler)
	handler = middleware.RequestCorrelationMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)
	return handler
}
