package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/aashari/go-prompt-router/internal/errors"
	"github.com/aashari/go-prompt-router/internal/logger"
)

// methodNotAllowed answers known paths hit with the wrong method using the
// JSON error envelope instead of ServeMux's plain-text 405.
func methodNotAllowed(allowed ...string) http.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithComponent(r.Context(), logger.ComponentNames.Router)
		w.Header().Set("Allow", allow)
		errors.HandleError(ctx, w, errors.NewMethodNotAllowedError(
			fmt.Sprintf("method %s is not allowed on %s, use %s", r.Method, r.URL.Path, allow),
		), http.StatusMethodNotAllowed)
	}
}

// notFound is the catch-all for paths no route claims
func notFound(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithComponent(r.Context(), logger.ComponentNames.Router)
	errors.HandleError(ctx, w, errors.NewNotFoundError(
		fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path),
	), http.StatusNotFound)
}
