package httphandler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/krispingal/runservices/internal/domain"
	"go.uber.org/zap"
)

var notFoundBody = []byte(`{"message":"Not Found"}`)

// NewServiceRouter serves the service message on its exact route and a JSON
// 404 on every other path. The method is never consulted.
func NewServiceRouter(svc domain.Service, logger *zap.Logger) (http.Handler, error) {
	if err := svc.Validate(); err != nil {
		return nil, err
	}
	body, err := svc.Body()
	if err != nil {
		return nil, fmt.Errorf("failed to encode message for %s: %w", svc.Name, err)
	}

	route := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requestPath(r) == svc.Route {
			writeJSON(w, http.StatusOK, body)
			return
		}
		writeJSON(w, http.StatusNotFound, notFoundBody)
	})

	return chi.Chain(NewRecoverer(logger), NewRequestLogger(logger)).Handler(route), nil
}

// requestPath is the request target as sent on the wire, without the query.
// Percent-encoding is kept and absolute-form targets keep their scheme and host.
func requestPath(r *http.Request) string {
	target := r.RequestURI
	if target == "" {
		target = r.URL.EscapedPath()
	}
	if i := strings.IndexByte(target, '?'); i >= 0 {
		target = target[:i]
	}
	return target
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
