package httphandler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

var internalErrorBody = []byte(`{"message":"Internal Server Error"}`)

// NewRequestLogger logs every completed request at debug level.
func NewRequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.Debug("Request served",
				zap.String("method", r.Method),
				zap.String("path", requestPath(r)),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Int("status", status),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(startTime)))
		})
	}
}

// NewRecoverer turns a handler panic into a JSON 500 and logs it with its stack.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func NewRecoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if err, ok := rvr.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rvr)
				}
				logger.Error("Recovered from handler panic",
					zap.Any("panic", rvr),
					zap.String("method", r.Method),
					zap.String("path", requestPath(r)),
					zap.Stack("stack"))
				writeJSON(w, http.StatusInternalServerError, internalErrorBody)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
