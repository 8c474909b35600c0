package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/kasuboski/showtrack/pkg/logger"
	"go.uber.org/zap"
)

// LogMiddleware puts a request scoped logger with a request id on the context
func (s Server) LogMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.New().String()
			}
			w.Header().Set("X-Request-Id", id)

			log := s.baseLogger.With(zap.String("request_path", r.URL.Path), zap.String("method", r.Method)).With(zap.String("id", id))
			h.ServeHTTP(w, r.WithContext(logger.WithCtx(r.Context(), log)))
		})
	}
}
