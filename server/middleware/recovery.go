package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	apperrors "github.com/skillsenselab/ytcaptions/errors"
	"github.com/skillsenselab/ytcaptions/logger"
)

// Recovery returns middleware that recovers from panics, logs the stack, and
// responds with the API's flat error shape.
func Recovery(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error("Panic recovered", map[string]interface{}{
						"error":  fmt.Sprintf("%v", err),
						"stack":  string(debug.Stack()),
						"path":   r.URL.Path,
						"method": r.Method,
					})
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(apperrors.Internal(nil).ToResponse())
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
