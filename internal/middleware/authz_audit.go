package middleware

import (
	"net/http"

	"github.com/anuj140/hireengine/internal/audit"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AuditContext stores request metadata in the context so policy audit entries
// written further down the chain can reference the originating request.
func AuditContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := audit.WithRequestInfo(r.Context(), audit.RequestInfo{
			RequestID: chimw.GetReqID(r.Context()),
			ClientIP:  r.RemoteAddr,
			UserAgent: r.UserAgent(),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
