package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/anuj140/hireengine/internal/audit"
	"github.com/anuj140/hireengine/internal/auth"
	"github.com/anuj140/hireengine/internal/domain"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/anuj140/hireengine/internal/monitoring"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// TokenValidator verifies a bearer token and returns the account id it names.
type TokenValidator interface {
	Validate(token string) (uuid.UUID, error)
}

// PrincipalResolver builds the principal for a verified account id.
type PrincipalResolver interface {
	Resolve(ctx context.Context, id uuid.UUID) (*auth.Principal, error)
}

// Authenticate validates the bearer token, resolves the account and stores
// the principal in the request context.
func Authenticate(tokens TokenValidator, resolver PrincipalResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || scheme != "Bearer" || token == "" {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			accountID, err := tokens.Validate(token)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			p, err := resolver.Resolve(r.Context(), accountID)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrAccountNotFound):
					respondWithError(w, http.StatusUnauthorized, domain.Message(err))
				case errors.Is(err, domain.ErrForbidden):
					respondWithError(w, http.StatusForbidden, domain.Message(err))
				default:
					logger.ErrorContext(r.Context(), "resolving principal",
						"error", err,
						"account_id", accountID.String(),
						"requestID", chimw.GetReqID(r.Context()),
					)
					respondWithError(w, http.StatusInternalServerError, "Internal server error")
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireRoles lets the request through only when the principal holds one
// of roles. Denials are counted and written to the audit log.
func RequireRoles(auditLogger audit.Logger, monitor monitoring.MonitorInterface, logger *slog.Logger, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := auth.PrincipalFrom(r.Context())
			err := auth.Authorize(p, roles...)
			monitor.AuthorizationDecision(err == nil)
			if err == nil {
				next.ServeHTTP(w, r)
				return
			}

			if auditErr := auditLogger.LogDecision(r.Context(), audit.Decision{
				Action: model.ActionAuthorization,
				Rule:   strings.Join(roles, ","),
				Reason: domain.Message(err),
				Context: map[string]any{
					"method": r.Method,
					"path":   r.URL.Path,
				},
			}); auditErr != nil {
				logger.WarnContext(r.Context(), "failed to record authorization decision",
					"error", auditErr,
					"requestID", chimw.GetReqID(r.Context()),
				)
			}

			if errors.Is(err, domain.ErrUnauthenticated) {
				respondWithError(w, http.StatusUnauthorized, domain.Message(err))
				return
			}
			respondWithError(w, http.StatusForbidden, domain.Message(err))
		})
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
